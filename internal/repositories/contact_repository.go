package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MadanRavuri/pg-backend/internal/models"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	// ListRecent returns the newest messages first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*models.ContactMessage, error)
	// MarkRead flips the read flag and returns the updated message.
	MarkRead(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
}

type contactRepo struct {
	db DB
}

func NewContactRepository(db DB) ContactRepository {
	return &contactRepo{db: db}
}

const baseSelectContact = `
	SELECT id, name, email, phone, subject, message, is_read,
	       created_at, updated_at
	FROM contact_messages`

func (r *contactRepo) Create(ctx context.Context, m *models.ContactMessage) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	_, err := r.db.Exec(ctx, `
		INSERT INTO contact_messages (
			id, name, email, phone, subject, message, is_read,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		m.ID, m.Name, m.Email, m.Phone, m.Subject, m.Message, m.IsRead,
		m.CreatedAt, m.UpdatedAt,
	)
	return err
}

func (r *contactRepo) ListRecent(ctx context.Context, limit int) ([]*models.ContactMessage, error) {
	rows, err := r.db.Query(ctx, baseSelectContact+` ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.ContactMessage{}
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *contactRepo) MarkRead(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE contact_messages SET is_read=TRUE, updated_at=NOW()
		WHERE id=$1
		RETURNING id, name, email, phone, subject, message, is_read,
		          created_at, updated_at
	`, id)
	return scanContact(row)
}

func scanContact(row pgx.Row) (*models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message,
		&m.IsRead, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
