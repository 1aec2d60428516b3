package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MadanRavuri/pg-backend/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error)
	ListWithTenants(ctx context.Context) ([]*models.RoomWithTenant, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type roomRepo struct {
	db DB
}

func NewRoomRepository(db DB) RoomRepository {
	return &roomRepo{db: db}
}

const baseSelectRoom = `
	SELECT id, room_number, floor, wing, type, rent, status, amenities,
	       description, tenant_id, created_at, updated_at
	FROM rooms`

func (r *roomRepo) Create(ctx context.Context, room *models.Room) error {
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now
	_, err := r.db.Exec(ctx, `
		INSERT INTO rooms (
			id, room_number, floor, wing, type, rent, status, amenities,
			description, tenant_id, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		room.ID, room.RoomNumber, room.Floor, room.Wing, room.Type, room.Rent,
		room.Status, room.Amenities, room.Description, room.TenantID,
		room.CreatedAt, room.UpdatedAt,
	)
	if isDuplicateErr(err) {
		return ErrDuplicate
	}
	return err
}

func (r *roomRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	row := r.db.QueryRow(ctx, baseSelectRoom+` WHERE id=$1`, id)
	return scanRoom(row)
}

// ListWithTenants returns every room, attaching the occupying tenant
// when the room references one.
func (r *roomRepo) ListWithTenants(ctx context.Context) ([]*models.RoomWithTenant, error) {
	rows, err := r.db.Query(ctx, baseSelectRoom+` ORDER BY wing, room_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.RoomWithTenant{}
	tenantIDs := []uuid.UUID{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		if room.TenantID != nil {
			tenantIDs = append(tenantIDs, *room.TenantID)
		}
		out = append(out, &models.RoomWithTenant{Room: *room})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(tenantIDs) == 0 {
		return out, nil
	}

	tenants, err := tenantsByID(ctx, r.db, tenantIDs)
	if err != nil {
		return nil, err
	}
	for _, rt := range out {
		if rt.TenantID != nil {
			rt.Tenant = tenants[*rt.TenantID]
		}
	}
	return out, nil
}

func (r *roomRepo) Update(ctx context.Context, room *models.Room) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rooms SET
			room_number=$1, floor=$2, wing=$3, type=$4, rent=$5, status=$6,
			amenities=$7, description=$8, tenant_id=$9, updated_at=NOW()
		WHERE id=$10
	`,
		room.RoomNumber, room.Floor, room.Wing, room.Type, room.Rent,
		room.Status, room.Amenities, room.Description, room.TenantID, room.ID,
	)
	if isDuplicateErr(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *roomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *roomRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&n)
	return n, err
}

func scanRoom(row pgx.Row) (*models.Room, error) {
	var room models.Room
	var tenantID uuid.NullUUID
	err := row.Scan(
		&room.ID, &room.RoomNumber, &room.Floor, &room.Wing, &room.Type,
		&room.Rent, &room.Status, &room.Amenities, &room.Description,
		&tenantID, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if tenantID.Valid {
		room.TenantID = &tenantID.UUID
	}
	return &room, nil
}
