package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MadanRavuri/pg-backend/internal/models"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	// List returns every expense, newest date first.
	List(ctx context.Context) ([]*models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
}

type expenseRepo struct {
	db DB
}

func NewExpenseRepository(db DB) ExpenseRepository {
	return &expenseRepo{db: db}
}

const baseSelectExpense = `
	SELECT id, category, subcategory, description, amount, date,
	       payment_method, vendor, status, wing, created_at, updated_at
	FROM expenses`

func (r *expenseRepo) Create(ctx context.Context, e *models.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	_, err := r.db.Exec(ctx, `
		INSERT INTO expenses (
			id, category, subcategory, description, amount, date,
			payment_method, vendor, status, wing, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		e.ID, e.Category, e.Subcategory, e.Description, e.Amount, e.Date,
		e.PaymentMethod, e.Vendor, e.Status, e.Wing, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *expenseRepo) List(ctx context.Context) ([]*models.Expense, error) {
	rows, err := r.db.Query(ctx, baseSelectExpense+` ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *expenseRepo) Update(ctx context.Context, e *models.Expense) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE expenses SET
			category=$1, subcategory=$2, description=$3, amount=$4, date=$5,
			payment_method=$6, vendor=$7, status=$8, wing=$9, updated_at=NOW()
		WHERE id=$10
	`,
		e.Category, e.Subcategory, e.Description, e.Amount, e.Date,
		e.PaymentMethod, e.Vendor, e.Status, e.Wing, e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *expenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *expenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	row := r.db.QueryRow(ctx, baseSelectExpense+` WHERE id=$1`, id)
	return scanExpense(row)
}

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var e models.Expense
	err := row.Scan(
		&e.ID, &e.Category, &e.Subcategory, &e.Description, &e.Amount,
		&e.Date, &e.PaymentMethod, &e.Vendor, &e.Status, &e.Wing,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
