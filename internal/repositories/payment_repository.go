package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MadanRavuri/pg-backend/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// PaymentFilter narrows a payment listing. Empty fields mean no
// constraint; a non-nil TenantIDs restricts to those tenants.
type PaymentFilter struct {
	Status    string
	Wing      string
	Month     string
	TenantIDs []uuid.UUID
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.RentPayment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.RentPayment, error)
	List(ctx context.Context, filter PaymentFilter) ([]*models.PaymentWithDetails, error)
	// ListByMonth returns the raw payment rows for a month token; an
	// empty token returns every payment.
	ListByMonth(ctx context.Context, month string) ([]*models.RentPayment, error)
	ExistsForTenantMonth(ctx context.Context, tenantID uuid.UUID, month string) (bool, error)
	Update(ctx context.Context, payment *models.RentPayment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type paymentRepo struct {
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepo{db: db}
}

const baseSelectPayment = `
	SELECT id, tenant_id, room_id, month, year, month_name, amount,
	       paid_amount, due_date, paid_date, status, payment_method,
	       transaction_id, late_fee, wing, created_at, updated_at
	FROM rent_payments`

func (r *paymentRepo) Create(ctx context.Context, p *models.RentPayment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.db.Exec(ctx, `
		INSERT INTO rent_payments (
			id, tenant_id, room_id, month, year, month_name, amount,
			paid_amount, due_date, paid_date, status, payment_method,
			transaction_id, late_fee, wing, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		p.ID, p.TenantID, p.RoomID, p.Month, p.Year, p.MonthName, p.Amount,
		p.PaidAmount, p.DueDate, p.PaidDate, p.Status, p.PaymentMethod,
		p.TransactionID, p.LateFee, p.Wing, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *paymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.RentPayment, error) {
	row := r.db.QueryRow(ctx, baseSelectPayment+` WHERE id=$1`, id)
	return scanPayment(row)
}

// List applies the filter conjunctively and expands tenant and room
// summaries. Payments whose tenant or room was deleted still list, with
// the summary omitted.
func (r *paymentRepo) List(ctx context.Context, filter PaymentFilter) ([]*models.PaymentWithDetails, error) {
	sql := baseSelectPayment
	var conds []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Status != "" {
		add("status=$%d", filter.Status)
	}
	if filter.Wing != "" {
		add("wing=$%d", filter.Wing)
	}
	if filter.Month != "" {
		add("month=$%d", filter.Month)
	}
	if filter.TenantIDs != nil {
		add("tenant_id = ANY($%d::uuid[])", uuidStrings(filter.TenantIDs))
	}
	for i, cond := range conds {
		if i == 0 {
			sql += " WHERE " + cond
		} else {
			sql += " AND " + cond
		}
	}
	sql += " ORDER BY due_date DESC, created_at DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.PaymentWithDetails{}
	tenantIDs := []uuid.UUID{}
	roomIDs := []uuid.UUID{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		tenantIDs = append(tenantIDs, p.TenantID)
		roomIDs = append(roomIDs, p.RoomID)
		out = append(out, &models.PaymentWithDetails{RentPayment: *p})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	tenants, err := tenantSummariesByID(ctx, r.db, tenantIDs)
	if err != nil {
		return nil, err
	}
	rooms, err := roomSummariesByID(ctx, r.db, roomIDs)
	if err != nil {
		return nil, err
	}
	for _, pd := range out {
		pd.Tenant = tenants[pd.TenantID]
		pd.Room = rooms[pd.RoomID]
	}
	return out, nil
}

func (r *paymentRepo) ListByMonth(ctx context.Context, month string) ([]*models.RentPayment, error) {
	sql := baseSelectPayment
	var args []interface{}
	if month != "" {
		sql += ` WHERE month=$1`
		args = append(args, month)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.RentPayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *paymentRepo) ExistsForTenantMonth(ctx context.Context, tenantID uuid.UUID, month string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM rent_payments WHERE tenant_id=$1 AND month=$2)`,
		tenantID, month,
	).Scan(&exists)
	return exists, err
}

func (r *paymentRepo) Update(ctx context.Context, p *models.RentPayment) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rent_payments SET
			tenant_id=$1, room_id=$2, month=$3, year=$4, month_name=$5,
			amount=$6, paid_amount=$7, due_date=$8, paid_date=$9, status=$10,
			payment_method=$11, transaction_id=$12, late_fee=$13, wing=$14,
			updated_at=NOW()
		WHERE id=$15
	`,
		p.TenantID, p.RoomID, p.Month, p.Year, p.MonthName, p.Amount,
		p.PaidAmount, p.DueDate, p.PaidDate, p.Status, p.PaymentMethod,
		p.TransactionID, p.LateFee, p.Wing, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rent_payments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPayment(row pgx.Row) (*models.RentPayment, error) {
	var p models.RentPayment
	err := row.Scan(
		&p.ID, &p.TenantID, &p.RoomID, &p.Month, &p.Year, &p.MonthName,
		&p.Amount, &p.PaidAmount, &p.DueDate, &p.PaidDate, &p.Status,
		&p.PaymentMethod, &p.TransactionID, &p.LateFee, &p.Wing,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func tenantSummariesByID(ctx context.Context, db DB, ids []uuid.UUID) (map[uuid.UUID]*models.TenantSummary, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, email, phone FROM tenants WHERE id = ANY($1::uuid[])`,
		uuidStrings(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[uuid.UUID]*models.TenantSummary{}
	for rows.Next() {
		var s models.TenantSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone); err != nil {
			return nil, err
		}
		out[s.ID] = &s
	}
	return out, rows.Err()
}
