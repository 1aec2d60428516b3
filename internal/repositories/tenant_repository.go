package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MadanRavuri/pg-backend/internal/constants"
	"github.com/MadanRavuri/pg-backend/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type TenantRepository interface {
	// CreateAndOccupyRoom inserts the tenant and flips their room to
	// occupied in a single transaction.
	CreateAndOccupyRoom(ctx context.Context, tenant *models.Tenant) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	ListWithRooms(ctx context.Context) ([]*models.TenantWithRoom, error)
	ListActive(ctx context.Context) ([]*models.Tenant, error)
	// SearchIDs returns the ids of tenants whose name or email contains
	// the query, case-insensitively.
	SearchIDs(ctx context.Context, query string) ([]uuid.UUID, error)

	Update(ctx context.Context, tenant *models.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type tenantRepo struct {
	db DB
}

func NewTenantRepository(db DB) TenantRepository {
	return &tenantRepo{db: db}
}

const baseSelectTenant = `
	SELECT id, name, email, phone, room_id, rent, deposit, status, join_date,
	       address_line1, address_line2, address_city, address_state, address_zip,
	       id_proof_type, id_proof_number, id_proof_image,
	       emergency_name, emergency_phone, emergency_relation,
	       wing, floor, created_at, updated_at
	FROM tenants`

const insertTenant = `
	INSERT INTO tenants (
		id, name, email, phone, room_id, rent, deposit, status, join_date,
		address_line1, address_line2, address_city, address_state, address_zip,
		id_proof_type, id_proof_number, id_proof_image,
		emergency_name, emergency_phone, emergency_relation,
		wing, floor, created_at, updated_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)`

func (r *tenantRepo) CreateAndOccupyRoom(ctx context.Context, tenant *models.Tenant) error {
	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}
	now := time.Now()
	tenant.CreatedAt = now
	tenant.UpdatedAt = now

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, insertTenant, tenantArgs(tenant)...); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE rooms SET tenant_id=$1, status=$2, updated_at=NOW() WHERE id=$3`,
		tenant.ID, constants.RoomStatusOccupied, tenant.RoomID,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	row := r.db.QueryRow(ctx, baseSelectTenant+` WHERE id=$1`, id)
	return scanTenant(row)
}

// ListWithRooms returns every tenant with a summary of their room.
func (r *tenantRepo) ListWithRooms(ctx context.Context) ([]*models.TenantWithRoom, error) {
	rows, err := r.db.Query(ctx, baseSelectTenant+` ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.TenantWithRoom{}
	roomIDs := []uuid.UUID{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		roomIDs = append(roomIDs, t.RoomID)
		out = append(out, &models.TenantWithRoom{Tenant: *t})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	rooms, err := roomSummariesByID(ctx, r.db, roomIDs)
	if err != nil {
		return nil, err
	}
	for _, tw := range out {
		tw.Room = rooms[tw.RoomID]
	}
	return out, nil
}

func (r *tenantRepo) ListActive(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx, baseSelectTenant+` WHERE status=$1 ORDER BY name`, constants.TenantStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *tenantRepo) SearchIDs(ctx context.Context, query string) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM tenants WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'`,
		query,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *tenantRepo) Update(ctx context.Context, tenant *models.Tenant) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tenants SET
			name=$1, email=$2, phone=$3, room_id=$4, rent=$5, deposit=$6,
			status=$7, join_date=$8,
			address_line1=$9, address_line2=$10, address_city=$11,
			address_state=$12, address_zip=$13,
			id_proof_type=$14, id_proof_number=$15, id_proof_image=$16,
			emergency_name=$17, emergency_phone=$18, emergency_relation=$19,
			wing=$20, floor=$21, updated_at=NOW()
		WHERE id=$22
	`,
		tenant.Name, tenant.Email, tenant.Phone, tenant.RoomID, tenant.Rent,
		tenant.Deposit, tenant.Status, tenant.JoinDate,
		tenant.Address.Line1, tenant.Address.Line2, tenant.Address.City,
		tenant.Address.State, tenant.Address.Zip,
		tenant.IDProof.Type, tenant.IDProof.Number, tenant.IDProof.Image,
		tenant.EmergencyContact.Name, tenant.EmergencyContact.Phone,
		tenant.EmergencyContact.Relation,
		tenant.Wing, tenant.Floor, tenant.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the tenant only. Rooms and rent payments keep whatever
// references they hold; orphaned references are permitted.
func (r *tenantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tenants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tenantRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tenants`).Scan(&n)
	return n, err
}

func tenantArgs(t *models.Tenant) []interface{} {
	return []interface{}{
		t.ID, t.Name, t.Email, t.Phone, t.RoomID, t.Rent, t.Deposit, t.Status,
		t.JoinDate,
		t.Address.Line1, t.Address.Line2, t.Address.City, t.Address.State, t.Address.Zip,
		t.IDProof.Type, t.IDProof.Number, t.IDProof.Image,
		t.EmergencyContact.Name, t.EmergencyContact.Phone, t.EmergencyContact.Relation,
		t.Wing, t.Floor, t.CreatedAt, t.UpdatedAt,
	}
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var t models.Tenant
	err := row.Scan(
		&t.ID, &t.Name, &t.Email, &t.Phone, &t.RoomID, &t.Rent, &t.Deposit,
		&t.Status, &t.JoinDate,
		&t.Address.Line1, &t.Address.Line2, &t.Address.City, &t.Address.State,
		&t.Address.Zip,
		&t.IDProof.Type, &t.IDProof.Number, &t.IDProof.Image,
		&t.EmergencyContact.Name, &t.EmergencyContact.Phone,
		&t.EmergencyContact.Relation,
		&t.Wing, &t.Floor, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// tenantsByID loads the given tenants keyed by id. Used to expand room
// listings without null-scanning a wide left join.
func tenantsByID(ctx context.Context, db DB, ids []uuid.UUID) (map[uuid.UUID]*models.Tenant, error) {
	rows, err := db.Query(ctx, baseSelectTenant+` WHERE id = ANY($1::uuid[])`, uuidStrings(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[uuid.UUID]*models.Tenant{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out[t.ID] = t
	}
	return out, rows.Err()
}

// roomSummariesByID loads room summaries keyed by id.
func roomSummariesByID(ctx context.Context, db DB, ids []uuid.UUID) (map[uuid.UUID]*models.RoomSummary, error) {
	rows, err := db.Query(ctx,
		`SELECT id, room_number, floor, wing FROM rooms WHERE id = ANY($1::uuid[])`,
		uuidStrings(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[uuid.UUID]*models.RoomSummary{}
	for rows.Next() {
		var s models.RoomSummary
		if err := rows.Scan(&s.ID, &s.RoomNumber, &s.Floor, &s.Wing); err != nil {
			return nil, err
		}
		out[s.ID] = &s
	}
	return out, rows.Err()
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
