package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MadanRavuri/pg-backend/internal/models"
)

type SettingsRepository interface {
	// Get returns the singleton settings row, or ErrNotFound if the
	// database has never been seeded.
	Get(ctx context.Context) (*models.Settings, error)
	Create(ctx context.Context, s *models.Settings) error
	Update(ctx context.Context, s *models.Settings) error
}

type settingsRepo struct {
	db DB
}

func NewSettingsRepository(db DB) SettingsRepository {
	return &settingsRepo{db: db}
}

const baseSelectSettings = `
	SELECT id, pg_name, address, contact_number, email, gst_number,
	       bank_account_number, bank_ifsc_code, bank_name, bank_account_holder,
	       rent_due_day, late_fee_percentage, maintenance_fee,
	       amenities, policies,
	       theme_primary_color, theme_secondary_color,
	       notify_email, notify_sms, notify_push,
	       created_at, updated_at
	FROM settings`

func (r *settingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	row := r.db.QueryRow(ctx, baseSelectSettings+` ORDER BY created_at LIMIT 1`)
	return scanSettings(row)
}

func (r *settingsRepo) Create(ctx context.Context, s *models.Settings) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	_, err := r.db.Exec(ctx, `
		INSERT INTO settings (
			id, pg_name, address, contact_number, email, gst_number,
			bank_account_number, bank_ifsc_code, bank_name, bank_account_holder,
			rent_due_day, late_fee_percentage, maintenance_fee,
			amenities, policies,
			theme_primary_color, theme_secondary_color,
			notify_email, notify_sms, notify_push,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
	`,
		s.ID, s.PGName, s.Address, s.ContactNumber, s.Email, s.GSTNumber,
		s.BankDetails.AccountNumber, s.BankDetails.IFSCCode,
		s.BankDetails.BankName, s.BankDetails.AccountHolderName,
		s.RentDueDay, s.LateFeePercentage, s.MaintenanceFee,
		s.Amenities, s.Policies,
		s.Theme.PrimaryColor, s.Theme.SecondaryColor,
		s.Notifications.Email, s.Notifications.SMS, s.Notifications.Push,
		s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *settingsRepo) Update(ctx context.Context, s *models.Settings) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE settings SET
			pg_name=$1, address=$2, contact_number=$3, email=$4, gst_number=$5,
			bank_account_number=$6, bank_ifsc_code=$7, bank_name=$8,
			bank_account_holder=$9,
			rent_due_day=$10, late_fee_percentage=$11, maintenance_fee=$12,
			amenities=$13, policies=$14,
			theme_primary_color=$15, theme_secondary_color=$16,
			notify_email=$17, notify_sms=$18, notify_push=$19,
			updated_at=NOW()
		WHERE id=$20
	`,
		s.PGName, s.Address, s.ContactNumber, s.Email, s.GSTNumber,
		s.BankDetails.AccountNumber, s.BankDetails.IFSCCode,
		s.BankDetails.BankName, s.BankDetails.AccountHolderName,
		s.RentDueDay, s.LateFeePercentage, s.MaintenanceFee,
		s.Amenities, s.Policies,
		s.Theme.PrimaryColor, s.Theme.SecondaryColor,
		s.Notifications.Email, s.Notifications.SMS, s.Notifications.Push,
		s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSettings(row pgx.Row) (*models.Settings, error) {
	var s models.Settings
	err := row.Scan(
		&s.ID, &s.PGName, &s.Address, &s.ContactNumber, &s.Email, &s.GSTNumber,
		&s.BankDetails.AccountNumber, &s.BankDetails.IFSCCode,
		&s.BankDetails.BankName, &s.BankDetails.AccountHolderName,
		&s.RentDueDay, &s.LateFeePercentage, &s.MaintenanceFee,
		&s.Amenities, &s.Policies,
		&s.Theme.PrimaryColor, &s.Theme.SecondaryColor,
		&s.Notifications.Email, &s.Notifications.SMS, &s.Notifications.Push,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
