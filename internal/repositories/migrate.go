package repositories

import (
	"context"
	"fmt"
)

// Migrate applies the schema on startup. Statements are idempotent so the
// service can restart against an already-provisioned database.
func Migrate(ctx context.Context, db DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS rooms (
			id UUID PRIMARY KEY,
			room_number TEXT NOT NULL,
			floor INT NOT NULL,
			wing TEXT NOT NULL,
			type TEXT NOT NULL,
			rent NUMERIC(12,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'available',
			amenities TEXT[] NOT NULL DEFAULT '{}',
			description TEXT NOT NULL DEFAULT '',
			tenant_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (room_number, wing)
		);`,
		`CREATE TABLE IF NOT EXISTS tenants (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			room_id UUID NOT NULL,
			rent NUMERIC(12,2) NOT NULL,
			deposit NUMERIC(12,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			join_date TIMESTAMPTZ NOT NULL,
			address_line1 TEXT NOT NULL DEFAULT '',
			address_line2 TEXT NOT NULL DEFAULT '',
			address_city TEXT NOT NULL DEFAULT '',
			address_state TEXT NOT NULL DEFAULT '',
			address_zip TEXT NOT NULL DEFAULT '',
			id_proof_type TEXT NOT NULL DEFAULT 'aadhar',
			id_proof_number TEXT NOT NULL DEFAULT '',
			id_proof_image TEXT NOT NULL DEFAULT '',
			emergency_name TEXT NOT NULL,
			emergency_phone TEXT NOT NULL,
			emergency_relation TEXT NOT NULL,
			wing TEXT NOT NULL,
			floor INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS rent_payments (
			id UUID PRIMARY KEY,
			tenant_id UUID NOT NULL,
			room_id UUID NOT NULL,
			month TEXT NOT NULL,
			year INT NOT NULL,
			month_name TEXT NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			paid_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			due_date TIMESTAMPTZ NOT NULL,
			paid_date TIMESTAMPTZ,
			status TEXT NOT NULL DEFAULT 'pending',
			payment_method TEXT NOT NULL DEFAULT '',
			transaction_id TEXT NOT NULL DEFAULT '',
			late_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			wing TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS rent_payments_tenant_month_idx ON rent_payments (tenant_id, month);`,
		`CREATE INDEX IF NOT EXISTS rent_payments_month_idx ON rent_payments (month);`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY,
			category TEXT NOT NULL,
			subcategory TEXT NOT NULL,
			description TEXT NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			payment_method TEXT NOT NULL,
			vendor TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			wing TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			subject TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			id UUID PRIMARY KEY,
			pg_name TEXT NOT NULL,
			address TEXT NOT NULL,
			contact_number TEXT NOT NULL,
			email TEXT NOT NULL,
			gst_number TEXT NOT NULL,
			bank_account_number TEXT NOT NULL,
			bank_ifsc_code TEXT NOT NULL,
			bank_name TEXT NOT NULL,
			bank_account_holder TEXT NOT NULL,
			rent_due_day INT NOT NULL DEFAULT 5,
			late_fee_percentage NUMERIC(6,2) NOT NULL DEFAULT 5,
			maintenance_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			amenities TEXT[] NOT NULL DEFAULT '{}',
			policies TEXT[] NOT NULL DEFAULT '{}',
			theme_primary_color TEXT NOT NULL DEFAULT '#fbbf24',
			theme_secondary_color TEXT NOT NULL DEFAULT '#92400e',
			notify_email BOOLEAN NOT NULL DEFAULT TRUE,
			notify_sms BOOLEAN NOT NULL DEFAULT FALSE,
			notify_push BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}
