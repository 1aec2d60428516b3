package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadanRavuri/pg-backend/internal/dtos"
)

func TestGetOrCreateSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	settings, err := svc.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sunflower PG", settings.PGName)
	assert.Equal(t, 5, settings.RentDueDay)

	// A second call returns the stored row instead of reseeding.
	again, err := svc.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestUpsertShallowMerges(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	name := "Lotus PG"
	bank := "HDFC Bank"
	sms := true
	updated, err := svc.Upsert(ctx, dtos.UpdateSettingsRequest{
		PGName:        &name,
		BankDetails:   &dtos.BankDetailsDTO{BankName: &bank},
		Notifications: &dtos.NotificationsDTO{SMS: &sms},
	})
	require.NoError(t, err)

	assert.Equal(t, "Lotus PG", updated.PGName)
	assert.Equal(t, "HDFC Bank", updated.BankDetails.BankName)
	assert.True(t, updated.Notifications.SMS)

	// Untouched fields keep their defaults.
	assert.Equal(t, "SBIN0001234", updated.BankDetails.IFSCCode)
	assert.True(t, updated.Notifications.Email)
	assert.Equal(t, "123 Main Street, Bangalore, Karnataka 560001", updated.Address)

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Lotus PG", stored.PGName)
}
