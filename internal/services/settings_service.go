package services

import (
	"context"
	"errors"

	"github.com/MadanRavuri/pg-backend/internal/dtos"
	"github.com/MadanRavuri/pg-backend/internal/models"
	"github.com/MadanRavuri/pg-backend/internal/repositories"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

type SettingsService struct {
	settings repositories.SettingsRepository
}

func NewSettingsService(settings repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// GetOrCreate returns the settings singleton, seeding the defaults the
// first time it is asked for. Also run once at startup so request paths
// normally find the row in place.
func (s *SettingsService) GetOrCreate(ctx context.Context) (*models.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	defaults := DefaultSettings()
	if err := s.settings.Create(ctx, defaults); err != nil {
		return nil, err
	}
	utils.Logger.Info("Seeded default facility settings")
	return defaults, nil
}

// Upsert shallow-merges the request over the stored singleton, creating
// it from the defaults first if it does not exist yet.
func (s *SettingsService) Upsert(ctx context.Context, req dtos.UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	applySettingsPatch(settings, req)

	if err := s.settings.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func applySettingsPatch(s *models.Settings, req dtos.UpdateSettingsRequest) {
	if req.PGName != nil {
		s.PGName = *req.PGName
	}
	if req.Address != nil {
		s.Address = *req.Address
	}
	if req.ContactNumber != nil {
		s.ContactNumber = *req.ContactNumber
	}
	if req.Email != nil {
		s.Email = *req.Email
	}
	if req.GSTNumber != nil {
		s.GSTNumber = *req.GSTNumber
	}
	if req.BankDetails != nil {
		if req.BankDetails.AccountNumber != nil {
			s.BankDetails.AccountNumber = *req.BankDetails.AccountNumber
		}
		if req.BankDetails.IFSCCode != nil {
			s.BankDetails.IFSCCode = *req.BankDetails.IFSCCode
		}
		if req.BankDetails.BankName != nil {
			s.BankDetails.BankName = *req.BankDetails.BankName
		}
		if req.BankDetails.AccountHolderName != nil {
			s.BankDetails.AccountHolderName = *req.BankDetails.AccountHolderName
		}
	}
	if req.RentDueDay != nil {
		s.RentDueDay = *req.RentDueDay
	}
	if req.LateFeePercentage != nil {
		s.LateFeePercentage = *req.LateFeePercentage
	}
	if req.MaintenanceFee != nil {
		s.MaintenanceFee = *req.MaintenanceFee
	}
	if req.Amenities != nil {
		s.Amenities = *req.Amenities
	}
	if req.Policies != nil {
		s.Policies = *req.Policies
	}
	if req.Theme != nil {
		if req.Theme.PrimaryColor != nil {
			s.Theme.PrimaryColor = *req.Theme.PrimaryColor
		}
		if req.Theme.SecondaryColor != nil {
			s.Theme.SecondaryColor = *req.Theme.SecondaryColor
		}
	}
	if req.Notifications != nil {
		if req.Notifications.Email != nil {
			s.Notifications.Email = *req.Notifications.Email
		}
		if req.Notifications.SMS != nil {
			s.Notifications.SMS = *req.Notifications.SMS
		}
		if req.Notifications.Push != nil {
			s.Notifications.Push = *req.Notifications.Push
		}
	}
}

// DefaultSettings are the facility defaults used until an operator saves
// their own.
func DefaultSettings() *models.Settings {
	return &models.Settings{
		PGName:        "Sunflower PG",
		Address:       "123 Main Street, Bangalore, Karnataka 560001",
		ContactNumber: "+91 9876543210",
		Email:         "info@sunflowerpg.com",
		GSTNumber:     "29ABCDE1234F1Z5",
		BankDetails: models.BankDetails{
			AccountNumber:     "1234567890",
			IFSCCode:          "SBIN0001234",
			BankName:          "State Bank of India",
			AccountHolderName: "Sunflower PG",
		},
		RentDueDay:        5,
		LateFeePercentage: 5,
		MaintenanceFee:    0,
		Amenities:         []string{"Wi-Fi", "AC", "Food", "Laundry", "Security", "Parking"},
		Policies:          []string{"No smoking", "No pets", "Quiet hours after 10 PM"},
		Theme: models.Theme{
			PrimaryColor:   "#fbbf24",
			SecondaryColor: "#92400e",
		},
		Notifications: models.NotificationPrefs{
			Email: true,
			SMS:   false,
			Push:  false,
		},
	}
}
