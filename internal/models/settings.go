package models

import (
	"time"

	"github.com/google/uuid"
)

type BankDetails struct {
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	BankName          string `json:"bankName"`
	AccountHolderName string `json:"accountHolderName"`
}

type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

type NotificationPrefs struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}

// Settings is a singleton record; exactly one row is expected to exist.
type Settings struct {
	ID                uuid.UUID         `json:"id"`
	PGName            string            `json:"pgName"`
	Address           string            `json:"address"`
	ContactNumber     string            `json:"contactNumber"`
	Email             string            `json:"email"`
	GSTNumber         string            `json:"gstNumber"`
	BankDetails       BankDetails       `json:"bankDetails"`
	RentDueDay        int               `json:"rentDueDate"`
	LateFeePercentage float64           `json:"lateFeePercentage"`
	MaintenanceFee    float64           `json:"maintenanceFee"`
	Amenities         []string          `json:"amenities"`
	Policies          []string          `json:"policies"`
	Theme             Theme             `json:"theme"`
	Notifications     NotificationPrefs `json:"notifications"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}
