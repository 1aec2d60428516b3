package dtos

type BankDetailsDTO struct {
	AccountNumber     *string `json:"accountNumber"`
	IFSCCode          *string `json:"ifscCode"`
	BankName          *string `json:"bankName"`
	AccountHolderName *string `json:"accountHolderName"`
}

type ThemeDTO struct {
	PrimaryColor   *string `json:"primaryColor"`
	SecondaryColor *string `json:"secondaryColor"`
}

type NotificationsDTO struct {
	Email *bool `json:"email"`
	SMS   *bool `json:"sms"`
	Push  *bool `json:"push"`
}

// UpdateSettingsRequest is a shallow merge over the stored singleton:
// provided fields overwrite, absent fields are kept.
type UpdateSettingsRequest struct {
	PGName            *string           `json:"pgName"`
	Address           *string           `json:"address"`
	ContactNumber     *string           `json:"contactNumber"`
	Email             *string           `json:"email" validate:"omitempty,email"`
	GSTNumber         *string           `json:"gstNumber"`
	BankDetails       *BankDetailsDTO   `json:"bankDetails"`
	RentDueDay        *int              `json:"rentDueDate" validate:"omitempty,gte=1,lte=28"`
	LateFeePercentage *float64          `json:"lateFeePercentage" validate:"omitempty,gte=0"`
	MaintenanceFee    *float64          `json:"maintenanceFee" validate:"omitempty,gte=0"`
	Amenities         *[]string         `json:"amenities"`
	Policies          *[]string         `json:"policies"`
	Theme             *ThemeDTO         `json:"theme"`
	Notifications     *NotificationsDTO `json:"notifications"`
}
