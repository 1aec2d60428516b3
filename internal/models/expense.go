package models

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"paymentMethod"`
	Vendor        string    `json:"vendor"`
	Status        string    `json:"status"`
	Wing          string    `json:"wing"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
