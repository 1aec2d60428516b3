package models

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	Line1 string `json:"line1,omitempty"`
	Line2 string `json:"line2,omitempty"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
	Zip   string `json:"zip,omitempty"`
}

type IDProof struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number,omitempty"`
	Image  string `json:"image,omitempty"`
}

type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

type Tenant struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	RoomID           uuid.UUID        `json:"roomId"`
	Rent             float64          `json:"rent"`
	Deposit          float64          `json:"deposit"`
	Status           string           `json:"status"`
	JoinDate         time.Time        `json:"joinDate"`
	Address          Address          `json:"address"`
	IDProof          IDProof          `json:"idProof"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	Wing             string           `json:"wing"`
	Floor            int              `json:"floor"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// TenantWithRoom is a tenant joined with a summary of their room.
type TenantWithRoom struct {
	Tenant
	Room *RoomSummary `json:"room,omitempty"`
}

// TenantSummary carries the tenant fields embedded into payment listings.
type TenantSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}
