package models

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID          uuid.UUID  `json:"id"`
	RoomNumber  string     `json:"roomNumber"`
	Floor       int        `json:"floor"`
	Wing        string     `json:"wing"`
	Type        string     `json:"type"`
	Rent        float64    `json:"rent"`
	Status      string     `json:"status"`
	Amenities   []string   `json:"amenities"`
	Description string     `json:"description,omitempty"`
	TenantID    *uuid.UUID `json:"tenantId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// RoomWithTenant is a room joined with its occupying tenant, if any.
type RoomWithTenant struct {
	Room
	Tenant *Tenant `json:"tenant,omitempty"`
}

// RoomSummary carries the room fields embedded into tenant and payment
// listings.
type RoomSummary struct {
	ID         uuid.UUID `json:"id"`
	RoomNumber string    `json:"roomNumber"`
	Floor      int       `json:"floor"`
	Wing       string    `json:"wing"`
}
