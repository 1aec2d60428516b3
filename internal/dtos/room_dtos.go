package dtos

import "github.com/google/uuid"

type CreateRoomRequest struct {
	RoomNumber  string   `json:"roomNumber" validate:"required"`
	Floor       int      `json:"floor" validate:"gte=0"`
	Wing        string   `json:"wing" validate:"required,oneof=A B"`
	Type        string   `json:"type" validate:"required,oneof=single double triple"`
	Rent        float64  `json:"rent" validate:"required,gt=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
}

// UpdateRoomRequest carries a partial update; nil fields keep their
// stored value.
type UpdateRoomRequest struct {
	RoomNumber  *string    `json:"roomNumber"`
	Floor       *int       `json:"floor" validate:"omitempty,gte=0"`
	Wing        *string    `json:"wing" validate:"omitempty,oneof=A B"`
	Type        *string    `json:"type" validate:"omitempty,oneof=single double triple"`
	Rent        *float64   `json:"rent" validate:"omitempty,gt=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
	Amenities   *[]string  `json:"amenities"`
	Description *string    `json:"description"`
	TenantID    *uuid.UUID `json:"tenantId"`
}
