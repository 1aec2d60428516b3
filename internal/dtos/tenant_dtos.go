package dtos

import "github.com/google/uuid"

type AddressDTO struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

type IDProofDTO struct {
	Type   string `json:"type" validate:"omitempty,oneof=aadhar passport pancard other"`
	Number string `json:"number"`
	Image  string `json:"image"`
}

type EmergencyContactDTO struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Relation string `json:"relation" validate:"required"`
}

type CreateTenantRequest struct {
	Name             string              `json:"name" validate:"required"`
	Email            string              `json:"email" validate:"required,email"`
	Phone            string              `json:"phone" validate:"required"`
	RoomID           uuid.UUID           `json:"roomId" validate:"required"`
	Rent             float64             `json:"rent" validate:"required,gt=0"`
	Deposit          float64             `json:"deposit" validate:"gte=0"`
	Status           string              `json:"status" validate:"omitempty,oneof=active inactive"`
	JoinDate         Date                `json:"joinDate" validate:"required"`
	Address          AddressDTO          `json:"address"`
	IDProof          IDProofDTO          `json:"idProof"`
	EmergencyContact EmergencyContactDTO `json:"emergencyContact" validate:"required"`
	Wing             string              `json:"wing" validate:"required,oneof=A B"`
	Floor            int                 `json:"floor" validate:"gte=0"`
}

type UpdateTenantRequest struct {
	Name             *string              `json:"name"`
	Email            *string              `json:"email" validate:"omitempty,email"`
	Phone            *string              `json:"phone"`
	RoomID           *uuid.UUID           `json:"roomId"`
	Rent             *float64             `json:"rent" validate:"omitempty,gt=0"`
	Deposit          *float64             `json:"deposit" validate:"omitempty,gte=0"`
	Status           *string              `json:"status" validate:"omitempty,oneof=active inactive"`
	JoinDate         *Date                `json:"joinDate"`
	Address          *AddressDTO          `json:"address"`
	IDProof          *IDProofDTO          `json:"idProof"`
	EmergencyContact *EmergencyContactDTO `json:"emergencyContact"`
	Wing             *string              `json:"wing" validate:"omitempty,oneof=A B"`
	Floor            *int                 `json:"floor" validate:"omitempty,gte=0"`
}
