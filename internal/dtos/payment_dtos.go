package dtos

import "github.com/google/uuid"

type CreatePaymentRequest struct {
	TenantID      uuid.UUID `json:"tenantId" validate:"required"`
	RoomID        uuid.UUID `json:"roomId" validate:"required"`
	Month         string    `json:"month" validate:"required"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	PaidAmount    *float64  `json:"paidAmount" validate:"omitempty,gte=0"`
	DueDate       *Date     `json:"dueDate"`
	PaidDate      *Date     `json:"paidDate"`
	PaymentMethod string    `json:"paymentMethod" validate:"omitempty,oneof=cash upi bank_transfer cheque"`
	TransactionID string    `json:"transactionId"`
	LateFee       *float64  `json:"lateFee" validate:"omitempty,gte=0"`
	Wing          string    `json:"wing" validate:"omitempty,oneof=A B"`
}

// UpdatePaymentRequest is a partial update. Whatever combination of
// amount, paidAmount and dueDate results after the merge, the status is
// re-derived server-side; any status sent by the client is ignored.
type UpdatePaymentRequest struct {
	Month         *string  `json:"month"`
	Amount        *float64 `json:"amount" validate:"omitempty,gt=0"`
	PaidAmount    *float64 `json:"paidAmount" validate:"omitempty,gte=0"`
	DueDate       *Date    `json:"dueDate"`
	PaidDate      *Date    `json:"paidDate"`
	PaymentMethod *string  `json:"paymentMethod" validate:"omitempty,oneof=cash upi bank_transfer cheque"`
	TransactionID *string  `json:"transactionId"`
	LateFee       *float64 `json:"lateFee" validate:"omitempty,gte=0"`
	Wing          *string  `json:"wing" validate:"omitempty,oneof=A B"`
}

type GeneratePaymentsRequest struct {
	Month string `json:"month" validate:"required"`
}

type GeneratePaymentsResponse struct {
	Created int `json:"created"`
}
