package models

import (
	"time"

	"github.com/google/uuid"
)

type RentPayment struct {
	ID            uuid.UUID  `json:"id"`
	TenantID      uuid.UUID  `json:"tenantId"`
	RoomID        uuid.UUID  `json:"roomId"`
	Month         string     `json:"month"` // YYYY-MM billing period token
	Year          int        `json:"year"`
	MonthName     string     `json:"monthName"`
	Amount        float64    `json:"amount"`
	PaidAmount    float64    `json:"paidAmount"`
	DueDate       time.Time  `json:"dueDate"`
	PaidDate      *time.Time `json:"paidDate,omitempty"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	TransactionID string     `json:"transactionId,omitempty"`
	LateFee       float64    `json:"lateFee"`
	Wing          string     `json:"wing"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// PaymentWithDetails is a rent payment joined with tenant and room
// summaries for listing endpoints.
type PaymentWithDetails struct {
	RentPayment
	Tenant *TenantSummary `json:"tenant,omitempty"`
	Room   *RoomSummary   `json:"room,omitempty"`
}

// PaymentStats is the aggregate report over a (possibly month-filtered)
// set of rent payments.
type PaymentStats struct {
	Total           int     `json:"total"`
	Paid            int     `json:"paid"`
	Pending         int     `json:"pending"`
	Partial         int     `json:"partial"`
	Overdue         int     `json:"overdue"`
	TotalAmount     float64 `json:"totalAmount"`
	CollectedAmount float64 `json:"collectedAmount"`
	PendingAmount   float64 `json:"pendingAmount"`
	OverdueAmount   float64 `json:"overdueAmount"`
	CollectionRate  int     `json:"collectionRate"`
}
