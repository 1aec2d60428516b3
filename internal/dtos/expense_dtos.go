package dtos

type CreateExpenseRequest struct {
	Category      string  `json:"category" validate:"required"`
	Subcategory   string  `json:"subcategory" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Date          Date    `json:"date" validate:"required"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=cash upi bank_transfer"`
	Vendor        string  `json:"vendor" validate:"required"`
	Status        string  `json:"status" validate:"omitempty,oneof=pending paid"`
	Wing          string  `json:"wing" validate:"required,oneof=A B common"`
}

type UpdateExpenseRequest struct {
	Category      *string  `json:"category"`
	Subcategory   *string  `json:"subcategory"`
	Description   *string  `json:"description"`
	Amount        *float64 `json:"amount" validate:"omitempty,gt=0"`
	Date          *Date    `json:"date"`
	PaymentMethod *string  `json:"paymentMethod" validate:"omitempty,oneof=cash upi bank_transfer"`
	Vendor        *string  `json:"vendor"`
	Status        *string  `json:"status" validate:"omitempty,oneof=pending paid"`
	Wing          *string  `json:"wing" validate:"omitempty,oneof=A B common"`
}
