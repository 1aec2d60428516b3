package constants

const AppName = "pg-backend"

// Building wings. Expenses additionally use WingCommon for shared costs.
const (
	WingA      = "A"
	WingB      = "B"
	WingCommon = "common"
)

// Room occupancy types.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeTriple = "triple"
)

// Room statuses.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// Tenant statuses.
const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
)

// Rent payment statuses. Always derived server-side, never taken from the
// request body.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
	PaymentStatusPartial = "partial"
)

// Payment methods accepted for rent. Expenses allow the same set minus cheque.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodUPI          = "upi"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCheque       = "cheque"
)

// Expense statuses.
const (
	ExpenseStatusPending = "pending"
	ExpenseStatusPaid    = "paid"
)

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// RentDueDay is the calendar day of the month rent falls due on when a
// payment is generated without an explicit due date.
const RentDueDay = 5
