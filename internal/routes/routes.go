package routes

const (
	Health = "/api/health"

	Rooms  = "/api/rooms"
	RoomID = "/api/rooms/{id}"

	Tenants  = "/api/tenants"
	TenantID = "/api/tenants/{id}"

	RentPayments         = "/api/rent-payments"
	RentPaymentStats     = "/api/rent-payments/stats"
	RentPaymentsGenerate = "/api/rent-payments/generate"
	RentPaymentID        = "/api/rent-payments/{id}"

	Expenses  = "/api/expenses"
	ExpenseID = "/api/expenses/{id}"

	Contacts        = "/api/contacts"
	ContactMarkRead = "/api/contacts/{id}/read"

	Settings = "/api/settings"

	InitDatabase = "/api/init-database"

	AuthLogin = "/api/auth/login"
)
