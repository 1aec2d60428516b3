package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MadanRavuri/pg-backend/internal/constants"
	"github.com/MadanRavuri/pg-backend/internal/dtos"
	"github.com/MadanRavuri/pg-backend/internal/models"
)

func newTestPaymentService() (*PaymentService, *fakePaymentRepo, *fakeTenantRepo, *fakeRoomRepo) {
	payments := newFakePaymentRepo()
	tenants := newFakeTenantRepo()
	rooms := newFakeRoomRepo()
	svc := NewPaymentService(payments, tenants, rooms)
	return svc, payments, tenants, rooms
}

func TestCalculatePaymentStatus(t *testing.T) {
	due := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	beforeDue := due.AddDate(0, 0, -3)
	afterDue := due.AddDate(0, 0, 3)

	tests := []struct {
		name   string
		amount float64
		paid   float64
		now    time.Time
		want   string
	}{
		{"fully paid", 1000, 1000, beforeDue, constants.PaymentStatusPaid},
		{"overpaid", 1000, 1200, afterDue, constants.PaymentStatusPaid},
		{"partial before due", 1000, 400, beforeDue, constants.PaymentStatusPartial},
		{"partial after due stays partial", 1000, 400, afterDue, constants.PaymentStatusPartial},
		{"unpaid before due", 1000, 0, beforeDue, constants.PaymentStatusPending},
		{"unpaid on due date", 1000, 0, due, constants.PaymentStatusPending},
		{"unpaid after due", 1000, 0, afterDue, constants.PaymentStatusOverdue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePaymentStatus(tt.amount, tt.paid, due, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreatePaymentDerivesFields(t *testing.T) {
	ctx := context.Background()
	svc, _, tenants, rooms := newTestPaymentService()
	svc.now = func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }

	room := &models.Room{RoomNumber: "101", Wing: "A", Floor: 1}
	require.NoError(t, rooms.Create(ctx, room))
	tenant := &models.Tenant{Name: "John Doe", Email: "john@pg.test", RoomID: room.ID, Status: "active", Wing: "A"}
	require.NoError(t, tenants.CreateAndOccupyRoom(ctx, tenant))

	payment, err := svc.CreatePayment(ctx, dtos.CreatePaymentRequest{
		TenantID: tenant.ID,
		RoomID:   room.ID,
		Month:    "2024-06",
		Amount:   8000,
	})
	require.NoError(t, err)

	assert.Equal(t, 2024, payment.Year)
	assert.Equal(t, "June", payment.MonthName)
	assert.Equal(t, time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC), payment.DueDate)
	assert.Equal(t, constants.PaymentStatusPending, payment.Status)
	assert.Equal(t, "A", payment.Wing)
}

func TestCreatePaymentRejectsMalformedMonth(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestPaymentService()

	for _, month := range []string{"2024-5", "202406", "2024-13", "2024-00", "junk"} {
		_, err := svc.CreatePayment(ctx, dtos.CreatePaymentRequest{Month: month, Amount: 8000})
		assert.ErrorIs(t, err, ErrInvalidMonth, "month %q", month)
	}
}

func TestUpdatePaymentRederivesStatus(t *testing.T) {
	ctx := context.Background()
	svc, payments, _, _ := newTestPaymentService()
	svc.now = func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }

	seed := &models.RentPayment{
		Month: "2024-06", Year: 2024, MonthName: "June",
		Amount: 8000, PaidAmount: 0,
		DueDate: time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		Status:  constants.PaymentStatusPending, Wing: "A",
	}
	require.NoError(t, payments.Create(ctx, seed))

	paid := 8000.0
	updated, err := svc.UpdatePayment(ctx, seed.ID, dtos.UpdatePaymentRequest{PaidAmount: &paid})
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusPaid, updated.Status)

	half := 4000.0
	updated, err = svc.UpdatePayment(ctx, seed.ID, dtos.UpdatePaymentRequest{PaidAmount: &half})
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusPartial, updated.Status)
}

func TestGenerateMonthlyPayments(t *testing.T) {
	ctx := context.Background()
	svc, _, tenants, rooms := newTestPaymentService()
	svc.now = func() time.Time { return time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC) }

	roomA := &models.Room{RoomNumber: "101", Wing: "A", Floor: 1}
	roomB := &models.Room{RoomNumber: "102", Wing: "B", Floor: 1}
	require.NoError(t, rooms.Create(ctx, roomA))
	require.NoError(t, rooms.Create(ctx, roomB))

	active := &models.Tenant{Name: "John Doe", Email: "john@pg.test", RoomID: roomA.ID, Rent: 8000, Status: "active", Wing: "A"}
	inactive := &models.Tenant{Name: "Gone Tenant", Email: "gone@pg.test", RoomID: roomB.ID, Rent: 9000, Status: "inactive", Wing: "B"}
	require.NoError(t, tenants.CreateAndOccupyRoom(ctx, active))
	require.NoError(t, tenants.CreateAndOccupyRoom(ctx, inactive))

	created, err := svc.GenerateMonthlyPayments(ctx, "2024-06")
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	// Re-running for the same month creates nothing new.
	created, err = svc.GenerateMonthlyPayments(ctx, "2024-06")
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	// A different month bills the active tenant again.
	created, err = svc.GenerateMonthlyPayments(ctx, "2024-07")
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	_, err = svc.GenerateMonthlyPayments(ctx, "2024-6")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestGetPaymentStats(t *testing.T) {
	ctx := context.Background()
	svc, payments, _, _ := newTestPaymentService()

	due := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	seed := []*models.RentPayment{
		{Month: "2024-06", Amount: 1000, PaidAmount: 1000, DueDate: due, Status: constants.PaymentStatusPaid},
		{Month: "2024-06", Amount: 1000, PaidAmount: 500, DueDate: due, Status: constants.PaymentStatusPartial},
		{Month: "2024-06", Amount: 1000, PaidAmount: 0, DueDate: due, Status: constants.PaymentStatusOverdue},
		{Month: "2024-05", Amount: 500, PaidAmount: 0, DueDate: due.AddDate(0, -1, 0), Status: constants.PaymentStatusPending},
	}
	for _, p := range seed {
		require.NoError(t, payments.Create(ctx, p))
	}

	stats, err := svc.GetPaymentStats(ctx, "2024-06")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Paid)
	assert.Equal(t, 1, stats.Partial)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, 3000.0, stats.TotalAmount)
	assert.Equal(t, 1500.0, stats.CollectedAmount)
	assert.Equal(t, 500.0, stats.PendingAmount)
	assert.Equal(t, 1000.0, stats.OverdueAmount)
	assert.Equal(t, 50, stats.CollectionRate)

	// All months when no token given.
	stats, err = svc.GetPaymentStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
}

func TestGetPaymentStatsEmptySet(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestPaymentService()

	stats, err := svc.GetPaymentStats(ctx, "2024-06")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.CollectionRate)
}

func TestListPaymentsSearch(t *testing.T) {
	ctx := context.Background()
	svc, payments, tenants, rooms := newTestPaymentService()

	room := &models.Room{RoomNumber: "101", Wing: "A"}
	require.NoError(t, rooms.Create(ctx, room))
	john := &models.Tenant{Name: "John Doe", Email: "john.doe@pg.test", RoomID: room.ID, Status: "active"}
	sarah := &models.Tenant{Name: "Sarah Wilson", Email: "sarah@pg.test", RoomID: room.ID, Status: "active"}
	require.NoError(t, tenants.CreateAndOccupyRoom(ctx, john))
	require.NoError(t, tenants.CreateAndOccupyRoom(ctx, sarah))

	due := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, payments.Create(ctx, &models.RentPayment{
		TenantID: john.ID, RoomID: room.ID, Month: "2024-06", Amount: 8000,
		DueDate: due, Status: constants.PaymentStatusPending, Wing: "A",
	}))
	require.NoError(t, payments.Create(ctx, &models.RentPayment{
		TenantID: sarah.ID, RoomID: room.ID, Month: "2024-06", Amount: 12000,
		DueDate: due, Status: constants.PaymentStatusPending, Wing: "A",
	}))

	got, err := svc.ListPayments(ctx, PaymentListFilter{Search: "doe"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, john.ID, got[0].TenantID)

	// A term matching no tenant yields an empty result, not everything.
	got, err = svc.ListPayments(ctx, PaymentListFilter{Search: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, got)

	// The "all" sentinel leaves the listing unfiltered.
	got, err = svc.ListPayments(ctx, PaymentListFilter{Status: "all", Wing: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
