package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/MadanRavuri/pg-backend/internal/constants"
	"github.com/MadanRavuri/pg-backend/internal/dtos"
	"github.com/MadanRavuri/pg-backend/internal/models"
	"github.com/MadanRavuri/pg-backend/internal/repositories"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

// ErrInvalidMonth rejects billing period tokens that are not YYYY-MM.
var ErrInvalidMonth = errors.New("month is required in YYYY-MM format")

var monthTokenRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// CalculatePaymentStatus derives a payment status from the billed amount,
// the amount paid so far and the due date. Rules, first match wins:
// fully paid, partially paid, past due, pending.
func CalculatePaymentStatus(amount, paidAmount float64, dueDate, now time.Time) string {
	if paidAmount > 0 && paidAmount >= amount {
		return constants.PaymentStatusPaid
	}
	if paidAmount > 0 {
		return constants.PaymentStatusPartial
	}
	if now.After(dueDate) {
		return constants.PaymentStatusOverdue
	}
	return constants.PaymentStatusPending
}

// PaymentListFilter are the query-string filters of the listing endpoint.
// Status and Wing accept the sentinel "all" meaning unfiltered.
type PaymentListFilter struct {
	Status string
	Wing   string
	Month  string
	Search string
}

type PaymentService struct {
	payments repositories.PaymentRepository
	tenants  repositories.TenantRepository
	rooms    repositories.RoomRepository

	now func() time.Time
}

func NewPaymentService(
	payments repositories.PaymentRepository,
	tenants repositories.TenantRepository,
	rooms repositories.RoomRepository,
) *PaymentService {
	return &PaymentService{
		payments: payments,
		tenants:  tenants,
		rooms:    rooms,
		now:      time.Now,
	}
}

// ListPayments applies the filters conjunctively. A search term restricts
// to payments of tenants whose name or email matches; a term matching no
// tenant yields an empty result rather than an unfiltered one.
func (s *PaymentService) ListPayments(ctx context.Context, filter PaymentListFilter) ([]*models.PaymentWithDetails, error) {
	repoFilter := repositories.PaymentFilter{
		Status: dropAllSentinel(filter.Status),
		Wing:   dropAllSentinel(filter.Wing),
		Month:  filter.Month,
	}
	if filter.Search != "" {
		ids, err := s.tenants.SearchIDs(ctx, filter.Search)
		if err != nil {
			return nil, fmt.Errorf("search tenants: %w", err)
		}
		if len(ids) == 0 {
			return []*models.PaymentWithDetails{}, nil
		}
		repoFilter.TenantIDs = ids
	}
	return s.payments.List(ctx, repoFilter)
}

// CreatePayment validates the request, fills the derived fields and
// persists the payment. The status is always computed server-side.
func (s *PaymentService) CreatePayment(ctx context.Context, req dtos.CreatePaymentRequest) (*models.RentPayment, error) {
	year, month, err := parseMonthToken(req.Month)
	if err != nil {
		return nil, err
	}

	dueDate := time.Date(year, month, constants.RentDueDay, 0, 0, 0, 0, time.UTC)
	if req.DueDate != nil && !req.DueDate.IsZero() {
		dueDate = req.DueDate.Time
	}

	paidAmount := 0.0
	if req.PaidAmount != nil {
		paidAmount = *req.PaidAmount
	}
	lateFee := 0.0
	if req.LateFee != nil {
		lateFee = *req.LateFee
	}

	wing := req.Wing
	if wing == "" {
		wing, err = s.resolveWing(ctx, req.TenantID, req.RoomID)
		if err != nil {
			return nil, err
		}
	}

	payment := &models.RentPayment{
		TenantID:      req.TenantID,
		RoomID:        req.RoomID,
		Month:         req.Month,
		Year:          year,
		MonthName:     month.String(),
		Amount:        req.Amount,
		PaidAmount:    paidAmount,
		DueDate:       dueDate,
		Status:        CalculatePaymentStatus(req.Amount, paidAmount, dueDate, s.now()),
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		LateFee:       lateFee,
		Wing:          wing,
	}
	if req.PaidDate != nil && !req.PaidDate.IsZero() {
		t := req.PaidDate.Time
		payment.PaidDate = &t
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdatePayment merges the request into the stored payment and re-derives
// the status from the merged amount, paid amount and due date.
func (s *PaymentService) UpdatePayment(ctx context.Context, id uuid.UUID, req dtos.UpdatePaymentRequest) (*models.RentPayment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Month != nil {
		year, month, err := parseMonthToken(*req.Month)
		if err != nil {
			return nil, err
		}
		payment.Month = *req.Month
		payment.Year = year
		payment.MonthName = month.String()
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaidAmount != nil {
		payment.PaidAmount = *req.PaidAmount
	}
	if req.DueDate != nil && !req.DueDate.IsZero() {
		payment.DueDate = req.DueDate.Time
	}
	if req.PaidDate != nil && !req.PaidDate.IsZero() {
		t := req.PaidDate.Time
		payment.PaidDate = &t
	}
	if req.PaymentMethod != nil {
		payment.PaymentMethod = *req.PaymentMethod
	}
	if req.TransactionID != nil {
		payment.TransactionID = *req.TransactionID
	}
	if req.LateFee != nil {
		payment.LateFee = *req.LateFee
	}
	if req.Wing != nil {
		payment.Wing = *req.Wing
	}

	payment.Status = CalculatePaymentStatus(payment.Amount, payment.PaidAmount, payment.DueDate, s.now())

	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return s.payments.Delete(ctx, id)
}

// GenerateMonthlyPayments creates one rent payment per active tenant that
// has none for the month yet, and reports how many were created. Re-running
// for the same month is a no-op for tenants already billed.
func (s *PaymentService) GenerateMonthlyPayments(ctx context.Context, month string) (int, error) {
	year, m, err := parseMonthToken(month)
	if err != nil {
		return 0, err
	}
	dueDate := time.Date(year, m, constants.RentDueDay, 0, 0, 0, 0, time.UTC)

	tenants, err := s.tenants.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active tenants: %w", err)
	}

	created := 0
	for _, tenant := range tenants {
		exists, err := s.payments.ExistsForTenantMonth(ctx, tenant.ID, month)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		wing := tenant.Wing
		if wing == "" {
			if room, err := s.rooms.GetByID(ctx, tenant.RoomID); err == nil {
				wing = room.Wing
			}
		}
		if wing == "" {
			wing = constants.WingA
		}

		payment := &models.RentPayment{
			TenantID:   tenant.ID,
			RoomID:     tenant.RoomID,
			Month:      month,
			Year:       year,
			MonthName:  m.String(),
			Amount:     tenant.Rent,
			PaidAmount: 0,
			DueDate:    dueDate,
			Status:     CalculatePaymentStatus(tenant.Rent, 0, dueDate, s.now()),
			Wing:       wing,
		}
		if err := s.payments.Create(ctx, payment); err != nil {
			return created, fmt.Errorf("create payment for tenant %s: %w", tenant.ID, err)
		}
		created++
	}

	utils.Logger.Infof("Generated %d rent payments for %s", created, month)
	return created, nil
}

// GetPaymentStats aggregates payments for the month token, or across all
// months when the token is empty.
func (s *PaymentService) GetPaymentStats(ctx context.Context, month string) (*models.PaymentStats, error) {
	payments, err := s.payments.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	stats := aggregatePayments(payments)
	return &stats, nil
}

// aggregatePayments computes the stats report over a set of payments.
func aggregatePayments(payments []*models.RentPayment) models.PaymentStats {
	var stats models.PaymentStats
	for _, p := range payments {
		stats.Total++
		stats.TotalAmount += p.Amount
		stats.CollectedAmount += p.PaidAmount

		switch p.Status {
		case constants.PaymentStatusPaid:
			stats.Paid++
		case constants.PaymentStatusPending:
			stats.Pending++
			stats.PendingAmount += p.Amount - p.PaidAmount
		case constants.PaymentStatusPartial:
			stats.Partial++
			stats.PendingAmount += p.Amount - p.PaidAmount
		case constants.PaymentStatusOverdue:
			stats.Overdue++
			stats.OverdueAmount += p.Amount - p.PaidAmount
		}
	}
	if stats.TotalAmount > 0 {
		stats.CollectionRate = int(math.Round(stats.CollectedAmount / stats.TotalAmount * 100))
	}
	return stats
}

func (s *PaymentService) resolveWing(ctx context.Context, tenantID, roomID uuid.UUID) (string, error) {
	if tenant, err := s.tenants.GetByID(ctx, tenantID); err == nil && tenant.Wing != "" {
		return tenant.Wing, nil
	}
	if room, err := s.rooms.GetByID(ctx, roomID); err == nil && room.Wing != "" {
		return room.Wing, nil
	}
	return constants.WingA, nil
}

// parseMonthToken validates a YYYY-MM billing period token and returns its
// calendar parts.
func parseMonthToken(token string) (int, time.Month, error) {
	if !monthTokenRe.MatchString(token) {
		return 0, 0, ErrInvalidMonth
	}
	var year, month int
	if _, err := fmt.Sscanf(token, "%4d-%2d", &year, &month); err != nil {
		return 0, 0, ErrInvalidMonth
	}
	if month < 1 || month > 12 {
		return 0, 0, ErrInvalidMonth
	}
	return year, time.Month(month), nil
}

func dropAllSentinel(v string) string {
	if v == "all" {
		return ""
	}
	return v
}
