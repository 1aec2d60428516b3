package services

import (
	"context"
	"fmt"
	"time"

	"github.com/MadanRavuri/pg-backend/internal/constants"
	"github.com/MadanRavuri/pg-backend/internal/models"
	"github.com/MadanRavuri/pg-backend/internal/repositories"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

// SeedService populates a fresh database with a working sample data set:
// an admin account, rooms across both wings, tenants, the current month's
// rent payments and a handful of expenses.
type SeedService struct {
	users    repositories.UserRepository
	rooms    repositories.RoomRepository
	tenants  repositories.TenantRepository
	payments repositories.PaymentRepository
	expenses repositories.ExpenseRepository
}

func NewSeedService(
	users repositories.UserRepository,
	rooms repositories.RoomRepository,
	tenants repositories.TenantRepository,
	payments repositories.PaymentRepository,
	expenses repositories.ExpenseRepository,
) *SeedService {
	return &SeedService{
		users:    users,
		rooms:    rooms,
		tenants:  tenants,
		payments: payments,
		expenses: expenses,
	}
}

// InitDatabase seeds sample data once. It reports created=false without
// touching anything when users, rooms or tenants already exist.
func (s *SeedService) InitDatabase(ctx context.Context) (bool, error) {
	for name, count := range map[string]func(context.Context) (int, error){
		"users":   s.users.Count,
		"rooms":   s.rooms.Count,
		"tenants": s.tenants.Count,
	} {
		n, err := count(ctx)
		if err != nil {
			return false, fmt.Errorf("count %s: %w", name, err)
		}
		if n > 0 {
			return false, nil
		}
	}

	if err := s.seedAdmin(ctx); err != nil {
		return false, err
	}
	rooms, err := s.seedRooms(ctx)
	if err != nil {
		return false, err
	}
	tenants, err := s.seedTenants(ctx, rooms)
	if err != nil {
		return false, err
	}
	if err := s.seedPayments(ctx, rooms, tenants); err != nil {
		return false, err
	}
	if err := s.seedExpenses(ctx); err != nil {
		return false, err
	}

	utils.Logger.Info("Database initialized with sample data")
	return true, nil
}

func (s *SeedService) seedAdmin(ctx context.Context) error {
	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &models.User{
		Name:         "Admin User",
		Email:        "admin@sunflowerpg.com",
		PasswordHash: hash,
		Role:         constants.RoleAdmin,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}

func (s *SeedService) seedRooms(ctx context.Context) ([]*models.Room, error) {
	rooms := []*models.Room{
		{RoomNumber: "101", Floor: 1, Wing: "A", Type: "single", Rent: 8000,
			Amenities: []string{"AC", "Wi-Fi", "Food"}, Description: "Single occupancy room with attached bathroom"},
		{RoomNumber: "102", Floor: 1, Wing: "A", Type: "double", Rent: 12000,
			Amenities: []string{"AC", "Wi-Fi", "Food"}, Description: "Double occupancy room with attached bathroom"},
		{RoomNumber: "201", Floor: 2, Wing: "A", Type: "single", Rent: 8500,
			Amenities: []string{"AC", "Wi-Fi", "Food"}, Description: "Single occupancy room with attached bathroom"},
		{RoomNumber: "202", Floor: 2, Wing: "A", Type: "triple", Rent: 15000,
			Amenities: []string{"AC", "Wi-Fi", "Food"}, Description: "Triple occupancy room with attached bathroom"},
		{RoomNumber: "101", Floor: 1, Wing: "B", Type: "single", Rent: 7500,
			Amenities: []string{"AC", "Wi-Fi"}, Description: "Single occupancy room with attached bathroom"},
		{RoomNumber: "102", Floor: 1, Wing: "B", Type: "double", Rent: 11000,
			Amenities: []string{"AC", "Wi-Fi"}, Description: "Double occupancy room with attached bathroom"},
	}
	for _, room := range rooms {
		room.Status = constants.RoomStatusAvailable
		if err := s.rooms.Create(ctx, room); err != nil {
			return nil, fmt.Errorf("seed room %s/%s: %w", room.Wing, room.RoomNumber, err)
		}
	}
	return rooms, nil
}

func (s *SeedService) seedTenants(ctx context.Context, rooms []*models.Room) ([]*models.Tenant, error) {
	tenants := []*models.Tenant{
		{Name: "John Doe", Email: "john.doe@email.com", Phone: "+91 9876543210",
			RoomID: rooms[0].ID, Rent: 8000, Deposit: 16000,
			JoinDate:         time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			EmergencyContact: models.EmergencyContact{Name: "Jane Doe", Phone: "+91 9876543211", Relation: "Father"},
			Wing:             "A", Floor: 1},
		{Name: "Sarah Wilson", Email: "sarah.wilson@email.com", Phone: "+91 9876543212",
			RoomID: rooms[1].ID, Rent: 12000, Deposit: 24000,
			JoinDate:         time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			EmergencyContact: models.EmergencyContact{Name: "Mike Wilson", Phone: "+91 9876543213", Relation: "Brother"},
			Wing:             "A", Floor: 1},
		{Name: "Alice Smith", Email: "alice.smith@email.com", Phone: "+91 9876543214",
			RoomID: rooms[3].ID, Rent: 15000, Deposit: 30000,
			JoinDate:         time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			EmergencyContact: models.EmergencyContact{Name: "Bob Smith", Phone: "+91 9876543215", Relation: "Father"},
			Wing:             "A", Floor: 2},
		{Name: "David Brown", Email: "david.brown@email.com", Phone: "+91 9876543216",
			RoomID: rooms[5].ID, Rent: 11000, Deposit: 22000,
			JoinDate:         time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			EmergencyContact: models.EmergencyContact{Name: "Emma Brown", Phone: "+91 9876543217", Relation: "Mother"},
			Wing:             "B", Floor: 1},
	}
	for _, tenant := range tenants {
		tenant.Status = constants.TenantStatusActive
		tenant.IDProof.Type = "aadhar"
		if err := s.tenants.CreateAndOccupyRoom(ctx, tenant); err != nil {
			return nil, fmt.Errorf("seed tenant %s: %w", tenant.Name, err)
		}
	}
	return tenants, nil
}

func (s *SeedService) seedPayments(ctx context.Context, rooms []*models.Room, tenants []*models.Tenant) error {
	now := time.Now()
	month := now.Format("2006-01")
	year := now.Year()
	monthName := now.Month().String()
	dueDate := time.Date(year, now.Month(), constants.RentDueDay, 0, 0, 0, 0, time.UTC)
	paidDate := dueDate.AddDate(0, 0, -2)

	payments := []*models.RentPayment{
		{TenantID: tenants[0].ID, RoomID: rooms[0].ID, Amount: 8000, PaidAmount: 8000,
			PaidDate: &paidDate, Status: constants.PaymentStatusPaid,
			PaymentMethod: constants.PaymentMethodUPI, TransactionID: "UPI123456789", Wing: "A"},
		{TenantID: tenants[1].ID, RoomID: rooms[1].ID, Amount: 12000,
			Status: constants.PaymentStatusPending, Wing: "A"},
		{TenantID: tenants[2].ID, RoomID: rooms[3].ID, Amount: 15000,
			Status: constants.PaymentStatusOverdue, LateFee: 750, Wing: "A"},
		{TenantID: tenants[3].ID, RoomID: rooms[5].ID, Amount: 11000,
			Status: constants.PaymentStatusPending, Wing: "B"},
	}
	for _, payment := range payments {
		payment.Month = month
		payment.Year = year
		payment.MonthName = monthName
		payment.DueDate = dueDate
		if err := s.payments.Create(ctx, payment); err != nil {
			return fmt.Errorf("seed payment for tenant %s: %w", payment.TenantID, err)
		}
	}
	return nil
}

func (s *SeedService) seedExpenses(ctx context.Context) error {
	now := time.Now()
	expenses := []*models.Expense{
		{Category: "provisions", Subcategory: "groceries", Description: "Monthly grocery supplies",
			Amount: 25000, PaymentMethod: constants.PaymentMethodCash, Vendor: "Local Grocery Store",
			Wing: constants.WingCommon},
		{Category: "maintenance", Subcategory: "plumbing", Description: "Water pump repair",
			Amount: 5000, PaymentMethod: constants.PaymentMethodBankTransfer, Vendor: "ABC Plumbing Services",
			Wing: "A"},
		{Category: "utilities", Subcategory: "electricity", Description: "Monthly electricity bill",
			Amount: 15000, PaymentMethod: constants.PaymentMethodUPI, Vendor: "State Electricity Board",
			Wing: constants.WingCommon},
		{Category: "cleaning", Subcategory: "supplies", Description: "Cleaning supplies and equipment",
			Amount: 3000, PaymentMethod: constants.PaymentMethodCash, Vendor: "CleanPro Supplies",
			Wing: constants.WingCommon},
	}
	for _, expense := range expenses {
		expense.Date = now
		expense.Status = constants.ExpenseStatusPaid
		if err := s.expenses.Create(ctx, expense); err != nil {
			return fmt.Errorf("seed expense %s/%s: %w", expense.Category, expense.Subcategory, err)
		}
	}
	return nil
}
