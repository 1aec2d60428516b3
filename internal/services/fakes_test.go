package services

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/MadanRavuri/pg-backend/internal/models"
	"github.com/MadanRavuri/pg-backend/internal/repositories"
)

// In-memory repository fakes backing the service tests.

type fakePaymentRepo struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*models.RentPayment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*models.RentPayment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.RentPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	cp := *payment
	r.payments[payment.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.RentPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payment, ok := r.payments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *payment
	return &cp, nil
}

func (r *fakePaymentRepo) List(_ context.Context, filter repositories.PaymentFilter) ([]*models.PaymentWithDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.PaymentWithDetails
	for _, p := range r.payments {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Wing != "" && p.Wing != filter.Wing {
			continue
		}
		if filter.Month != "" && p.Month != filter.Month {
			continue
		}
		if filter.TenantIDs != nil && !containsID(filter.TenantIDs, p.TenantID) {
			continue
		}
		cp := *p
		out = append(out, &models.PaymentWithDetails{RentPayment: cp})
	}
	return out, nil
}

func (r *fakePaymentRepo) ListByMonth(_ context.Context, month string) ([]*models.RentPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.RentPayment
	for _, p := range r.payments {
		if month != "" && p.Month != month {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePaymentRepo) ExistsForTenantMonth(_ context.Context, tenantID uuid.UUID, month string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if p.TenantID == tenantID && p.Month == month {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, payment *models.RentPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[payment.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *payment
	r.payments[payment.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.payments, id)
	return nil
}

type fakeTenantRepo struct {
	mu      sync.RWMutex
	tenants map[uuid.UUID]*models.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: make(map[uuid.UUID]*models.Tenant)}
}

func (r *fakeTenantRepo) CreateAndOccupyRoom(_ context.Context, tenant *models.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}
	cp := *tenant
	r.tenants[tenant.ID] = &cp
	return nil
}

func (r *fakeTenantRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tenant, ok := r.tenants[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *tenant
	return &cp, nil
}

func (r *fakeTenantRepo) ListWithRooms(_ context.Context) ([]*models.TenantWithRoom, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.TenantWithRoom
	for _, t := range r.tenants {
		cp := *t
		out = append(out, &models.TenantWithRoom{Tenant: cp})
	}
	return out, nil
}

func (r *fakeTenantRepo) ListActive(_ context.Context) ([]*models.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Tenant
	for _, t := range r.tenants {
		if t.Status != "active" {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTenantRepo) SearchIDs(_ context.Context, query string) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	query = strings.ToLower(query)
	var ids []uuid.UUID
	for _, t := range r.tenants {
		if strings.Contains(strings.ToLower(t.Name), query) || strings.Contains(strings.ToLower(t.Email), query) {
			ids = append(ids, t.ID)
		}
	}
	return ids, nil
}

func (r *fakeTenantRepo) Update(_ context.Context, tenant *models.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tenants[tenant.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *tenant
	r.tenants[tenant.ID] = &cp
	return nil
}

func (r *fakeTenantRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tenants[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.tenants, id)
	return nil
}

func (r *fakeTenantRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tenants), nil
}

type fakeRoomRepo struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]*models.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*models.Room)}
}

func (r *fakeRoomRepo) Create(_ context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *room
	return &cp, nil
}

func (r *fakeRoomRepo) ListWithTenants(_ context.Context) ([]*models.RoomWithTenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.RoomWithTenant
	for _, room := range r.rooms {
		cp := *room
		out = append(out, &models.RoomWithTenant{Room: cp})
	}
	return out, nil
}

func (r *fakeRoomRepo) Update(_ context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[room.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.rooms, id)
	return nil
}

func (r *fakeRoomRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms), nil
}

type fakeSettingsRepo struct {
	mu       sync.RWMutex
	settings *models.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{}
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*models.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.settings == nil {
		return nil, repositories.ErrNotFound
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Create(_ context.Context, s *models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	r.settings = &cp
	return nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, s *models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return repositories.ErrNotFound
	}
	cp := *s
	r.settings = &cp
	return nil
}

type fakeUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

type fakeExpenseRepo struct {
	mu       sync.RWMutex
	expenses map[uuid.UUID]*models.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*models.Expense)}
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	cp := *expense
	r.expenses[expense.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) List(_ context.Context) ([]*models.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Expense
	for _, e := range r.expenses {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, expense *models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenses[expense.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *expense
	r.expenses[expense.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenses[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	expense, ok := r.expenses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *expense
	return &cp, nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
