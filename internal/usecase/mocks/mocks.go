package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
)

// MockResourceRepository is a mock implementation of ResourceRepository.
// Zero-value behavior is an in-memory store; any Func field overrides the
// corresponding method.
type MockResourceRepository struct {
	mu        sync.RWMutex
	resources map[string]*domain.Resource

	CreateFunc           func(ctx context.Context, resource *domain.Resource) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Resource, error)
	GetBySlugFunc        func(ctx context.Context, slug string) (*domain.Resource, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Resource, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	SlugExistsFunc       func(ctx context.Context, slug string) (bool, error)
	ListFunc             func(ctx context.Context) ([]*domain.ResourceListing, error)
}

func NewMockResourceRepository() *MockResourceRepository {
	return &MockResourceRepository{
		resources: make(map[string]*domain.Resource),
	}
}

func (m *MockResourceRepository) Create(ctx context.Context, resource *domain.Resource) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, resource)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resources[resource.ID] = resource
	return nil
}

func (m *MockResourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.resources[id]; ok {
		return r, nil
	}
	return nil, domain.ErrResourceNotFound
}

func (m *MockResourceRepository) GetBySlug(ctx context.Context, slug string) (*domain.Resource, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.resources {
		if r.Slug == slug {
			return r, nil
		}
	}
	return nil, domain.ErrResourceNotFound
}

func (m *MockResourceRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Resource, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockResourceRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.resources[id]; ok {
		r.CurrentBalance = balance
		r.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockResourceRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.resources {
		if r.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockResourceRepository) List(ctx context.Context) ([]*domain.ResourceListing, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	listings := make([]*domain.ResourceListing, 0, len(m.resources))
	for _, r := range m.resources {
		listings = append(listings, &domain.ResourceListing{Resource: *r})
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return listings, nil
}

// MockMovementRepository is a mock implementation of MovementRepository.
type MockMovementRepository struct {
	mu        sync.RWMutex
	movements []*domain.Movement

	CreateFunc         func(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error
	ListByResourceFunc func(ctx context.Context, resourceID string) ([]*domain.Movement, error)
}

func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{}
}

func (m *MockMovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.movements = append(m.movements, movement)
	return nil
}

func (m *MockMovementRepository) ListByResource(ctx context.Context, resourceID string) ([]*domain.Movement, error) {
	if m.ListByResourceFunc != nil {
		return m.ListByResourceFunc(ctx, resourceID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Movement
	for i := len(m.movements) - 1; i >= 0; i-- {
		if m.movements[i].ResourceID == resourceID {
			out = append(out, m.movements[i])
		}
	}
	return out, nil
}

// All returns every stored movement in insertion order.
func (m *MockMovementRepository) All() []*domain.Movement {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.Movement(nil), m.movements...)
}

// MockTransaction is a no-op transaction recording commit/rollback calls.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu           sync.Mutex
	Transactions []*MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator. Without an
// override it yields id-1, id-2, ...
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "id-" + itoa(m.next)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// PassthroughRetrier runs the operation exactly once.
type PassthroughRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewPassthroughRetrier() *PassthroughRetrier {
	return &PassthroughRetrier{}
}

func (r *PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	if r.RetryFunc != nil {
		return r.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

// Add stores a user for lookup by ID and email.
func (m *MockUserRepository) Add(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// MockInvalidator records invalidated cache tags.
type MockInvalidator struct {
	mu   sync.Mutex
	Tags []string

	InvalidateFunc func(ctx context.Context, tags ...string) error
}

func NewMockInvalidator() *MockInvalidator {
	return &MockInvalidator{}
}

func (m *MockInvalidator) Invalidate(ctx context.Context, tags ...string) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, tags...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tags = append(m.Tags, tags...)
	return nil
}
