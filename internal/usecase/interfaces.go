package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

// ResourceRepository defines data access for master resource records.
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Resource, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Resource, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]*domain.ResourceListing, error)
}

// MovementRepository defines data access for the append-only movement
// ledger. Movements are only ever inserted, never updated or deleted.
type MovementRepository interface {
	Create(ctx context.Context, tx Transaction, movement *domain.Movement) error
	ListByResource(ctx context.Context, resourceID string) ([]*domain.Movement, error)
}

// LedgerRepository defines ledger-wide verification queries.
type LedgerRepository interface {
	// BalanceDrift returns resources whose stored balance differs from
	// initial balance plus the signed sum of their movements.
	BalanceDrift(ctx context.Context) ([]domain.BalanceDrift, error)
}

// DepartmentRepository defines read access to the department directory.
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on retryable storage conflicts
// (serialization failures, deadlocks). Domain errors are never retried.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Invalidator drops cached views by tag after a successful mutation.
type Invalidator interface {
	Invalidate(ctx context.Context, tags ...string) error
}
