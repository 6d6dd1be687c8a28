package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResourceStatusActive is the default lifecycle label for new resources.
const ResourceStatusActive = "active"

// Resource is a master record tracking a running balance. It is created by
// the directory and its CurrentBalance is mutated only by the movement
// ledger.
type Resource struct {
	ID             string
	Slug           string
	Name           string
	Description    string
	DepartmentID   *string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	Status         string
	CreatedByID    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidateDelta checks whether applying delta would leave the balance
// negative.
func (r *Resource) ValidateDelta(delta decimal.Decimal) error {
	if r.CurrentBalance.Add(delta).IsNegative() {
		return ErrNegativeBalance
	}
	return nil
}

// ApplyDelta returns the balance after applying delta.
func (r *Resource) ApplyDelta(delta decimal.Decimal) decimal.Decimal {
	return r.CurrentBalance.Add(delta)
}

// ResourceListing is a resource enriched with its department, creator and
// movement count, as returned by the directory listing.
type ResourceListing struct {
	Resource
	Department    *Department
	CreatedBy     *UserRef
	MovementCount int64
}

// UserRef is the subset of a user carried on listings.
type UserRef struct {
	ID    string
	Name  string
	Email string
}

// BalanceDrift reports a resource whose stored balance disagrees with the
// sum of its movements.
type BalanceDrift struct {
	ResourceID string
	Slug       string
	Stored     decimal.Decimal
	Computed   decimal.Decimal
}
