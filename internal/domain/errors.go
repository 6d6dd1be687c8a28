package domain

import "errors"

// Validation errors: malformed or out-of-range input.
var (
	ErrEmptyName              = errors.New("name cannot be empty")
	ErrEmptySlug              = errors.New("slug normalizes to an empty string")
	ErrNegativeInitialBalance = errors.New("initial balance cannot be negative")
	ErrMissingResourceID      = errors.New("resource id is required")
	ErrZeroQuantity           = errors.New("quantity cannot be zero")
	ErrNonPositiveQuantity    = errors.New("entries and exits must be positive quantities")
	ErrUnknownMovementType    = errors.New("unknown movement type")
	ErrUnknownRole            = errors.New("unknown role")
)

// Authorization errors: actor's role lacks permission.
var (
	ErrOperationNotAllowed = errors.New("role is not allowed to perform this operation")
)

// Not-found errors: referenced record does not exist.
var (
	ErrResourceNotFound   = errors.New("resource not found")
	ErrDepartmentNotFound = errors.New("department not found")
)

// Invalid-state errors: the operation would violate a ledger invariant.
var (
	ErrNegativeBalance = errors.New("balance cannot be negative")
)

var validationErrors = []error{
	ErrEmptyName,
	ErrEmptySlug,
	ErrNegativeInitialBalance,
	ErrMissingResourceID,
	ErrZeroQuantity,
	ErrNonPositiveQuantity,
	ErrUnknownMovementType,
	ErrUnknownRole,
}

// IsValidation reports whether err belongs to the validation category.
func IsValidation(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
