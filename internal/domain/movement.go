package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a ledger movement.
type MovementType string

const (
	// MovementEntry adds stock to a resource. Raw quantity must be positive.
	MovementEntry MovementType = "ENTRY"

	// MovementExit removes stock from a resource. Raw quantity must be
	// positive; the stored magnitude is applied as a negative delta.
	MovementExit MovementType = "EXIT"

	// MovementAdjustment corrects a balance in either direction. Unlike
	// entries and exits it accepts any nonzero signed quantity; the stored
	// quantity keeps its sign and is the delta. This asymmetry is
	// deliberate: adjustments are corrections.
	MovementAdjustment MovementType = "ADJUSTMENT"
)

var validMovementTypes = map[MovementType]bool{
	MovementEntry:      true,
	MovementExit:       true,
	MovementAdjustment: true,
}

// IsValid checks if the movement type is part of the enumeration.
func (t MovementType) IsValid() bool {
	return validMovementTypes[t]
}

// ParseMovementType parses a movement type case-insensitively.
func ParseMovementType(s string) (MovementType, error) {
	t := MovementType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMovementType, s)
	}
	return t, nil
}

// NormalizeQuantity applies the sign rules for the movement type to a raw
// caller-supplied quantity. It returns the quantity to store on the
// movement record and the signed delta to apply to the resource balance.
func (t MovementType) NormalizeQuantity(raw decimal.Decimal) (stored, delta decimal.Decimal, err error) {
	if raw.IsZero() {
		return decimal.Zero, decimal.Zero, ErrZeroQuantity
	}

	switch t {
	case MovementEntry:
		if raw.IsNegative() {
			return decimal.Zero, decimal.Zero, ErrNonPositiveQuantity
		}
		return raw.Abs(), raw.Abs(), nil

	case MovementExit:
		if raw.IsNegative() {
			return decimal.Zero, decimal.Zero, ErrNonPositiveQuantity
		}
		return raw.Abs(), raw.Abs().Neg(), nil

	case MovementAdjustment:
		return raw, raw, nil

	default:
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownMovementType, t)
	}
}

// Movement is an immutable, append-only record of a balance-affecting
// event. There is no update or delete operation for movements.
type Movement struct {
	ID              string
	ResourceID      string
	Type            MovementType
	Quantity        decimal.Decimal
	Notes           string
	ReferencePeriod string
	Metadata        map[string]any
	PerformedByID   string
	CreatedAt       time.Time
}

// Delta returns the signed effect of the movement on its resource balance.
func (m *Movement) Delta() decimal.Decimal {
	if m.Type == MovementExit {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
