package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

// MovementUseCase implements the movement ledger. Recording locks the
// resource row, checks the non-negative balance invariant, and commits the
// balance update and the movement insert as one transaction.
type MovementUseCase struct {
	txManager    TransactionManager
	resourceRepo ResourceRepository
	movementRepo MovementRepository
	idGen        IDGenerator
	retrier      Retrier
}

// NewMovementUseCase creates a new MovementUseCase.
func NewMovementUseCase(
	txManager TransactionManager,
	resourceRepo ResourceRepository,
	movementRepo MovementRepository,
	idGen IDGenerator,
	retrier Retrier,
) *MovementUseCase {
	return &MovementUseCase{
		txManager:    txManager,
		resourceRepo: resourceRepo,
		movementRepo: movementRepo,
		idGen:        idGen,
		retrier:      retrier,
	}
}

// RecordMovementInput represents input for recording a movement.
type RecordMovementInput struct {
	ResourceID      string
	Type            domain.MovementType
	Quantity        decimal.Decimal
	Notes           string
	ReferencePeriod string
	Metadata        map[string]any
}

// Record appends a movement against a resource and updates its balance
// atomically. Any workforce role except candidate may record; serialization
// conflicts are retried, domain failures are not.
func (uc *MovementUseCase) Record(ctx context.Context, actor domain.Actor, input RecordMovementInput) (*domain.Movement, error) {
	if err := actor.Authorize(domain.OpRecordMovement); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.ResourceID) == "" {
		return nil, domain.ErrMissingResourceID
	}

	stored, delta, err := input.Type.NormalizeQuantity(input.Quantity)
	if err != nil {
		return nil, err
	}

	var movement *domain.Movement
	err = uc.retrier.Retry(ctx, func() error {
		var opErr error
		movement, opErr = uc.recordOnce(ctx, actor, input, stored, delta)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	return movement, nil
}

func (uc *MovementUseCase) recordOnce(
	ctx context.Context,
	actor domain.Actor,
	input RecordMovementInput,
	stored, delta decimal.Decimal,
) (*domain.Movement, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	resource, err := uc.resourceRepo.GetByIDForUpdate(ctx, tx, input.ResourceID)
	if err != nil {
		return nil, err
	}

	if err := resource.ValidateDelta(delta); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	movement := &domain.Movement{
		ID:              uc.idGen.Generate(),
		ResourceID:      resource.ID,
		Type:            input.Type,
		Quantity:        stored,
		Notes:           input.Notes,
		ReferencePeriod: input.ReferencePeriod,
		Metadata:        input.Metadata,
		PerformedByID:   actor.ID,
		CreatedAt:       now,
	}

	if err := uc.movementRepo.Create(ctx, tx, movement); err != nil {
		return nil, err
	}

	newBalance := resource.ApplyDelta(delta)
	if err := uc.resourceRepo.UpdateBalance(ctx, tx, resource.ID, newBalance, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return movement, nil
}

// ListByResource returns all movements for a resource, newest-first.
// Unfiltered: no date range or pagination.
func (uc *MovementUseCase) ListByResource(ctx context.Context, resourceID string) ([]*domain.Movement, error) {
	if strings.TrimSpace(resourceID) == "" {
		return nil, domain.ErrMissingResourceID
	}

	return uc.movementRepo.ListByResource(ctx, resourceID)
}
