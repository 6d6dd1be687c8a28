package usecase

import (
	"context"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

// LedgerUseCase handles ledger-wide verification.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo}
}

// ConsistencyReport is the result of a ledger verification run.
type ConsistencyReport struct {
	Consistent bool
	Drift      []domain.BalanceDrift
}

// CheckConsistency verifies that every resource's stored balance equals its
// initial balance plus the signed sum of its committed movements.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context, actor domain.Actor) (*ConsistencyReport, error) {
	if err := actor.Authorize(domain.OpVerifyLedger); err != nil {
		return nil, err
	}

	drift, err := uc.ledgerRepo.BalanceDrift(ctx)
	if err != nil {
		return nil, err
	}

	return &ConsistencyReport{
		Consistent: len(drift) == 0,
		Drift:      drift,
	}, nil
}
