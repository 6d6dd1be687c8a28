package handler

import (
	"context"
	"net/http"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/dto"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/middleware"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	CheckConsistency(ctx context.Context, actor domain.Actor) (*usecase.ConsistencyReport, error)
}

// LedgerHandler handles ledger verification requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Consistency recomputes every resource balance from the ledger and reports
// any drift against the stored balance.
func (h *LedgerHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing authentication", "")
		return
	}

	report, err := h.ledgerUC.CheckConsistency(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to verify ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyFromReport(report))
}
