package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/dto"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/middleware"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/infrastructure/metrics"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
)

// MovementService defines the behavior needed by MovementHandler.
type MovementService interface {
	Record(ctx context.Context, actor domain.Actor, input usecase.RecordMovementInput) (*domain.Movement, error)
	ListByResource(ctx context.Context, resourceID string) ([]*domain.Movement, error)
}

// MovementExporter writes a movement history as a spreadsheet.
type MovementExporter interface {
	Write(w io.Writer, resource *domain.Resource, movements []*domain.Movement) error
}

// MovementHandler handles movement-related HTTP requests.
type MovementHandler struct {
	movementUC  MovementService
	resourceUC  ResourceService
	exporter    MovementExporter
	invalidator usecase.Invalidator
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(
	movementUC MovementService,
	resourceUC ResourceService,
	exporter MovementExporter,
	invalidator usecase.Invalidator,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *MovementHandler {
	return &MovementHandler{
		movementUC:  movementUC,
		resourceUC:  resourceUC,
		exporter:    exporter,
		invalidator: invalidator,
		metrics:     m,
		logger:      logger,
	}
}

// Record appends a movement against a resource.
func (h *MovementHandler) Record(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing authentication", "")
		return
	}

	resourceID := chi.URLParam(r, "id")
	if resourceID == "" {
		writeError(w, http.StatusBadRequest, "missing resource ID", "")
		return
	}

	var req dto.RecordMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	movementType, err := domain.ParseMovementType(req.MovementType)
	if err != nil {
		h.countRejection(err)
		writeError(w, http.StatusBadRequest, "invalid movement type", err.Error())
		return
	}

	movement, err := h.movementUC.Record(r.Context(), actor, usecase.RecordMovementInput{
		ResourceID:      resourceID,
		Type:            movementType,
		Quantity:        req.Quantity,
		Notes:           req.Notes,
		ReferencePeriod: req.ReferencePeriod,
		Metadata:        req.Metadata,
	})
	if err != nil {
		h.countRejection(err)
		writeError(w, mapDomainError(err), "failed to record movement", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.MovementsRecorded.WithLabelValues(string(movement.Type)).Inc()
	}

	if h.invalidator != nil {
		err := h.invalidator.Invalidate(r.Context(), usecase.ResourceTag(resourceID), usecase.ResourceListTag)
		if err != nil {
			h.logger.Warn().Err(err).Str("resource_id", resourceID).Msg("failed to invalidate resource cache")
		}
	}

	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// ListByResource lists movements for a resource, newest-first.
func (h *MovementHandler) ListByResource(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, "id")
	if resourceID == "" {
		writeError(w, http.StatusBadRequest, "missing resource ID", "")
		return
	}

	movements, err := h.movementUC.ListByResource(r.Context(), resourceID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListMovementsResponse{
		Movements: dto.MovementsFromDomain(movements),
		Total:     int64(len(movements)),
	})
}

// Export downloads the movement history of a resource as an XLSX workbook.
func (h *MovementHandler) Export(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, "id")
	if resourceID == "" {
		writeError(w, http.StatusBadRequest, "missing resource ID", "")
		return
	}

	resource, err := h.resourceUC.Get(r.Context(), resourceID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get resource", err.Error())
		return
	}

	movements, err := h.movementUC.ListByResource(r.Context(), resource.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list movements", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resource.Slug+"-movements.xlsx"))

	if err := h.exporter.Write(w, resource, movements); err != nil {
		h.logger.Error().Err(err).Str("resource_id", resource.ID).Msg("failed to write movement export")
	}
}

func (h *MovementHandler) countRejection(err error) {
	if h.metrics == nil {
		return
	}
	h.metrics.MovementsRejected.WithLabelValues(rejectionReason(err)).Inc()
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNegativeBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrResourceNotFound):
		return "resource_not_found"
	case errors.Is(err, domain.ErrOperationNotAllowed):
		return "forbidden"
	case domain.IsValidation(err):
		return "validation"
	default:
		return "other"
	}
}
