package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/dto"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/middleware"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/infrastructure/metrics"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
)

// ResourceService defines the behavior needed by ResourceHandler.
type ResourceService interface {
	Create(ctx context.Context, actor domain.Actor, input usecase.CreateResourceInput) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.ResourceListing, error)
	Get(ctx context.Context, idOrSlug string) (*domain.Resource, error)
}

// ResourceHandler handles resource-related HTTP requests.
type ResourceHandler struct {
	resourceUC  ResourceService
	invalidator usecase.Invalidator
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(resourceUC ResourceService, invalidator usecase.Invalidator, m *metrics.Metrics, logger zerolog.Logger) *ResourceHandler {
	return &ResourceHandler{
		resourceUC:  resourceUC,
		invalidator: invalidator,
		metrics:     m,
		logger:      logger,
	}
}

// Create creates a new master resource.
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing authentication", "")
		return
	}

	var req dto.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resource, err := h.resourceUC.Create(r.Context(), actor, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create resource", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.ResourcesCreated.Inc()
		bal, _ := resource.CurrentBalance.Float64()
		h.metrics.ResourceBalance.WithLabelValues(resource.Slug).Set(bal)
	}

	if h.invalidator != nil {
		if err := h.invalidator.Invalidate(r.Context(), usecase.ResourceListTag); err != nil {
			h.logger.Warn().Err(err).Msg("failed to invalidate resource list cache")
		}
	}

	writeJSON(w, http.StatusCreated, dto.ResourceFromDomain(resource))
}

// List lists all resources with department, creator and movement count.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	listings, err := h.resourceUC.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list resources", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListResourcesResponse{
		Resources: dto.ResourceListingsFromDomain(listings),
		Total:     int64(len(listings)),
	})
}

// Get retrieves a resource by ID or slug.
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	idOrSlug := chi.URLParam(r, "id")
	if idOrSlug == "" {
		writeError(w, http.StatusBadRequest, "missing resource ID", "")
		return
	}

	resource, err := h.resourceUC.Get(r.Context(), idOrSlug)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get resource", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ResourceFromDomain(resource))
}
