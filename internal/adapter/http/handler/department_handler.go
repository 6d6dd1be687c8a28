package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/dto"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

// DepartmentService defines the behavior needed by DepartmentHandler.
type DepartmentService interface {
	List(ctx context.Context) ([]*domain.Department, error)
	Get(ctx context.Context, id string) (*domain.Department, error)
}

// DepartmentHandler handles department-related HTTP requests.
type DepartmentHandler struct {
	departmentUC DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(departmentUC DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentUC: departmentUC}
}

// List lists all departments.
func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentUC.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list departments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepartmentsFromDomain(departments))
}

// Get retrieves a department by ID.
func (h *DepartmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing department ID", "")
		return
	}

	department, err := h.departmentUC.Get(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get department", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepartmentFromDomain(department))
}
