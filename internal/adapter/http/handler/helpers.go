package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/dto"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes. Each error
// category keeps a distinct outcome: authorization 403, validation and
// invalid-state 400, missing records 404, everything else 500.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrOperationNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrResourceNotFound),
		errors.Is(err, domain.ErrDepartmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNegativeBalance):
		return http.StatusBadRequest
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserInactive),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
