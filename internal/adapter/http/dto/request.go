package dto

import (
	"github.com/shopspring/decimal"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
)

// CreateResourceRequest represents a request to create a resource.
type CreateResourceRequest struct {
	Name           string          `json:"name"`
	Slug           string          `json:"slug,omitempty"`
	Description    string          `json:"description,omitempty"`
	DepartmentID   *string         `json:"department_id,omitempty"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Status         string          `json:"status,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateResourceRequest) ToUseCaseInput() usecase.CreateResourceInput {
	return usecase.CreateResourceInput{
		Name:           r.Name,
		Slug:           r.Slug,
		Description:    r.Description,
		DepartmentID:   r.DepartmentID,
		InitialBalance: r.InitialBalance,
		Status:         r.Status,
	}
}

// RecordMovementRequest represents a request to record a movement. The
// movement type is accepted case-insensitively.
type RecordMovementRequest struct {
	MovementType    string          `json:"movement_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Notes           string          `json:"notes,omitempty"`
	ReferencePeriod string          `json:"reference_period,omitempty"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
