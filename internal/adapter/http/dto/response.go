package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
)

// Balances and quantities serialize as JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ResourceResponse represents a resource in API responses.
type ResourceResponse struct {
	ID             string          `json:"id"`
	Slug           string          `json:"slug"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	DepartmentID   *string         `json:"department_id,omitempty"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Status         string          `json:"status"`
	CreatedByID    string          `json:"created_by_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ResourceFromDomain converts a domain resource to a response.
func ResourceFromDomain(r *domain.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:             r.ID,
		Slug:           r.Slug,
		Name:           r.Name,
		Description:    r.Description,
		DepartmentID:   r.DepartmentID,
		InitialBalance: r.InitialBalance,
		CurrentBalance: r.CurrentBalance,
		Status:         r.Status,
		CreatedByID:    r.CreatedByID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ResourceListingResponse is a resource enriched with its department,
// creator and movement count.
type ResourceListingResponse struct {
	ResourceResponse
	Department    *DepartmentResponse `json:"department,omitempty"`
	CreatedBy     *UserRefResponse    `json:"created_by,omitempty"`
	MovementCount int64               `json:"movement_count"`
}

// ResourceListingsFromDomain converts domain listings to responses.
func ResourceListingsFromDomain(listings []*domain.ResourceListing) []*ResourceListingResponse {
	result := make([]*ResourceListingResponse, len(listings))
	for i, l := range listings {
		resp := &ResourceListingResponse{
			ResourceResponse: *ResourceFromDomain(&l.Resource),
			MovementCount:    l.MovementCount,
		}
		if l.Department != nil {
			resp.Department = DepartmentFromDomain(l.Department)
		}
		if l.CreatedBy != nil {
			resp.CreatedBy = &UserRefResponse{
				ID:    l.CreatedBy.ID,
				Name:  l.CreatedBy.Name,
				Email: l.CreatedBy.Email,
			}
		}
		result[i] = resp
	}
	return result
}

// ListResourcesResponse represents a list of resources.
type ListResourcesResponse struct {
	Resources []*ResourceListingResponse `json:"resources"`
	Total     int64                      `json:"total"`
}

// UserRefResponse identifies the creator of a resource.
type UserRefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MovementResponse represents a movement in API responses. The movement
// type is lowercased at the boundary; the core stores it uppercase.
type MovementResponse struct {
	ID              string          `json:"id"`
	ResourceID      string          `json:"resource_id"`
	MovementType    string          `json:"movement_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Notes           string          `json:"notes,omitempty"`
	ReferencePeriod string          `json:"reference_period,omitempty"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
	PerformedByID   string          `json:"performed_by_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:              m.ID,
		ResourceID:      m.ResourceID,
		MovementType:    strings.ToLower(string(m.Type)),
		Quantity:        m.Quantity,
		Notes:           m.Notes,
		ReferencePeriod: m.ReferencePeriod,
		Metadata:        m.Metadata,
		PerformedByID:   m.PerformedByID,
		CreatedAt:       m.CreatedAt,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// ListMovementsResponse represents a list of movements.
type ListMovementsResponse struct {
	Movements []*MovementResponse `json:"movements"`
	Total     int64               `json:"total"`
}

// DepartmentResponse represents a department in API responses.
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DepartmentFromDomain converts a domain department to a response.
func DepartmentFromDomain(d *domain.Department) *DepartmentResponse {
	return &DepartmentResponse{ID: d.ID, Name: d.Name}
}

// DepartmentsFromDomain converts domain departments to responses.
func DepartmentsFromDomain(departments []*domain.Department) []*DepartmentResponse {
	result := make([]*DepartmentResponse, len(departments))
	for i, d := range departments {
		result[i] = DepartmentFromDomain(d)
	}
	return result
}

// BalanceDriftResponse reports one drifted resource.
type BalanceDriftResponse struct {
	ResourceID string          `json:"resource_id"`
	Slug       string          `json:"slug"`
	Stored     decimal.Decimal `json:"stored"`
	Computed   decimal.Decimal `json:"computed"`
}

// ConsistencyResponse is the result of a ledger verification run.
type ConsistencyResponse struct {
	Consistent bool                   `json:"consistent"`
	Drift      []BalanceDriftResponse `json:"drift,omitempty"`
}

// ConsistencyFromReport converts a use case report to a response.
func ConsistencyFromReport(report *usecase.ConsistencyReport) *ConsistencyResponse {
	resp := &ConsistencyResponse{Consistent: report.Consistent}
	for _, d := range report.Drift {
		resp.Drift = append(resp.Drift, BalanceDriftResponse{
			ResourceID: d.ResourceID,
			Slug:       d.Slug,
			Stored:     d.Stored,
			Computed:   d.Computed,
		})
	}
	return resp
}

// UserResponse represents the authenticated user.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
