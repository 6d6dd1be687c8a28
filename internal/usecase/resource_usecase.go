package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

// ResourceUseCase implements the resource directory: creation with slug
// uniqueness and the enriched listing.
type ResourceUseCase struct {
	resourceRepo ResourceRepository
	idGen        IDGenerator
}

// NewResourceUseCase creates a new ResourceUseCase.
func NewResourceUseCase(resourceRepo ResourceRepository, idGen IDGenerator) *ResourceUseCase {
	return &ResourceUseCase{
		resourceRepo: resourceRepo,
		idGen:        idGen,
	}
}

// CreateResourceInput represents input for creating a resource.
type CreateResourceInput struct {
	Name           string
	Slug           string
	Description    string
	DepartmentID   *string
	InitialBalance decimal.Decimal
	Status         string
}

// Create defines a new master resource record. Only admin and hr may
// create resources; the current balance starts at the initial balance.
func (uc *ResourceUseCase) Create(ctx context.Context, actor domain.Actor, input CreateResourceInput) (*domain.Resource, error) {
	if err := actor.Authorize(domain.OpCreateResource); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	if input.InitialBalance.IsNegative() {
		return nil, domain.ErrNegativeInitialBalance
	}

	source := input.Slug
	if strings.TrimSpace(source) == "" {
		source = name
	}

	slug, err := uc.resolveSlug(ctx, source)
	if err != nil {
		return nil, err
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = domain.ResourceStatusActive
	}

	now := time.Now().UTC()

	resource := &domain.Resource{
		ID:             uc.idGen.Generate(),
		Slug:           slug,
		Name:           name,
		Description:    strings.TrimSpace(input.Description),
		DepartmentID:   input.DepartmentID,
		InitialBalance: input.InitialBalance,
		CurrentBalance: input.InitialBalance,
		Status:         status,
		CreatedByID:    actor.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

// resolveSlug normalizes the candidate and probes sequential -N suffixes
// until a free slug is found. Probing is unbounded; extreme collision
// density degrades to a linear scan.
func (uc *ResourceUseCase) resolveSlug(ctx context.Context, source string) (string, error) {
	base, err := domain.Slugify(source)
	if err != nil {
		return "", err
	}

	candidate := base
	for n := 1; ; n++ {
		exists, err := uc.resourceRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

// List returns every resource newest-first, enriched with department,
// creator and movement count. Unpaginated: full-table scan semantics,
// acceptable only while the directory stays small.
func (uc *ResourceUseCase) List(ctx context.Context) ([]*domain.ResourceListing, error) {
	return uc.resourceRepo.List(ctx)
}

// Get retrieves a resource by ID, falling back to slug lookup so the
// client can link resources by either.
func (uc *ResourceUseCase) Get(ctx context.Context, idOrSlug string) (*domain.Resource, error) {
	if strings.TrimSpace(idOrSlug) == "" {
		return nil, domain.ErrMissingResourceID
	}

	resource, err := uc.resourceRepo.GetByID(ctx, idOrSlug)
	if err == nil {
		return resource, nil
	}
	if !errors.Is(err, domain.ErrResourceNotFound) {
		return nil, err
	}

	return uc.resourceRepo.GetBySlug(ctx, idOrSlug)
}
