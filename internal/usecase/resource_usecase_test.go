package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase/mocks"
)

var (
	hrActor       = domain.Actor{ID: "u-hr", Role: domain.RoleHR}
	adminActor    = domain.Actor{ID: "u-admin", Role: domain.RoleAdmin}
	employeeActor = domain.Actor{ID: "u-emp", Role: domain.RoleEmployee}
	managerActor  = domain.Actor{ID: "u-mgr", Role: domain.RoleManager}
)

func newResourceUseCase() (*usecase.ResourceUseCase, *mocks.MockResourceRepository) {
	repo := mocks.NewMockResourceRepository()
	return usecase.NewResourceUseCase(repo, mocks.NewMockIDGenerator()), repo
}

func TestResourceUseCase_Create(t *testing.T) {
	tests := []struct {
		name        string
		actor       domain.Actor
		input       usecase.CreateResourceInput
		expectedErr error
		wantSlug    string
	}{
		{
			name:     "hr creates a resource",
			actor:    hrActor,
			input:    usecase.CreateResourceInput{Name: "Laptops", InitialBalance: decimal.NewFromInt(10)},
			wantSlug: "laptops",
		},
		{
			name:     "accents fold into the slug",
			actor:    adminActor,
			input:    usecase.CreateResourceInput{Name: "Papelería", InitialBalance: decimal.Zero},
			wantSlug: "papeleria",
		},
		{
			name:     "explicit slug wins over name",
			actor:    hrActor,
			input:    usecase.CreateResourceInput{Name: "Laptops", Slug: "Hardware Pool", InitialBalance: decimal.Zero},
			wantSlug: "hardware-pool",
		},
		{
			name:        "employee may not create resources",
			actor:       employeeActor,
			input:       usecase.CreateResourceInput{Name: "Laptops", InitialBalance: decimal.NewFromInt(1)},
			expectedErr: domain.ErrOperationNotAllowed,
		},
		{
			name:        "finance may not create resources",
			actor:       domain.Actor{ID: "u-fin", Role: domain.RoleFinance},
			input:       usecase.CreateResourceInput{Name: "Laptops", InitialBalance: decimal.NewFromInt(1)},
			expectedErr: domain.ErrOperationNotAllowed,
		},
		{
			name:        "empty name rejected",
			actor:       hrActor,
			input:       usecase.CreateResourceInput{Name: "   ", InitialBalance: decimal.NewFromInt(1)},
			expectedErr: domain.ErrEmptyName,
		},
		{
			name:        "negative initial balance rejected",
			actor:       hrActor,
			input:       usecase.CreateResourceInput{Name: "Laptops", InitialBalance: decimal.NewFromInt(-1)},
			expectedErr: domain.ErrNegativeInitialBalance,
		},
		{
			name:        "name with no sluggable characters rejected",
			actor:       hrActor,
			input:       usecase.CreateResourceInput{Name: "!!!", InitialBalance: decimal.Zero},
			expectedErr: domain.ErrEmptySlug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newResourceUseCase()

			resource, err := uc.Create(context.Background(), tt.actor, tt.input)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("error = %v, want %v", err, tt.expectedErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if resource.Slug != tt.wantSlug {
				t.Errorf("slug = %q, want %q", resource.Slug, tt.wantSlug)
			}
			if !resource.CurrentBalance.Equal(tt.input.InitialBalance) {
				t.Errorf("current balance = %s, want %s", resource.CurrentBalance, tt.input.InitialBalance)
			}
			if resource.Status != domain.ResourceStatusActive {
				t.Errorf("status = %q, want %q", resource.Status, domain.ResourceStatusActive)
			}
			if resource.CreatedByID != tt.actor.ID {
				t.Errorf("created by = %q, want %q", resource.CreatedByID, tt.actor.ID)
			}
		})
	}
}

func TestResourceUseCase_Create_SlugCollision(t *testing.T) {
	uc, _ := newResourceUseCase()
	ctx := context.Background()

	first, err := uc.Create(ctx, hrActor, usecase.CreateResourceInput{Name: "Laptops", InitialBalance: decimal.Zero})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := uc.Create(ctx, hrActor, usecase.CreateResourceInput{Name: "Laptops", InitialBalance: decimal.Zero})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	third, err := uc.Create(ctx, hrActor, usecase.CreateResourceInput{Name: "Laptops", InitialBalance: decimal.Zero})
	if err != nil {
		t.Fatalf("third create: %v", err)
	}

	if first.Slug != "laptops" || second.Slug != "laptops-1" || third.Slug != "laptops-2" {
		t.Errorf("slugs = %q, %q, %q; want laptops, laptops-1, laptops-2",
			first.Slug, second.Slug, third.Slug)
	}
}

func TestResourceUseCase_Create_RepoError(t *testing.T) {
	uc, repo := newResourceUseCase()
	repo.SlugExistsFunc = func(ctx context.Context, slug string) (bool, error) {
		return false, errors.New("db down")
	}

	_, err := uc.Create(context.Background(), hrActor, usecase.CreateResourceInput{
		Name:           "Laptops",
		InitialBalance: decimal.Zero,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestResourceUseCase_Get(t *testing.T) {
	uc, _ := newResourceUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, hrActor, usecase.CreateResourceInput{Name: "Combustible", InitialBalance: decimal.NewFromInt(100)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	byID, err := uc.Get(ctx, created.ID)
	if err != nil || byID.ID != created.ID {
		t.Fatalf("get by id: %v (%+v)", err, byID)
	}

	bySlug, err := uc.Get(ctx, "combustible")
	if err != nil || bySlug.ID != created.ID {
		t.Fatalf("get by slug: %v (%+v)", err, bySlug)
	}

	if _, err := uc.Get(ctx, "missing"); !errors.Is(err, domain.ErrResourceNotFound) {
		t.Errorf("get missing: error = %v, want ErrResourceNotFound", err)
	}

	if _, err := uc.Get(ctx, " "); !errors.Is(err, domain.ErrMissingResourceID) {
		t.Errorf("get blank: error = %v, want ErrMissingResourceID", err)
	}
}

func TestResourceUseCase_List(t *testing.T) {
	uc, _ := newResourceUseCase()
	ctx := context.Background()

	for _, name := range []string{"Laptops", "Monitors"} {
		if _, err := uc.Create(ctx, hrActor, usecase.CreateResourceInput{Name: name, InitialBalance: decimal.Zero}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	listings, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
}
