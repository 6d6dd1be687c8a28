package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/dto"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/middleware"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase/mocks"
)

type resourceServiceStub struct {
	createFn func(ctx context.Context, actor domain.Actor, input usecase.CreateResourceInput) (*domain.Resource, error)
	listFn   func(ctx context.Context) ([]*domain.ResourceListing, error)
	getFn    func(ctx context.Context, idOrSlug string) (*domain.Resource, error)
}

func (s *resourceServiceStub) Create(ctx context.Context, actor domain.Actor, input usecase.CreateResourceInput) (*domain.Resource, error) {
	return s.createFn(ctx, actor, input)
}

func (s *resourceServiceStub) List(ctx context.Context) ([]*domain.ResourceListing, error) {
	return s.listFn(ctx)
}

func (s *resourceServiceStub) Get(ctx context.Context, idOrSlug string) (*domain.Resource, error) {
	return s.getFn(ctx, idOrSlug)
}

func authenticatedRequest(r *http.Request, role domain.Role) *http.Request {
	user := &domain.User{ID: "user-1", Email: "hr@example.com", Role: role}
	return r.WithContext(context.WithValue(r.Context(), middleware.UserContextKey, user))
}

func TestResourceHandler_Create_Success(t *testing.T) {
	resource := &domain.Resource{
		ID:             "res-1",
		Slug:           "laptops",
		Name:           "Laptops",
		InitialBalance: decimal.NewFromInt(100),
		CurrentBalance: decimal.NewFromInt(100),
		Status:         domain.ResourceStatusActive,
	}

	var capturedActor domain.Actor
	var capturedInput usecase.CreateResourceInput
	invalidator := &mocks.MockInvalidator{}
	handler := NewResourceHandler(&resourceServiceStub{
		createFn: func(ctx context.Context, actor domain.Actor, input usecase.CreateResourceInput) (*domain.Resource, error) {
			capturedActor = actor
			capturedInput = input
			return resource, nil
		},
		listFn: func(ctx context.Context) ([]*domain.ResourceListing, error) { return nil, nil },
		getFn:  func(ctx context.Context, idOrSlug string) (*domain.Resource, error) { return nil, nil },
	}, invalidator, nil, zerolog.Nop())

	body, _ := json.Marshal(dto.CreateResourceRequest{
		Name:           "Laptops",
		InitialBalance: decimal.NewFromInt(100),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources", bytes.NewReader(body))
	req = authenticatedRequest(req, domain.RoleHR)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if capturedActor.Role != domain.RoleHR {
		t.Fatalf("expected hr actor, got %+v", capturedActor)
	}
	if capturedInput.Name != "Laptops" {
		t.Fatalf("expected input to match request, got %+v", capturedInput)
	}

	if len(invalidator.Tags) != 1 || invalidator.Tags[0] != usecase.ResourceListTag {
		t.Fatalf("expected resource list invalidation, got %v", invalidator.Tags)
	}

	var resp dto.ResourceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Slug != "laptops" {
		t.Fatalf("expected slug laptops, got %s", resp.Slug)
	}
}

func TestResourceHandler_Create_MissingActor(t *testing.T) {
	handler := NewResourceHandler(&resourceServiceStub{
		createFn: func(ctx context.Context, actor domain.Actor, input usecase.CreateResourceInput) (*domain.Resource, error) {
			t.Fatal("Create should not be called without an actor")
			return nil, nil
		},
		listFn: func(ctx context.Context) ([]*domain.ResourceListing, error) { return nil, nil },
		getFn:  func(ctx context.Context, idOrSlug string) (*domain.Resource, error) { return nil, nil },
	}, nil, nil, zerolog.Nop())

	body, _ := json.Marshal(dto.CreateResourceRequest{Name: "Laptops"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestResourceHandler_Create_Forbidden(t *testing.T) {
	handler := NewResourceHandler(&resourceServiceStub{
		createFn: func(ctx context.Context, actor domain.Actor, input usecase.CreateResourceInput) (*domain.Resource, error) {
			return nil, domain.ErrOperationNotAllowed
		},
		listFn: func(ctx context.Context) ([]*domain.ResourceListing, error) { return nil, nil },
		getFn:  func(ctx context.Context, idOrSlug string) (*domain.Resource, error) { return nil, nil },
	}, nil, nil, zerolog.Nop())

	body, _ := json.Marshal(dto.CreateResourceRequest{Name: "Laptops"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources", bytes.NewReader(body))
	req = authenticatedRequest(req, domain.RoleEmployee)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestResourceHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewResourceHandler(&resourceServiceStub{
		createFn: func(ctx context.Context, actor domain.Actor, input usecase.CreateResourceInput) (*domain.Resource, error) {
			t.Fatal("Create should not be called for invalid payload")
			return nil, nil
		},
		listFn: func(ctx context.Context) ([]*domain.ResourceListing, error) { return nil, nil },
		getFn:  func(ctx context.Context, idOrSlug string) (*domain.Resource, error) { return nil, nil },
	}, nil, nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources", bytes.NewBufferString("{invalid json"))
	req = authenticatedRequest(req, domain.RoleAdmin)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestResourceHandler_List(t *testing.T) {
	dept := &domain.Department{ID: "dep-1", Name: "IT"}
	handler := NewResourceHandler(&resourceServiceStub{
		listFn: func(ctx context.Context) ([]*domain.ResourceListing, error) {
			return []*domain.ResourceListing{
				{
					Resource:      domain.Resource{ID: "res-1", Slug: "laptops"},
					Department:    dept,
					MovementCount: 3,
				},
				{
					Resource: domain.Resource{ID: "res-2", Slug: "monitors"},
				},
			}, nil
		},
		createFn: func(ctx context.Context, actor domain.Actor, input usecase.CreateResourceInput) (*domain.Resource, error) {
			return nil, nil
		},
		getFn: func(ctx context.Context, idOrSlug string) (*domain.Resource, error) { return nil, nil },
	}, nil, nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources", nil)
	req = authenticatedRequest(req, domain.RoleEmployee)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListResourcesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || len(resp.Resources) != 2 {
		t.Fatalf("expected 2 resources, got %+v", resp)
	}
	if resp.Resources[0].Department == nil || resp.Resources[0].Department.Name != "IT" {
		t.Fatalf("expected department on first listing, got %+v", resp.Resources[0])
	}
	if resp.Resources[0].MovementCount != 3 {
		t.Fatalf("expected movement count 3, got %d", resp.Resources[0].MovementCount)
	}
}

func TestResourceHandler_Get_NotFound(t *testing.T) {
	handler := NewResourceHandler(&resourceServiceStub{
		getFn: func(ctx context.Context, idOrSlug string) (*domain.Resource, error) {
			return nil, domain.ErrResourceNotFound
		},
		createFn: func(ctx context.Context, actor domain.Actor, input usecase.CreateResourceInput) (*domain.Resource, error) {
			return nil, nil
		},
		listFn: func(ctx context.Context) ([]*domain.ResourceListing, error) { return nil, nil },
	}, nil, nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/missing", nil)
	req = authenticatedRequest(req, domain.RoleEmployee)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestResourceHandler_Get_BySlug(t *testing.T) {
	handler := NewResourceHandler(&resourceServiceStub{
		getFn: func(ctx context.Context, idOrSlug string) (*domain.Resource, error) {
			if idOrSlug != "laptops" {
				t.Fatalf("expected lookup by laptops, got %s", idOrSlug)
			}
			return &domain.Resource{ID: "res-1", Slug: "laptops"}, nil
		},
		createFn: func(ctx context.Context, actor domain.Actor, input usecase.CreateResourceInput) (*domain.Resource, error) {
			return nil, nil
		},
		listFn: func(ctx context.Context) ([]*domain.ResourceListing, error) { return nil, nil },
	}, nil, nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/laptops", nil)
	req = authenticatedRequest(req, domain.RoleEmployee)
	req = setChiURLParam(req, "id", "laptops")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
