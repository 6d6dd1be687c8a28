package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
)

func TestResourceResponse_BalancesAsNumbers(t *testing.T) {
	resp := ResourceFromDomain(&domain.Resource{
		ID:             "res-1",
		Slug:           "laptops",
		Name:           "Laptops",
		InitialBalance: decimal.RequireFromString("100.5"),
		CurrentBalance: decimal.RequireFromString("95.25"),
	})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	body := string(data)
	if !strings.Contains(body, `"initial_balance":100.5`) {
		t.Fatalf("expected unquoted initial balance, got %s", body)
	}
	if !strings.Contains(body, `"current_balance":95.25`) {
		t.Fatalf("expected unquoted current balance, got %s", body)
	}
}

func TestMovementFromDomain_LowercasesType(t *testing.T) {
	resp := MovementFromDomain(&domain.Movement{
		ID:       "mov-1",
		Type:     domain.MovementAdjustment,
		Quantity: decimal.NewFromInt(-3),
	})

	if resp.MovementType != "adjustment" {
		t.Fatalf("expected lowercase type, got %s", resp.MovementType)
	}
}

func TestConsistencyFromReport(t *testing.T) {
	report := &usecase.ConsistencyReport{
		Consistent: false,
		Drift: []domain.BalanceDrift{
			{
				ResourceID: "res-1",
				Slug:       "laptops",
				Stored:     decimal.NewFromInt(10),
				Computed:   decimal.NewFromInt(12),
			},
		},
	}

	resp := ConsistencyFromReport(report)

	if resp.Consistent {
		t.Fatal("expected inconsistent report")
	}
	if len(resp.Drift) != 1 || resp.Drift[0].Slug != "laptops" {
		t.Fatalf("expected drift entry to carry over, got %+v", resp.Drift)
	}

	clean := ConsistencyFromReport(&usecase.ConsistencyReport{Consistent: true})
	data, err := json.Marshal(clean)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(data), "drift") {
		t.Fatalf("expected drift omitted when empty, got %s", data)
	}
}
