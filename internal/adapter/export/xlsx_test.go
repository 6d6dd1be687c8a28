package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

func TestXLSXExporter_Write(t *testing.T) {
	resource := &domain.Resource{
		ID:             "res-1",
		Slug:           "laptops",
		Name:           "Laptops",
		InitialBalance: decimal.NewFromInt(100),
		CurrentBalance: decimal.NewFromInt(95),
	}
	movements := []*domain.Movement{
		{
			ID:            "mov-2",
			ResourceID:    "res-1",
			Type:          domain.MovementExit,
			Quantity:      decimal.NewFromInt(5),
			Notes:         "assigned to onboarding",
			PerformedByID: "user-1",
			CreatedAt:     time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:              "mov-1",
			ResourceID:      "res-1",
			Type:            domain.MovementAdjustment,
			Quantity:        decimal.NewFromInt(-3),
			ReferencePeriod: "2026-01",
			PerformedByID:   "user-2",
			CreatedAt:       time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	err := NewXLSXExporter().Write(&buf, resource, movements)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)

	// 4 summary rows, blank separator, header, 2 movements.
	require.Len(t, rows, 8)
	require.Equal(t, []string{"Resource", "Laptops"}, rows[0])
	require.Equal(t, "id", rows[5][0])

	exit := rows[6]
	require.Equal(t, "mov-2", exit[0])
	require.Equal(t, "exit", exit[1])
	require.Equal(t, "5", exit[2])
	require.Equal(t, "-5", exit[3])

	adjustment := rows[7]
	require.Equal(t, "adjustment", adjustment[1])
	require.Equal(t, "-3", adjustment[2])
	require.Equal(t, "-3", adjustment[3])
}
