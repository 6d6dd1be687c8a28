// Package export renders ledger data as downloadable spreadsheets.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

// XLSXExporter writes a resource's movement history as an XLSX workbook.
type XLSXExporter struct{}

// NewXLSXExporter creates a new XLSXExporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Write renders one sheet per export: a summary row block followed by the
// movement history, newest-first, with the signed delta alongside the
// stored quantity.
func (e *XLSXExporter) Write(w io.Writer, resource *domain.Resource, movements []*domain.Movement) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	summary := [][]interface{}{
		{"Resource", resource.Name},
		{"Slug", resource.Slug},
		{"Initial balance", resource.InitialBalance.String()},
		{"Current balance", resource.CurrentBalance.String()},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("summary cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("summary row: %w", err)
		}
	}

	header := []interface{}{
		"id",
		"movement_type",
		"quantity",
		"delta",
		"reference_period",
		"notes",
		"performed_by",
		"created_at",
	}
	headerRow := len(summary) + 2
	cell, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return fmt.Errorf("header cell: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &header); err != nil {
		return fmt.Errorf("header row: %w", err)
	}

	row := headerRow + 1
	for _, m := range movements {
		excelRow := []interface{}{
			m.ID,
			strings.ToLower(string(m.Type)),
			m.Quantity.String(),
			m.Delta().String(),
			m.ReferencePeriod,
			m.Notes,
			m.PerformedByID,
			m.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("movement cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return fmt.Errorf("movement row: %w", err)
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}
