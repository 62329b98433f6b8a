package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"volumetrico/internal/domain"
)

// SheetName is the worksheet holding the error list.
const SheetName = "Errores"

var columnWidths = []float64{6, 28, 100, 60}

// WriteXLSX renders records as a single-sheet workbook.
func WriteXLSX(out io.Writer, records []domain.ErrorRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	last, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetCellStyle(SheetName, "A1", last+"1", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, w := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, w); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	for i := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{i + 1, records[i].Kind.String(), records[i].Error, records[i].Source}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.Write(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
