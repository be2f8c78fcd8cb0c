// Package export renders the on-hand summary into downloadable tabular
// artifacts: a single-sheet xlsx workbook and a CSV stream.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"truckstock/internal/core"
)

// SheetName is the single sheet every exported workbook carries.
const SheetName = "Summary"

// Header returns the column names for the summary table: the item key
// columns, one column per location, then the derived columns.
func Header(s *core.Summary) []string {
	header := make([]string, 0, len(s.Locations)+4)
	header = append(header, "Description", "Size / Pack")
	header = append(header, s.Locations...)
	header = append(header, "Waste Qty", "Total On Hand")
	return header
}

// WriteXLSX writes the summary as a one-sheet workbook: header row first,
// then one data row per item.
func WriteXLSX(w io.Writer, s *core.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetName)

	header := make([]any, 0, len(s.Locations)+4)
	for _, h := range Header(s) {
		header = append(header, h)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell for row %d: %w", i+2, err)
		}

		values := make([]any, 0, len(row.Quantities)+4)
		values = append(values, row.Description, row.SizePack)
		for _, q := range row.Quantities {
			values = append(values, q.InexactFloat64())
		}
		values = append(values, row.WasteQty.InexactFloat64(), row.TotalOnHand.InexactFloat64())

		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
