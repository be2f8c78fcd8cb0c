package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"truckstock/internal/core"
)

// WriteCSV writes the same table as WriteXLSX in CSV form. Text cells pass
// through csvSafe so a spreadsheet application opening the file cannot be
// tricked into evaluating a cell as a formula.
func WriteCSV(w io.Writer, s *core.Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(s)); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range s.Rows {
		record := make([]string, 0, len(row.Quantities)+4)
		record = append(record, csvSafe(row.Description), csvSafe(row.SizePack))
		for _, q := range row.Quantities {
			record = append(record, q.String())
		}
		record = append(record, row.WasteQty.String(), row.TotalOnHand.String())

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// csvSafe prevents CSV formula injection by prefixing cells that begin with
// a formula trigger character with a single quote.
func csvSafe(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}
