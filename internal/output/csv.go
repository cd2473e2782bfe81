package output

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header and rows as CSV. Aggregation results follow the
// rows, one record each, with the text in the first cell.
func (c *CSVFormatter) Format(t *Table) error {
	csvWriter := csv.NewWriter(c.writer)
	header, rows := withSummary(t)

	if len(rows) == 0 {
		csvWriter.Flush()
		return errors.Wrap(csvWriter.Error(), "failed to flush CSV writer")
	}

	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = sanitizeCell(cell)
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return errors.Wrap(csvWriter.Error(), "failed to flush CSV writer")
}

// sanitizeCell guards against CSV injection by prefixing characters that
// could trigger formula execution in spreadsheet applications
func sanitizeCell(val string) string {
	if len(val) == 0 {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		if isPlainNumber(val) {
			return val
		}
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}

// isPlainNumber lets negative numbers through the injection guard
func isPlainNumber(val string) bool {
	if val[0] != '-' && val[0] != '+' {
		return false
	}
	digits := false
	for _, r := range val[1:] {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '.':
		default:
			return false
		}
	}
	return digits
}
