// Package output formats captured awk output.
//
// ParseResult splits the raw stdout of a run into a Table; a Formatter then
// writes that table as plain text, an aligned table, CSV, JSON Lines or
// Parquet.
//
// Example usage:
//
//	table := output.ParseResult(res.Stdout, output.ParseOptions{Separator: ","})
//	formatter, err := output.New("csv", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(table); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Supported format names
const (
	FormatText    = "text"
	FormatTable   = "table"
	FormatCSV     = "csv"
	FormatJSONL   = "jsonl"
	FormatParquet = "parquet"
)

// Formats lists the names accepted by New
var Formats = []string{FormatText, FormatTable, FormatCSV, FormatJSONL, FormatParquet}

// ErrUnsupportedFormat is returned by New for unknown format names
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(t *Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under name
func New(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatText, "":
		return NewTextFormatter(w), nil
	case FormatTable:
		return NewTableFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatJSONL, "json":
		return NewJSONFormatter(w), nil
	case FormatParquet:
		return NewParquetFormatter(w), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedFormat, "%q (supported: %s)", name, strings.Join(Formats, ", "))
}

// IsBinary reports whether the named format produces non-text output
func IsBinary(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), FormatParquet)
}
