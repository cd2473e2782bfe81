package output

import (
	"io"

	"github.com/pkg/errors"
	"github.com/segmentio/parquet-go"
)

// ErrNoColumns is returned when a table without columns is written as Parquet
var ErrNoColumns = errors.New("no columns to write")

// ParquetFormatter writes rows as a Parquet file with one string column per
// header name
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new Parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes the rows. Aggregation results are stored as extra rows
// with the text in the first column, or as a summary column when there
// are no other rows.
func (p *ParquetFormatter) Format(t *Table) error {
	names, data := withSummary(t)
	if len(names) == 0 {
		return ErrNoColumns
	}

	header := uniqueHeader(names)
	group := make(parquet.Group, len(header))
	for _, name := range header {
		group[name] = parquet.String()
	}
	schema := parquet.NewSchema("awkstudio", group)

	// Group fields are stored sorted by name; map each header position to
	// its leaf column.
	leaf := make(map[string]int, len(header))
	for i, field := range schema.Fields() {
		leaf[field.Name()] = i
	}

	rows := make([]parquet.Row, len(data))
	for r, cells := range data {
		row := make(parquet.Row, len(header))
		for i, name := range header {
			col := leaf[name]
			row[col] = parquet.ValueOf(cells[i]).Level(0, 0, col)
		}
		rows[r] = row
	}

	writer := parquet.NewWriter(p.writer, schema)
	if _, err := writer.WriteRows(rows); err != nil {
		_ = writer.Close()
		return errors.Wrap(err, "failed to write parquet rows")
	}
	return errors.Wrap(writer.Close(), "failed to close parquet writer")
}
