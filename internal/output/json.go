package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row keyed by header name, followed by
// one {"summary": ...} object per footer line.
func (j *JSONFormatter) Format(t *Table) error {
	encoder := json.NewEncoder(j.writer)
	header := uniqueHeader(t.Header)

	for _, row := range t.Rows {
		obj := make(map[string]string, len(header))
		for i, name := range header {
			obj[name] = row[i]
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}

	for _, line := range t.Footer {
		if err := encoder.Encode(map[string]string{"summary": line}); err != nil {
			return err
		}
	}
	return nil
}
