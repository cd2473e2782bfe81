package output

import (
	"fmt"
	"io"
)

// TextFormatter writes the lines exactly as awk printed them
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new plain text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TextFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the original lines followed by the footer
func (f *TextFormatter) Format(t *Table) error {
	for _, line := range t.Lines {
		if _, err := fmt.Fprintln(f.writer, line); err != nil {
			return err
		}
	}
	for _, line := range t.Footer {
		if _, err := fmt.Fprintln(f.writer, line); err != nil {
			return err
		}
	}
	return nil
}
