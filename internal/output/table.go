package output

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/vegasq/awkstudio/internal/awk"
)

// footerPrefix marks the lines printed by the END block of an aggregation
const footerPrefix = "--- "

// SummaryColumn names the single column of a table that holds only
// aggregation results
const SummaryColumn = "summary"

// Table is the tabular view of one run's stdout.
//
// Every row has exactly len(Header) cells. Lines holds each row's original
// text.
type Table struct {
	Header []string
	Rows   [][]string
	Lines  []string
	Footer []string
}

// ParseOptions controls how ParseResult splits lines
type ParseOptions struct {
	// Separator is the input field separator of the run
	Separator awk.Separator

	// Projected is set when the program printed selected columns; awk then
	// joins fields with a single space instead of the input separator.
	Projected bool

	// Header names the columns. Missing names become colN.
	Header []string

	// SkipHeader drops the first row when its cells equal Header. awk prints
	// the file's header line like any other record.
	SkipHeader bool
}

// ParseResult splits stdout into a Table. Empty lines are skipped and
// aggregation labels go to Footer.
func ParseResult(stdout string, opts ParseOptions) *Table {
	t := &Table{}
	width := len(opts.Header)

	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, footerPrefix) {
			t.Footer = append(t.Footer, line)
			continue
		}

		var cells []string
		if opts.Projected || opts.Separator == awk.Whitespace {
			cells = strings.Fields(line)
		} else {
			cells = strings.Split(line, string(opts.Separator))
		}
		if opts.SkipHeader && len(t.Rows) == 0 && isHeaderRow(cells, opts.Header) {
			opts.SkipHeader = false
			continue
		}
		width = max(width, len(cells))
		t.Rows = append(t.Rows, cells)
		t.Lines = append(t.Lines, line)
	}

	t.Header = make([]string, width)
	for i := range t.Header {
		if i < len(opts.Header) && strings.TrimSpace(opts.Header[i]) != "" {
			t.Header[i] = strings.TrimSpace(opts.Header[i])
		} else {
			t.Header[i] = "col" + strconv.Itoa(i+1)
		}
	}

	for i, row := range t.Rows {
		if len(row) < width {
			t.Rows[i] = append(row, make([]string, width-len(row))...)
		}
	}
	return t
}

// SummaryText returns a footer line without its marker
func SummaryText(line string) string {
	return strings.TrimPrefix(line, footerPrefix)
}

// withSummary returns the header and rows of t with each footer line
// appended as a row holding the text in its first cell. A table with no
// rows becomes a single summary column.
func withSummary(t *Table) ([]string, [][]string) {
	if len(t.Footer) == 0 {
		return t.Header, t.Rows
	}

	header := t.Header
	if len(t.Rows) == 0 {
		header = []string{SummaryColumn}
	}

	rows := make([][]string, 0, len(t.Rows)+len(t.Footer))
	rows = append(rows, t.Rows...)
	for _, line := range t.Footer {
		row := make([]string, len(header))
		row[0] = SummaryText(line)
		rows = append(rows, row)
	}
	return header, rows
}

func isHeaderRow(cells, header []string) bool {
	if len(header) == 0 || len(cells) != len(header) {
		return false
	}
	for i, cell := range cells {
		if strings.TrimSpace(cell) != strings.TrimSpace(header[i]) {
			return false
		}
	}
	return true
}

// HeaderFor picks the header names of the printed columns. With no display
// columns the full header is returned.
func HeaderFor(header []string, display []int) []string {
	if len(display) == 0 {
		return header
	}
	return lo.Map(display, func(col int, _ int) string {
		if col >= 1 && col <= len(header) {
			return header[col-1]
		}
		return "$" + strconv.Itoa(col)
	})
}

// uniqueHeader returns the header with duplicate names suffixed _2, _3...
func uniqueHeader(header []string) []string {
	used := make(map[string]bool, len(header))
	out := make([]string, len(header))
	for i, name := range header {
		candidate := name
		for n := 2; used[candidate]; n++ {
			candidate = name + "_" + strconv.Itoa(n)
		}
		used[candidate] = true
		out[i] = candidate
	}
	return out
}
