package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestCSVFormatter_Format(t *testing.T) {
	tests := []struct {
		name      string
		table     *Table
		wantLines int
	}{
		{
			name:      "empty table",
			table:     ParseResult("", ParseOptions{Separator: ","}),
			wantLines: 0,
		},
		{
			name:      "single row",
			table:     ParseResult("1,alice,30\n", ParseOptions{Separator: ","}),
			wantLines: 2, // header + 1 data row
		},
		{
			name:      "multiple rows with footer",
			table:     ParseResult("alice 30\nbob 25\n--- TOTAL SUM:  55\n", ParseOptions{Projected: true}),
			wantLines: 4, // header + 2 data rows + summary
		},
		{
			name:      "summary only",
			table:     ParseResult("--- TOTAL SUM:  8\n", ParseOptions{Separator: ","}),
			wantLines: 2, // summary header + result
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatter := NewCSVFormatter(&buf)

			if err := formatter.Format(tt.table); err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			output := buf.String()
			if tt.wantLines == 0 {
				if output != "" {
					t.Errorf("Format() output should be empty for empty rows")
				}
				return
			}

			// Parse CSV to verify format
			reader := csv.NewReader(strings.NewReader(output))
			records, err := reader.ReadAll()
			if err != nil {
				t.Fatalf("Format() produced invalid CSV: %v", err)
			}

			if len(records) != tt.wantLines {
				t.Errorf("Format() produced %d lines, want %d", len(records), tt.wantLines)
			}
		})
	}
}

func TestCSVFormatter_Summary(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		opts   ParseOptions
		want   string
	}{
		{
			name:   "sum without rows",
			stdout: "--- TOTAL SUM:  8\n",
			opts:   ParseOptions{Separator: ",", Header: []string{"name", "kind", "price"}},
			want:   "summary\nTOTAL SUM:  8\n",
		},
		{
			name:   "average with no data",
			stdout: "--- NO DATA\n",
			opts:   ParseOptions{Separator: ","},
			want:   "summary\nNO DATA\n",
		},
		{
			name:   "rows followed by sum",
			stdout: "alice 30\nbob 25\n--- TOTAL SUM:  55\n",
			opts:   ParseOptions{Projected: true, Header: []string{"name", "age"}},
			want:   "name,age\nalice,30\nbob,25\nTOTAL SUM:  55,\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewCSVFormatter(&buf).Format(ParseResult(tt.stdout, tt.opts)); err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Format() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestCSVFormatter_HeaderNames(t *testing.T) {
	table := ParseResult("a;b\n", ParseOptions{Separator: ";", Header: []string{"first", " second "}})

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "first,second\na,b\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestCSVFormatter_SpecialCharacters(t *testing.T) {
	table := ParseResult("Alice, Bob|He said \"hello\"\n", ParseOptions{Separator: "|", Header: []string{"name", "quote"}})

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// CSV library should handle escaping automatically
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV with special characters: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[1][0] != "Alice, Bob" {
		t.Errorf("comma in value not handled correctly: %q", records[1][0])
	}
	if records[1][1] != `He said "hello"` {
		t.Errorf("quotes in value not handled correctly: %q", records[1][1])
	}
}

func TestSanitizeCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"", ""},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"@cmd", "'@cmd"},
		{"+it's", "'+it''s"},
		{"-5", "-5"},
		{"-3.25", "-3.25"},
		{"-x", "'-x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := sanitizeCell(tt.in); got != tt.want {
				t.Errorf("sanitizeCell(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	formatter := NewCSVFormatter(&buf1)
	table := ParseResult("1 alice\n", ParseOptions{})

	// Write to first buffer
	if err := formatter.Format(table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf1.Len() == 0 {
		t.Error("First buffer should have content")
	}

	// Change output and write again
	formatter.SetOutput(&buf2)
	if err := formatter.Format(table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf2.Len() == 0 {
		t.Error("Second buffer should have content")
	}
}
