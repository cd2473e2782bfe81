package reader

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/awkstudio/internal/awk"
	"github.com/vegasq/awkstudio/internal/query"
)

// writeTestFile creates a file with content in a temporary directory
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func TestReadHeader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		sep     awk.Separator
		want    []string
	}{
		{"comma", "id,name,price\n1,a,2\n", ",", []string{"id", "name", "price"}},
		{"semicolon crlf", "id;name\r\n1;a\r\n", ";", []string{"id", "name"}},
		{"whitespace runs", "  id \t name   price\n", awk.Whitespace, []string{"id", "name", "price"}},
		{"bom", "\uFEFFid|name\n", "|", []string{"id", "name"}},
		{"no trailing newline", "a:b", ":", []string{"a", "b"}},
		{"empty file", "", ",", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestFile(t, "data.txt", tt.content)
			got, err := ReadHeader(path, tt.sep)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadHeader_MissingFile(t *testing.T) {
	_, err := ReadHeader(filepath.Join(t.TempDir(), "missing.csv"), ",")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadHeader_Directory(t *testing.T) {
	_, err := ReadHeader(t.TempDir(), ",")
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	path := writeTestFile(t, "data.csv", "h1,h2\nr1,a\nr2,b\n")

	got, err := Preview(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"  1 | h1,h2", "  2 | r1,a"}, got)

	got, err = Preview(path, 10)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "  3 | r2,b", got[2])
}

func TestPreview_DefaultLines(t *testing.T) {
	content := ""
	for i := 0; i < 20; i++ {
		content += "line\n"
	}
	path := writeTestFile(t, "data.txt", content)

	got, err := Preview(path, 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultPreviewLines)
	assert.Equal(t, " 10 | line", got[9])
}

func TestDetectSeparator(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    awk.Separator
	}{
		{"comma", "a,b,c\n", ","},
		{"semicolon beats comma", "a;b;c,d\n", ";"},
		{"tie goes to first seen", "a|b:c\n", "|"},
		{"pipe", "a|b|c\n", "|"},
		{"none", "a b\tc\n", awk.Whitespace},
		{"empty", "", awk.Whitespace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestFile(t, "data.txt", tt.content)
			got, err := DetectSeparator(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReader_ReadLine(t *testing.T) {
	path := writeTestFile(t, "data.txt", "one\ntwo")

	r, err := NewReader(path)
	require.NoError(t, err)

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "two", line)

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)

	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())
}

func TestHeaderResolver(t *testing.T) {
	resolver := NewHeaderResolver([]string{"id", " name ", "price", "id"})

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"id", 1, false},
		{"name", 2, false},
		{"price", 3, false},
		{"4", 4, false},
		{"$7", 7, false},
		{"missing", 0, true},
		{"0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := resolver.ResolveColumn(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, query.ErrUnknownColumn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
