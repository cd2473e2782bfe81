package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/awkstudio/internal/awk"
)

func TestSaveLoad(t *testing.T) {
	req := awk.BuildRequest{
		Conditions: []awk.FilterCondition{
			{Column: 3, Operator: awk.OpEqual, Value: "abc", Connector: awk.And},
			{Column: 2, Operator: awk.OpGreater, Value: "10", Connector: awk.Or},
		},
		DisplayColumns:    []int{1, 3},
		Aggregation:       awk.Average,
		AggregationColumn: 4,
		Deduplicate:       true,
		Separator:         ";",
	}
	path := filepath.Join(t.TempDir(), "filter.yaml")

	require.NoError(t, Save(path, req))
	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, req, got)
	assert.Equal(t, awk.Build(req), awk.Build(got))
}

func TestLoad_Names(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.yaml")
	content := `
separator: space
conditions:
  - column: 1
    operator: match
    value: ^a
  - connector: or
    column: 2
    operator: lt
    value: "5"
aggregate:
  mode: sum
  column: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	req, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, awk.Whitespace, req.Separator)
	assert.Equal(t, `$1 ~ "^a" || $2 < 5 { s += $2; count++ }`, awk.Build(req).Main)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"bad operator", "conditions:\n  - column: 1\n    operator: '>='\n    value: x\n", awk.ErrUnknownOperator},
		{"bad connector", "conditions:\n  - column: 1\n    operator: '=='\n    value: x\n    connector: xor\n", awk.ErrUnknownConnector},
		{"bad aggregation", "aggregate:\n  mode: median\n", awk.ErrUnknownAggregation},
		{"bad separator", "separator: ab\n", awk.ErrInvalidSeparator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("conditions: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
