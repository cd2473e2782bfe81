package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/awkstudio/internal/awk"
)

func TestParse_Conditions(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []awk.FilterCondition
	}{
		{
			name: "empty",
			expr: "   ",
			want: nil,
		},
		{
			name: "single comparison",
			expr: "$3 == abc",
			want: []awk.FilterCondition{
				{Column: 3, Operator: awk.OpEqual, Value: "abc"},
			},
		},
		{
			name: "or chain",
			expr: "$1 == 5 || $2 > 10",
			want: []awk.FilterCondition{
				{Column: 1, Operator: awk.OpEqual, Value: "5"},
				{Column: 2, Operator: awk.OpGreater, Value: "10", Connector: awk.Or},
			},
		},
		{
			name: "word connectors and bare column",
			expr: `1 ~ "^a.*" and $4 != 'x y'`,
			want: []awk.FilterCondition{
				{Column: 1, Operator: awk.OpMatch, Value: "^a.*"},
				{Column: 4, Operator: awk.OpNotEqual, Value: "x y", Connector: awk.And},
			},
		},
		{
			name: "negative value kept verbatim",
			expr: "$2 < -5",
			want: []awk.FilterCondition{
				{Column: 2, Operator: awk.OpLess, Value: "-5"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expr, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_RendersLikeBuilder(t *testing.T) {
	conds, err := Parse("$1 == 5 || $2 > 10", nil)
	require.NoError(t, err)

	prog := awk.Build(awk.BuildRequest{Conditions: conds})
	assert.Equal(t, "$1 == 5 || $2 > 10 { print $0 }", prog.Main)
}

func TestParse_Resolver(t *testing.T) {
	header := map[string]int{"name": 1, "price": 3}
	resolver := ColumnResolverFunc(func(name string) (int, error) {
		if col, ok := header[name]; ok {
			return col, nil
		}
		return 0, ErrUnknownColumn
	})

	conds, err := Parse(`price > 10 && "name" == bob`, resolver)
	require.NoError(t, err)
	require.Len(t, conds, 2)
	assert.Equal(t, 3, conds[0].Column)
	assert.Equal(t, 1, conds[1].Column)

	_, err = Parse("missing == 1", resolver)
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr error
	}{
		{"name without resolver", "price > 1", ErrUnknownColumn},
		{"missing operator", "$1 abc", ErrSyntax},
		{"missing value", "$1 ==", ErrSyntax},
		{"missing connector", "$1 == 1 $2 == 2", ErrSyntax},
		{"dangling connector", "$1 == 1 &&", ErrSyntax},
		{"unsupported operator", "$1 >= 1", ErrSyntax},
		{"zero column", "$0 == 1", ErrSyntax},
		{"leading connector", "|| $1 == 1", ErrSyntax},
		{"too long", strings.Repeat("a", MaxExpressionLength+1), ErrExpressionTooLong},
		{"too many tokens", strings.Repeat("$1 == 1 && ", MaxTokens/4+1) + "$1 == 1", ErrTooManyTokens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.expr, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_ColumnNameTooLong(t *testing.T) {
	resolver := ColumnResolverFunc(func(string) (int, error) { return 1, nil })
	_, err := Parse(strings.Repeat("c", MaxColumnNameLength+1)+" == 1", resolver)
	assert.ErrorIs(t, err, ErrColumnNameTooLong)
}
