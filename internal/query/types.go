// Package query parses textual filter expressions into awk filter conditions.
//
// An expression is a flat chain of comparisons joined by && / || (or the
// words and / or). Columns are written as $N or, when a ColumnResolver is
// supplied, as a header name. There is no grouping: conditions keep the order
// they were written in.
//
// Example usage:
//
//	conds, err := query.Parse(`$3 == abc || price > 10`, resolver)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	req := awk.BuildRequest{Conditions: conds}
package query

// TokenType represents the type of a token
type TokenType int

const (
	// Connectors
	TokenAnd TokenType = iota
	TokenOr

	// Operators
	TokenEqual    // == or =
	TokenNotEqual // !=
	TokenMatch    // ~
	TokenLess     // <
	TokenGreater  // >

	// Operands
	TokenField  // $N
	TokenString // quoted text
	TokenNumber
	TokenIdent

	// Special
	TokenEOF
	TokenError
)

var tokenNames = map[TokenType]string{
	TokenAnd:      "&&",
	TokenOr:       "||",
	TokenEqual:    "==",
	TokenNotEqual: "!=",
	TokenMatch:    "~",
	TokenLess:     "<",
	TokenGreater:  ">",
	TokenField:    "field",
	TokenString:   "string",
	TokenNumber:   "number",
	TokenIdent:    "identifier",
	TokenEOF:      "end of expression",
	TokenError:    "invalid token",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}

// ColumnResolver maps a column name to its 1-based position
type ColumnResolver interface {
	ResolveColumn(name string) (int, error)
}

// ColumnResolverFunc adapts a function to ColumnResolver
type ColumnResolverFunc func(name string) (int, error)

// ResolveColumn calls f(name)
func (f ColumnResolverFunc) ResolveColumn(name string) (int, error) {
	return f(name)
}
