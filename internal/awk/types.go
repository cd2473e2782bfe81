// Package awk compiles a structured filter request into an awk program.
//
// A BuildRequest describes what the user picked: filter conditions, the
// columns to print, an optional sum/average over one column and whether
// duplicate records should be dropped. Build turns it into the two top-level
// blocks of an awk program, and Command wraps that program into the command
// line used to run it against a file.
//
// Example usage:
//
//	req := awk.BuildRequest{
//	    Conditions: []awk.FilterCondition{
//	        {Column: 3, Operator: awk.OpEqual, Value: "abc"},
//	    },
//	    Separator: ",",
//	}
//	prog := awk.Build(req)
//	fmt.Println(prog) // $3 == "abc" { print $0 }
//
// The package performs no I/O and Build never fails.
package awk

import (
	"strings"

	"github.com/pkg/errors"
)

// Operator is a comparison operator of the awk grammar
type Operator string

const (
	OpEqual    Operator = "=="
	OpNotEqual Operator = "!="
	OpMatch    Operator = "~"
	OpGreater  Operator = ">"
	OpLess     Operator = "<"
)

// Connector joins a condition to the one before it
type Connector string

const (
	And Connector = "&&"
	Or  Connector = "||"
)

// Aggregation selects the per-file accumulation
type Aggregation int

const (
	None Aggregation = iota
	Sum
	Average
)

// Separator is the awk field separator. The empty value means awk's default
// splitting on runs of blanks.
type Separator string

// Whitespace is the default separator sentinel (no -F flag)
const Whitespace Separator = ""

var (
	// ErrUnknownOperator is returned by ParseOperator
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrUnknownConnector is returned by ParseConnector
	ErrUnknownConnector = errors.New("unknown connector")

	// ErrUnknownAggregation is returned by ParseAggregation
	ErrUnknownAggregation = errors.New("unknown aggregation")

	// ErrInvalidSeparator is returned by ParseSeparator for multi-character input
	ErrInvalidSeparator = errors.New("separator must be a single character")
)

// FilterCondition is one row of the condition list.
//
// Column 0 means no column was chosen. Connector is ignored for the first
// rendered condition.
type FilterCondition struct {
	Column    int
	Operator  Operator
	Value     string
	Connector Connector
}

// BuildRequest is the full input of Build
type BuildRequest struct {
	Conditions        []FilterCondition
	DisplayColumns    []int
	Aggregation       Aggregation
	AggregationColumn int
	Deduplicate       bool
	Separator         Separator
}

// CompiledProgram holds the main pattern-action block and the END block
type CompiledProgram struct {
	Main string
	End  string
}

// String returns the program text passed to awk
func (p CompiledProgram) String() string {
	if p.End == "" {
		return p.Main
	}
	return p.Main + " " + p.End
}

// ParseOperator accepts an operator symbol or its name
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "==", "=", "eq", "equals":
		return OpEqual, nil
	case "!=", "ne", "not-equals":
		return OpNotEqual, nil
	case "~", "match", "matches", "regex":
		return OpMatch, nil
	case ">", "gt":
		return OpGreater, nil
	case "<", "lt":
		return OpLess, nil
	}
	return "", errors.Wrapf(ErrUnknownOperator, "%q", s)
}

// ParseConnector accepts && / || or and / or
func ParseConnector(s string) (Connector, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "&&", "and":
		return And, nil
	case "||", "or":
		return Or, nil
	}
	return "", errors.Wrapf(ErrUnknownConnector, "%q", s)
}

// token returns the text rendered for the connector; the zero value is &&
func (c Connector) token() string {
	if c == "" {
		return string(And)
	}
	return string(c)
}

// String returns the mode name
func (a Aggregation) String() string {
	switch a {
	case Sum:
		return "sum"
	case Average:
		return "average"
	default:
		return "none"
	}
}

// ParseAggregation accepts none, sum, average or avg
func ParseAggregation(s string) (Aggregation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "sum":
		return Sum, nil
	case "average", "avg":
		return Average, nil
	}
	return None, errors.Wrapf(ErrUnknownAggregation, "%q", s)
}

// ParseSeparator maps user input to a Separator.
//
// "space", "whitespace", "Space/Tab" and the empty string select the
// whitespace default; "tab" and `\t` select a tab.
func ParseSeparator(s string) (Separator, error) {
	switch strings.ToLower(s) {
	case "", "space", "whitespace", "space/tab":
		return Whitespace, nil
	case "tab", `\t`:
		return "\t", nil
	}
	if len([]rune(s)) != 1 {
		return Whitespace, errors.Wrapf(ErrInvalidSeparator, "%q", s)
	}
	return Separator(s), nil
}
