package awk

import (
	"strconv"
	"strings"
)

const (
	dedupClause   = "!a[$0]++"
	printRecord   = "print $0"
	sumEndBlock   = `END { print "--- TOTAL SUM: ", s }`
	averageEndBlk = `END { if(count>0) print "--- AVERAGE: ", s/count; else print "--- NO DATA" }`
)

// Build compiles req into an awk program.
//
// Conditions render left to right with their connectors and no grouping, so
// a mixed && / || chain keeps awk's own precedence. Identical requests always
// produce identical programs.
func Build(req BuildRequest) CompiledProgram {
	cond := buildConditions(req.Conditions)
	body := strings.Join(buildBody(req), "; ")

	main := "{ " + body + " }"
	if cond != "" {
		main = cond + " " + main
	}

	return CompiledProgram{
		Main: main,
		End:  buildEnd(req.Aggregation),
	}
}

// buildConditions renders the surviving conditions joined by single spaces
func buildConditions(conds []FilterCondition) string {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		if c.Column <= 0 || c.Value == "" {
			continue
		}
		clause := "$" + strconv.Itoa(c.Column) + " " + string(c.Operator) + " " + literal(c.Operator, c.Value)
		if len(parts) > 0 {
			clause = c.Connector.token() + " " + clause
		}
		parts = append(parts, clause)
	}
	return strings.Join(parts, " ")
}

// buildBody returns the action statements in their fixed order
func buildBody(req BuildRequest) []string {
	var parts []string
	if req.Deduplicate {
		parts = append(parts, dedupClause)
	}
	if req.Aggregation != None && req.AggregationColumn > 0 {
		parts = append(parts, "s += $"+strconv.Itoa(req.AggregationColumn)+"; count++")
	}

	switch {
	case len(req.DisplayColumns) > 0:
		fields := make([]string, len(req.DisplayColumns))
		for i, col := range req.DisplayColumns {
			fields[i] = "$" + strconv.Itoa(col)
		}
		parts = append(parts, "print "+strings.Join(fields, ", "))
	case req.Aggregation == None:
		parts = append(parts, printRecord)
	}
	return parts
}

func buildEnd(mode Aggregation) string {
	switch mode {
	case Sum:
		return sumEndBlock
	case Average:
		return averageEndBlk
	default:
		return ""
	}
}

// stringEscaper escapes backslashes and quotes so every value stays a
// single awk string constant
var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// literal renders a condition value. Regex operands and anything that is not
// a plain non-negative decimal become string literals.
func literal(op Operator, value string) string {
	if op == OpMatch || !IsNumericLiteral(value) {
		return `"` + stringEscaper.Replace(value) + `"`
	}
	return value
}

// IsNumericLiteral reports whether s is ASCII digits with at most one '.'.
//
// Signs and exponents are not numeric here: "-5" and "1e3" are compared as
// strings.
func IsNumericLiteral(s string) bool {
	s = strings.Replace(s, ".", "", 1)
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
