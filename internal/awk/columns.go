package awk

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrInvalidColumn is returned for column references that are not positive integers
var ErrInvalidColumn = errors.New("invalid column")

// ParseColumnList parses a comma separated column list such as "1, 3".
// Blank items are skipped.
func ParseColumnList(s string) ([]int, error) {
	items := lo.Filter(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(item), "$"))
	}), func(item string, _ int) bool {
		return item != ""
	})

	cols := make([]int, 0, len(items))
	for _, item := range items {
		col, err := ParseColumn(item)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// ParseColumn parses a single column reference, with or without a leading $
func ParseColumn(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	col, err := strconv.Atoi(s)
	if err != nil || col <= 0 {
		return 0, errors.Wrapf(ErrInvalidColumn, "%q", s)
	}
	return col, nil
}

// TargetKind names the request field a picked column is applied to
type TargetKind int

const (
	TargetDisplay TargetKind = iota
	TargetAggregation
	TargetCondition
)

// Target is the active field for UseColumn. Index selects the condition for
// TargetCondition.
type Target struct {
	Kind  TargetKind
	Index int
}

// UseColumn applies column col to target and returns the updated request.
//
// Display targets append, aggregation and condition targets overwrite.
// Conditions are padded with empty rows up to Index. The receiver is left
// untouched.
func (r BuildRequest) UseColumn(target Target, col int) BuildRequest {
	out := r
	switch target.Kind {
	case TargetAggregation:
		out.AggregationColumn = col
	case TargetCondition:
		idx := target.Index
		if idx < 0 {
			idx = 0
		}
		conds := make([]FilterCondition, max(len(r.Conditions), idx+1))
		copy(conds, r.Conditions)
		for i := len(r.Conditions); i < len(conds); i++ {
			conds[i].Operator = OpEqual
		}
		conds[idx].Column = col
		out.Conditions = conds
	default:
		cols := make([]int, 0, len(r.DisplayColumns)+1)
		cols = append(cols, r.DisplayColumns...)
		out.DisplayColumns = append(cols, col)
	}
	return out
}
