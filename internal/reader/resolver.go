package reader

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vegasq/awkstudio/internal/query"
)

// HeaderResolver resolves column names against a file header
type HeaderResolver struct {
	index map[string]int
}

// NewHeaderResolver indexes header names. The first occurrence of a
// duplicated name wins.
func NewHeaderResolver(header []string) *HeaderResolver {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := index[name]; !ok && name != "" {
			index[name] = i + 1
		}
	}
	return &HeaderResolver{index: index}
}

// ResolveColumn returns the 1-based position of name. $N and plain positive
// numbers resolve to themselves.
func (h *HeaderResolver) ResolveColumn(name string) (int, error) {
	name = strings.TrimSpace(name)
	if col, ok := h.index[name]; ok {
		return col, nil
	}
	if col, err := strconv.Atoi(strings.TrimPrefix(name, "$")); err == nil && col > 0 {
		return col, nil
	}
	return 0, errors.Wrapf(query.ErrUnknownColumn, "%q", name)
}

var _ query.ColumnResolver = (*HeaderResolver)(nil)
