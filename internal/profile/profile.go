// Package profile stores build requests as YAML files so a filter can be
// saved once and re-run later.
//
// A profile looks like:
//
//	separator: ","
//	conditions:
//	  - column: 3
//	    operator: "=="
//	    value: abc
//	  - connector: "||"
//	    column: 2
//	    operator: ">"
//	    value: "10"
//	columns: [1, 3]
//	aggregate:
//	  mode: sum
//	  column: 4
//	dedup: true
package profile

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vegasq/awkstudio/internal/awk"
)

// Document is the on-disk form of an awk.BuildRequest
type Document struct {
	Separator  string      `yaml:"separator,omitempty"`
	Conditions []Condition `yaml:"conditions,omitempty"`
	Columns    []int       `yaml:"columns,omitempty,flow"`
	Aggregate  *Aggregate  `yaml:"aggregate,omitempty"`
	Dedup      bool        `yaml:"dedup,omitempty"`
}

// Condition is one filter condition
type Condition struct {
	Connector string `yaml:"connector,omitempty"`
	Column    int    `yaml:"column"`
	Operator  string `yaml:"operator"`
	Value     string `yaml:"value"`
}

// Aggregate selects the aggregation mode and column
type Aggregate struct {
	Mode   string `yaml:"mode"`
	Column int    `yaml:"column,omitempty"`
}

// Load reads the profile at path
func Load(path string) (awk.BuildRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return awk.BuildRequest{}, errors.Wrap(err, "failed to read profile")
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return awk.BuildRequest{}, errors.Wrapf(err, "failed to parse profile %s", path)
	}

	req, err := doc.Request()
	if err != nil {
		return awk.BuildRequest{}, errors.Wrapf(err, "invalid profile %s", path)
	}
	return req, nil
}

// Save writes req to path, replacing any existing file
func Save(path string, req awk.BuildRequest) error {
	data, err := yaml.Marshal(FromRequest(req))
	if err != nil {
		return errors.Wrap(err, "failed to encode profile")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "failed to write profile")
}

// Request converts the document to a build request
func (d Document) Request() (awk.BuildRequest, error) {
	sep, err := awk.ParseSeparator(d.Separator)
	if err != nil {
		return awk.BuildRequest{}, err
	}

	req := awk.BuildRequest{
		Separator:      sep,
		DisplayColumns: d.Columns,
		Deduplicate:    d.Dedup,
	}

	for i, c := range d.Conditions {
		op, err := awk.ParseOperator(c.Operator)
		if err != nil {
			return awk.BuildRequest{}, errors.Wrapf(err, "condition %d", i+1)
		}
		conn, err := awk.ParseConnector(c.Connector)
		if err != nil {
			return awk.BuildRequest{}, errors.Wrapf(err, "condition %d", i+1)
		}
		req.Conditions = append(req.Conditions, awk.FilterCondition{
			Column:    c.Column,
			Operator:  op,
			Value:     c.Value,
			Connector: conn,
		})
	}

	if d.Aggregate != nil {
		mode, err := awk.ParseAggregation(d.Aggregate.Mode)
		if err != nil {
			return awk.BuildRequest{}, err
		}
		req.Aggregation = mode
		req.AggregationColumn = d.Aggregate.Column
	}

	return req, nil
}

// FromRequest converts a build request to its document form
func FromRequest(req awk.BuildRequest) Document {
	doc := Document{
		Separator: string(req.Separator),
		Columns:   req.DisplayColumns,
		Dedup:     req.Deduplicate,
	}

	for i, c := range req.Conditions {
		cond := Condition{
			Column:   c.Column,
			Operator: string(c.Operator),
			Value:    c.Value,
		}
		if i > 0 {
			cond.Connector = string(c.Connector)
			if cond.Connector == "" {
				cond.Connector = string(awk.And)
			}
		}
		doc.Conditions = append(doc.Conditions, cond)
	}

	if req.Aggregation != awk.None {
		doc.Aggregate = &Aggregate{
			Mode:   req.Aggregation.String(),
			Column: req.AggregationColumn,
		}
	}
	return doc
}
