package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vegasq/awkstudio/internal/awk"
	"github.com/vegasq/awkstudio/internal/logger"
	"github.com/vegasq/awkstudio/internal/profile"
	"github.com/vegasq/awkstudio/internal/query"
	"github.com/vegasq/awkstudio/internal/reader"
)

// builderFlags are the flags shared by build and run
type builderFlags struct {
	where     string
	columns   string
	sum       string
	avg       string
	dedup     bool
	separator string
	target    string
	request   string
	save      string
}

func (f *builderFlags) register(fs *pflag.FlagSet, cfg string) {
	fs.StringVarP(&f.where, "where", "w", "", "Filter expression, e.g. '$3 == abc || price > 10'")
	fs.StringVarP(&f.columns, "columns", "c", "", "Columns to print, by number or header name (e.g. 1,3)")
	fs.StringVar(&f.sum, "sum", "", "Sum the given column")
	fs.StringVar(&f.avg, "avg", "", "Average the given column")
	fs.BoolVar(&f.dedup, "dedup", false, "Drop repeated records")
	fs.StringVarP(&f.separator, "separator", "F", "", "Field separator: a single character or 'space' (detected from the file when omitted)")
	fs.StringVar(&f.target, "target", cfg, "Quoting of the displayed command: posix or windows")
	fs.StringVar(&f.request, "request", "", "Load the request from a YAML profile")
	fs.StringVar(&f.save, "save", "", "Save the resulting request to a YAML profile")
}

// build assembles the request from the profile, the flags and, when path is
// set, the file's first line.
func (f *builderFlags) build(cmd *cobra.Command, log logger.LoggerI, path string) (awk.BuildRequest, error) {
	var req awk.BuildRequest
	if f.request != "" {
		loaded, err := profile.Load(f.request)
		if err != nil {
			return req, err
		}
		req = loaded
		log.Debug("loaded profile", logger.String("path", f.request))
	}

	switch {
	case cmd.Flags().Changed("separator"):
		sep, err := awk.ParseSeparator(f.separator)
		if err != nil {
			return req, err
		}
		req.Separator = sep
	case f.request == "" && path != "":
		sep, err := reader.DetectSeparator(path)
		if err != nil {
			return req, err
		}
		req.Separator = sep
		log.Info("detected separator", logger.String("separator", string(sep)))
	}

	var resolver query.ColumnResolver
	if path != "" {
		header, err := reader.ReadHeader(path, req.Separator)
		if err != nil {
			return req, err
		}
		resolver = reader.NewHeaderResolver(header)
	}

	if f.where != "" {
		conds, err := query.Parse(f.where, resolver)
		if err != nil {
			return req, errors.Wrap(err, "invalid --where")
		}
		req.Conditions = append(req.Conditions, conds...)
	}

	if f.columns != "" {
		for _, item := range strings.Split(f.columns, ",") {
			if strings.TrimSpace(item) == "" {
				continue
			}
			col, err := resolveColumn(item, resolver)
			if err != nil {
				return req, errors.Wrap(err, "invalid --columns")
			}
			req = req.UseColumn(awk.Target{Kind: awk.TargetDisplay}, col)
		}
	}

	if f.sum != "" && f.avg != "" {
		return req, errors.New("--sum and --avg cannot be used together")
	}
	if flag, name, mode := f.aggregation(); mode != awk.None {
		col, err := resolveColumn(name, resolver)
		if err != nil {
			return req, errors.Wrapf(err, "invalid --%s", flag)
		}
		req.Aggregation = mode
		req = req.UseColumn(awk.Target{Kind: awk.TargetAggregation}, col)
	}

	if f.dedup {
		req.Deduplicate = true
	}

	if f.save != "" {
		if err := profile.Save(f.save, req); err != nil {
			return req, err
		}
		log.Info("saved profile", logger.String("path", f.save))
	}
	return req, nil
}

// aggregation returns the flag name, its column and the selected mode
func (f *builderFlags) aggregation() (string, string, awk.Aggregation) {
	switch {
	case f.sum != "":
		return "sum", f.sum, awk.Sum
	case f.avg != "":
		return "avg", f.avg, awk.Average
	}
	return "", "", awk.None
}

func (f *builderFlags) quoteStyle() (awk.QuoteStyle, error) {
	return awk.ParseQuoteStyle(f.target)
}

// resolveColumn accepts a column number, or a header name when a resolver
// is available
func resolveColumn(name string, resolver query.ColumnResolver) (int, error) {
	if resolver == nil {
		return awk.ParseColumn(name)
	}
	return resolver.ResolveColumn(strings.TrimSpace(name))
}
