package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vegasq/awkstudio/internal/awk"
	"github.com/vegasq/awkstudio/internal/logger"
	"github.com/vegasq/awkstudio/internal/output"
	"github.com/vegasq/awkstudio/internal/reader"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		flags     builderFlags
		format    string
		outPath   string
		hasHeader bool
	)

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Build the awk program and run it against a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			formatter, err := output.New(format, io.Discard)
			if err != nil {
				return err
			}
			if output.IsBinary(format) && outPath == "" {
				return errors.Errorf("%s output requires --out", format)
			}

			req, err := flags.build(cmd, a.log, path)
			if err != nil {
				return err
			}
			style, err := flags.quoteStyle()
			if err != nil {
				return err
			}

			command := awk.NewCommand(a.cfg.AwkBinary, req, path)
			a.log.Info("running", logger.String("command", command.Format(style)))

			res, err := a.exec.Run(command)
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				return err
			}

			var header []string
			if hasHeader {
				names, err := reader.ReadHeader(path, req.Separator)
				if err != nil {
					return err
				}
				header = output.HeaderFor(names, req.DisplayColumns)
			}
			table := output.ParseResult(res.Stdout, output.ParseOptions{
				Separator:  req.Separator,
				Projected:  len(req.DisplayColumns) > 0,
				Header:     header,
				SkipHeader: hasHeader,
			})

			if outPath == "" {
				formatter.SetOutput(cmd.OutOrStdout())
				if err := formatter.Format(table); err != nil {
					return errors.Wrap(err, "failed to format output")
				}
			} else if err := writeFile(outPath, formatter, table); err != nil {
				return err
			}
			a.log.Debug("run finished", logger.Int("rows", len(table.Rows)))
			return nil
		},
	}

	flags.register(cmd.Flags(), a.cfg.Target)
	cmd.Flags().StringVarP(&format, "format", "f", a.cfg.OutputFormat, "Output format: text, table, csv, jsonl, parquet")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().BoolVar(&hasHeader, "header", false, "Name output columns after the file's first line")
	return cmd
}

// writeFile formats table into the file at path, returning the error from
// closing it as well.
func writeFile(path string, formatter output.Formatter, table *output.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}

	formatter.SetOutput(f)
	if err := formatter.Format(table); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "failed to format output")
	}
	return errors.Wrap(f.Close(), "failed to close output file")
}
