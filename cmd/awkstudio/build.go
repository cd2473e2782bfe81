package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vegasq/awkstudio/internal/awk"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		flags       builderFlags
		programOnly bool
	)

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Print the awk command line without running it",
		Long: `Print the awk command line for the given filter.

When a file is given, its separator is detected and header names can be used
in --where, --columns, --sum and --avg.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			req, err := flags.build(cmd, a.log, path)
			if err != nil {
				return err
			}

			command := awk.NewCommand(a.cfg.AwkBinary, req, path)
			if programOnly {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), command.Program)
				return err
			}

			style, err := flags.quoteStyle()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), command.Format(style))
			return err
		},
	}

	flags.register(cmd.Flags(), a.cfg.Target)
	cmd.Flags().BoolVar(&programOnly, "program-only", false, "Print only the awk program text")
	return cmd
}
