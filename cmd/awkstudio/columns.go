package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vegasq/awkstudio/internal/awk"
	"github.com/vegasq/awkstudio/internal/output"
	"github.com/vegasq/awkstudio/internal/reader"
)

func newColumnsCmd(a *app) *cobra.Command {
	var separator string

	cmd := &cobra.Command{
		Use:   "columns <file>",
		Short: "List the columns of a file's first line with their $N references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var sep awk.Separator
			var err error
			if cmd.Flags().Changed("separator") {
				sep, err = awk.ParseSeparator(separator)
			} else {
				sep, err = reader.DetectSeparator(path)
			}
			if err != nil {
				return err
			}

			header, err := reader.ReadHeader(path, sep)
			if err != nil {
				return err
			}
			if len(header) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no columns found")
				return err
			}

			rows := make([][]string, len(header))
			for i, name := range header {
				rows[i] = []string{"$" + strconv.Itoa(i+1), name}
			}
			output.RenderTable(cmd.OutOrStdout(), []string{"column", "name"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&separator, "separator", "F", "", "Field separator (detected when omitted)")
	return cmd
}
