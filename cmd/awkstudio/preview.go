package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vegasq/awkstudio/internal/reader"
)

func newPreviewCmd(a *app) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Show the first lines of a file, numbered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, err := reader.Preview(args[0], lines)
			if err != nil {
				return err
			}
			for _, line := range preview {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", a.cfg.PreviewLines, "Number of lines to show")
	return cmd
}
