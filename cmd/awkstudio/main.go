package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vegasq/awkstudio/internal/config"
	"github.com/vegasq/awkstudio/internal/logger"
	"github.com/vegasq/awkstudio/internal/runner"
)

// app carries the state shared by all subcommands
type app struct {
	cfg      config.Config
	log      logger.LoggerI
	exec     runner.Executor
	logLevel string
}

func main() {
	root := newRootCmd(config.Load(), nil)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd wires the command tree. exec may be nil to run the real awk.
func newRootCmd(cfg config.Config, exec runner.Executor) *cobra.Command {
	a := &app{cfg: cfg, exec: exec, log: logger.NewNop()}

	root := &cobra.Command{
		Use:   "awkstudio",
		Short: "Build and run awk filters against delimited text files",
		Long: `awkstudio assembles an awk program from filter conditions, a column
selection, an optional sum or average and deduplication, then shows or runs
it against a local file.

Examples:
  awkstudio build -w '$3 == abc' -c 1,3 data.csv
  awkstudio run -w 'price > 10' --sum price data.csv
  awkstudio run -F ';' --dedup -f table data.txt
  awkstudio columns data.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logger.NewLogger("awkstudio", a.logLevel)
			if a.exec == nil {
				a.exec = runner.New(a.log)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	root.AddCommand(
		newBuildCmd(a),
		newRunCmd(a),
		newColumnsCmd(a),
		newPreviewCmd(a),
	)
	return root
}
