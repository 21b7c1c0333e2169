package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chenzhuyu2004/solarforest/internal/output"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "solarforest",
		Short:         "Compare solar generation against afforestation for the same land",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "path to YAML config file")
	root.PersistentFlags().String("assumptions", "", "path to the assumptions document")
	root.PersistentFlags().String("output", "", "output format: text|json")
	root.PersistentFlags().String("log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newCompareCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newAuditCmd())
	root.AddCommand(newAssumptionsCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func Execute() {
	err := newRootCmd().Execute()
	output.HandleExit(err, detectJSONOutput(os.Args[1:]))
}
