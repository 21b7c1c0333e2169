package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chenzhuyu2004/solarforest/internal/report"
)

func newAssumptionsCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "assumptions",
		Short: "Show the assumption values in effect and where they come from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveShared(cmd)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			service, err := newApp(cfg, strict)
			if err != nil {
				return err
			}

			result, err := service.ShowAssumptions(cmd.Context())
			if err != nil {
				return mapAppError(err)
			}

			fmt.Print(report.BuildAssumptions(result, cfg.Output == "json"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict-assumptions", false, "fail when the assumptions document cannot be read")
	return cmd
}
