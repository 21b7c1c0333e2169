package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	appsvc "github.com/chenzhuyu2004/solarforest/internal/app"
	sferrors "github.com/chenzhuyu2004/solarforest/internal/errors"
	"github.com/chenzhuyu2004/solarforest/internal/report"
	"github.com/chenzhuyu2004/solarforest/internal/scenario"
)

func newBatchCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "batch SCENARIO",
		Short: "Evaluate every site in a YAML scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveShared(cmd)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			path, err := expandHomeDir(args[0])
			if err != nil {
				return sferrors.New(err, sferrors.InputError)
			}
			file, err := scenario.Load(path)
			if err != nil {
				return sferrors.New(err, sferrors.InputError)
			}

			service, err := newApp(cfg, strict)
			if err != nil {
				return err
			}

			result, err := service.Batch(cmd.Context(), appsvc.BatchInput{Scenario: file})
			if err != nil {
				return mapAppError(err)
			}

			fmt.Print(report.BuildBatch(result, cfg.Output == "json"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict-assumptions", false, "fail when the assumptions document cannot be read")
	return cmd
}
