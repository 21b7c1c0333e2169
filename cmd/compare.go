package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	appsvc "github.com/chenzhuyu2004/solarforest/internal/app"
	"github.com/chenzhuyu2004/solarforest/internal/report"
)

func newCompareCmd() *cobra.Command {
	var (
		areaM2  float64
		areaHa  float64
		panel   string
		species string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare solar generation and tree sequestration for one plot",
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

			result, err := service.Compare(cmd.Context(), appsvc.CompareInput{
				AreaM2:  areaM2,
				AreaHa:  areaHa,
				Panel:   panel,
				Species: species,
			})
			if err != nil {
				return mapAppError(err)
			}

			fmt.Print(report.BuildCompare(result, cfg.Output == "json"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&areaM2, "area-m2", 0, "plot area in square metres")
	cmd.Flags().Float64Var(&areaHa, "area-ha", 0, "plot area in hectares")
	cmd.Flags().StringVar(&panel, "panel", "", "panel profile: mono|poly|thin-film")
	cmd.Flags().StringVar(&species, "species", "", "species profile: poplar|oak|pine")
	cmd.Flags().BoolVar(&strict, "strict-assumptions", false, "fail when the assumptions document cannot be read")
	return cmd
}
