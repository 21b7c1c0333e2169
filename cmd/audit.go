package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	appsvc "github.com/chenzhuyu2004/solarforest/internal/app"
	sferrors "github.com/chenzhuyu2004/solarforest/internal/errors"
	"github.com/chenzhuyu2004/solarforest/internal/report"
)

func newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit [DOCUMENT]",
		Short: "Check the assumptions document for drifted conversions and missing provenance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveShared(cmd)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			docPath := cfg.AssumptionsPath
			if len(args) == 1 {
				docPath = args[0]
			}
			docPath, err = expandHomeDir(docPath)
			if err != nil {
				return sferrors.New(err, sferrors.InputError)
			}

			service, err := newApp(cfg, false)
			if err != nil {
				return err
			}

			result, err := service.AuditDocument(cmd.Context(), appsvc.AuditInput{Path: docPath})
			if err != nil {
				return mapAppError(err)
			}

			fmt.Print(report.BuildAudit(result, cfg.Output == "json"))

			if !result.Report.Valid {
				return mapAppError(fmt.Errorf("%w: %s", appsvc.ErrAudit, result.Report.Summary))
			}
			return nil
		},
	}
}
