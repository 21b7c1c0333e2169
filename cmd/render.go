package cmd

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
	sferrors "github.com/chenzhuyu2004/solarforest/internal/errors"
	"github.com/chenzhuyu2004/solarforest/internal/log"
)

func newRenderCmd() *cobra.Command {
	var (
		outPath string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the canonical assumptions document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveShared(cmd)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			content := assumptions.Render(assumptions.Canonical())
			if outPath == "-" {
				fmt.Print(string(content))
				return nil
			}

			path, err := expandHomeDir(outPath)
			if err != nil {
				return sferrors.New(err, sferrors.InputError)
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return sferrors.Newf(sferrors.InputError, "refusing to overwrite %s (use --force)", path)
				}
			}
			if err := writeDocument(path, content); err != nil {
				return sferrors.New(err, sferrors.WriteError)
			}

			logger := log.WithComponent("cmd")
			logger.Info().Str("path", path).Msg("assumptions document written")
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "ASSUMPTIONS.md", "destination path, or - for stdout")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing document")
	return cmd
}

// writeDocument 原子写入：fsync 后 rename，避免审计到写了一半的文档。
func writeDocument(path string, content []byte) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending document: %w", err)
	}
	logger := log.WithComponent("cmd")
	defer func() {
		if err := pending.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending document")
		}
	}()

	if _, err := pending.Write(content); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
