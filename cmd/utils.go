package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appsvc "github.com/chenzhuyu2004/solarforest/internal/app"
	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
	"github.com/chenzhuyu2004/solarforest/internal/config"
	sferrors "github.com/chenzhuyu2004/solarforest/internal/errors"
	"github.com/chenzhuyu2004/solarforest/internal/log"
	"github.com/chenzhuyu2004/solarforest/internal/source"
)

func setupLogging(cfg config.Shared) {
	log.Configure(log.Config{Level: cfg.LogLevel})
}

func mapAppError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, appsvc.ErrInput):
		return sferrors.New(err, sferrors.InputError)
	case errors.Is(err, appsvc.ErrAudit):
		return sferrors.New(err, sferrors.AuditFailed)
	case errors.Is(err, appsvc.ErrSource):
		return sferrors.New(err, sferrors.SourceError)
	default:
		return sferrors.New(err, sferrors.SourceError)
	}
}

// newApp 装配假设来源：严格模式下文件读取失败直接报错，否则回退到内置默认值。
func newApp(cfg config.Shared, strict bool) (*appsvc.App, error) {
	path, err := expandHomeDir(cfg.AssumptionsPath)
	if err != nil {
		return nil, sferrors.New(err, sferrors.InputError)
	}

	file := source.NewFileSource(path)
	if strict {
		return appsvc.New(file), nil
	}
	fallback := source.NewStaticSource(assumptions.Defaults(), "built-in defaults")
	return appsvc.New(source.WithFallback(file, fallback)), nil
}

func expandHomeDir(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
