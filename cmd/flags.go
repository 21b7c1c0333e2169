package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chenzhuyu2004/solarforest/internal/config"
	sferrors "github.com/chenzhuyu2004/solarforest/internal/errors"
)

// resolveShared 合并配置来源：默认值 < 配置文件 < 环境变量 < 命令行标志。
func resolveShared(cmd *cobra.Command) (config.Shared, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return config.Shared{}, sferrors.New(err, sferrors.InputError)
	}

	if v, _ := cmd.Flags().GetString("assumptions"); strings.TrimSpace(v) != "" {
		cfg.AssumptionsPath = v
	}
	if v, _ := cmd.Flags().GetString("output"); strings.TrimSpace(v) != "" {
		cfg.Output = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); strings.TrimSpace(v) != "" {
		cfg.LogLevel = v
	}

	if err := validateOutputMode(cfg.Output); err != nil {
		return config.Shared{}, sferrors.New(err, sferrors.InputError)
	}
	return cfg, nil
}

func validateOutputMode(mode string) error {
	if mode != "text" && mode != "json" {
		return fmt.Errorf("output must be text or json")
	}
	return nil
}

// detectJSONOutput decides the error formatting mode before cobra has parsed
// anything, so it scans the raw arguments and falls back to the resolved
// config default.
func detectJSONOutput(args []string) bool {
	for i, arg := range args {
		switch {
		case arg == "--output=json" || arg == "-output=json":
			return true
		case arg == "--output=text" || arg == "-output=text":
			return false
		case (arg == "--output" || arg == "-output") && i+1 < len(args):
			return args[i+1] == "json"
		}
	}

	configPath, _ := parseStringFlag(args, "config")
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return false
	}
	return cfg.Output == "json"
}

func parseStringFlag(args []string, name string) (string, bool) {
	long := "--" + name
	short := "-" + name
	for i, arg := range args {
		if arg == long || arg == short {
			if i+1 < len(args) {
				return args[i+1], true
			}
			return "", false
		}
		if strings.HasPrefix(arg, long+"=") {
			return arg[len(long)+1:], true
		}
		if strings.HasPrefix(arg, short+"=") {
			return arg[len(short)+1:], true
		}
	}
	return "", false
}
