package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const EnvConfigPath = "SOLARFOREST_CONFIG"

const (
	DefaultAssumptionsPath = "ASSUMPTIONS.md"
	DefaultOutput          = "text"
	DefaultLogLevel        = "info"
)

type Shared struct {
	ConfigPath      string
	AssumptionsPath string
	Output          string
	LogLevel        string
}

type fileConfig struct {
	Assumptions string `yaml:"assumptions"`
	Output      string `yaml:"output"`
	LogLevel    string `yaml:"log_level"`
}

type envConfig struct {
	Assumptions string `env:"SOLARFOREST_ASSUMPTIONS"`
	Output      string `env:"SOLARFOREST_OUTPUT"`
	LogLevel    string `env:"SOLARFOREST_LOG_LEVEL"`
}

// Resolve 按优先级合并配置：内置默认值 < 配置文件 < 环境变量。
func Resolve(rawConfigPath string) (Shared, error) {
	cfg := Shared{
		ConfigPath:      "",
		AssumptionsPath: DefaultAssumptionsPath,
		Output:          DefaultOutput,
		LogLevel:        DefaultLogLevel,
	}

	configPath := strings.TrimSpace(rawConfigPath)
	if configPath == "" {
		configPath = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}

	if configPath != "" {
		expanded, err := expandHomeDir(configPath)
		if err != nil {
			return Shared{}, err
		}
		fileCfg, err := loadFileConfig(expanded)
		if err != nil {
			return Shared{}, err
		}
		cfg.ConfigPath = configPath
		if fileCfg.Assumptions != "" {
			cfg.AssumptionsPath = fileCfg.Assumptions
		}
		if fileCfg.Output != "" {
			cfg.Output = fileCfg.Output
		}
		if fileCfg.LogLevel != "" {
			cfg.LogLevel = fileCfg.LogLevel
		}
	}

	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return Shared{}, fmt.Errorf("parse environment: %w", err)
	}
	if v := strings.TrimSpace(envCfg.Assumptions); v != "" {
		cfg.AssumptionsPath = v
	}
	if v := strings.TrimSpace(envCfg.Output); v != "" {
		cfg.Output = v
	}
	if v := strings.TrimSpace(envCfg.LogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file %q: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var cfg fileConfig
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return cfg, nil
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
