package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yacobolo/cssom"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssom.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSOM_* prefix)
	if err := k.Load(env.Provider("CSSOM_", ".", func(s string) string {
		// CSSOM_CHECK_PATHS -> check.paths
		// CSSOM_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSOM_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildLogger returns a console logger on stderr: debug output with
// --verbose, warnings and errors otherwise.
func buildLogger() *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if getBoolWithFallback("color", "color", false) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := zapcore.WarnLevel
	if getBoolWithFallback("verbose", "verbose", false) {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// buildDeclarationConfig constructs the library's Config struct from koanf state.
func buildDeclarationConfig(log *zap.Logger) cssom.Config {
	return cssom.Config{
		Logger:             log,
		SequenceShorthands: getBoolWithFallback("sequence-shorthands", "sequence-shorthands", false),
	}
}

// buildCheckConfig constructs the library's CheckConfig struct from koanf state.
func buildCheckConfig(log *zap.Logger) cssom.CheckConfig {
	// Handle paths: check flag key first, then config key
	var paths []string
	if p := k.Strings("paths"); len(p) > 0 {
		paths = p
	} else if p := k.Strings("check.paths"); len(p) > 0 {
		paths = p
	} else {
		paths = []string{"**/*.css"}
	}

	return cssom.CheckConfig{
		Paths:              paths,
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "check.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "check.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
		SequenceShorthands: getBoolWithFallback("sequence-shorthands", "sequence-shorthands", false),
		Logger:             log,
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
