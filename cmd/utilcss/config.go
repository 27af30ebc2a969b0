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
	"github.com/spf13/pflag"

	"github.com/yacobolo/utilcss"
)

const defaultConfigPath = ".utilcss.yaml"

var k = koanf.New(".")

// defaultContent is scanned when neither flags nor config name content files.
var defaultContent = []string{"**/*.{html,templ,jsx,tsx,vue,svelte}"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only flags that were explicitly set
	// are loaded, so flag defaults never mask file or env values.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
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

	// 2. Environment variables (UTILCSS_* prefix)
	if err := k.Load(env.Provider("UTILCSS_", ".", func(s string) string {
		// UTILCSS_OUTPUT -> output
		// UTILCSS_CHECK_STRICT -> check.strict
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "UTILCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig() utilcss.Config {
	config := utilcss.Config{
		Output:           getStringWithFallback("output", "output", "dist/utilities.css"),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
		Preflight:        getBoolWithFallback("preflight", "preflight", false),
		Strict:           getBoolWithFallback("strict", "check.strict", false),
		MaxIssues:        getIntWithFallback("max-issues", "check.max-issues", 0),
		MaxSameIssues:    getIntWithFallback("max-same-issues", "check.max-same-issues", 0),
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}

	// Flag and config file share the "content" key
	if content := k.Strings("content"); len(content) > 0 {
		config.Content = content
	} else if content := k.String("content"); content != "" {
		// Environment variables arrive as a single space separated string
		config.Content = strings.Fields(content)
	} else {
		config.Content = defaultContent
	}

	// Extension -> collection mode, e.g. collection: {rs: class, txt: text}
	if modes := k.StringMap("collection"); len(modes) > 0 {
		config.Collection = make(map[string]utilcss.CollectionMode, len(modes))
		for ext, mode := range modes {
			config.Collection[ext] = utilcss.CollectionMode(mode)
		}
	}

	return config
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
