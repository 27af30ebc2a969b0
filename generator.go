package utilcss

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	engine "github.com/yacobolo/utilcss/internal/utilcss"
)

// Build is the main entry point: scan, resolve, assemble and write the
// stylesheet to config.Output when it is set
func Build(ctx context.Context, config Config) (*Result, error) {
	result, err := run(ctx, config)
	if err != nil {
		return nil, err
	}

	if config.Preflight {
		result.CSS = withPreflight(result.CSS)
	}

	if config.Output != "" {
		if err := writeStylesheet(config.Output, result.CSS); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		logger(config).Debug("Wrote stylesheet",
			zap.String("path", config.Output), zap.Int("rules", result.RulesGenerated))
	}

	return result, nil
}

func logger(config Config) *zap.Logger {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return log.Named("generator")
}

func run(ctx context.Context, config Config) (*Result, error) {
	log := logger(config)

	for _, pattern := range config.Content {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid content pattern %q", pattern)
		}
	}

	for ext, mode := range config.Collection {
		if !mode.Valid() {
			return nil, fmt.Errorf("invalid collection mode %q for extension %q", mode, ext)
		}
	}

	reg, err := defaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	// 1. Scan content files
	scan, err := ScanFiles(config.Content, config.Collection)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &Result{
		FilesScanned: scan.Stats.FilesScanned,
		FilesSkipped: scan.Stats.FilesSkipped,
	}
	for _, err := range multierr.Errors(scan.Err) {
		log.Warn("Unable to scan file", zap.Error(err))
		result.Warnings = append(result.Warnings, err.Error())
	}

	log.Debug("Scanned content",
		zap.Int("discovered", scan.Stats.FilesDiscovered),
		zap.Int("scanned", scan.Stats.FilesScanned),
		zap.Int("skipped", scan.Stats.FilesSkipped))

	// 2. Resolve every token, one goroutine per file
	sources := make([]engine.Source, len(scan.Files))
	for i, f := range scan.Files {
		sources[i] = f.source()
	}

	batch, err := engine.NewResolver(reg).ResolveAll(ctx, sources)
	if err != nil {
		return nil, fmt.Errorf("resolve failed: %w", err)
	}

	resolved := batch.Resolved()
	result.TokensFound = batch.TokenCount()
	result.TokensResolved = len(resolved)

	for i, f := range batch.Files {
		for _, w := range f.Warnings {
			result.Issues = append(result.Issues, newIssue(scan.Files[i], w))
		}
	}

	// 3. Assemble the stylesheet
	result.CSS = engine.BuildStylesheet(reg, resolved)
	result.RulesGenerated = len(engine.Rules(reg, resolved))

	log.Debug("Resolved tokens",
		zap.Int("tokens", result.TokensFound),
		zap.Int("resolved", result.TokensResolved),
		zap.Int("rules", result.RulesGenerated),
		zap.Int("issues", len(result.Issues)))

	return result, nil
}

// withPreflight prepends the preflight reset to css
func withPreflight(css string) string {
	if css == "" {
		return Preflight
	}
	return Preflight + "\n" + css
}

// writeStylesheet writes css to path, creating parent directories
func writeStylesheet(path, css string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	return os.WriteFile(path, []byte(css), 0644)
}
