package utilcss

import "go.uber.org/zap"

// Config holds build and check configuration
type Config struct {
	Content []string // Glob patterns of files to scan (e.g., "web/**/*.html")
	Output  string   // Stylesheet path; empty keeps the CSS in Result only
	Verbose bool

	// Preflight prepends the base reset stylesheet to the generated CSS
	Preflight bool

	// Collection maps a file extension (without dot) to how its tokens are
	// collected. Entries override the built-in extension defaults.
	Collection map[string]CollectionMode

	Logger  *zap.Logger // nil disables logging

	// Check settings
	Strict           bool // Exit with code 1 if issues found
	MaxIssues        int  // 0 = unlimited (default)
	MaxSameIssues    int  // 0 = unlimited (default)
	PrintIssuedLines bool // Show source lines with issues
	PrintLinterName  bool // Show (utilcss) suffix
	UseColors        bool // Force color output (default: auto-detect)
}

// Result contains the outcome of a build or check run
type Result struct {
	FilesScanned   int
	FilesSkipped   int // Gitignored or dependency files
	TokensFound    int
	TokensResolved int
	RulesGenerated int

	// CSS is the assembled stylesheet
	CSS string

	Issues         []Issue  // One per unresolved token, in source order
	TruncatedCount int      // Issues removed due to limits
	Warnings       []string // Non-fatal problems (unreadable files, ...)
}

// ResolvedPercentage returns the share of tokens that produced a declaration.
func (r *Result) ResolvedPercentage() float64 {
	if r.TokensFound == 0 {
		return 0
	}
	return float64(r.TokensResolved) / float64(r.TokensFound) * 100
}

// OutputFormat selects how a Result is written
type OutputFormat string

// Supported output formats
const (
	OutputIssues  OutputFormat = "issues"  // golangci-lint style issues only
	OutputSummary OutputFormat = "summary" // Statistics only
	OutputFull    OutputFormat = "full"    // Issues and statistics
	OutputJSON    OutputFormat = "json"    // Machine-readable JSON
	OutputPlain   OutputFormat = "plain"   // One "Warning on Line" line per issue
)
