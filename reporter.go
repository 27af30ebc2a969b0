package utilcss

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
)

// Reporter writes issues as "file:line:col: message (utilcss)" lines,
// optionally followed by the source line and a caret under the token
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors enables colors when forced by config or environment, or
// when stdout is a terminal
func shouldUseColors(config Config) bool {
	switch {
	case config.UseColors, os.Getenv("FORCE_COLOR") != "", os.Getenv("GITHUB_ACTIONS") == "true":
		return true
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// compareIssuePos orders issues by file, line, then column
func compareIssuePos(a, b Issue) int {
	return cmp.Or(
		cmp.Compare(a.Pos.Filename, b.Pos.Filename),
		cmp.Compare(a.Pos.Line, b.Pos.Line),
		cmp.Compare(a.Pos.Column, b.Pos.Column),
	)
}

// PrintIssues writes issues ordered by position. The caller's slice keeps
// its order.
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := slices.Clone(issues)
	slices.SortStableFunc(sorted, compareIssuePos)

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	fmt.Fprintf(r.w, "%s %s", RenderStyle(StyleCyan, location, r.useColors), issue.Text)
	if r.printLinterName {
		fmt.Fprint(r.w, RenderStyle(StyleGray, " ("+issue.FromLinter+")", r.useColors))
	}
	fmt.Fprintln(r.w)

	if !r.printLines || len(issue.SourceLines) == 0 {
		return
	}
	for _, line := range issue.SourceLines {
		fmt.Fprintf(r.w, "\t%s\n", line)
	}
	caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
	fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
}

// buildCaretIndicator puts "^" under the 1-based character column. Tabs
// before the column are kept so the caret lines up under tabbed source.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	prefix := []rune(sourceLine)
	if n := column - 1; n >= 0 && n < len(prefix) {
		prefix = prefix[:n]
	} else if n < 0 {
		prefix = nil
	}

	blank := func(c rune) rune {
		if c == '\t' {
			return c
		}
		return ' '
	}
	return strings.Map(blank, string(prefix)) + "^"
}

// PrintSummary writes the issue count followed by one line per warning kind
func (r *Reporter) PrintSummary(result Result) {
	header := pluralizeCount(len(result.Issues), "issue", "issues")
	if result.TruncatedCount > 0 {
		header += fmt.Sprintf(" (%s truncated)", pluralizeCount(result.TruncatedCount, "issue", "issues"))
	}
	fmt.Fprintf(r.w, "\n%s:\n", header)

	if len(result.Issues) == 0 {
		return
	}

	byKind := make(map[string]int)
	for _, issue := range result.Issues {
		byKind[issue.Kind]++
	}
	kinds := make([]string, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)

	for _, kind := range kinds {
		fmt.Fprintf(r.w, "* %s: %d\n", kind, byKind[kind])
	}
	fmt.Fprintf(r.w, "\n%s\n", RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics", r.useColors))
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors reports whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
