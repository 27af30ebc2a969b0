package utilcss

import (
	"fmt"
	"io"
	"os"
)

// DetermineOutputFormat selects the output format from the flag value
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Quiet wins; output is suppressed by the caller
	if quiet {
		return OutputIssues
	}

	switch OutputFormat(formatFlag) {
	case OutputIssues, OutputSummary, OutputFull, OutputJSON, OutputPlain:
		return OutputFormat(formatFlag)
	}

	// Empty or invalid format
	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format:
// issues only, golangci-lint style
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		summary := NewSummaryReporter(w, shouldUseColors(config))
		summary.PrintStatistics(*result)
		summary.PrintResolutionProgress(*result)
		summary.PrintTopUnresolved(*result)
		summary.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		summary := NewSummaryReporter(w, reporter.UseColors())
		summary.PrintStatistics(*result)
		summary.PrintResolutionProgress(*result)
		summary.PrintTopUnresolved(*result)
		summary.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		}

	case OutputPlain:
		WritePlain(w, result)
	}
}

// WritePlain writes one line per issue in source order, followed by scan warnings
func WritePlain(w io.Writer, result *Result) {
	for _, issue := range result.Issues {
		fmt.Fprintln(w, issue.Plain())
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}
