package utilcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version    string            `json:"version"`
	Timestamp  string            `json:"timestamp"`
	Summary    JSONSummary       `json:"summary"`
	Issues     []JSONIssue       `json:"issues"`
	Unresolved []UnresolvedClass `json:"unresolved"`
	Warnings   []string          `json:"warnings"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues    int     `json:"total_issues"`
	Truncated      int     `json:"truncated"`
	FilesScanned   int     `json:"files_scanned"`
	FilesSkipped   int     `json:"files_skipped"`
	TokensFound    int     `json:"tokens_found"`
	TokensResolved int     `json:"tokens_resolved"`
	ResolvedPct    float64 `json:"resolved_percentage"`
	RulesGenerated int     `json:"rules_generated"`
}

// JSONIssue represents a single unresolved token
type JSONIssue struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Severity string   `json:"severity"`
	Kind     string   `json:"kind"`
	Class    string   `json:"class"`
	Message  string   `json:"message"`
	Allowed  []string `json:"allowed,omitempty"`
	Linter   string   `json:"linter"`
	Source   string   `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the result as indented JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Kind:     issue.Kind,
			Class:    issue.Class,
			Message:  issue.Text,
			Allowed:  issue.Allowed,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:    len(result.Issues),
			Truncated:      result.TruncatedCount,
			FilesScanned:   result.FilesScanned,
			FilesSkipped:   result.FilesSkipped,
			TokensFound:    result.TokensFound,
			TokensResolved: result.TokensResolved,
			ResolvedPct:    result.ResolvedPercentage(),
			RulesGenerated: result.RulesGenerated,
		},
		Issues:     jsonIssues,
		Unresolved: topUnresolved(result.Issues, 10),
		Warnings:   warnings,
	}
}
