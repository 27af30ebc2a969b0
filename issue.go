package utilcss

import (
	"path/filepath"

	engine "github.com/yacobolo/utilcss/internal/utilcss"
)

// Issue represents a single unresolved class token in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`        // "utilcss"
	Text        string   `json:"Text"`              // "Could not match class 'p-7', invalid argument '7', ..."
	Severity    string   `json:"Severity"`          // "", "warning", "error"
	Kind        string   `json:"Kind"`              // "invalid_arg"
	Class       string   `json:"Class"`             // "p-7"
	Allowed     []string `json:"Allowed,omitempty"` // Accepted arguments for invalid_arg
	SourceLines []string `json:"SourceLines"`       // Lines of code with issue
	Pos         IssuePos `json:"Pos"`               // File location

	warning *engine.Warning
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/templates/index.html"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the token)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// newIssue converts a resolver warning found in file into an Issue
func newIssue(file ScannedFile, w *engine.Warning) Issue {
	filename := file.Path
	if filepath.IsAbs(filename) {
		filename = GetRelativePath(filename)
	}

	issue := Issue{
		FromLinter: FromLinter,
		Text:       w.Message(),
		Severity:   SeverityWarning,
		Kind:       w.Kind().String(),
		Class:      w.Class,
		Allowed:    w.Type.Allowed,
		Pos: IssuePos{
			Filename: filename,
			Line:     w.Pos.Line,
			Column:   w.Pos.Column,
		},
		warning: w,
	}

	if line, ok := file.lineText(w.Pos.Line); ok {
		issue.SourceLines = []string{line}
	}

	return issue
}

// Plain renders the issue in the one-line "Warning on Line" form.
func (i Issue) Plain() string {
	if i.warning != nil {
		return i.Pos.Filename + ": " + i.warning.String()
	}
	return i.Pos.Filename + ": " + i.Text
}
