package utilcss

import (
	"context"
	"fmt"
)

// Check resolves the configured content without writing a stylesheet and
// applies the MaxIssues and MaxSameIssues limits to the reported issues
func Check(ctx context.Context, config Config) (*Result, error) {
	result, err := run(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("check failed: %w", err)
	}

	result.Limit(config)
	return result, nil
}

// Limit applies the MaxIssues and MaxSameIssues limits, adding the removed
// issues to TruncatedCount
func (r *Result) Limit(config Config) {
	if config.MaxIssues <= 0 && config.MaxSameIssues <= 0 {
		return
	}
	var truncated int
	r.Issues, truncated = limitIssues(r.Issues, config)
	r.TruncatedCount += truncated
}

// Failed reports whether a check result should fail the run. Only strict
// mode turns unresolved tokens into a failure.
func Failed(result *Result, config Config) bool {
	return config.Strict && len(result.Issues)+result.TruncatedCount > 0
}

// limitIssues applies max-issues and max-same-issues constraints
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-same-issues, then max-issues
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
