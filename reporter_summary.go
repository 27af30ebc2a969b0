package utilcss

import (
	"fmt"
	"io"
	"sort"
)

// SummaryReporter prints run statistics
type SummaryReporter struct {
	w         io.Writer
	useColors bool
}

// NewSummaryReporter creates a summary reporter
func NewSummaryReporter(w io.Writer, useColors bool) *SummaryReporter {
	return &SummaryReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs scan and resolution counts
func (r *SummaryReporter) PrintStatistics(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Utility Class Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Files Scanned:   %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:   %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Tokens Found:    %d\n", result.TokensFound)
	fmt.Fprintf(r.w, "Tokens Resolved: %d (%.1f%%)\n", result.TokensResolved, result.ResolvedPercentage())
	fmt.Fprintf(r.w, "Rules Generated: %d\n", result.RulesGenerated)
}

// PrintResolutionProgress shows the resolved share as a bar
func (r *SummaryReporter) PrintResolutionProgress(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Resolution", r.useColors))
	fmt.Fprintln(r.w, "----------")
	printProgressBar(r.w, result.ResolvedPercentage())
}

// PrintTopUnresolved lists the classes that failed most often
func (r *SummaryReporter) PrintTopUnresolved(result Result) {
	top := topUnresolved(result.Issues, 10)
	if len(top) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Most Frequent Unresolved Classes", r.useColors))
	fmt.Fprintln(r.w, "--------------------------------")

	for i, u := range top {
		fmt.Fprintf(r.w, "%d. %q - %s (%s)\n",
			i+1, u.Class, pluralizeCount(u.Occurrences, "occurrence", "occurrences"), u.Kind)
	}
}

// PrintWarnings shows non-fatal scan warnings
func (r *SummaryReporter) PrintWarnings(result Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// UnresolvedClass counts how often a class failed to resolve
type UnresolvedClass struct {
	Class       string `json:"class"`
	Kind        string `json:"kind"`
	Occurrences int    `json:"occurrences"`
}

// topUnresolved returns at most limit classes ordered by frequency, then name
func topUnresolved(issues []Issue, limit int) []UnresolvedClass {
	index := make(map[string]int)
	classes := []UnresolvedClass{}

	for _, issue := range issues {
		i, ok := index[issue.Class]
		if !ok {
			i = len(classes)
			index[issue.Class] = i
			classes = append(classes, UnresolvedClass{Class: issue.Class, Kind: issue.Kind})
		}
		classes[i].Occurrences++
	}

	sort.SliceStable(classes, func(i, j int) bool {
		if classes[i].Occurrences != classes[j].Occurrences {
			return classes[i].Occurrences > classes[j].Occurrences
		}
		return classes[i].Class < classes[j].Class
	})

	if len(classes) > limit {
		classes = classes[:limit]
	}
	return classes
}

// printProgressBar renders a 20-cell bar for a 0-100 percentage
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
