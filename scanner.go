package utilcss

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/multierr"

	engine "github.com/yacobolo/utilcss/internal/utilcss"
)

// ClassToken is a single class token found in a source file
type ClassToken struct {
	Text     string       // "hover:mt-4"
	Location FileLocation // Where it was found
}

// FileLocation tracks where a class token was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based character column of the token start
	Text   string // Full line content for source display
}

// ScannedFile holds the tokens of one file in source order
type ScannedFile struct {
	Path   string
	Tokens []ClassToken
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// ScanResult is returned by ScanFiles. Err combines per-file read failures;
// Files holds every file that was read successfully.
type ScanResult struct {
	Files []ScannedFile
	Stats ScanStats
	Err   error
}

// CollectionMode selects how tokens are collected from a file
type CollectionMode string

const (
	// CollectClassAttributes reads class="..." style attribute values
	CollectClassAttributes CollectionMode = "class"
	// CollectWords treats every word of the file as a token
	CollectWords CollectionMode = "text"
)

// Valid reports whether m is a known collection mode
func (m CollectionMode) Valid() bool {
	return m == CollectClassAttributes || m == CollectWords
}

// defaultCollection maps markup extensions to attribute collection. Any
// other extension is collected as text.
var defaultCollection = map[string]CollectionMode{
	"html":   CollectClassAttributes,
	"htm":    CollectClassAttributes,
	"templ":  CollectClassAttributes,
	"jsx":    CollectClassAttributes,
	"tsx":    CollectClassAttributes,
	"vue":    CollectClassAttributes,
	"svelte": CollectClassAttributes,
	"astro":  CollectClassAttributes,
	"erb":    CollectClassAttributes,
	"php":    CollectClassAttributes,
}

// collectionMode picks the mode for path by extension, overrides first
func collectionMode(path string, overrides map[string]CollectionMode) CollectionMode {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if mode, ok := overrides[ext]; ok {
		return mode
	}
	if mode, ok := defaultCollection[ext]; ok {
		return mode
	}
	return CollectWords
}

// scanPattern represents a regex pattern for finding class attributes
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Patterns for finding class attribute values. Group 1 is the value.
	patterns = []scanPattern{
		{
			name:  "class attribute with double quotes",
			regex: regexp.MustCompile(`\bclass="([^"]*)"`),
		},
		{
			name:  "class attribute with single quotes",
			regex: regexp.MustCompile(`\bclass='([^']*)'`),
		},
		{
			name:  "className attribute",
			regex: regexp.MustCompile(`\bclassName=(?:"([^"]*)"|'([^']*)')`),
		},
		{
			name:  "class with string literal in braces",
			regex: regexp.MustCompile(`\bclass(?:Name)?=\{\s*"([^"]*)"`),
		},
	}

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*//`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isDependencyPath reports whether path lies inside a node_modules directory
func isDependencyPath(path string) bool {
	return slices.Contains(strings.Split(filepath.ToSlash(path), "/"), "node_modules")
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Pattern check (fast): Skip anything under node_modules
// 2. Gitignore check: Skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isDependencyPath(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for class tokens.
// collection overrides the collection mode per file extension.
// Unreadable files do not stop the scan; they are reported in ScanResult.Err.
func ScanFiles(scanPatterns []string, collection map[string]CollectionMode) (*ScanResult, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{Stats: stats}
	for _, file := range files {
		tokens, err := scanFile(file, collectionMode(file, collection))
		if err != nil {
			result.Err = multierr.Append(result.Err, fmt.Errorf("scan %s: %w", file, err))
			continue
		}
		result.Files = append(result.Files, ScannedFile{Path: file, Tokens: tokens})
	}

	return result, nil
}

// expandGlobPatterns expands globs to file paths and tracks statistics
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class tokens
func scanFile(filePath string, mode CollectionMode) ([]ClassToken, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var tokens []ClassToken
	scanner := bufio.NewScanner(file)
	// Minified templates put whole documents on one line
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		tokens = append(tokens, extractClassesFromLine(scanner.Text(), lineNum, filePath, mode)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

// extractClassesFromLine extracts every class token from a line. In
// CollectClassAttributes mode only class attribute values are read; in
// CollectWords mode every word of the line is a token.
func extractClassesFromLine(line string, lineNum int, file string, mode CollectionMode) []ClassToken {
	if commentPattern.MatchString(line) {
		return nil
	}

	var fields []field
	switch mode {
	case CollectWords:
		fields = fieldsWithColumns(line, 0, len(line), isWordSeparator)
	default:
		for _, r := range attributeValues(line) {
			fields = append(fields, fieldsWithColumns(line, r[0], r[1], unicode.IsSpace)...)
		}
	}

	tokens := make([]ClassToken, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, ClassToken{
			Text: f.text,
			Location: FileLocation{
				File:   file,
				Line:   lineNum,
				Column: f.column,
				Text:   line,
			},
		})
	}

	return tokens
}

// attributeValues returns the byte ranges of every class attribute value in
// line, in line order
func attributeValues(line string) [][2]int {
	var ranges [][2]int

	for _, pattern := range patterns {
		for _, match := range pattern.regex.FindAllStringSubmatchIndex(line, -1) {
			// The first participating group holds the attribute value
			for g := 2; g+1 < len(match); g += 2 {
				if match[g] >= 0 {
					ranges = append(ranges, [2]int{match[g], match[g+1]})
					break
				}
			}
		}
	}

	// Patterns are checked one after another; restore line order
	slices.SortFunc(ranges, func(a, b [2]int) int { return a[0] - b[0] })
	return ranges
}

// isWordSeparator splits text-mode lines on whitespace and string quotes
func isWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '"' || r == '\'' || r == '`'
}

type field struct {
	text   string
	column int
}

// fieldsWithColumns splits line[start:end] into fields separated by runes
// matching isSep and returns each field with its 1-based column. Columns
// count characters, not bytes.
func fieldsWithColumns(line string, start, end int, isSep func(rune) bool) []field {
	var fields []field
	column := utf8.RuneCountInString(line[:start]) + 1
	fieldStart, fieldColumn := -1, 0

	for i, r := range line[start:end] {
		if isSep(r) {
			if fieldStart >= 0 {
				fields = append(fields, field{text: line[fieldStart : start+i], column: fieldColumn})
				fieldStart = -1
			}
		} else if fieldStart < 0 {
			fieldStart, fieldColumn = start+i, column
		}
		column++
	}
	if fieldStart >= 0 {
		fields = append(fields, field{text: line[fieldStart:end], column: fieldColumn})
	}

	return fields
}

// source converts the scanned tokens into resolver input
func (f ScannedFile) source() engine.Source {
	tokens := make([]engine.Token, len(f.Tokens))
	for i, tok := range f.Tokens {
		tokens[i] = engine.Token{
			Text: tok.Text,
			Pos:  engine.Position{Line: tok.Location.Line, Column: tok.Location.Column},
		}
	}
	return engine.Source{Path: f.Path, Tokens: tokens}
}

// lineText returns the source line for a 1-based line number, if a token
// was found on it
func (f ScannedFile) lineText(line int) (string, bool) {
	for _, tok := range f.Tokens {
		if tok.Location.Line == line {
			return tok.Location.Text, true
		}
	}
	return "", false
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
