// Package utilcss resolves utility class tokens such as "mt-4" or
// "hover:space-x-2" into CSS declarations using embedded lookup tables.
// Tokens that cannot be resolved produce a positioned *Warning.
package utilcss

import "strings"

// MaxArgs is the token-wide argument limit, checked before any family runs.
// Spacing classes use at most two ("space-x-reverse"); the limit leaves room
// for families with longer forms.
const MaxArgs = 3

// Class is a token split into its parts.
//
//	"hover:-mt-[3px]" -> Variants ["hover"], Negative, Name "mt", Args ["[3px]"]
type Class struct {
	Raw      string
	Variants []string
	Negative bool
	Name     string
	Args     []string
}

// Arg returns the i-th argument, or "" when the token has fewer arguments.
func (c Class) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

// ExtractClass splits a raw token into variants, class name and arguments.
// A token carrying more than MaxArgs arguments fails with TooManyArgs.
func ExtractClass(token string) (Class, error) {
	class := Class{Raw: token}

	parts := splitOutsideBrackets(token, ':')
	class.Variants = parts[:len(parts)-1]
	rest := parts[len(parts)-1]

	if strings.HasPrefix(rest, "-") {
		class.Negative = true
		rest = rest[1:]
	}

	segments := splitOutsideBrackets(rest, '-')
	class.Name = segments[0]
	class.Args = segments[1:]

	if len(class.Args) > MaxArgs {
		return class, TooManyArgs(len(class.Args), MaxArgs)
	}

	return class, nil
}

// splitOutsideBrackets splits s on sep, ignoring separators inside [...].
func splitOutsideBrackets(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

// isArbitrary reports whether arg uses the bracketed arbitrary value syntax.
func isArbitrary(arg string) bool {
	return len(arg) >= 2 && arg[0] == '[' && arg[len(arg)-1] == ']'
}

// arbitraryValue unwraps "[1px_2px]" into "1px 2px".
func arbitraryValue(arg string) string {
	return strings.ReplaceAll(arg[1:len(arg)-1], "_", " ")
}
