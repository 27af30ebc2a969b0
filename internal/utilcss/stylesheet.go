package utilcss

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Rule is one CSS rule produced from a resolved token.
type Rule struct {
	Selector string
	Decl     Decl
	Media    string // breakpoint name, empty for base rules
}

// Rules converts resolved tokens into rules. Duplicate tokens keep their
// first occurrence.
func Rules(reg *Registry, resolved []Resolved) []Rule {
	seen := make(map[string]bool, len(resolved))
	rules := make([]Rule, 0, len(resolved))

	for _, r := range resolved {
		if seen[r.Token.Text] {
			continue
		}
		seen[r.Token.Text] = true

		var selector strings.Builder
		selector.WriteString(".")
		selector.WriteString(EscapeIdent(r.Token.Text))

		media := ""
		for _, v := range r.Class.Variants {
			if pseudo, ok := reg.States.Lookup(v); ok {
				selector.WriteString(pseudo)
				continue
			}
			if _, ok := reg.Breakpoints.Lookup(v); ok {
				media = v
			}
		}

		if s, ok := r.Variant.(interface{ SelectorSuffix() string }); ok {
			selector.WriteString(s.SelectorSuffix())
		}

		rules = append(rules, Rule{Selector: selector.String(), Decl: r.Decl, Media: media})
	}

	return rules
}

// BuildStylesheet renders resolved tokens as CSS text. Base rules come first
// in token order, followed by one @media block per breakpoint ordered by
// minimum width.
func BuildStylesheet(reg *Registry, resolved []Resolved) string {
	rules := Rules(reg, resolved)

	var base []Rule
	byMedia := make(map[string][]Rule)
	for _, rule := range rules {
		if rule.Media == "" {
			base = append(base, rule)
			continue
		}
		byMedia[rule.Media] = append(byMedia[rule.Media], rule)
	}

	var b strings.Builder
	for i, rule := range base {
		if i > 0 {
			b.WriteString("\n")
		}
		writeRule(&b, rule, "")
	}

	for _, media := range sortedBreakpoints(reg, byMedia) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		width, _ := reg.Breakpoints.Lookup(media)
		fmt.Fprintf(&b, "@media (min-width: %s) {\n", width)
		for i, rule := range byMedia[media] {
			if i > 0 {
				b.WriteString("\n")
			}
			writeRule(&b, rule, "  ")
		}
		b.WriteString("}\n")
	}

	return b.String()
}

func writeRule(b *strings.Builder, rule Rule, indent string) {
	fmt.Fprintf(b, "%s%s {\n", indent, rule.Selector)
	fmt.Fprintf(b, "%s  %s;\n", indent, rule.Decl)
	fmt.Fprintf(b, "%s}\n", indent)
}

// sortedBreakpoints orders the used breakpoints by their pixel width.
func sortedBreakpoints(reg *Registry, byMedia map[string][]Rule) []string {
	names := make([]string, 0, len(byMedia))
	for name := range byMedia {
		names = append(names, name)
	}

	width := func(name string) int {
		v, _ := reg.Breakpoints.Lookup(name)
		n, err := strconv.Atoi(strings.TrimSuffix(v, "px"))
		if err != nil {
			return int(^uint(0) >> 1)
		}
		return n
	}

	sort.Slice(names, func(i, j int) bool {
		wi, wj := width(names[i]), width(names[j])
		if wi != wj {
			return wi < wj
		}
		return names[i] < names[j]
	})
	return names
}

// EscapeIdent escapes a class token for use in a CSS class selector:
// "hover:mt-[3px]" -> `hover\:mt-\[3px\]`.
func EscapeIdent(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9' && (i == 0 || (i == 1 && s[0] == '-')):
			// A digit cannot start an identifier; use the code point form.
			fmt.Fprintf(&b, "\\%x ", r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r >= 0x80:
			b.WriteRune(r)
		default:
			b.WriteRune('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
