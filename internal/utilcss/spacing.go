package utilcss

import "strings"

// Category names.
const (
	CategoryPadding      = "padding"
	CategoryMargin       = "margin"
	CategorySpaceBetween = "space-between"
	FamilySpacing        = "spacing"
)

// Side is the box edge (or edge pair) a padding or margin class targets.
type Side int

const (
	SideAll Side = iota
	SideInline
	SideBlock
	SideTop
	SideRight
	SideBottom
	SideLeft
	SideInlineStart
	SideInlineEnd
)

// sideSuffixes maps the letter after "p"/"m" to a side: "mt" -> SideTop.
var sideSuffixes = map[string]Side{
	"":  SideAll,
	"x": SideInline,
	"y": SideBlock,
	"t": SideTop,
	"r": SideRight,
	"b": SideBottom,
	"l": SideLeft,
	"s": SideInlineStart,
	"e": SideInlineEnd,
}

// Property returns the CSS property for base ("padding", "margin") on s.
func (s Side) Property(base string) string {
	switch s {
	case SideInline:
		return base + "-inline"
	case SideBlock:
		return base + "-block"
	case SideTop:
		return base + "-top"
	case SideRight:
		return base + "-right"
	case SideBottom:
		return base + "-bottom"
	case SideLeft:
		return base + "-left"
	case SideInlineStart:
		return base + "-inline-start"
	case SideInlineEnd:
		return base + "-inline-end"
	default:
		return base
	}
}

// parseSide matches names like "p", "px", "mt" against prefix.
func parseSide(name, prefix string) (Side, bool) {
	suffix, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return 0, false
	}
	side, ok := sideSuffixes[suffix]
	return side, ok
}

// Axis is the direction of a space-between class.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Value is a resolved class argument.
type Value struct {
	Arg       string // argument as written: "4", "[3px]"
	CSS       string // table value, or the unwrapped arbitrary value
	Arbitrary bool
	Negative  bool
	table     *Table
}

// lookupValue resolves arg against table. Arbitrary values are accepted here
// and validated when the declaration is emitted.
func lookupValue(table *Table, arg string, negative bool) (Value, *WarningType) {
	if isArbitrary(arg) {
		return Value{Arg: arg, CSS: arbitraryValue(arg), Arbitrary: true, Negative: negative, table: table}, nil
	}

	css, ok := table.Lookup(arg)
	if !ok {
		return Value{}, InvalidArg(arg, table.Keys())
	}

	if negative {
		neg, ok := negate(css)
		if !ok {
			return Value{}, InvalidArg(arg, table.Keys())
		}
		css = neg
	}

	return Value{Arg: arg, CSS: css, Negative: negative, table: table}, nil
}

// negate flips the sign of a numeric CSS length. Zero stays as is and
// keywords such as "auto" cannot be negated.
func negate(css string) (string, bool) {
	if strings.TrimLeft(css, "0.") == "" || strings.TrimLeft(css, "0.") == "px" {
		return css, true
	}
	if c := css[0]; (c >= '0' && c <= '9') || c == '.' {
		return "-" + css, true
	}
	return "", false
}

// joinArgs treats every argument after the class name as one value, so
// "p-4-5" reports "4-5" as the invalid argument.
func joinArgs(args []string) string {
	return strings.Join(args, "-")
}

// PaddingCategory recognizes p, px, py, pt, pr, pb, pl, ps and pe.
type PaddingCategory struct {
	table *Table
}

// NewPaddingCategory returns the padding category backed by table.
func NewPaddingCategory(table *Table) *PaddingCategory {
	return &PaddingCategory{table: table}
}

func (p *PaddingCategory) Name() string { return CategoryPadding }

func (p *PaddingCategory) Attempt(c Class) Outcome {
	side, ok := parseSide(c.Name, "p")
	if !ok || c.Negative {
		return NotMine()
	}

	value, reason := lookupValue(p.table, joinArgs(c.Args), false)
	if reason != nil {
		return Invalid(CategoryPadding, reason)
	}

	return Matched(Padding{Side: side, Value: value})
}

// MarginCategory recognizes m, mx, my, mt, mr, mb, ml, ms and me, including
// negative forms.
type MarginCategory struct {
	table *Table
}

// NewMarginCategory returns the margin category backed by table.
func NewMarginCategory(table *Table) *MarginCategory {
	return &MarginCategory{table: table}
}

func (m *MarginCategory) Name() string { return CategoryMargin }

func (m *MarginCategory) Attempt(c Class) Outcome {
	side, ok := parseSide(c.Name, "m")
	if !ok {
		return NotMine()
	}

	value, reason := lookupValue(m.table, joinArgs(c.Args), c.Negative)
	if reason != nil {
		return Invalid(CategoryMargin, reason)
	}

	return Matched(Margin{Side: side, Value: value})
}

// SpaceBetweenCategory recognizes space-x-*, space-y-* and the -reverse
// markers.
type SpaceBetweenCategory struct {
	table *Table
}

// NewSpaceBetweenCategory returns the space-between category backed by table.
func NewSpaceBetweenCategory(table *Table) *SpaceBetweenCategory {
	return &SpaceBetweenCategory{table: table}
}

func (s *SpaceBetweenCategory) Name() string { return CategorySpaceBetween }

func (s *SpaceBetweenCategory) Attempt(c Class) Outcome {
	if c.Name != "space" {
		return NotMine()
	}

	axis := Axis(c.Arg(0))
	if axis != AxisX && axis != AxisY {
		return Invalid(CategorySpaceBetween, StateNotFound(string(axis)))
	}

	arg := ""
	if len(c.Args) > 1 {
		arg = joinArgs(c.Args[1:])
	}

	if arg == "reverse" && !c.Negative {
		return Matched(SpaceBetween{Axis: axis, Reverse: true})
	}

	value, reason := lookupValue(s.table, arg, c.Negative)
	if reason != nil {
		return Invalid(CategorySpaceBetween, reason)
	}

	return Matched(SpaceBetween{Axis: axis, Value: value})
}

// Spacing dispatches over padding, margin and space-between, in that order.
// The first category that claims a class decides the outcome.
type Spacing struct {
	categories []Category
}

// NewSpacing builds the spacing family from reg.
func NewSpacing(reg *Registry) *Spacing {
	return &Spacing{
		categories: []Category{
			NewPaddingCategory(reg.Padding),
			NewMarginCategory(reg.Margin),
			NewSpaceBetweenCategory(reg.SpaceBetween),
		},
	}
}

func (s *Spacing) Name() string { return FamilySpacing }

// Attempt returns the outcome of the first category that does not answer
// OutcomeNotMine.
func (s *Spacing) Attempt(c Class) Outcome {
	for _, category := range s.categories {
		if out := category.Attempt(c); out.Kind != OutcomeNotMine {
			return out
		}
	}
	return NotMine()
}
