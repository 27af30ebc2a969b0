package utilcss

// OutcomeKind is the result of asking one category about a class.
type OutcomeKind int

const (
	// OutcomeNotMine means the class belongs to some other category.
	OutcomeNotMine OutcomeKind = iota
	// OutcomeInvalid means the class is structurally this category's but
	// cannot be resolved. It must be reported, never retried elsewhere.
	OutcomeInvalid
	// OutcomeMatched carries a resolved variant.
	OutcomeMatched
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNotMine:
		return "not-mine"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Outcome is what Category.Attempt returns.
type Outcome struct {
	Kind     OutcomeKind
	Category string       // category that claimed the class; empty for NotMine
	Variant  Variant      // set for OutcomeMatched
	Reason   *WarningType // set for OutcomeInvalid
}

// NotMine returns an OutcomeNotMine.
func NotMine() Outcome {
	return Outcome{Kind: OutcomeNotMine}
}

// Invalid returns an OutcomeInvalid blamed on category.
func Invalid(category string, reason *WarningType) Outcome {
	return Outcome{Kind: OutcomeInvalid, Category: category, Reason: reason}
}

// Matched returns an OutcomeMatched for v.
func Matched(v Variant) Outcome {
	return Outcome{Kind: OutcomeMatched, Category: v.Category(), Variant: v}
}

// Variant is the typed result of a successful match.
type Variant interface {
	// Category names the category that produced the variant.
	Category() string
	// Decl converts the variant into a declaration. It can still fail, for
	// example when an arbitrary value is not valid CSS.
	Decl() (Decl, error)
}

// Category is one utility family member (padding, margin, ...) or a whole
// family dispatching over its members.
type Category interface {
	Name() string
	Attempt(c Class) Outcome
}

// Decl is a single CSS declaration.
type Decl struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// String formats the declaration as "property: value".
func (d Decl) String() string {
	return d.Property + ": " + d.Value
}
