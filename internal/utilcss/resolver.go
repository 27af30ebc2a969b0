package utilcss

import "errors"

// Token is a raw class string and where it was found.
type Token struct {
	Text string
	Pos  Position
}

// Resolved is a token that produced a declaration.
type Resolved struct {
	Token   Token
	Class   Class
	Variant Variant
	Decl    Decl
}

// Resolver turns tokens into declarations by asking each family in order.
// It holds no mutable state and can be shared between goroutines.
type Resolver struct {
	reg      *Registry
	families []Category
}

// NewResolver returns a resolver over families, tried in the given order.
// With no families it uses the spacing family.
func NewResolver(reg *Registry, families ...Category) *Resolver {
	if len(families) == 0 {
		families = []Category{NewSpacing(reg)}
	}
	return &Resolver{reg: reg, families: families}
}

// Registry returns the tables the resolver was built with.
func (r *Resolver) Registry() *Registry {
	return r.reg
}

// Resolve resolves one token. The returned error is always a *Warning.
func (r *Resolver) Resolve(tok Token) (Resolved, error) {
	class, err := ExtractClass(tok.Text)
	if err != nil {
		return Resolved{}, r.warn(tok, err)
	}

	for _, variant := range class.Variants {
		if !r.knownVariant(variant) {
			return Resolved{}, r.warn(tok, StateNotFound(variant))
		}
	}

	for _, family := range r.families {
		out := family.Attempt(class)
		switch out.Kind {
		case OutcomeNotMine:
			continue
		case OutcomeInvalid:
			return Resolved{}, r.warn(tok, out.Reason)
		case OutcomeMatched:
			decl, err := out.Variant.Decl()
			if err != nil {
				return Resolved{}, r.warn(tok, err)
			}
			return Resolved{Token: tok, Class: class, Variant: out.Variant, Decl: decl}, nil
		}
	}

	return Resolved{}, r.warn(tok, ClassNotFound())
}

func (r *Resolver) knownVariant(name string) bool {
	if _, ok := r.reg.States.Lookup(name); ok {
		return true
	}
	_, ok := r.reg.Breakpoints.Lookup(name)
	return ok
}

func (r *Resolver) warn(tok Token, err error) *Warning {
	var wt *WarningType
	if !errors.As(err, &wt) {
		wt = ClassNotFound()
	}
	return NewWarning(tok.Text, tok.Pos, wt)
}
