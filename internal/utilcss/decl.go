package utilcss

import (
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// spaceBetweenSelector targets every child after the first.
const spaceBetweenSelector = " > :not([hidden]) ~ :not([hidden])"

// Padding is a matched padding class.
type Padding struct {
	Side  Side
	Value Value
}

func (p Padding) Category() string { return CategoryPadding }

func (p Padding) Decl() (Decl, error) {
	value, err := p.Value.emit()
	if err != nil {
		return Decl{}, err
	}
	return Decl{Property: p.Side.Property("padding"), Value: value}, nil
}

// Margin is a matched margin class.
type Margin struct {
	Side  Side
	Value Value
}

func (m Margin) Category() string { return CategoryMargin }

func (m Margin) Decl() (Decl, error) {
	value, err := m.Value.emit()
	if err != nil {
		return Decl{}, err
	}
	return Decl{Property: m.Side.Property("margin"), Value: value}, nil
}

// SpaceBetween is a matched space-x/space-y class. Reverse classes emit the
// --tw-space-{axis}-reverse marker instead of a margin.
type SpaceBetween struct {
	Axis    Axis
	Value   Value
	Reverse bool
}

func (s SpaceBetween) Category() string { return CategorySpaceBetween }

func (s SpaceBetween) Decl() (Decl, error) {
	if s.Reverse {
		return Decl{Property: fmt.Sprintf("--tw-space-%s-reverse", s.Axis), Value: "1"}, nil
	}

	value, err := s.Value.emit()
	if err != nil {
		return Decl{}, err
	}

	property := "margin-inline-start"
	if s.Axis == AxisY {
		property = "margin-block-start"
	}
	return Decl{Property: property, Value: value}, nil
}

// SelectorSuffix applies space-between rules to following siblings.
func (s SpaceBetween) SelectorSuffix() string {
	return spaceBetweenSelector
}

// emit returns the final CSS value. Table values are returned verbatim;
// arbitrary values are checked with the CSS lexer first.
func (v Value) emit() (string, error) {
	if !v.Arbitrary {
		return v.CSS, nil
	}

	if err := validateArbitrary(v.CSS); err != nil {
		var keys []string
		if v.table != nil {
			keys = v.table.Keys()
		}
		return "", InvalidArg(v.Arg, keys)
	}

	if v.Negative {
		return "calc(" + v.CSS + " * -1)", nil
	}
	return v.CSS, nil
}

var errEmptyValue = errors.New("empty value")

// validateArbitrary rejects values that would break out of a declaration or
// swallow the rules after it: delimiters, comments, bad strings and urls,
// and unbalanced parentheses.
func validateArbitrary(value string) error {
	lexer := css.NewLexer(parse.NewInputString(value))
	depth := 0
	tokens := 0

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return err
			}
			if depth != 0 {
				return fmt.Errorf("unbalanced parentheses in %q", value)
			}
			if tokens == 0 {
				return errEmptyValue
			}
			return nil
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken,
			css.CommentToken, css.BadStringToken, css.BadURLToken, css.CDOToken, css.CDCToken:
			return fmt.Errorf("unexpected %s %q", tt, text)
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth < 0 {
				return fmt.Errorf("unbalanced parentheses in %q", value)
			}
		case css.WhitespaceToken:
			continue
		}
		tokens++
	}
}
