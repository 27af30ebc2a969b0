package utilcss

import (
	"fmt"
	"slices"
	"strings"
)

// WarningKind is the closed set of resolution failures.
type WarningKind int

const (
	// KindStateNotFound reports an unknown variant or axis ("hover", "x").
	KindStateNotFound WarningKind = iota
	// KindClassNotFound reports a token that no family claimed.
	KindClassNotFound
	// KindTooManyArgs reports a token with more arguments than MaxArgs.
	KindTooManyArgs
	// KindInvalidArg reports an argument missing from the category's table.
	KindInvalidArg
)

// String returns the snake_case name used in structured output.
func (k WarningKind) String() string {
	switch k {
	case KindStateNotFound:
		return "state_not_found"
	case KindClassNotFound:
		return "class_not_found"
	case KindTooManyArgs:
		return "too_many_args"
	case KindInvalidArg:
		return "invalid_arg"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// WarningType describes why a token could not be resolved. It carries no
// position; Warning attaches one.
type WarningType struct {
	Kind     WarningKind
	Received string   // offending state or argument
	Count    int      // TooManyArgs: arguments received
	Required int      // TooManyArgs: maximum accepted
	Allowed  []string // InvalidArg: every accepted argument
}

// StateNotFound builds a KindStateNotFound warning type.
func StateNotFound(received string) *WarningType {
	return &WarningType{Kind: KindStateNotFound, Received: received}
}

// ClassNotFound builds a KindClassNotFound warning type.
func ClassNotFound() *WarningType {
	return &WarningType{Kind: KindClassNotFound}
}

// TooManyArgs builds a KindTooManyArgs warning type.
func TooManyArgs(received, required int) *WarningType {
	return &WarningType{Kind: KindTooManyArgs, Count: received, Required: required}
}

// InvalidArg builds a KindInvalidArg warning type. The allowed set is copied.
func InvalidArg(received string, allowed []string) *WarningType {
	return &WarningType{Kind: KindInvalidArg, Received: received, Allowed: slices.Clone(allowed)}
}

// Error implements error without the class context.
func (t *WarningType) Error() string {
	switch t.Kind {
	case KindStateNotFound:
		return fmt.Sprintf("'%s' is not a valid state", t.Received)
	case KindClassNotFound:
		return "class not found"
	case KindTooManyArgs:
		return fmt.Sprintf("too many arguments, got '%d' but required '%d'", t.Count, t.Required)
	case KindInvalidArg:
		return fmt.Sprintf("invalid argument '%s'", t.Received)
	default:
		return t.Kind.String()
	}
}

// Message renders the human readable text for the given class.
func (t *WarningType) Message(class string) string {
	switch t.Kind {
	case KindStateNotFound:
		return fmt.Sprintf("Could not match state at class '%s', '%s' is not a valid state", class, t.Received)
	case KindClassNotFound:
		return fmt.Sprintf("Could not match class '%s'", class)
	case KindTooManyArgs:
		return fmt.Sprintf("Could not match class '%s', too many arguments, got '%d' but required '%d'",
			class, t.Count, t.Required)
	case KindInvalidArg:
		return fmt.Sprintf("Could not match class '%s', invalid argument '%s', possible arguments: '%s'",
			class, t.Received, strings.Join(t.Allowed, ", "))
	default:
		return fmt.Sprintf("Could not match class '%s'", class)
	}
}

// Position is a 1-based line/column in source text.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String formats the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Warning is a positioned resolution failure for one token.
type Warning struct {
	Type  *WarningType
	Pos   Position
	Class string
}

// NewWarning attaches a position and the offending class to a warning type.
func NewWarning(class string, pos Position, t *WarningType) *Warning {
	return &Warning{Type: t, Pos: pos, Class: class}
}

// Kind is a shortcut for w.Type.Kind.
func (w *Warning) Kind() WarningKind {
	return w.Type.Kind
}

// Message returns the message without the position prefix.
func (w *Warning) Message() string {
	return w.Type.Message(w.Class)
}

// String renders "Warning on Line: L, Col: C; message".
func (w *Warning) String() string {
	return fmt.Sprintf("Warning on Line: %d, Col: %d; %s", w.Pos.Line, w.Pos.Column, w.Message())
}

func (w *Warning) Error() string {
	return w.String()
}

// Unwrap exposes the underlying WarningType to errors.As.
func (w *Warning) Unwrap() error {
	return w.Type
}
