package wrangle

import "fmt"

// ParseError is raised synchronously by the recipe parser. It always
// carries the 1-based source line and, where the directive has a usage
// template registered, that template (spec.md §7).
type ParseError struct {
	Line      int
	Directive string
	Field     string
	Usage     string
	Msg       string
}

func (e *ParseError) Error() string { return e.Msg }

func newUnknownDirectiveError(name string, line int) *ParseError {
	return &ParseError{
		Line:      line,
		Directive: name,
		Msg:       fmt.Sprintf("Unknown directive '%s' at line %d", name, line),
	}
}

func newMissingFieldError(directive, field string, line int, usage string) *ParseError {
	return &ParseError{
		Line:      line,
		Directive: directive,
		Field:     field,
		Usage:     usage,
		Msg: fmt.Sprintf("Missing field '%s' at line %d for directive %s (usage: %s)",
			field, line, directive, usage),
	}
}

// NewDirectiveError builds a directive-specific parse failure (malformed
// number, unsupported option, empty literal, bad escape, ...) tied to the
// line it was raised on.
func NewDirectiveError(directive string, line int, format string, args ...any) *ParseError {
	return &ParseError{
		Line:      line,
		Directive: directive,
		Usage:     Usage(directive),
		Msg:       fmt.Sprintf(format, args...) + fmt.Sprintf(" at line %d", line),
	}
}

// StepError is raised during execution. It carries the offending
// directive's source text and line number alongside the underlying cause
// so callers can distinguish categories (missing column, type mismatch,
// malformed input, expression failure) via errors.As/errors.Is on the
// wrapped Err.
type StepError struct {
	Line      int
	Directive string
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step failed at line %d (%s): %v", e.Line, e.Directive, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
