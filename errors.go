package easing

import (
	"fmt"
)

// ValidationError reports numeric input that cannot describe a curve, such as
// the wrong number of coordinates or non-finite values, as well as invalid
// construction arguments.
type ValidationError struct {
	// Op names the operation that rejected the input.
	Op     string
	Reason string
	// Err is the underlying error, if any. It is set when a widget is
	// constructed from text that failed to parse.
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// SyntaxError reports malformed timing-function text.
type SyntaxError struct {
	Input string
	// Offset is the byte offset in Input at which the problem was detected.
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid timing function %q at offset %d: %s", e.Input, e.Offset, e.Msg)
}

// UnknownKeywordError reports a keyword that names no preset.
type UnknownKeywordError struct {
	Keyword string
}

func (e *UnknownKeywordError) Error() string {
	return fmt.Sprintf("unknown timing function keyword %q", e.Keyword)
}

// UseAfterDestroyError is returned by every method of a destroyed [Widget].
type UseAfterDestroyError struct {
	Op string
}

func (e *UseAfterDestroyError) Error() string {
	return fmt.Sprintf("%s: widget has been destroyed", e.Op)
}
