package easing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const functionName = "cubic-bezier"

// Parse parses a CSS timing function using [DefaultLibrary] for keywords. See
// [Library.Parse].
func Parse(value string) (Coordinates, error) {
	return DefaultLibrary.Parse(value)
}

// Parse parses a CSS timing function. It accepts either a keyword naming one
// of l's presets, or the function form
//
//	cubic-bezier(<number>, <number>, <number>, <number>)
//
// where each number is an optionally signed decimal without exponent, such as
// 1, -0.5 or .25. Whitespace is allowed around the value, the parentheses and
// the commas.
//
// Parse doesn't clamp: coordinates are returned as written. Malformed text
// yields a *[SyntaxError], an unknown keyword an *[UnknownKeywordError].
func (l *Library) Parse(value string) (Coordinates, error) {
	sc := scanner{input: value}
	sc.skipSpace()
	if sc.done() {
		return Coordinates{}, sc.errorf("empty timing function")
	}
	rest := sc.rest()
	if !strings.HasPrefix(rest, functionName+"(") {
		if i := strings.IndexByte(rest, '('); i >= 0 {
			sc.pos += i
			return Coordinates{}, sc.errorf("unsupported function %q", rest[:i])
		}
		return l.Lookup(strings.TrimRight(rest, whitespace))
	}
	sc.pos += len(functionName) + 1

	var out Coordinates
	for i := range out {
		sc.skipSpace()
		v, err := sc.number()
		if err != nil {
			return Coordinates{}, err
		}
		out[i] = v
		sc.skipSpace()
		switch {
		case i < len(out)-1 && sc.peek() == ')':
			return Coordinates{}, sc.errorf("expected 4 arguments, got %d", i+1)
		case i < len(out)-1 && sc.peek() != ',':
			return Coordinates{}, sc.errorf("expected ','")
		case i == len(out)-1 && sc.peek() == ',':
			return Coordinates{}, sc.errorf("expected 4 arguments, got more")
		case i == len(out)-1 && sc.peek() != ')':
			return Coordinates{}, sc.errorf("expected ')'")
		}
		sc.pos++
	}
	sc.skipSpace()
	if !sc.done() {
		return Coordinates{}, sc.errorf("unexpected %q after ')'", sc.rest())
	}
	return out, nil
}

// Format returns the canonical function form of c, for example
// "cubic-bezier(0.25, 0.1, 0.25, 1)".
//
// Format never returns a keyword, even when c equals a preset; use
// [Library.Match] for that. Numbers are formatted with the fewest digits that
// parse back to the identical float64, so Parse(Format(c)) == c.
func Format(c Coordinates) string {
	var sb strings.Builder
	sb.WriteString(functionName)
	sb.WriteByte('(')
	for i, v := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

const whitespace = " \t\n\r\f"

type scanner struct {
	input string
	pos   int
}

func (sc *scanner) done() bool   { return sc.pos >= len(sc.input) }
func (sc *scanner) rest() string { return sc.input[sc.pos:] }

func (sc *scanner) peek() byte {
	if sc.done() {
		return 0
	}
	return sc.input[sc.pos]
}

func (sc *scanner) skipSpace() {
	for !sc.done() && strings.IndexByte(whitespace, sc.input[sc.pos]) >= 0 {
		sc.pos++
	}
}

func (sc *scanner) digits() int {
	start := sc.pos
	for !sc.done() && sc.input[sc.pos] >= '0' && sc.input[sc.pos] <= '9' {
		sc.pos++
	}
	return sc.pos - start
}

// number consumes [+-]?\d*(\.\d+)? with at least one digit.
func (sc *scanner) number() (float64, error) {
	start := sc.pos
	if c := sc.peek(); c == '+' || c == '-' {
		sc.pos++
	}
	n := sc.digits()
	if sc.peek() == '.' {
		sc.pos++
		if sc.digits() == 0 {
			return 0, sc.errorf("expected digit after '.'")
		}
		n++
	}
	if n == 0 {
		sc.pos = start
		return 0, sc.errorf("expected number")
	}
	v, err := strconv.ParseFloat(sc.input[start:sc.pos], 64)
	if err != nil {
		sc.pos = start
		if errors.Is(err, strconv.ErrRange) {
			return 0, sc.errorf("number out of range")
		}
		return 0, sc.errorf("invalid number: %s", err)
	}
	return v, nil
}

func (sc *scanner) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Input: sc.input, Offset: sc.pos, Msg: fmt.Sprintf(format, args...)}
}
