package scan

import "fmt"

// Error is a lexical error with enough context to rebuild its message and
// diagnostic span. Line is zero-based. Column is the absolute character
// index at which the error was detected.
type Error struct {
	Kind     ErrorKind
	Char     rune   // offending character, ErrUnexpectedCharacter
	Start    int    // lexeme start character index, ErrUnterminatedString and ErrInvalidNumber
	Lexeme   string // offending lexeme, ErrInvalidNumber
	Line     int
	Column   int
	Location string // optional source label, empty in REPL mode
}

type ErrorKind uint8

const (
	ErrUnexpectedCharacter ErrorKind = iota
	ErrUnterminatedString
	ErrInvalidNumber
	// ErrUnexpectedEndOfInput marks exhaustion of the character source
	// while looking for more input. It never reaches a caller.
	ErrUnexpectedEndOfInput
	// ErrInvalidSlice means a computed byte range was not aligned to
	// character boundaries. Broken invariant, not bad input.
	ErrInvalidSlice
)

var errEndOfInput = &Error{Kind: ErrUnexpectedEndOfInput}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnexpectedCharacter:
		return fmt.Sprintf("Unexpected character '%c' at %d", e.Char, e.Column)
	case ErrUnterminatedString:
		return fmt.Sprintf("Unterminated string that starts at %d", e.Start)
	case ErrInvalidNumber:
		return fmt.Sprintf("Invalid number: '%s'", e.Lexeme)
	case ErrUnexpectedEndOfInput:
		return "unexpected end of input"
	case ErrInvalidSlice:
		return "invalid internal slice"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(e.Kind))
}

// Span is the diagnostic underline range. Lexeme-anchored kinds expand
// back to the start of their lexeme, everything else is a single point at
// the detection column.
func (e *Error) Span() Span {
	switch e.Kind {
	case ErrUnterminatedString, ErrInvalidNumber:
		return Span{Start: e.Start, End: e.Column}
	}
	return Span{Start: e.Column, End: e.Column}
}

// Report formats the diagnostic header:
// "[{location}:{line}:{column}] {message}", the location part omitted
// when no label was given.
func (e *Error) Report() string {
	if e.Location != "" {
		return fmt.Sprintf("[%s:%d:%d] %s", e.Location, e.Line, e.Column, e.Error())
	}
	return fmt.Sprintf("[%d:%d] %s", e.Line, e.Column, e.Error())
}
