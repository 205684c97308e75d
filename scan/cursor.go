package scan

import (
	"strconv"
	"unicode/utf8"
)

// cursor walks the source one Unicode scalar value at a time, tracking
// the byte offset and the character index together so literal slicing can
// use byte ranges while spans count characters.
type cursor struct {
	source   string
	location string

	byteOffset int // byte position of the next unread character
	charIndex  int // character position of the next unread character
	line       int
	terminated bool
}

// next produces one item: a token, or a recoverable error. After an error
// the cursor stays usable and resumes right after the consumed input.
// Once the EOF token has been produced, every further call returns the
// errEndOfInput sentinel.
func (c *cursor) next() (Token, *Error) {
	if c.exhausted() {
		if c.terminated {
			return Token{}, errEndOfInput
		}
		c.terminated = true
		return Token{
			Kind: TokenEOF,
			Span: Span{Start: c.charIndex, End: c.charIndex},
		}, nil
	}

	start := c.charIndex
	startByte := c.byteOffset
	r, ok := c.advance()
	if !ok {
		return Token{}, errEndOfInput
	}

	switch r {
	case '(':
		return c.emit(TokenLeftParen, start)
	case ')':
		return c.emit(TokenRightParen, start)
	case '{':
		return c.emit(TokenLeftBrace, start)
	case '}':
		return c.emit(TokenRightBrace, start)
	case ',':
		return c.emit(TokenComma, start)
	case '.':
		return c.emit(TokenDot, start)
	case '-':
		return c.emit(TokenMinus, start)
	case '+':
		return c.emit(TokenPlus, start)
	case ';':
		return c.emit(TokenSemicolon, start)
	case '*':
		return c.emit(TokenStar, start)
	case '!':
		if c.find('=') {
			return c.emit(TokenBangEqual, start)
		}
		return c.emit(TokenBang, start)
	case '=':
		if c.find('=') {
			return c.emit(TokenEqualEqual, start)
		}
		return c.emit(TokenEqual, start)
	case '<':
		if c.find('=') {
			return c.emit(TokenLessEqual, start)
		}
		return c.emit(TokenLess, start)
	case '>':
		if c.find('=') {
			return c.emit(TokenGreaterEqual, start)
		}
		return c.emit(TokenGreater, start)
	case '/':
		if c.find('/') {
			// line comment, discard up to the newline
			c.consumeUntil('\n')
			return c.next()
		}
		return c.emit(TokenSlash, start)
	case ' ', '\r', '\t':
		return c.next()
	case '\n':
		c.line++
		return c.next()
	case '"':
		return c.scanString(start, startByte)
	}

	switch {
	case isDigit(r):
		return c.scanNumber(start, startByte)
	case isAlpha(r):
		return c.scanIdentifier(start, startByte)
	}

	// The character is already consumed, so the next call resumes right
	// after it. That is the whole recovery mechanism.
	return Token{}, &Error{
		Kind:     ErrUnexpectedCharacter,
		Char:     r,
		Line:     c.line,
		Column:   c.charIndex - 1,
		Location: c.location,
	}
}

// scanString is entered with the opening quote already consumed.
func (c *cursor) scanString(start, startByte int) (Token, *Error) {
	if !c.consumeUntil('"') {
		return Token{}, &Error{
			Kind:     ErrUnterminatedString,
			Start:    start,
			Line:     c.line,
			Column:   c.charIndex,
			Location: c.location,
		}
	}

	closeByte := c.byteOffset
	c.advance() // closing quote

	text, err := c.slice(startByte+1, closeByte)
	if err != nil {
		return Token{}, err
	}
	return Token{
		Kind: TokenString,
		Text: text,
		Span: Span{Start: start, End: c.charIndex - 1},
	}, nil
}

// scanNumber is entered with the first digit already consumed. A trailing
// dot with no digit after it is left for the next token.
func (c *cursor) scanNumber(start, startByte int) (Token, *Error) {
	c.consumeDigits()

	if r, ok := c.peek(); ok && r == '.' {
		if r, ok := c.peekNth(1); ok && isDigit(r) {
			c.advance()
			c.consumeDigits()
		}
	}

	lexeme, err := c.slice(startByte, c.byteOffset)
	if err != nil {
		return Token{}, err
	}

	n, floatErr := strconv.ParseFloat(lexeme, 64)
	if floatErr != nil {
		u, uintErr := strconv.ParseUint(lexeme, 10, 64)
		if uintErr != nil {
			return Token{}, &Error{
				Kind:     ErrInvalidNumber,
				Start:    start,
				Lexeme:   lexeme,
				Line:     c.line,
				Column:   c.charIndex - 1,
				Location: c.location,
			}
		}
		n = float64(u)
	}

	return Token{
		Kind:   TokenNumber,
		Text:   lexeme,
		Number: n,
		Span:   Span{Start: start, End: c.charIndex - 1},
	}, nil
}

// scanIdentifier is entered with the first letter already consumed.
func (c *cursor) scanIdentifier(start, startByte int) (Token, *Error) {
	for {
		r, ok := c.peek()
		if !ok || !isAlphaNumeric(r) {
			break
		}
		c.advance()
	}

	lexeme, err := c.slice(startByte, c.byteOffset)
	if err != nil {
		return Token{}, err
	}

	kind, ok := keywords[lexeme]
	if !ok {
		kind = TokenIdentifier
	}
	return Token{
		Kind: kind,
		Text: lexeme,
		Span: Span{Start: start, End: c.charIndex - 1},
	}, nil
}

func (c *cursor) emit(kind TokenKind, start int) (Token, *Error) {
	return Token{
		Kind: kind,
		Span: Span{Start: start, End: c.charIndex - 1},
	}, nil
}

func (c *cursor) exhausted() bool {
	return c.byteOffset >= len(c.source)
}

func (c *cursor) advance() (rune, bool) {
	if c.exhausted() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.source[c.byteOffset:])
	c.byteOffset += size
	c.charIndex++
	return r, true
}

func (c *cursor) peek() (rune, bool) {
	return c.peekNth(0)
}

func (c *cursor) peekNth(n int) (rune, bool) {
	offset := c.byteOffset
	for {
		if offset >= len(c.source) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(c.source[offset:])
		if n == 0 {
			return r, true
		}
		offset += size
		n--
	}
}

// find consumes the next character only on an exact match.
func (c *cursor) find(expected rune) bool {
	r, ok := c.peek()
	if !ok || r != expected {
		return false
	}
	c.advance()
	return true
}

// consumeUntil advances to just before the next occurrence of expected,
// counting newlines on the way. Reports whether expected was reached
// before the input ran out.
func (c *cursor) consumeUntil(expected rune) bool {
	for {
		r, ok := c.peek()
		if !ok {
			return false
		}
		if r == expected {
			return true
		}
		c.advance()
		if r == '\n' {
			c.line++
		}
	}
}

func (c *cursor) consumeDigits() {
	for {
		r, ok := c.peek()
		if !ok || !isDigit(r) {
			return
		}
		c.advance()
	}
}

// slice cuts the byte range [startByte, endByte) out of the source. The
// bounds come from the cursor's own bookkeeping; a range that is out of
// bounds or not character-aligned means the dual offset tracking broke.
func (c *cursor) slice(startByte, endByte int) (string, *Error) {
	valid := startByte >= 0 &&
		startByte <= endByte &&
		endByte <= len(c.source) &&
		(startByte == len(c.source) || utf8.RuneStart(c.source[startByte])) &&
		(endByte == len(c.source) || utf8.RuneStart(c.source[endByte]))
	if !valid {
		return "", &Error{
			Kind:     ErrInvalidSlice,
			Line:     c.line,
			Column:   c.charIndex,
			Location: c.location,
		}
	}
	return c.source[startByte:endByte], nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
