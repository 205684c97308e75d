package scan

import "iter"

// Scanner holds a borrowed source buffer and an optional location label.
// It is immutable and cheap to construct; every Scan call starts an
// independent cursor over the same buffer, so concurrent scans are fine.
type Scanner struct {
	source   string
	location string
}

func New(source string, location string) *Scanner {
	return &Scanner{
		source:   source,
		location: location,
	}
}

// Scan returns a lazy, single-pass sequence over the source. Each item
// carries either a token or an error, never both. Errors are recoverable:
// the sequence continues with the item after the offending input, so one
// pass can surface every lexical error. The final item of a completed
// scan is a single TokenEOF token whose span is the point [N, N], N being
// the character count of the source.
func (s *Scanner) Scan() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		c := &cursor{
			source:   s.source,
			location: s.location,
		}
		for {
			token, err := c.next()
			if err != nil {
				if err.Kind == ErrUnexpectedEndOfInput {
					// exhaustion sentinel, not a diagnostic
					return
				}
				if !yield(Token{}, err) {
					return
				}
				continue
			}
			if !yield(token, nil) {
				return
			}
			if token.Kind == TokenEOF {
				return
			}
		}
	}
}

// Tokens filters a scan sequence down to its tokens, discarding errors.
func Tokens(seq iter.Seq2[Token, error]) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for token, err := range seq {
			if err != nil {
				continue
			}
			if !yield(token) {
				return
			}
		}
	}
}
