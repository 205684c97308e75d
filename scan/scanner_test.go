package scan

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains one full scan, separating tokens from errors.
func collect(t *testing.T, source string) ([]Token, []*Error) {
	t.Helper()
	var tokens []Token
	var errs []*Error
	for token, err := range New(source, "").Scan() {
		if err != nil {
			errs = append(errs, err.(*Error))
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens, errs
}

func kinds(tokens []Token) []TokenKind {
	ret := make([]TokenKind, len(tokens))
	for i, token := range tokens {
		ret[i] = token.Kind
	}
	return ret
}

func TestPunctuation(t *testing.T) {
	tokens, errs := collect(t, "(){},.-+;*")
	require.Empty(t, errs)
	assert.Equal(t, []TokenKind{
		TokenLeftParen, TokenRightParen,
		TokenLeftBrace, TokenRightBrace,
		TokenComma, TokenDot, TokenMinus, TokenPlus,
		TokenSemicolon, TokenStar,
		TokenEOF,
	}, kinds(tokens))
	for i, token := range tokens[:10] {
		assert.Equal(t, Span{Start: i, End: i}, token.Span)
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		kinds []TokenKind
	}{
		{"!", []TokenKind{TokenBang, TokenEOF}},
		{"!=", []TokenKind{TokenBangEqual, TokenEOF}},
		{"=", []TokenKind{TokenEqual, TokenEOF}},
		{"==", []TokenKind{TokenEqualEqual, TokenEOF}},
		{"<", []TokenKind{TokenLess, TokenEOF}},
		{"<=", []TokenKind{TokenLessEqual, TokenEOF}},
		{">", []TokenKind{TokenGreater, TokenEOF}},
		{">=", []TokenKind{TokenGreaterEqual, TokenEOF}},
		{"/", []TokenKind{TokenSlash, TokenEOF}},
		// lookahead must not consume on mismatch
		{"!!", []TokenKind{TokenBang, TokenBang, TokenEOF}},
		{"=<", []TokenKind{TokenEqual, TokenLess, TokenEOF}},
		{"<==", []TokenKind{TokenLessEqual, TokenEqual, TokenEOF}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, errs := collect(t, test.input)
			require.Empty(t, errs)
			assert.Equal(t, test.kinds, kinds(tokens))
		})
	}
}

func TestTwoCharOperatorSpan(t *testing.T) {
	tokens, errs := collect(t, "!=")
	require.Empty(t, errs)
	assert.Equal(t, Span{Start: 0, End: 1}, tokens[0].Span)
}

func TestEOFSpan(t *testing.T) {
	tests := []string{
		"",
		"+",
		"hello",
		"\"café\" // über",
		"@@@",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tokens, _ := collect(t, input)
			require.NotEmpty(t, tokens)
			last := tokens[len(tokens)-1]
			assert.Equal(t, TokenEOF, last.Kind)
			n := utf8.RuneCountInString(input)
			assert.Equal(t, Span{Start: n, End: n}, last.Span)
			// exactly one EOF
			var eofs int
			for _, token := range tokens {
				if token.Kind == TokenEOF {
					eofs++
				}
			}
			assert.Equal(t, 1, eofs)
		})
	}
}

func TestSpansMonotonic(t *testing.T) {
	tokens, _ := collect(t, "var x = 12.5; // y\nprint \"hé\" @ != classic")
	prev := -1
	for _, token := range tokens {
		assert.GreaterOrEqual(t, token.Span.Start, prev)
		assert.GreaterOrEqual(t, token.Span.End, token.Span.Start)
		prev = token.Span.Start
	}
}

func TestStringLiteral(t *testing.T) {
	tokens, errs := collect(t, `"abc"`)
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenString, tokens[0].Kind)
	assert.Equal(t, "abc", tokens[0].Text)
	// span covers the quotes
	assert.Equal(t, Span{Start: 0, End: 4}, tokens[0].Span)
	assert.Equal(t, Span{Start: 5, End: 5}, tokens[1].Span)
}

func TestStringZeroCopy(t *testing.T) {
	source := `"abc"`
	tokens, _ := collect(t, source)
	// the token text is a view into the source, not a copy
	assert.Equal(t, source[1:4], tokens[0].Text)
}

func TestStringMultibyte(t *testing.T) {
	// spans count characters, slicing counts bytes
	tokens, errs := collect(t, `"café" 1`)
	require.Empty(t, errs)
	assert.Equal(t, "café", tokens[0].Text)
	assert.Equal(t, Span{Start: 0, End: 5}, tokens[0].Span)
	assert.Equal(t, TokenNumber, tokens[1].Kind)
	assert.Equal(t, Span{Start: 7, End: 7}, tokens[1].Span)
}

func TestStringEmbeddedNewline(t *testing.T) {
	tokens, errs := collect(t, "\"a\nb\"@")
	require.Len(t, tokens, 2)
	assert.Equal(t, "a\nb", tokens[0].Text)
	// the embedded newline bumped the line counter
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Line)
}

func TestUnterminatedString(t *testing.T) {
	tokens, errs := collect(t, `"abc`)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnterminatedString, errs[0].Kind)
	assert.Equal(t, 0, errs[0].Start)
	// no tokens before it, only the trailing EOF after it
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Kind)
	assert.Equal(t, Span{Start: 4, End: 4}, tokens[0].Span)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		value float64
	}{
		{"0", 0},
		{"1", 1},
		{"123", 123},
		{"12.5", 12.5},
		{"0.0001", 0.0001},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, errs := collect(t, test.input)
			require.Empty(t, errs)
			require.Len(t, tokens, 2)
			assert.Equal(t, TokenNumber, tokens[0].Kind)
			assert.Equal(t, test.value, tokens[0].Number)
			assert.Equal(t, test.input, tokens[0].Text)
		})
	}
}

func TestNumberTrailingDot(t *testing.T) {
	tokens, errs := collect(t, "1.")
	require.Empty(t, errs)
	assert.Equal(t, []TokenKind{TokenNumber, TokenDot, TokenEOF}, kinds(tokens))
	assert.Equal(t, 1.0, tokens[0].Number)
	assert.Equal(t, Span{Start: 0, End: 0}, tokens[0].Span)
	assert.Equal(t, Span{Start: 1, End: 1}, tokens[1].Span)
}

func TestNumberDotMethodLike(t *testing.T) {
	tokens, errs := collect(t, "1.foo")
	require.Empty(t, errs)
	assert.Equal(t, []TokenKind{TokenNumber, TokenDot, TokenIdentifier, TokenEOF}, kinds(tokens))
}

func TestKeywords(t *testing.T) {
	tests := map[string]TokenKind{
		"and":    TokenAnd,
		"class":  TokenClass,
		"else":   TokenElse,
		"false":  TokenFalse,
		"fun":    TokenFun,
		"for":    TokenFor,
		"if":     TokenIf,
		"nil":    TokenNil,
		"or":     TokenOr,
		"print":  TokenPrint,
		"return": TokenReturn,
		"super":  TokenSuper,
		"this":   TokenThis,
		"true":   TokenTrue,
		"var":    TokenVar,
		"while":  TokenWhile,
	}
	for input, kind := range tests {
		t.Run(input, func(t *testing.T) {
			tokens, errs := collect(t, input)
			require.Empty(t, errs)
			require.Len(t, tokens, 2)
			assert.Equal(t, kind, tokens[0].Kind)
			assert.Equal(t, input, tokens[0].Text)
		})
	}
}

func TestKeywordMatchingIsExact(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"classic", TokenIdentifier},
		{"class", TokenClass},
		{"orchid", TokenIdentifier},
		{"Class", TokenIdentifier}, // case-sensitive
		{"superb", TokenIdentifier},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, errs := collect(t, test.input)
			require.Empty(t, errs)
			assert.Equal(t, test.kind, tokens[0].Kind)
			assert.Equal(t, test.input, tokens[0].Text)
		})
	}
}

func TestIdentifierNoUnderscore(t *testing.T) {
	_, errs := collect(t, "foo_bar")
	// underscore is not part of identifiers
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnexpectedCharacter, errs[0].Kind)
	assert.Equal(t, '_', errs[0].Char)
}

func TestIdentifierWithDigits(t *testing.T) {
	tokens, errs := collect(t, "x1y2")
	require.Empty(t, errs)
	assert.Equal(t, TokenIdentifier, tokens[0].Kind)
	assert.Equal(t, "x1y2", tokens[0].Text)
}

func TestCommentSkipping(t *testing.T) {
	tokens, errs := collect(t, "// comment\n+")
	require.Empty(t, errs)
	assert.Equal(t, []TokenKind{TokenPlus, TokenEOF}, kinds(tokens))
	assert.Equal(t, Span{Start: 11, End: 11}, tokens[0].Span)
}

func TestCommentToEndOfInput(t *testing.T) {
	tokens, errs := collect(t, "+ // no newline")
	require.Empty(t, errs)
	assert.Equal(t, []TokenKind{TokenPlus, TokenEOF}, kinds(tokens))
}

func TestCommentLineCounting(t *testing.T) {
	_, errs := collect(t, "// comment\n@")
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Line)
}

func TestRecovery(t *testing.T) {
	tokens, errs := collect(t, "@ 1")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnexpectedCharacter, errs[0].Kind)
	assert.Equal(t, '@', errs[0].Char)
	assert.Equal(t, 0, errs[0].Column)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenNumber, tokens[0].Kind)
	assert.Equal(t, 1.0, tokens[0].Number)
	assert.Equal(t, TokenEOF, tokens[1].Kind)
}

func TestMultipleErrorsOnePass(t *testing.T) {
	tokens, errs := collect(t, "@ # $")
	require.Len(t, errs, 3)
	for i, c := range []rune{'@', '#', '$'} {
		assert.Equal(t, ErrUnexpectedCharacter, errs[i].Kind)
		assert.Equal(t, c, errs[i].Char)
	}
	assert.Equal(t, []TokenKind{TokenEOF}, kinds(tokens))
}

func TestErrorBetweenTokens(t *testing.T) {
	tokens, errs := collect(t, "1 @ 2")
	require.Len(t, errs, 1)
	assert.Equal(t, []TokenKind{TokenNumber, TokenNumber, TokenEOF}, kinds(tokens))
}

func TestIdempotence(t *testing.T) {
	scanner := New("var x = 1; @ \"s\"", "test.lox")

	type item struct {
		token Token
		err   error
	}
	drain := func() []item {
		var ret []item
		for token, err := range scanner.Scan() {
			ret = append(ret, item{token, err})
		}
		return ret
	}

	first := drain()
	second := drain()
	assert.Equal(t, first, second)
}

func TestEarlyStop(t *testing.T) {
	scanner := New("1 2 3 4 5", "")
	var count int
	for range scanner.Scan() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestTokensAdaptor(t *testing.T) {
	scanner := New("@ 1 # 2", "")
	var got []TokenKind
	for token := range Tokens(scanner.Scan()) {
		got = append(got, token.Kind)
	}
	assert.Equal(t, []TokenKind{TokenNumber, TokenNumber, TokenEOF}, got)
}

func TestLocationOnErrors(t *testing.T) {
	scanner := New("@", "script.lox")
	for _, err := range scanner.Scan() {
		if err != nil {
			assert.Equal(t, "script.lox", err.(*Error).Location)
		}
	}
}

func TestWhitespaceOnly(t *testing.T) {
	tokens, errs := collect(t, "  \t\r  ")
	require.Empty(t, errs)
	assert.Equal(t, []TokenKind{TokenEOF}, kinds(tokens))
}

func TestUnexpectedMultibyteCharacter(t *testing.T) {
	tokens, errs := collect(t, "λ 1")
	require.Len(t, errs, 1)
	assert.Equal(t, 'λ', errs[0].Char)
	assert.Equal(t, 0, errs[0].Column)
	// recovery resumes on the character boundary right after
	assert.Equal(t, TokenNumber, tokens[0].Kind)
	assert.Equal(t, Span{Start: 2, End: 2}, tokens[0].Span)
}
