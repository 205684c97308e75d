package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenLeftParen, "LeftParen"},
		{TokenBangEqual, "BangEqual"},
		{TokenString, "String"},
		{TokenNumber, "Number"},
		{TokenIdentifier, "Identifier"},
		{TokenWhile, "While"},
		{TokenEOF, "EOF"},
		{TokenKind(200), "TokenKind(200)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.kind.String())
	}
}

func TestTokenString(t *testing.T) {
	token := Token{
		Kind: TokenString,
		Text: "string",
		Span: Span{Start: 0, End: 7},
	}
	assert.Equal(t, "Token/String@0..7: string", token.String())

	token = Token{
		Kind: TokenEOF,
		Span: Span{Start: 8, End: 8},
	}
	assert.Equal(t, "Token/EOF@8", token.String())
}

func TestSpanLen(t *testing.T) {
	assert.Equal(t, 1, Span{Start: 3, End: 3}.Len())
	assert.Equal(t, 5, Span{Start: 0, End: 4}.Len())
}
