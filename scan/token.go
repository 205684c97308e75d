package scan

import (
	"fmt"
	"strings"
)

// Token is a classified fragment of source text. Text is a view into the
// source string of the Scanner that produced it: the decoded literal body
// for strings (quotes excluded), the raw lexeme for identifiers, keywords
// and numbers, empty otherwise.
type Token struct {
	Kind   TokenKind
	Text   string
	Number float64
	Span   Span
}

type TokenKind uint8

const (
	// Single characters
	TokenLeftParen TokenKind = iota
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	// One or two characters
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// Literals
	TokenIdentifier
	TokenString
	TokenNumber

	// Keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFun
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	TokenEOF
)

var kindNames = [...]string{
	TokenLeftParen:    "LeftParen",
	TokenRightParen:   "RightParen",
	TokenLeftBrace:    "LeftBrace",
	TokenRightBrace:   "RightBrace",
	TokenComma:        "Comma",
	TokenDot:          "Dot",
	TokenMinus:        "Minus",
	TokenPlus:         "Plus",
	TokenSemicolon:    "Semicolon",
	TokenSlash:        "Slash",
	TokenStar:         "Star",
	TokenBang:         "Bang",
	TokenBangEqual:    "BangEqual",
	TokenEqual:        "Equal",
	TokenEqualEqual:   "EqualEqual",
	TokenGreater:      "Greater",
	TokenGreaterEqual: "GreaterEqual",
	TokenLess:         "Less",
	TokenLessEqual:    "LessEqual",
	TokenIdentifier:   "Identifier",
	TokenString:       "String",
	TokenNumber:       "Number",
	TokenAnd:          "And",
	TokenClass:        "Class",
	TokenElse:         "Else",
	TokenFalse:        "False",
	TokenFun:          "Fun",
	TokenFor:          "For",
	TokenIf:           "If",
	TokenNil:          "Nil",
	TokenOr:           "Or",
	TokenPrint:        "Print",
	TokenReturn:       "Return",
	TokenSuper:        "Super",
	TokenThis:         "This",
	TokenTrue:         "True",
	TokenVar:          "Var",
	TokenWhile:        "While",
	TokenEOF:          "EOF",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

var keywords = map[string]TokenKind{
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

func (t Token) String() string {
	var sb strings.Builder
	sb.WriteString("Token/")
	sb.WriteString(t.Kind.String())
	if t.Span.Start == t.Span.End {
		fmt.Fprintf(&sb, "@%d", t.Span.Start)
	} else {
		fmt.Fprintf(&sb, "@%d..%d", t.Span.Start, t.Span.End)
	}
	if t.Text != "" {
		sb.WriteString(": ")
		sb.WriteString(t.Text)
	}
	return sb.String()
}
