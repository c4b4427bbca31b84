package minicalc

import "fmt"

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenOpenParen
	TokenCloseParen
	TokenPlus
	TokenStar
	TokenInt
	TokenPrint
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EndOfInput"
	case TokenOpenParen:
		return "OpenParen"
	case TokenCloseParen:
		return "CloseParen"
	case TokenPlus:
		return "Plus"
	case TokenStar:
		return "Star"
	case TokenInt:
		return "Integer"
	case TokenPrint:
		return "Print"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a lexical unit stamped with the line it was recognized on.
// Value is only meaningful for TokenInt.
type Token struct {
	Kind  TokenKind
	Value int64
	Line  int
}

func (t Token) String() string {
	if t.Kind == TokenInt {
		return fmt.Sprintf("Integer(%d)", t.Value)
	}
	return t.Kind.String()
}
