package minicalc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

const keywordPrint = "print"

// Lexer turns source text into tokens on demand. The cursor only moves
// forward; multi-character tokens end on a peeked rune that is left for
// the next call.
type Lexer struct {
	src  []rune
	pos  int
	line int

	peeked  bool
	tok     Token
	peekErr error
}

func NewLexer(src string) *Lexer {
	return &Lexer{
		src:  []rune(src),
		line: 1,
	}
}

// Line returns the current line counter.
func (l *Lexer) Line() int {
	return l.line
}

func (l *Lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *Lexer) readRune() (rune, bool) {
	r, ok := l.peekRune()
	if ok {
		l.pos++
	}
	return r, ok
}

func (l *Lexer) skipWhite() {
	for {
		r, ok := l.peekRune()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		l.readRune()
		if r == '\n' {
			l.line++
		}
	}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if !l.peeked {
		l.tok, l.peekErr = l.scan()
		l.peeked = true
	}
	return l.tok, l.peekErr
}

// Next consumes and returns the next token. Once the input is exhausted
// every call returns a TokenEOF token.
func (l *Lexer) Next() (Token, error) {
	if l.peeked {
		l.peeked = false
		return l.tok, l.peekErr
	}
	return l.scan()
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhite()
	r, ok := l.readRune()
	if !ok {
		return Token{Kind: TokenEOF, Line: l.line}, nil
	}

	switch r {
	case '(':
		return l.symbol(TokenOpenParen), nil
	case ')':
		return l.symbol(TokenCloseParen), nil
	case '+':
		return l.symbol(TokenPlus), nil
	case '*':
		return l.symbol(TokenStar), nil
	}
	if isDigit(r) {
		return l.scanInt(r)
	}
	if unicode.IsLetter(r) {
		return l.scanWord(r)
	}
	return Token{}, newError(ErrUnexpectedCharacter, strconv.QuoteRune(r), l.line)
}

func (l *Lexer) symbol(kind TokenKind) Token {
	return Token{Kind: kind, Line: l.line}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// munch accumulates first and every following rune accepted by ok.
func (l *Lexer) munch(first rune, ok func(rune) bool) string {
	var buf strings.Builder
	buf.WriteRune(first)
	for {
		r, more := l.peekRune()
		if !more || !ok(r) {
			break
		}
		l.readRune()
		buf.WriteRune(r)
	}
	return buf.String()
}

func (l *Lexer) scanInt(first rune) (Token, error) {
	s := l.munch(first, isDigit)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Token{}, newError(ErrNumericOverflow, s, l.line)
		}
		return Token{}, err
	}
	return Token{Kind: TokenInt, Value: v, Line: l.line}, nil
}

func (l *Lexer) scanWord(first rune) (Token, error) {
	s := l.munch(first, unicode.IsLetter)
	if s != keywordPrint {
		return Token{}, newError(ErrUnrecognizedKeyword, s, l.line)
	}
	return l.symbol(TokenPrint), nil
}

// Tokenize lexes the whole of src, returning every token up to and
// including the terminating TokenEOF.
func Tokenize(src string) ([]Token, error) {
	l := NewLexer(src)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}
