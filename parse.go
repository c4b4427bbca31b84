package minicalc

import (
	"io"
)

// Parser is a recursive descent parser pulling one token at a time from a
// Lexer. It never backtracks.
type Parser struct {
	lex *Lexer
}

func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse reads the print statement and returns its expression. Tokens after
// the statement are left unread.
func (p *Parser) Parse() (Expr, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenPrint {
		return nil, newError(ErrExpectedPrintKeyword, tok.String(), tok.Line)
	}
	return p.ParseExpr()
}

func (p *Parser) ParseExpr() (Expr, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenInt:
		return Constant{Value: tok.Value}, nil
	case TokenOpenParen:
		return p.parseBinary()
	}
	return nil, newError(ErrUnexpectedToken, tok.String(), tok.Line)
}

func (p *Parser) parseBinary() (Expr, error) {
	left, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}

	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	op, ok := ops[tok.Kind]
	if !ok {
		return nil, newError(ErrExpectedOperator, tok.String(), tok.Line)
	}

	right, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}

	tok, err = p.lex.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenCloseParen {
		return nil, newError(ErrExpectedCloseParen, tok.String(), tok.Line)
	}
	return op.build(left, right), nil
}

func ParseString(src string) (Expr, error) {
	return NewParser(NewLexer(src)).Parse()
}

// Parse reads all of r and parses it as one program.
func Parse(r io.Reader) (Expr, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(b))
}
