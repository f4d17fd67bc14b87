package grapher

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// UnexpectedEnd means the token stream ran out inside an open list.
// The repl treats it as a request for a continuation line.
var UnexpectedEnd = errors.New("unexpected end of input")

// NoExpressionsFound means the source held nothing but whitespace and
// comments.
var NoExpressionsFound = errors.New("no expressions found")

// Parser is a recursive-descent reader over a lexed token slice. It
// produces the sequence of top-level expressions in source order.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) next() Token {
	if p.pos >= len(p.tokens) {
		return EndTk
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return EndTk
	}
	return p.tokens[p.pos]
}

func (p *Parser) ParseList() (Sexp, error) {
	lst := make(SexpList, 0, 4)
	for {
		switch p.peek().typ {
		case TokenEnd:
			return SexpEnd, UnexpectedEnd
		case TokenRParen:
			p.next()
			return lst, nil
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return SexpEnd, err
		}
		lst = append(lst, expr)
	}
}

func (p *Parser) ParseExpression() (Sexp, error) {
	tok := p.next()
	switch tok.typ {
	case TokenLParen:
		return p.ParseList()
	case TokenRParen:
		return SexpEnd, errors.New("unexpected close paren")
	case TokenDecimal:
		i, err := strconv.ParseInt(tok.str, 10, SexpIntSize)
		if err != nil {
			return SexpEnd, err
		}
		return SexpInt(i), nil
	case TokenFloat:
		f, err := strconv.ParseFloat(tok.str, SexpFloatSize)
		if err != nil {
			return SexpEnd, err
		}
		return SexpFloat(f), nil
	case TokenSymbol:
		return MakeSymbol(tok.str), nil
	case TokenEnd:
		return SexpEnd, UnexpectedEnd
	}
	return SexpEnd, fmt.Errorf("unexpected token: %s", tok)
}

// ParseTokens reads every top-level expression until the token stream
// is exhausted.
func (p *Parser) ParseTokens() ([]Sexp, error) {
	exprs := make([]Sexp, 0, 4)
	for p.peek().typ != TokenEnd {
		expr, err := p.ParseExpression()
		if err != nil {
			return exprs, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseStream lexes and parses an entire rune stream.
func ParseStream(stream io.RuneReader) ([]Sexp, error) {
	tokens, err := NewLexer(stream).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseTokens()
}

// ParseString lexes and parses source text held in a string.
func ParseString(src string) ([]Sexp, error) {
	tokens, err := NewLexerFromString(src).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseTokens()
}
