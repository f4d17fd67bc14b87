package grapher

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

type TokenType int

const (
	TokenLParen TokenType = iota
	TokenRParen
	TokenSymbol
	TokenDecimal
	TokenFloat
	TokenEnd
)

type Token struct {
	typ TokenType
	str string
}

var EndTk = Token{typ: TokenEnd}

func (t Token) String() string {
	switch t.typ {
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenEnd:
		return "End"
	}
	return t.str
}

type LexerState int

const (
	LexerNormal LexerState = iota
	LexerComment
)

// Lexer turns a rune stream into tokens: parens, numeric atoms, and
// symbols, with `;` line comments skipped.
type Lexer struct {
	state   LexerState
	tokens  []Token
	buffer  *bytes.Buffer
	stream  io.RuneReader
	linenum int
}

func NewLexer(stream io.RuneReader) *Lexer {
	return &Lexer{
		state:   LexerNormal,
		tokens:  make([]Token, 0, 10),
		buffer:  new(bytes.Buffer),
		stream:  stream,
		linenum: 1,
	}
}

func NewLexerFromString(str string) *Lexer {
	return NewLexer(strings.NewReader(str))
}

var (
	DecimalRegex = regexp.MustCompile(`^-?[0-9]+$`)
	FloatRegex   = regexp.MustCompile(`^-?(([0-9]+\.[0-9]*)|(\.[0-9]+)|([0-9]+(\.[0-9]*)?[eE](-?[0-9]+)))$`)
	SymbolRegex  = regexp.MustCompile(`^[^'#:;\\~@\[\]{}\^|"()]+$`)
)

func (lexer *Lexer) Token(typ TokenType, str string) Token {
	return Token{typ: typ, str: str}
}

func (lexer *Lexer) DecodeAtom(atom string) (Token, error) {
	if DecimalRegex.MatchString(atom) {
		return lexer.Token(TokenDecimal, atom), nil
	}
	if FloatRegex.MatchString(atom) {
		return lexer.Token(TokenFloat, atom), nil
	}
	if SymbolRegex.MatchString(atom) {
		return lexer.Token(TokenSymbol, atom), nil
	}
	return EndTk, fmt.Errorf("unrecognized atom: '%s'", atom)
}

func (lexer *Lexer) dumpBuffer() error {
	if lexer.buffer.Len() <= 0 {
		return nil
	}

	tok, err := lexer.DecodeAtom(lexer.buffer.String())
	if err != nil {
		return err
	}

	lexer.buffer.Reset()
	lexer.tokens = append(lexer.tokens, tok)
	return nil
}

func (lexer *Lexer) LexNextRune(r rune) error {
	if lexer.state == LexerComment {
		if r == '\n' {
			lexer.state = LexerNormal
			lexer.linenum++
		}
		return nil
	}

	if r == ';' {
		lexer.state = LexerComment
		return nil
	}

	if r == '(' || r == ')' {
		err := lexer.dumpBuffer()
		if err != nil {
			return err
		}
		typ := TokenLParen
		if r == ')' {
			typ = TokenRParen
		}
		lexer.tokens = append(lexer.tokens, lexer.Token(typ, ""))
		return nil
	}

	if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
		if r == '\n' {
			lexer.linenum++
		}
		return lexer.dumpBuffer()
	}

	_, err := lexer.buffer.WriteRune(r)
	return err
}

// Tokenize drains the stream and returns every token, with a trailing
// End token.
func (lexer *Lexer) Tokenize() ([]Token, error) {
	for {
		r, _, err := lexer.stream.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := lexer.LexNextRune(r); err != nil {
			return nil, fmt.Errorf("lex error on line %d: %v", lexer.linenum, err)
		}
	}
	if err := lexer.dumpBuffer(); err != nil {
		return nil, fmt.Errorf("lex error on line %d: %v", lexer.linenum, err)
	}
	return append(lexer.tokens, EndTk), nil
}

func (lexer *Lexer) Linenum() int {
	return lexer.linenum
}
