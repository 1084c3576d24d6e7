package exprc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer splits an expression into tokens, one per call to Next. A Lexer is
// single-use; construct a fresh one for each input.
type Lexer struct {
	src string
	pos int
}

// NewLexer creates a lexer reading from src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next scans the next token. Whitespace before a token is skipped. Once the
// input is exhausted, Next returns EOF tokens forever.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
		if unicode.IsSpace(r) {
			l.pos += sz
			continue
		}
		if r < utf8.RuneSelf && isNumeric(byte(r)) {
			return l.scanNumber()
		}
		tok := Token{Text: string(r), Pos: l.pos}
		switch r {
		case '+':
			tok.Kind = Plus
		case '-':
			tok.Kind = Minus
		case '*':
			tok.Kind = Mul
		case '/':
			tok.Kind = Div
		case '^':
			tok.Kind = Pow
		case '(':
			tok.Kind = LParen
		case ')':
			tok.Kind = RParen
		default:
			return Token{}, &LexError{Lexeme: string(r), Col: l.pos}
		}
		l.pos += sz
		return tok, nil
	}
	return Token{Kind: EOF, Pos: l.pos}, nil
}

// isNumeric reports whether c can appear in a numeric lexeme.
func isNumeric(c byte) bool {
	return '0' <= c && c <= '9' || c == '.'
}

// scanNumber consumes the maximal run of ASCII digits and decimal points.
// Runs with more than one point, such as "1.2.3", survive scanning and fail
// at conversion; the resulting error carries the whole lexeme.
func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	for l.pos < len(l.src) && isNumeric(l.src[l.pos]) {
		l.pos++
	}
	text := l.src[start:l.pos]
	tok := Token{Kind: Number, Text: text, Pos: start}
	// The presence of a decimal point decides the conversion routine; both
	// produce the same numeric type downstream.
	if strings.Contains(text, ".") {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, &LexError{Lexeme: text, Kind: "number", Col: start}
		}
		tok.Value = v
		return tok, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, &LexError{Lexeme: text, Kind: "number", Col: start}
	}
	tok.Value = float64(n)
	return tok, nil
}

// Tokenize drains the remaining tokens from the input, excluding the final
// EOF. It is a convenience for displaying the token stream; the parser pulls
// tokens from Next one at a time instead.
func (l *Lexer) Tokenize() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// LexError indicates an invalid character or numeric lexeme. It implements
// InputError.
type LexError struct {
	// Lexeme is the text the lexer was scanning, including the offending
	// character.
	Lexeme string
	// Kind is "number" when a numeric lexeme failed conversion, and the
	// empty string for a character outside the grammar's alphabet.
	Kind string
	// Col is the zero-based position of the start of the lexeme.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid character "+strconv.Quote(err.Lexeme))
	}
	return errpos(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Lexeme))
}

func (err *LexError) Pos() int {
	return err.Col
}
