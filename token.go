package exprc

import (
	"encoding/json"
	"strconv"
)

// Kind is the type tag of a token.
type Kind int

const (
	// EOF indicates the end of the input.
	EOF Kind = iota
	// Number is an integer or decimal literal.
	Number
	Plus
	Minus
	Mul
	Div
	Pow
	LParen
	RParen
)

var kindNames = [...]string{
	EOF:    "EOF",
	Number: "NUMBER",
	Plus:   "PLUS",
	Minus:  "MINUS",
	Mul:    "MUL",
	Div:    "DIV",
	Pow:    "POW",
	LParen: "LPAREN",
	RParen: "RPAREN",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Token is a single lexical unit of an expression. Number tokens carry their
// numeric payload in Value; operator and parenthesis tokens carry their
// literal symbol in Text; EOF carries neither.
type Token struct {
	Kind Kind
	// Value is the numeric payload of a Number token.
	Value float64
	// Text is the lexeme the token was scanned from.
	Text string
	// Pos is the zero-based position of the token's first character.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	default:
		return t.Kind.String() + "(" + t.Text + ")"
	}
}

// MarshalJSON renders the token as {"type": KIND, "value": ...}, where value
// is the number for Number tokens, the symbol for operators and parentheses,
// and null for EOF.
func (t Token) MarshalJSON() ([]byte, error) {
	v := struct {
		Type  string `json:"type"`
		Value any    `json:"value"`
	}{Type: t.Kind.String()}
	switch t.Kind {
	case Number:
		v.Value = t.Value
	case EOF:
		// no value
	default:
		v.Value = t.Text
	}
	return json.Marshal(v)
}
