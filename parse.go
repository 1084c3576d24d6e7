package exprc

// expr  := term ((PLUS | MINUS) term)*
// term  := power ((MUL | DIV) power | power)*
// power := atom (POW power)?
// atom  := NUMBER | LPAREN expr RPAREN
//
// The bare power alternative in term folds adjacent factors into an
// implicit multiplication: "2(3+4)" and "2 3" both multiply. POW recurses
// into power rather than atom, which makes exponentiation right-associative;
// the term and expr loops fold left.

// Parser builds an abstract syntax tree from a Lexer's token stream. A
// Parser is single-use; construct a fresh one for each input.
type Parser struct {
	lex *Lexer
	tok Token
}

// NewParser creates a parser pulling tokens from lex.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse consumes the entire token stream and returns the root of the tree.
// The stream must contain exactly one expression; anything left over before
// EOF is a SyntaxError.
func (p *Parser) Parse() (Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != EOF {
		return nil, &SyntaxError{Expected: "end of input", Got: p.tok}
	}
	return n, nil
}

// Parse is a shortcut to parse a single expression string.
func Parse(src string) (Node, error) {
	return NewParser(NewLexer(src)).Parse()
}

// advance pulls the next token from the lexer into the lookahead.
func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// eat asserts the lookahead's kind and advances past it. This is the
// parser's sole error-signaling path for grammar violations.
func (p *Parser) eat(k Kind) error {
	if p.tok.Kind != k {
		return &SyntaxError{Expected: k.String(), Got: p.tok}
	}
	return p.advance()
}

// expr := term ((PLUS | MINUS) term)*
func (p *Parser) expr() (Node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == Plus || p.tok.Kind == Minus {
		op := p.tok.Text
		if err := p.eat(p.tok.Kind); err != nil {
			return nil, err
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		n = &BinaryOpNode{Op: op, Left: n, Right: rhs}
	}
	return n, nil
}

// term := power ((MUL | DIV) power | power)*
func (p *Parser) term() (Node, error) {
	n, err := p.power()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Kind {
		case Mul, Div:
			op := p.tok.Text
			if err := p.eat(p.tok.Kind); err != nil {
				return nil, err
			}
			rhs, err := p.power()
			if err != nil {
				return nil, err
			}
			n = &BinaryOpNode{Op: op, Left: n, Right: rhs}
		case Number, LParen:
			// Adjacent factors multiply: 2(3+4) -> 2 * (3+4).
			rhs, err := p.power()
			if err != nil {
				return nil, err
			}
			n = &BinaryOpNode{Op: "*", Left: n, Right: rhs}
		default:
			return n, nil
		}
	}
}

// power := atom (POW power)?
func (p *Parser) power() (Node, error) {
	n, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind == Pow {
		if err := p.eat(Pow); err != nil {
			return nil, err
		}
		rhs, err := p.power()
		if err != nil {
			return nil, err
		}
		n = &BinaryOpNode{Op: "^", Left: n, Right: rhs}
	}
	return n, nil
}

// atom := NUMBER | LPAREN expr RPAREN
func (p *Parser) atom() (Node, error) {
	switch tok := p.tok; tok.Kind {
	case Number:
		if err := p.eat(Number); err != nil {
			return nil, err
		}
		return &NumberNode{Value: tok.Value}, nil
	case LParen:
		if err := p.eat(LParen); err != nil {
			return nil, err
		}
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.eat(RParen); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, &SyntaxError{Expected: "NUMBER or LPAREN", Got: tok}
	}
}

// SyntaxError indicates a token stream that does not match the grammar. It
// implements InputError.
type SyntaxError struct {
	// Expected describes the token the parser required, e.g. "RPAREN" or
	// "NUMBER or LPAREN".
	Expected string
	// Got is the token actually scanned.
	Got Token
}

func (err *SyntaxError) Error() string {
	return errpos(err.Got.Pos, "expected "+err.Expected+", found "+err.Got.String())
}

func (err *SyntaxError) Pos() int {
	return err.Got.Pos
}
