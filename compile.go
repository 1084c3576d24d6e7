package exprc

// Result is the full output of compiling one expression: the token stream,
// the parse tree, and the evaluated value.
type Result struct {
	Tokens []Token `json:"tokens"`
	AST    Node    `json:"ast"`
	Value  float64 `json:"result"`
}

// Compile runs an expression through the whole pipeline. The returned error
// is a *LexError, *SyntaxError, or *SemanticError; the first stage to fail
// aborts the pipeline, and there are no partial results.
func Compile(expression string) (*Result, error) {
	// The token stream is drained separately for display; the parser pulls
	// its own tokens from a fresh lexer.
	tokens, err := NewLexer(expression).Tokenize()
	if err != nil {
		return nil, err
	}
	ast, err := NewParser(NewLexer(expression)).Parse()
	if err != nil {
		return nil, err
	}
	v, err := Eval(ast)
	if err != nil {
		return nil, err
	}
	return &Result{Tokens: tokens, AST: ast, Value: v}, nil
}
