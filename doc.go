// Package exprc compiles arithmetic expressions in three stages: a lexer
// splits the input into tokens, a recursive-descent parser builds an
// abstract syntax tree, and an evaluator computes the tree's value.
//
// The grammar covers integer and decimal numbers, the binary operators
// + - * / ^, and parentheses. "^" binds tightest and is right-associative,
// so "2^3^2" is 512, not 64. "*" and "/" bind tighter than "+" and "-", and
// adjacent factors multiply: "2(3+4)" is 14. There are no variables and no
// unary operators; "-1" is a syntax error.
//
// Each stage has its own error type: LexError for characters outside the
// grammar's alphabet, SyntaxError for token streams that don't match the
// grammar, and SemanticError for failures while evaluating, such as
// division by zero. Compile runs all three stages on one string and returns
// the token stream, the tree, and the value together.
package exprc
