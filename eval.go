package exprc

import (
	"math"
	"strconv"
)

// Eval computes the value of a tree by post-order traversal. It is a pure
// function: evaluating the same tree twice yields the same result.
//
// Division reports a SemanticError when the right operand is exactly zero.
// Exponentiation follows math.Pow, so a negative base with a fractional
// exponent yields NaN, which passes through unguarded. Operators and node
// types outside the grammar are SemanticErrors; they are unreachable from
// parsed trees but defined for hand-built ones.
func Eval(n Node) (float64, error) {
	switch n := n.(type) {
	case *NumberNode:
		return n.Value, nil
	case *BinaryOpNode:
		l, err := Eval(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := Eval(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "+":
			return l + r, nil
		case "-":
			return l - r, nil
		case "*":
			return l * r, nil
		case "/":
			if r == 0 {
				return 0, &SemanticError{Msg: "division by zero"}
			}
			return l / r, nil
		case "^":
			return math.Pow(l, r), nil
		default:
			return 0, &SemanticError{Msg: "unknown operator " + strconv.Quote(n.Op)}
		}
	default:
		return 0, &SemanticError{Msg: "unknown node type"}
	}
}

// SemanticError indicates a failure while evaluating a tree.
type SemanticError struct {
	// Msg describes the failure.
	Msg string
}

func (err *SemanticError) Error() string {
	return "semantic error: " + err.Msg
}
