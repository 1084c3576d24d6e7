package exprc

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// EvalBig evaluates a tree at the given precision in bits. The big.Float
// domain has no NaN, so cases Eval lets pass through as NaN are
// SemanticErrors here: exponentiation of a negative base, and 0/0.
func EvalBig(n Node, prec uint) (*big.Float, error) {
	switch n := n.(type) {
	case *NumberNode:
		return new(big.Float).SetPrec(prec).SetFloat64(n.Value), nil
	case *BinaryOpNode:
		l, err := EvalBig(n.Left, prec)
		if err != nil {
			return nil, err
		}
		r, err := EvalBig(n.Right, prec)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case "+":
			return l.Add(l, r), nil
		case "-":
			return l.Sub(l, r), nil
		case "*":
			return l.Mul(l, r), nil
		case "/":
			if r.Sign() == 0 {
				return nil, &SemanticError{Msg: "division by zero"}
			}
			return l.Quo(l, r), nil
		case "^":
			if l.Signbit() {
				return nil, &SemanticError{Msg: "exponentiation of negative base " + l.String()}
			}
			bigfloat.Pow(l, l, r)
			return l, nil
		default:
			return nil, &SemanticError{Msg: "unknown operator " + strconv.Quote(n.Op)}
		}
	default:
		return nil, &SemanticError{Msg: "unknown node type"}
	}
}
