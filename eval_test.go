package exprc_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/minicomp/exprc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "42", 42},
		{"decimal", "1.5 + 2.25", 3.75},
		{"add", "4+5+6", 15},
		{"sub", "4-5-6", -7},
		{"mul", "4*5*6", 120},
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"pow-right", "2^3^2", 512},
		{"classic", "3 + 5 * (10 / 2)", 28},
		{"mixed", "(10 + 2) * 3 - 4 / 2", 34},
		{"pow-fractional", "9^0.5", 3},
		{"implicit-mul", "2(3+4)", 14},
		{"div-decimal", "7/2", 3.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := exprc.Parse(c.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			got, err := exprc.Eval(n)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("evaluating %q: want %g, got %g", c.src, c.want, got)
			}
		})
	}
}

func TestEvalPure(t *testing.T) {
	n, err := exprc.Parse("2 ^ 3 ^ 2")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	a, err := exprc.Eval(n)
	if err != nil {
		t.Fatalf("first evaluation: %v", err)
	}
	b, err := exprc.Eval(n)
	if err != nil {
		t.Fatalf("second evaluation: %v", err)
	}
	if a != b {
		t.Errorf("re-evaluation changed the result: %g then %g", a, b)
	}
	if a != 512 {
		t.Errorf("want 512, got %g", a)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	for _, src := range []string{"10 / 0", "1 / (2 - 2)", "0 / 0"} {
		n, err := exprc.Parse(src)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", src, err)
		}
		_, err = exprc.Eval(n)
		var serr *exprc.SemanticError
		if !errors.As(err, &serr) {
			t.Fatalf("evaluating %q: error is not a SemanticError: %v", src, err)
		}
		if !strings.Contains(serr.Error(), "division by zero") {
			t.Errorf("evaluating %q: message %q does not mention division by zero", src, serr.Error())
		}
	}
}

func TestEvalNaNPassthrough(t *testing.T) {
	// A negative base with a fractional exponent is outside math.Pow's real
	// domain; the NaN result is not an error.
	n, err := exprc.Parse("(0 - 1) ^ 0.5")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	v, err := exprc.Eval(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(v) {
		t.Errorf("want NaN, got %g", v)
	}
}

func TestEvalHandBuiltTrees(t *testing.T) {
	mustErr := func(n exprc.Node) *exprc.SemanticError {
		t.Helper()
		_, err := exprc.Eval(n)
		var serr *exprc.SemanticError
		if !errors.As(err, &serr) {
			t.Fatalf("error is not a SemanticError: %v", err)
		}
		return serr
	}
	unknownOp := &exprc.BinaryOpNode{
		Op:    "%",
		Left:  &exprc.NumberNode{Value: 1},
		Right: &exprc.NumberNode{Value: 2},
	}
	if serr := mustErr(unknownOp); !strings.Contains(serr.Error(), "%") {
		t.Errorf("message %q does not name the operator", serr.Error())
	}
	mustErr(nil)

	leaf := &exprc.NumberNode{Value: 7}
	v, err := exprc.Eval(leaf)
	if err != nil || v != 7 {
		t.Errorf("bare leaf: want 7, got %g (err %v)", v, err)
	}
}
