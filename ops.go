package minicalc

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

type Fn func(a, b int64) (int64, bool)

type OpInfo struct {
	symbol string
	fn     Fn
	build  func(left, right Expr) Expr
}

var ops map[TokenKind]OpInfo

func init() {
	ops = make(map[TokenKind]OpInfo)
	ops[TokenPlus] = OpInfo{
		symbol: "+",
		fn:     doPlus,
		build:  func(l, r Expr) Expr { return Sum{Left: l, Right: r} },
	}
	ops[TokenStar] = OpInfo{
		symbol: "*",
		fn:     doMul,
		build:  func(l, r Expr) Expr { return Multiply{Left: l, Right: r} },
	}
}

// doPlus reports false when a+b does not fit in an int64.
func doPlus(a, b int64) (int64, bool) {
	r := a + b
	if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
		return 0, false
	}
	return r, true
}

// doMul reports false when a*b does not fit in an int64.
func doMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

func apply(op TokenKind, left, right Expr) (int64, error) {
	l, err := Eval(left)
	if err != nil {
		return 0, err
	}
	r, err := Eval(right)
	if err != nil {
		return 0, err
	}
	info := ops[op]
	v, ok := info.fn(l, r)
	if !ok {
		return 0, newError(ErrArithmeticOverflow, fmt.Sprintf("%d %s %d", l, info.symbol, r), 0)
	}
	return v, nil
}

// Eval reduces e to its value, left operand first. Overflowing sums and
// products fail with ErrArithmeticOverflow.
func Eval(e Expr) (int64, error) {
	switch n := e.(type) {
	case Constant:
		return n.Value, nil
	case Sum:
		return apply(TokenPlus, n.Left, n.Right)
	case Multiply:
		return apply(TokenStar, n.Left, n.Right)
	}
	return 0, fmt.Errorf("invalid expression: %T", e)
}

// Env runs print statements, writing each value to its output.
type Env struct {
	out io.Writer
}

func NewEnv(out io.Writer) *Env {
	if out == nil {
		out = os.Stdout
	}
	return &Env{out: out}
}

func (e *Env) Run(r io.Reader) (int64, error) {
	node, err := Parse(r)
	if err != nil {
		return 0, err
	}
	return e.Exec(node)
}

func (e *Env) RunString(src string) (int64, error) {
	return e.Run(strings.NewReader(src))
}

// Exec evaluates node and prints the result. Nothing is printed on error.
func (e *Env) Exec(node Expr) (int64, error) {
	v, err := Eval(node)
	if err != nil {
		return 0, err
	}
	if _, err := fmt.Fprintln(e.out, v); err != nil {
		return 0, err
	}
	return v, nil
}
