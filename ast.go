package minicalc

import "fmt"

// Expr is a node of the expression tree. Every node owns its children
// exclusively and is never modified after the parser builds it.
type Expr interface {
	fmt.Stringer
	expr()
}

type Constant struct {
	Value int64
}

type Sum struct {
	Left  Expr
	Right Expr
}

type Multiply struct {
	Left  Expr
	Right Expr
}

func (Constant) expr() {}
func (Sum) expr()      {}
func (Multiply) expr() {}

func (c Constant) String() string {
	return fmt.Sprint(c.Value)
}

func (s Sum) String() string {
	return fmt.Sprintf("(%v + %v)", s.Left, s.Right)
}

func (m Multiply) String() string {
	return fmt.Sprintf("(%v * %v)", m.Left, m.Right)
}
