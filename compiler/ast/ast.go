package ast

import "fmt"

type (
	// Node is one of Number, Ident or BinOp.
	Node interface {
		node()
	}

	Number struct {
		Value float64
	}

	Ident struct {
		Name string
	}

	// BinOp exclusively owns both of its children.
	// Unary minus is represented as BinOp{Op: Sub, Left: Number{0}, Right: x}.
	BinOp struct {
		Op    Op
		Left  Node
		Right Node
	}

	Op int
)

const (
	Add Op = iota + 1
	Sub
	Mul
	Div
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
	And
	Or
)

var opText = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Eq:  "==",
	Ne:  "!=",
	Lt:  "<",
	Gt:  ">",
	Le:  "<=",
	Ge:  ">=",
	And: "&&",
	Or:  "||",
}

func (Number) node() {}
func (Ident) node()  {}
func (BinOp) node()  {}

func (op Op) Valid() bool {
	return op >= Add && op <= Or
}

// Precedence is the binding strength of op, 1 for || up to 6 for * and /.
// It's 0 for invalid ops.
func (op Op) Precedence() int {
	switch op {
	case Or:
		return 1
	case And:
		return 2
	case Eq, Ne:
		return 3
	case Lt, Gt, Le, Ge:
		return 4
	case Add, Sub:
		return 5
	case Mul, Div:
		return 6
	default:
		return 0
	}
}

func (op Op) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Op(%d)", int(op))
	}

	return opText[op]
}

// Neg builds the tree unary minus desugars into.
func Neg(x Node) BinOp {
	return BinOp{
		Op:    Sub,
		Left:  Number{},
		Right: x,
	}
}
