package front

import (
	"fmt"
	"strconv"
)

type (
	Kind int

	// Token is Number (Value is set), Ident (Name is set) or one of the operator kinds.
	// Pos and End are byte offsets of the lexeme in the scanned text.
	Token struct {
		Kind Kind

		Value float64
		Name  string

		Pos int
		End int
	}
)

const (
	_ Kind = iota

	Number
	Ident

	Plus
	Minus
	Star
	Slash
	LParen
	RParen

	Eq
	Ne
	Lt
	Gt
	Le
	Ge

	And
	Or
)

var kindText = [...]string{
	Number: "number",
	Ident:  "ident",
	Plus:   "+",
	Minus:  "-",
	Star:   "*",
	Slash:  "/",
	LParen: "(",
	RParen: ")",
	Eq:     "==",
	Ne:     "!=",
	Lt:     "<",
	Gt:     ">",
	Le:     "<=",
	Ge:     ">=",
	And:    "&&",
	Or:     "||",
}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindText) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindText[k]
}

// Same reports whether t and x are the same token ignoring source positions.
func (t Token) Same(x Token) bool {
	return t.Kind == x.Kind && t.Name == x.Name && t.Value == x.Value
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	case Ident:
		return t.Name
	default:
		return t.Kind.String()
	}
}
