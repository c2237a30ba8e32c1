package front

import (
	"fmt"
	"strings"
)

type (
	// ParseErrorKind is an error itself, so errors.Is(err, UnexpectedToken) classifies any parse error.
	ParseErrorKind int

	ScanErrorKind int

	ParseError struct {
		Kind ParseErrorKind

		Token Token // offending token, zero for UnexpectedEndOfInput
		Want  []Kind
		Pos   int // token index
	}

	ScanError struct {
		Kind ScanErrorKind

		Pos  int // byte offset
		Char rune
		Text string

		Err error
	}
)

const (
	UnexpectedToken ParseErrorKind = iota + 1
	UnexpectedEndOfInput
)

const (
	IncompleteOperator ScanErrorKind = iota + 1
	UnknownChar
	MalformedNumber
)

func NewUnexpected(toks []Token, i int, want ...Kind) ParseError {
	if i >= len(toks) {
		return ParseError{
			Kind: UnexpectedEndOfInput,
			Want: want,
			Pos:  len(toks),
		}
	}

	return ParseError{
		Kind:  UnexpectedToken,
		Token: toks[i],
		Want:  want,
		Pos:   i,
	}
}

func (e ParseError) Error() string {
	var b strings.Builder

	switch e.Kind {
	case UnexpectedToken:
		fmt.Fprintf(&b, "unexpected token: %q (%v) at offset %d", e.Token, e.Token.Kind, e.Token.Pos)
	default:
		b.WriteString(e.Kind.Error())
	}

	if len(e.Want) != 0 {
		b.WriteString(", want: ")

		for i, k := range e.Want {
			if i != 0 {
				b.WriteString(", ")
			}

			b.WriteString(k.String())
		}
	}

	return b.String()
}

func (e ParseError) Unwrap() error { return e.Kind }

func (k ParseErrorKind) Error() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	default:
		return fmt.Sprintf("parse error %d", int(k))
	}
}

func (e ScanError) Error() string {
	switch e.Kind {
	case MalformedNumber:
		return fmt.Sprintf("%v: %q at offset %d", e.Kind, e.Text, e.Pos)
	default:
		return fmt.Sprintf("%v: %q at offset %d", e.Kind, e.Char, e.Pos)
	}
}

func (e ScanError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

func (k ScanErrorKind) Error() string {
	switch k {
	case IncompleteOperator:
		return "incomplete operator"
	case UnknownChar:
		return "unknown character"
	case MalformedNumber:
		return "malformed number"
	default:
		return fmt.Sprintf("scan error %d", int(k))
	}
}
