package format

import (
	"context"
	"math"
	"strconv"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/slowlang/minilang/compiler/ast"
)

// Format appends x as infix text with as few parentheses as needed
// to parse back into the same tree.
func Format(ctx context.Context, b []byte, x ast.Node) ([]byte, error) {
	return formatExpr(ctx, b, x, 0)
}

// Sexpr appends x in prefix form, like (+ 3 (* 4 2)).
func Sexpr(ctx context.Context, b []byte, x ast.Node) (_ []byte, err error) {
	switch x := x.(type) {
	case ast.Number:
		b, err = appendNumber(b, x.Value)
		if err != nil {
			return nil, err
		}
	case ast.Ident:
		b = append(b, x.Name...)
	case ast.BinOp:
		if !x.Op.Valid() {
			return nil, errors.New("unsupported op: %v", x.Op)
		}

		b = hfmt.Appendf(b, "(%v ", x.Op)

		b, err = Sexpr(ctx, b, x.Left)
		if err != nil {
			return nil, errors.Wrap(err, "left")
		}

		b = append(b, ' ')

		b, err = Sexpr(ctx, b, x.Right)
		if err != nil {
			return nil, errors.Wrap(err, "right")
		}

		b = append(b, ')')
	default:
		return nil, errors.New("unsupported expr: %T", x)
	}

	return b, nil
}

// formatExpr wraps x in parentheses if it binds looser than prec.
func formatExpr(ctx context.Context, b []byte, x ast.Node, prec int) (_ []byte, err error) {
	switch x := x.(type) {
	case ast.Number:
		b, err = appendNumber(b, x.Value)
		if err != nil {
			return nil, err
		}
	case ast.Ident:
		b = append(b, x.Name...)
	case ast.BinOp:
		p := x.Op.Precedence()
		if p == 0 {
			return nil, errors.New("unsupported op: %v", x.Op)
		}

		paren := p < prec
		if paren {
			b = append(b, '(')
		}

		b, err = formatExpr(ctx, b, x.Left, p)
		if err != nil {
			return nil, errors.Wrap(err, "left")
		}

		b = hfmt.Appendf(b, " %v ", x.Op)

		// operators are left-associative, so equal precedence on the right needs parentheses
		b, err = formatExpr(ctx, b, x.Right, p+1)
		if err != nil {
			return nil, errors.Wrap(err, "right")
		}

		if paren {
			b = append(b, ')')
		}
	default:
		return nil, errors.New("unsupported expr: %T", x)
	}

	return b, nil
}

// appendNumber fails for ±Inf and NaN, which have no literal form.
func appendNumber(b []byte, v float64) ([]byte, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, errors.New("non-finite number: %v", v)
	}

	return strconv.AppendFloat(b, v, 'f', -1, 64), nil
}
