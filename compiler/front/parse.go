package front

import (
	"context"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/slowlang/minilang/compiler/ast"
)

type (
	parser struct {
		toks []Token
	}

	level func(ctx context.Context, st int) (x ast.Node, i int, err error)

	binop struct {
		tok Kind
		op  ast.Op
	}
)

// Operator tables from the loosest level to the tightest.
var (
	orOps  = []binop{{Or, ast.Or}}
	andOps = []binop{{And, ast.And}}
	eqOps  = []binop{{Eq, ast.Eq}, {Ne, ast.Ne}}
	cmpOps = []binop{{Lt, ast.Lt}, {Gt, ast.Gt}, {Le, ast.Le}, {Ge, ast.Ge}}
	addOps = []binop{{Plus, ast.Add}, {Minus, ast.Sub}}
	mulOps = []binop{{Star, ast.Mul}, {Slash, ast.Div}}
)

// Parse builds the tree of a single expression spanning all of toks.
//
//	expr    = or
//	or      = and { "||" and }
//	and     = eq { "&&" eq }
//	eq      = cmp { ( "==" | "!=" ) cmp }
//	cmp     = add { ( "<" | ">" | "<=" | ">=" ) add }
//	add     = mul { ( "+" | "-" ) mul }
//	mul     = unary { ( "*" | "/" ) unary }
//	unary   = [ "-" ] primary
//	primary = number | ident | "(" expr ")"
//
// Errors are ParseError values. Nothing but a complete tree is ever returned.
func Parse(ctx context.Context, toks []Token) (x ast.Node, err error) {
	p := &parser{toks: toks}

	x, i, err := p.parseExpr(ctx, 0)
	if err != nil {
		return nil, err
	}

	if i != len(toks) {
		return nil, NewUnexpected(toks, i)
	}

	if tr := tlog.SpanFromContext(ctx); tr.If("parse") {
		tr.Printw("parsed", "tokens", len(toks), "ast", x)
	}

	return x, nil
}

func (p *parser) parseExpr(ctx context.Context, st int) (x ast.Node, i int, err error) {
	return p.parseOr(ctx, st)
}

func (p *parser) parseOr(ctx context.Context, st int) (x ast.Node, i int, err error) {
	return p.leftToRight(ctx, st, p.parseAnd, orOps)
}

func (p *parser) parseAnd(ctx context.Context, st int) (x ast.Node, i int, err error) {
	return p.leftToRight(ctx, st, p.parseEq, andOps)
}

func (p *parser) parseEq(ctx context.Context, st int) (x ast.Node, i int, err error) {
	return p.leftToRight(ctx, st, p.parseCmp, eqOps)
}

func (p *parser) parseCmp(ctx context.Context, st int) (x ast.Node, i int, err error) {
	return p.leftToRight(ctx, st, p.parseAdd, cmpOps)
}

func (p *parser) parseAdd(ctx context.Context, st int) (x ast.Node, i int, err error) {
	return p.leftToRight(ctx, st, p.parseMul, addOps)
}

func (p *parser) parseMul(ctx context.Context, st int) (x ast.Node, i int, err error) {
	return p.leftToRight(ctx, st, p.parseUnary, mulOps)
}

// leftToRight parses arg { op arg } folding to the left.
func (p *parser) leftToRight(ctx context.Context, st int, arg level, ops []binop) (x ast.Node, i int, err error) {
	x, i, err = arg(ctx, st)
	if err != nil {
		return nil, i, err
	}

	for {
		op, ok := p.matchOp(ctx, i, ops)
		if !ok {
			return x, i, nil
		}

		var r ast.Node

		r, i, err = arg(ctx, i+1)
		if err != nil {
			return nil, i, err
		}

		x = ast.BinOp{
			Op:    op,
			Left:  x,
			Right: r,
		}
	}
}

func (p *parser) parseUnary(ctx context.Context, st int) (x ast.Node, i int, err error) {
	tk, ok := p.next(ctx, st)
	if !ok || tk.Kind != Minus {
		return p.parsePrimary(ctx, st)
	}

	x, i, err = p.parsePrimary(ctx, st+1)
	if err != nil {
		return nil, i, err
	}

	return ast.Neg(x), i, nil
}

func (p *parser) parsePrimary(ctx context.Context, st int) (x ast.Node, i int, err error) {
	tk, ok := p.next(ctx, st)
	if !ok {
		return nil, st, NewUnexpected(p.toks, st, Number, Ident, LParen)
	}

	switch tk.Kind {
	case Number:
		return ast.Number{Value: tk.Value}, st + 1, nil
	case Ident:
		return ast.Ident{Name: tk.Name}, st + 1, nil
	case LParen:
	default:
		return nil, st, NewUnexpected(p.toks, st, Number, Ident, LParen)
	}

	x, i, err = p.parseExpr(ctx, st+1)
	if err != nil {
		return nil, i, err
	}

	if tk, ok = p.next(ctx, i); !ok || tk.Kind != RParen {
		return nil, i, NewUnexpected(p.toks, i, RParen)
	}

	return x, i + 1, nil
}

// matchOp returns the first op in ops matching the token at st.
func (p *parser) matchOp(ctx context.Context, st int, ops []binop) (ast.Op, bool) {
	tk, ok := p.next(ctx, st)
	if !ok {
		return 0, false
	}

	for _, o := range ops {
		if tk.Kind == o.tok {
			return o.op, true
		}
	}

	return 0, false
}

func (p *parser) next(ctx context.Context, st int) (tk Token, ok bool) {
	if tr := tlog.SpanFromContext(ctx); tr.If("next_token") {
		defer func() {
			tr.Printw("next token", "st", st, "tk", tk, "ok", ok, "from", loc.Callers(1, 3))
		}()
	}

	if st >= len(p.toks) {
		return Token{}, false
	}

	return p.toks[st], true
}
