package front

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/minilang/compiler/ast"
)

func n(v float64) ast.Number { return ast.Number{Value: v} }
func id(s string) ast.Ident  { return ast.Ident{Name: s} }

func bin(op ast.Op, l, r ast.Node) ast.BinOp {
	return ast.BinOp{Op: op, Left: l, Right: r}
}

func parseString(t *testing.T, s string) (ast.Node, error) {
	t.Helper()

	ctx := context.Background()

	return Parse(ctx, Tokenize(ctx, []byte(s)))
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in  string
		exp ast.Node
	}{
		{"42", n(42)},
		{"x", id("x")},
		{"(x)", id("x")},
		{"((1.5))", n(1.5)},
		{"3 + 4 * 2", bin(ast.Add, n(3), bin(ast.Mul, n(4), n(2)))},
		{"3 * 4 + 2", bin(ast.Add, bin(ast.Mul, n(3), n(4)), n(2))},
		{"3 - 2 - 1", bin(ast.Sub, bin(ast.Sub, n(3), n(2)), n(1))},
		{"8 / 4 / 2", bin(ast.Div, bin(ast.Div, n(8), n(4)), n(2))},
		{"8 / 4 * 2", bin(ast.Mul, bin(ast.Div, n(8), n(4)), n(2))},
		{"(1 + 2) * (3 + 4)", bin(ast.Mul, bin(ast.Add, n(1), n(2)), bin(ast.Add, n(3), n(4)))},
		{"3 - (2 - 1)", bin(ast.Sub, n(3), bin(ast.Sub, n(2), n(1)))},
		{"a && b || c", bin(ast.Or, bin(ast.And, id("a"), id("b")), id("c"))},
		{"a || b && c", bin(ast.Or, id("a"), bin(ast.And, id("b"), id("c")))},
		{"a || b || c", bin(ast.Or, bin(ast.Or, id("a"), id("b")), id("c"))},
		{"3 < 4 == 5 > 2", bin(ast.Eq, bin(ast.Lt, n(3), n(4)), bin(ast.Gt, n(5), n(2)))},
		{"a != b == c", bin(ast.Eq, bin(ast.Ne, id("a"), id("b")), id("c"))},
		{"a <= b >= c", bin(ast.Ge, bin(ast.Le, id("a"), id("b")), id("c"))},
		{"a + 1 < b * 2", bin(ast.Lt, bin(ast.Add, id("a"), n(1)), bin(ast.Mul, id("b"), n(2)))},
		{"a == 1 && b != 2", bin(ast.And, bin(ast.Eq, id("a"), n(1)), bin(ast.Ne, id("b"), n(2)))},
		{"-x", bin(ast.Sub, n(0), id("x"))},
		{"-3 * 2", bin(ast.Mul, bin(ast.Sub, n(0), n(3)), n(2))},
		{"2 * -3", bin(ast.Mul, n(2), bin(ast.Sub, n(0), n(3)))},
		{"-(a + b)", bin(ast.Sub, n(0), bin(ast.Add, id("a"), id("b")))},
		{"1 - -1", bin(ast.Sub, n(1), bin(ast.Sub, n(0), n(1)))},
		{"a @ + b", bin(ast.Add, id("a"), id("b"))},
	} {
		t.Run(tc.in, func(t *testing.T) {
			x, err := parseString(t, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, x)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		kind ParseErrorKind
		pos  int
	}{
		{"", UnexpectedEndOfInput, 0},
		{"(1 + 2", UnexpectedEndOfInput, 4},
		{"(1 + 2]", UnexpectedEndOfInput, 4},
		{"1 +", UnexpectedEndOfInput, 2},
		{"-", UnexpectedEndOfInput, 1},
		{"a &&", UnexpectedEndOfInput, 2},
		{"(", UnexpectedEndOfInput, 1},
		{"()", UnexpectedToken, 1},
		{")", UnexpectedToken, 0},
		{"(1 + 2 3", UnexpectedToken, 4},
		{"(1 + 2 (", UnexpectedToken, 4},
		{"--x", UnexpectedToken, 1},
		{"* 2", UnexpectedToken, 0},
		{"1 + * 2", UnexpectedToken, 2},
		{"1 2", UnexpectedToken, 1},
		{"x = 1", UnexpectedToken, 1},
		{"(a))", UnexpectedToken, 3},
		{"a < < b", UnexpectedToken, 2},
	} {
		t.Run(tc.in, func(t *testing.T) {
			x, err := parseString(t, tc.in)
			assert.Nil(t, x)
			require.ErrorIs(t, err, tc.kind)

			var pe ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.kind, pe.Kind)
			assert.Equal(t, tc.pos, pe.Pos)
		})
	}
}

func TestParseErrorDetails(t *testing.T) {
	ctx := context.Background()

	_, err := Parse(ctx, nil)

	var pe ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnexpectedEndOfInput, pe.Kind)
	assert.Equal(t, []Kind{Number, Ident, LParen}, pe.Want)
	assert.EqualError(t, err, "unexpected end of input, want: number, ident, (")

	_, err = Parse(ctx, Tokenize(ctx, []byte("(1 + 2 3")))

	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnexpectedToken, pe.Kind)
	assert.Equal(t, []Kind{RParen}, pe.Want)
	assert.True(t, pe.Token.Same(num(3)))
	assert.Equal(t, 7, pe.Token.Pos)
	assert.EqualError(t, err, `unexpected token: "3" (number) at offset 7, want: )`)
}

func TestParseGarbageInsteadOfParen(t *testing.T) {
	ctx := context.Background()

	toks := []Token{op(LParen), num(1), op(Plus), num(2), op(Star)}

	_, err := Parse(ctx, toks)
	require.ErrorIs(t, err, UnexpectedEndOfInput)

	toks = []Token{op(LParen), num(1), op(Plus), num(2), op(Lt), op(RParen)}

	_, err = Parse(ctx, toks)
	require.ErrorIs(t, err, UnexpectedToken)

	toks = []Token{op(LParen), num(1), op(Plus), num(2), ident("z")}

	_, err = Parse(ctx, toks)
	require.ErrorIs(t, err, UnexpectedToken)

	var pe ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 4, pe.Pos)
	assert.Equal(t, []Kind{RParen}, pe.Want)
}

func TestParseDeterministic(t *testing.T) {
	ctx := context.Background()
	toks := Tokenize(ctx, []byte("(x1 + 2.5) * -y >= 3 && z != 0 || w"))

	x, err := Parse(ctx, toks)
	require.NoError(t, err)

	y, err := Parse(ctx, toks)
	require.NoError(t, err)

	assert.Equal(t, x, y)
}

func TestParseDoesNotModifyTokens(t *testing.T) {
	ctx := context.Background()
	toks := Tokenize(ctx, []byte("a * (b - 1) <= -c"))
	cp := append([]Token(nil), toks...)

	_, err := Parse(ctx, toks)
	require.NoError(t, err)
	assert.Equal(t, cp, toks)
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 1000

	src := make([]byte, 0, 2*depth+1)

	for i := 0; i < depth; i++ {
		src = append(src, '(')
	}

	src = append(src, 'x')

	for i := 0; i < depth; i++ {
		src = append(src, ')')
	}

	x, err := parseString(t, string(src))
	require.NoError(t, err)
	assert.Equal(t, id("x"), x)

	_, err = parseString(t, string(src[:len(src)-1]))
	require.ErrorIs(t, err, UnexpectedEndOfInput)
}

func TestParseLongChain(t *testing.T) {
	ctx := context.Background()

	var toks []Token

	for i := 0; i < 100; i++ {
		if i != 0 {
			toks = append(toks, op(Minus))
		}

		toks = append(toks, num(float64(i)))
	}

	x, err := Parse(ctx, toks)
	require.NoError(t, err)

	for i := 99; i > 0; i-- {
		b, ok := x.(ast.BinOp)
		require.True(t, ok, "level %d: %T", i, x)
		assert.Equal(t, ast.Sub, b.Op)
		assert.Equal(t, n(float64(i)), b.Right)

		x = b.Left
	}

	assert.Equal(t, n(0), x)
}
