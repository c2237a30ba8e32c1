package front

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/slowlang/minilang/compiler/ast"
)

func TestParseConcurrent(t *testing.T) {
	ctx := context.Background()

	const workers = 16

	res := make([]ast.Node, workers)

	var g errgroup.Group

	for w := 0; w < workers; w++ {
		w := w

		g.Go(func() error {
			src := fmt.Sprintf("a%d * (%d + b) >= -c && d != %d || e", w, w, w)

			x, err := Parse(ctx, Tokenize(ctx, []byte(src)))
			if err != nil {
				return err
			}

			res[w] = x

			return nil
		})
	}

	require.NoError(t, g.Wait())

	for w, x := range res {
		exp := bin(ast.Or,
			bin(ast.And,
				bin(ast.Ge,
					bin(ast.Mul, id(fmt.Sprintf("a%d", w)), bin(ast.Add, n(float64(w)), id("b"))),
					bin(ast.Sub, n(0), id("c"))),
				bin(ast.Ne, id("d"), n(float64(w)))),
			id("e"))

		assert.Equal(t, exp, x, "worker %d", w)
	}
}
