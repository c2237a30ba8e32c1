package compiler

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/minilang/compiler/ast"
	"github.com/slowlang/minilang/compiler/front"
)

type (
	Options struct {
		// Strict makes unknown characters and lone '=', '!', '&', '|' an error
		// instead of skipping them.
		Strict bool
	}
)

func ParseFile(ctx context.Context, name string) (x ast.Node, err error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Parse(ctx, name, text)
}

// Parse tokenizes and parses text as a single expression.
func Parse(ctx context.Context, name string, text []byte) (x ast.Node, err error) {
	return ParseWith(ctx, Options{}, name, text)
}

func ParseWith(ctx context.Context, opts Options, name string, text []byte) (x ast.Node, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "parse expression", "name", name, "size", len(text), "strict", opts.Strict)
	defer tr.Finish("err", &err)

	s := front.Scanner{Strict: opts.Strict}

	toks, err := s.Scan(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "scan %v", name)
	}

	x, err = front.Parse(ctx, toks)
	if err != nil {
		return nil, errors.Wrap(err, "parse %v", name)
	}

	return x, nil
}
