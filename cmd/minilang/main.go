package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/nikandfor/hacked/hfmt"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/minilang/compiler"
	"github.com/slowlang/minilang/compiler/ast"
	"github.com/slowlang/minilang/compiler/format"
	"github.com/slowlang/minilang/compiler/front"
)

func main() {
	tokensCmd := &cli.Command{
		Name:        "tokens",
		Description: "print tokens of each expression",
		Action:      tokensAct,
		Args:        cli.Args{},
	}

	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "print each expression tree as s-expression",
		Action:      parseAct,
		Args:        cli.Args{},
	}

	astCmd := &cli.Command{
		Name:        "ast",
		Description: "dump each expression tree as go values",
		Action:      astAct,
		Args:        cli.Args{},
	}

	formatCmd := &cli.Command{
		Name:        "format",
		Description: "print each expression in canonical form",
		Action:      formatAct,
		Args:        cli.Args{},
	}

	checkCmd := &cli.Command{
		Name:        "check",
		Description: "strictly scan and parse each expression",
		Action:      checkAct,
		Args:        cli.Args{},
	}

	fileCmd := &cli.Command{
		Name:        "file",
		Description: "parse an expression from each file",
		Action:      fileAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "minilang",
		Description: "minilang is a tool for parsing minilang expressions",
		Commands: []*cli.Command{
			tokensCmd,
			parseCmd,
			astCmd,
			formatCmd,
			checkCmd,
			fileCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func tokensAct(c *cli.Command) (err error) {
	ctx := rootContext()

	var b []byte

	for _, a := range c.Args {
		for _, t := range front.Tokenize(ctx, []byte(a)) {
			b = hfmt.Appendf(b[:0], "%4d  %-6v  %s\n", t.Pos, t.Kind, a[t.Pos:t.End])

			os.Stdout.Write(b)
		}

		fmt.Println()
	}

	return nil
}

func parseAct(c *cli.Command) (err error) {
	return eachExpr(c, compiler.Options{}, format.Sexpr)
}

func formatAct(c *cli.Command) (err error) {
	return eachExpr(c, compiler.Options{}, format.Format)
}

func checkAct(c *cli.Command) (err error) {
	return eachExpr(c, compiler.Options{Strict: true}, format.Sexpr)
}

func astAct(c *cli.Command) (err error) {
	ctx := rootContext()

	for _, a := range c.Args {
		x, err := compiler.Parse(ctx, a, []byte(a))
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", repr.String(x, repr.Indent("  ")))
	}

	return nil
}

func fileAct(c *cli.Command) (err error) {
	ctx := rootContext()

	var b []byte

	for _, a := range c.Args {
		x, err := compiler.ParseFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "file %v", a)
		}

		b, err = format.Sexpr(ctx, b[:0], x)
		if err != nil {
			return errors.Wrap(err, "file %v", a)
		}

		fmt.Printf("%s: %s\n", a, b)
	}

	return nil
}

func eachExpr(c *cli.Command, opts compiler.Options, f func(context.Context, []byte, ast.Node) ([]byte, error)) (err error) {
	ctx := rootContext()

	var b []byte

	for _, a := range c.Args {
		x, err := compiler.ParseWith(ctx, opts, a, []byte(a))
		if err != nil {
			return err
		}

		b, err = f(ctx, b[:0], x)
		if err != nil {
			return errors.Wrap(err, "format %v", a)
		}

		fmt.Printf("%s\n", b)
	}

	return nil
}

func rootContext() context.Context {
	ctx := context.Background()

	return tlog.ContextWithSpan(ctx, tlog.Root())
}
