// Command exprc compiles arithmetic expressions from the command line and
// serves the compile API over HTTP.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/minicomp/exprc"
	"github.com/minicomp/exprc/server"
)

// demoExpressions are evaluated when eval is run without arguments.
var demoExpressions = []string{
	"3 + 5 * (10 / 2)",
	"2 ^ 3 ^ 2",
	"(10 + 2) * 3 - 4 / 2",
}

func main() {
	app := &cli.App{
		Name:  "exprc",
		Usage: "compile and evaluate arithmetic expressions",
		Commands: []*cli.Command{
			evalCommand(),
			serveCommand(),
		},
	}
	app.RunAndExitOnError()
}

func evalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "tokenize, parse and evaluate expressions",
		ArgsUsage: "[expression ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the {tokens, ast, result} payload as JSON",
			},
			&cli.UintFlag{
				Name:  "p",
				Usage: "re-evaluate the tree at the given precision in bits",
			},
		},
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if len(args) == 0 {
				args = demoExpressions
			}
			for _, expr := range args {
				if err := evalOne(c, expr); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func evalOne(c *cli.Context, expr string) error {
	res, err := exprc.Compile(expr)
	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		if err != nil {
			return enc.Encode(map[string]string{"error": err.Error()})
		}
		return enc.Encode(res)
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s: %v", expr, err), 1)
	}
	w := c.App.Writer
	fmt.Fprintf(w, "%s\n", expr)
	fmt.Fprintln(w, "tokens:")
	for _, tok := range res.Tokens {
		fmt.Fprintf(w, "  %v\n", tok)
	}
	fmt.Fprintln(w, "tree:")
	fmt.Fprint(w, exprc.Dump(res.AST))
	if p := c.Uint("p"); p > 0 {
		v, err := exprc.EvalBig(res.AST, p)
		if err != nil {
			return cli.Exit(fmt.Sprintf("%s: %v", expr, err), 1)
		}
		fmt.Fprintf(w, "result: %s\n", v.Text('g', -1))
		return nil
	}
	fmt.Fprintf(w, "result: %g\n", res.Value)
	return nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the compile API over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: ":8080",
				Usage: "address to listen on",
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "also write logs to this file as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			var jsonw io.Writer
			if name := c.String("log"); name != "" {
				f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				jsonw = f
			}
			s := server.New(server.NewLogger(os.Stderr, jsonw))
			return s.ListenAndServe(c.String("addr"))
		},
	}
}
