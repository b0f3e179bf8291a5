// Command calc evaluates arithmetic expressions given as arguments, or reads
// them line by line from stdin when no arguments are given.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/arithmo/calc"
)

var cli struct {
	Dot  bool     `help:"Print a Graphviz description of the parse tree instead of evaluating."`
	AST  bool     `help:"Dump the parse tree instead of evaluating."`
	Echo bool     `help:"Print the parse tree along with the result."`
	Fmt  string   `default:"%g" help:"Result formatting verb."`
	Expr []string `arg:"" optional:"" help:"Expression to evaluate."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Description("A basic arithmetic expression parser and evaluator."))

	if len(cli.Expr) > 0 {
		ctx.FatalIfErrorf(run(strings.Join(cli.Expr, " ")))
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		ctx.FatalIfErrorf(run(line))
	}
	ctx.FatalIfErrorf(sc.Err())
}

// run parses a single expression and prints it per the selected mode.
func run(src string) error {
	e, err := calc.ParseString(src)
	if err != nil {
		return err
	}
	switch {
	case cli.Dot:
		return e.WriteDot(os.Stdout)
	case cli.AST:
		repr.Println(e.Tree())
		return nil
	default:
		r, err := e.Eval()
		if err != nil {
			return err
		}
		if cli.Echo {
			fmt.Printf("%v : ", e)
		}
		fmt.Printf(cli.Fmt+"\n", r)
		return nil
	}
}
