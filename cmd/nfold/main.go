// Command nfold reads an n-fold integer program from standard input and
// writes its optimal solution (or infeasibility) to standard output, per
// the protocol in nfoldio.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/fatih/color"

	"github.com/augfold/nfold/augloop"
	"github.com/augfold/nfold/diagnostics"
	"github.com/augfold/nfold/nfoldio"
)

func main() {
	verbose := flag.Bool("v", false, "trace augmentation steps to stderr")
	useLambda := flag.Bool("la", false, "enable the optional L_A-bounding heuristic")
	flag.Parse()

	defer func() {
		if r := recover(); r != nil {
			color.Red("nfold: internal error: %v", r)
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Stdin, os.Stdout, os.Stderr, *verbose, *useLambda))
}

func run(in io.Reader, out, errOut io.Writer, verbose, useLambda bool) int {
	x, err := nfoldio.Parse(in)
	if err != nil {
		color.New(color.FgRed).Fprintf(errOut, "nfold: %v\n", err)
		return 1
	}
	if err := x.Validate(); err != nil {
		color.New(color.FgRed).Fprintf(errOut, "nfold: %v\n", err)
		return 1
	}

	sink := diagnostics.Sink(diagnostics.Nop)
	if verbose {
		sink = diagnostics.NewColorSink(errOut)
	}

	z, cost, ok := augloop.Solve(x, augloop.Config{Sink: sink, UseLambdaScaling: useLambda})
	if !ok {
		if err := nfoldio.FormatInfeasible(out); err != nil {
			color.New(color.FgRed).Fprintf(errOut, "nfold: %v\n", err)
			return 1
		}

		return 1
	}

	if err := nfoldio.Format(out, z, cost); err != nil {
		color.New(color.FgRed).Fprintf(errOut, "nfold: %v\n", err)
		return 1
	}

	return 0
}
