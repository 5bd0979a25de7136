// Command graphcalc compiles expressions of one variable and evaluates them.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Exit codes.
const (
	exitExpr  = 1 // the expression did not compile
	exitUsage = 2 // anything else
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

// report writes err to w, in color if w is a terminal, and returns the exit
// code for it.
func report(w io.Writer, err error) int {
	c := color.New(color.FgRed, color.Bold)
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprint(w, "graphcalc:")
	io.WriteString(w, " "+err.Error()+"\n")
	var ee *exprError
	if !errors.As(err, &ee) {
		return exitUsage
	}
	if s := ee.caret(); s != "" {
		io.WriteString(w, s+"\n")
	}
	return exitExpr
}
