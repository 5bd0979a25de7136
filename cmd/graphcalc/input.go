package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/graphcalc"
)

// readExpr returns the expression named by arg, reading standard input if arg
// is "-".
func readExpr(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading expression: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// exprError is a compile error along with the source that caused it.
type exprError struct {
	src string
	err error
}

func (e *exprError) Error() string {
	return e.err.Error()
}

func (e *exprError) Unwrap() error {
	return e.err
}

// caret returns the source line and a marker under the position of the error,
// or the empty string if the error has no position.
func (e *exprError) caret() string {
	var ie graphcalc.InputError
	if !errors.As(e.err, &ie) || ie.Pos() <= 0 || ie.Pos() > utf8.RuneCountInString(e.src) {
		return ""
	}
	return e.src + "\n" + strings.Repeat(" ", ie.Pos()-1) + "^"
}
