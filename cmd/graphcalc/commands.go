package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/graphcalc"
	"github.com/zephyrtronium/graphcalc/sample"
)

func newEvalCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr> [value...]",
		Short: "Evaluate an expression at each value (default 0)",
		Long: `Evaluate an expression at each given value of the variable.

Values may themselves be constant expressions such as pi/2. Use "-" as the
expression to read it from standard input, and "--" before negative values.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := opts.compile(cmd, args[0])
			if err != nil {
				return err
			}
			vals := args[1:]
			if len(vals) == 0 {
				vals = []string{"0"}
			}
			out := cmd.OutOrStdout()
			for _, v := range vals {
				x, err := constant(v)
				if err != nil {
					return fmt.Errorf("value %q: %w", v, err)
				}
				fmt.Fprintf(out, opts.Format+"\n", ev.Sample(x))
			}
			return nil
		},
	}
}

func newRPNCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rpn <expr>",
		Short: "Print an expression in postfix order",
		Long: `Print an expression in postfix order without checking operator arity.

Use "-" as the expression to read it from standard input. Put "--" before an
expression that starts with a minus sign, as in: graphcalc rpn -- -x^2`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readExpr(cmd, args[0])
			if err != nil {
				return err
			}
			p, err := graphcalc.ToPostfix(src, graphcalc.Var(opts.Var))
			if err != nil {
				return &exprError{src: src, err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newTableCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <expr>",
		Short: "Sample an expression over a range",
		Long: `Sample an expression at evenly spaced values of the variable and print
one "x<TAB>y" line per point.

Use "-" as the expression to read it from standard input. Put "--" before an
expression that starts with a minus sign, as in: graphcalc table -- -x^2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := opts.compile(cmd, args[0])
			if err != nil {
				return err
			}
			xs := sample.Linspace(opts.From, opts.To, opts.Steps)
			opts.log.Debug("sampling", "from", opts.From, "to", opts.To, "steps", opts.Steps, "workers", opts.Workers)
			pts, err := sample.Curve(cmd.Context(), ev, xs, opts.Workers)
			if err != nil {
				return err
			}
			if n := len(pts) - len(sample.Finite(pts)); n > 0 {
				opts.log.Warn("expression is not finite at some points", "count", n)
			}
			out := cmd.OutOrStdout()
			line := opts.Format + "\t" + opts.Format + "\n"
			for _, p := range pts {
				fmt.Fprintf(out, line, p.X, p.Y)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&opts.From, "from", -5, "first value of the variable")
	cmd.Flags().Float64Var(&opts.To, "to", 5, "last value of the variable")
	cmd.Flags().IntVarP(&opts.Steps, "steps", "n", 11, "number of points")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "j", 0, "sampling goroutines (default GOMAXPROCS)")
	return cmd
}

func newFuncsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "funcs",
		Short: "List the available functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(graphcalc.Functions(), "\n"))
			return nil
		},
	}
}

// compile reads and compiles the expression argument.
func (opts *options) compile(cmd *cobra.Command, arg string) (*graphcalc.Evaluator, error) {
	src, err := readExpr(cmd, arg)
	if err != nil {
		return nil, err
	}
	ev, err := graphcalc.Compile(src, graphcalc.Var(opts.Var))
	if err != nil {
		return nil, &exprError{src: src, err: err}
	}
	opts.log.Debug("compiled", "expr", src, "var", ev.Var(), "rpn", ev.Postfix().String())
	return ev, nil
}

// constant evaluates an expression that does not use the variable.
func constant(src string) (float64, error) {
	// Values have no variable, so "_" is rejected like any other name.
	p, err := graphcalc.ToPostfix(src, graphcalc.Var("_"))
	if err != nil {
		return 0, err
	}
	for _, it := range p {
		if it.Kind == graphcalc.ItemVar {
			return 0, fmt.Errorf("%s is not constant", src)
		}
	}
	ev, err := graphcalc.Build(p)
	if err != nil {
		return 0, err
	}
	return ev.Sample(0), nil
}
