package graphcalc

import (
	"math"
	"sort"
	"strconv"
)

// Assoc is the associativity of a binary operator.
type Assoc int8

const (
	// Left groups a-b-c as (a-b)-c.
	Left Assoc = iota
	// Right groups a^b^c as a^(b^c).
	Right
)

func (a Assoc) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "Assoc(" + strconv.Itoa(int(a)) + ")"
	}
}

// Operators contains the runes which are binary operators.
const Operators = "+-*/^"

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int
	// assoc is the operator's associativity.
	assoc Assoc
}

var binops = map[string]operator{
	"^": {4, Right},
	"*": {3, Left},
	"/": {3, Left},
	"+": {2, Left},
	"-": {2, Left},
}

// funcprec is the precedence given to function names on the operator stack.
// It must exceed that of every binary operator.
const funcprec = 5

// Precedence returns the precedence and associativity of a binary operator.
// ok is false if symbol is not a binary operator.
func Precedence(symbol string) (prec int, assoc Assoc, ok bool) {
	op, ok := binops[symbol]
	return op.prec, op.assoc, ok
}

// isBinop returns whether s is a binary operator.
func isBinop(s string) bool {
	_, ok := binops[s]
	return ok
}

// lgamma is the natural logarithm of the absolute value of the gamma function.
func lgamma(x float64) float64 {
	r, _ := math.Lgamma(x)
	return r
}

var globalfuncs = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"asinh": math.Asinh,
	"acosh": math.Acosh,
	"atanh": math.Atanh,

	"exp":   math.Exp,
	"log":   math.Log,
	"log10": math.Log10,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,

	"abs":   math.Abs,
	"ceil":  math.Ceil,
	"floor": math.Floor,
	"trunc": math.Trunc,

	"tgamma": math.Gamma,
	"lgamma": lgamma,
}

// funcnames is the sorted list of function names.
var funcnames = func() []string {
	v := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		v = append(v, k)
	}
	sort.Strings(v)
	return v
}()

// IsFunction returns whether name is a unary function known to the compiler.
func IsFunction(name string) bool {
	_, ok := globalfuncs[name]
	return ok
}

// Function returns the unary function with the given name.
func Function(name string) (func(float64) float64, bool) {
	f, ok := globalfuncs[name]
	return f, ok
}

// Functions returns the names of all functions in lexical order.
func Functions() []string {
	return append([]string(nil), funcnames...)
}
