package graphcalc

import (
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// evalfn computes the value of a subexpression from the free variable.
type evalfn func(x float64) float64

// build reduces a postfix expression to a single evaluation function.
func build(p Postfix) (evalfn, error) {
	stack := arraystack.New()
	pop := func() (evalfn, bool) {
		v, ok := stack.Pop()
		if !ok {
			return nil, false
		}
		return v.(evalfn), true
	}
	for _, it := range p {
		switch it.Kind {
		case ItemNum:
			v := it.Value
			stack.Push(evalfn(func(float64) float64 { return v }))
		case ItemVar:
			stack.Push(evalfn(func(x float64) float64 { return x }))
		case ItemOp:
			if !isBinop(it.Name) {
				return nil, &ParseError{Kind: UnknownToken, Fragment: it.Name}
			}
			r, ok := pop()
			if !ok {
				return nil, &ParseError{Kind: MalformedExpression, Fragment: it.Name}
			}
			l, ok := pop()
			switch {
			case ok:
				op := it.Name
				stack.Push(evalfn(func(x float64) float64 { return applyBinary(l(x), r(x), op) }))
			case it.Name == "-":
				// Leading minus, as in -x or (-x).
				stack.Push(evalfn(func(x float64) float64 { return -r(x) }))
			default:
				return nil, &ParseError{Kind: MalformedExpression, Fragment: it.Name}
			}
		case ItemFunc:
			f, ok := Function(it.Name)
			if !ok {
				return nil, &ParseError{Kind: UnknownToken, Fragment: it.Name}
			}
			arg, ok := pop()
			if !ok {
				return nil, &ParseError{Kind: MalformedExpression, Fragment: it.Name}
			}
			stack.Push(evalfn(func(x float64) float64 { return f(arg(x)) }))
		default:
			return nil, &ParseError{Kind: MalformedExpression, Fragment: it.String()}
		}
	}
	if stack.Size() != 1 {
		return nil, &ParseError{Kind: MalformedExpression}
	}
	f, _ := pop()
	return f, nil
}

// applyBinary computes a op b. Division by zero and powers of negative bases
// follow IEEE 754 rather than failing.
func applyBinary(a, b float64, op string) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		return a / b
	case "^":
		return math.Pow(a, b)
	default:
		panic("graphcalc: invalid binary operator " + op)
	}
}
