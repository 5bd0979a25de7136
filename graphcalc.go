package graphcalc

// Evaluator is a compiled expression of one variable. An Evaluator is
// immutable and safe to use concurrently.
type Evaluator struct {
	f    evalfn
	src  string
	name string
	rpn  Postfix
}

// Compile parses an expression and builds an evaluator for it. The given
// options are applied in order. If the expression is invalid, the error is a
// *ParseError describing the first problem found.
func Compile(src string, opts ...Option) (*Evaluator, error) {
	p := newctx(opts)
	rpn, err := topostfix(src, p)
	if err != nil {
		return nil, err
	}
	f, err := build(rpn)
	if err != nil {
		return nil, err
	}
	return &Evaluator{f: f, src: src, name: p.name, rpn: rpn}, nil
}

// MustCompile is like Compile but panics if the expression is invalid.
func MustCompile(src string, opts ...Option) *Evaluator {
	e, err := Compile(src, opts...)
	if err != nil {
		panic("graphcalc: Compile(" + src + "): " + err.Error())
	}
	return e
}

// ToPostfix parses an expression and converts it to postfix order without
// checking operator arity.
func ToPostfix(src string, opts ...Option) (Postfix, error) {
	return topostfix(src, newctx(opts))
}

func topostfix(src string, p compilectx) (Postfix, error) {
	toks, err := tokenize(src, p.name)
	if err != nil {
		return nil, err
	}
	return toPostfix(toks)
}

// Build creates an evaluator from a postfix expression. Any variable items
// refer to the evaluator's input regardless of their names.
func Build(p Postfix) (*Evaluator, error) {
	f, err := build(p)
	if err != nil {
		return nil, err
	}
	e := Evaluator{f: f, src: p.String(), name: DefaultVar, rpn: append(Postfix(nil), p...)}
	for _, it := range p {
		if it.Kind == ItemVar && it.Name != "" {
			e.name = it.Name
			break
		}
	}
	return &e, nil
}

// Sample evaluates the expression with the free variable set to x.
func (e *Evaluator) Sample(x float64) float64 {
	return e.f(x)
}

// Postfix returns a copy of the compiled expression.
func (e *Evaluator) Postfix() Postfix {
	return append(Postfix(nil), e.rpn...)
}

// Var returns the name of the free variable.
func (e *Evaluator) Var() string {
	return e.name
}

// String returns the source expression.
func (e *Evaluator) String() string {
	return e.src
}
