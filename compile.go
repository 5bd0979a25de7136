package graphcalc

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// toPostfix converts tokens in infix order to postfix order using the
// shunting-yard algorithm.
func toPostfix(toks []token) (Postfix, error) {
	out := make(Postfix, 0, len(toks))
	ops := arraystack.New()
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum, tokenConst, tokenVar:
			out = append(out, tok.item())
		case tokenFunc, tokenOpen:
			ops.Push(tok)
		case tokenOp:
			op := binops[tok.text]
			for {
				v, ok := ops.Peek()
				if !ok || !popsBefore(v.(token), op) {
					break
				}
				ops.Pop()
				out = append(out, v.(token).item())
			}
			ops.Push(tok)
		case tokenClose:
			for {
				v, ok := ops.Pop()
				if !ok {
					return nil, &ParseError{Kind: MismatchedParens, Fragment: tok.text, Col: tok.pos}
				}
				if top := v.(token); top.kind != tokenOpen {
					out = append(out, top.item())
					continue
				}
				break
			}
			// A function applies to the parenthesized term that follows it.
			if v, ok := ops.Peek(); ok && v.(token).kind == tokenFunc {
				ops.Pop()
				out = append(out, v.(token).item())
			}
		default:
			return nil, &ParseError{Kind: UnknownToken, Fragment: tok.text, Col: tok.pos}
		}
	}
	for !ops.Empty() {
		v, _ := ops.Pop()
		top := v.(token)
		if top.kind == tokenOpen || top.kind == tokenClose {
			return nil, &ParseError{Kind: MismatchedParens, Fragment: top.text, Col: top.pos}
		}
		out = append(out, top.item())
	}
	return out, nil
}

// popsBefore reports whether the operator stack top must be output before
// pushing a binary operator op. Only one item is popped per test, so a stack
// holding mixed precedences is resolved correctly.
func popsBefore(top token, op operator) bool {
	switch top.kind {
	case tokenFunc:
		return funcprec > op.prec
	case tokenOp:
		p := binops[top.text]
		if p.prec != op.prec {
			return p.prec > op.prec
		}
		return op.assoc == Left
	default:
		// Open parenthesis.
		return false
	}
}
