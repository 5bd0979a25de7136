package graphcalc

import (
	"strconv"
	"strings"
)

// Item is one instruction of a compiled expression in postfix order.
type Item struct {
	// Kind is the kind of instruction.
	Kind ItemKind
	// Value is the value of a literal.
	Value float64
	// Name is the operator symbol, function name, or variable name. For
	// literals, it is the source text, if any.
	Name string
}

// ItemKind identifies the kind of a postfix Item.
type ItemKind int8

const (
	itemNone ItemKind = iota

	ItemNum  // push Value
	ItemVar  // push the free variable
	ItemOp   // pop two operands (or one for unary minus), push the result
	ItemFunc // pop one operand, push Name(operand)
)

func (k ItemKind) String() string {
	switch k {
	case ItemNum:
		return "Num"
	case ItemVar:
		return "Var"
	case ItemOp:
		return "Op"
	case ItemFunc:
		return "Func"
	default:
		return "ItemKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (it Item) String() string {
	switch it.Kind {
	case ItemNum:
		if it.Name != "" {
			return it.Name
		}
		return strconv.FormatFloat(it.Value, 'g', -1, 64)
	case ItemVar, ItemOp, ItemFunc:
		return it.Name
	default:
		return "$" + it.Name + "$"
	}
}

// Postfix is a compiled expression in reverse Polish notation.
type Postfix []Item

// String formats the items separated by spaces, e.g. "x 2 ^ 1 +".
func (p Postfix) String() string {
	var b strings.Builder
	for i, it := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(it.String())
	}
	return b.String()
}

// item converts an operator stack token to its postfix instruction.
func (t token) item() Item {
	switch t.kind {
	case tokenNum, tokenConst:
		return Item{Kind: ItemNum, Value: t.val, Name: t.text}
	case tokenVar:
		return Item{Kind: ItemVar, Name: t.text}
	case tokenOp:
		return Item{Kind: ItemOp, Name: t.text}
	case tokenFunc:
		return Item{Kind: ItemFunc, Name: t.text}
	default:
		panic("graphcalc: no postfix item for " + t.String())
	}
}
