package graphcalc

import (
	"strconv"
	"unicode"
)

// DefaultVar is the name of the free variable when no Var option is given.
const DefaultVar = "x"

// Option is an option for compiling.
type Option interface {
	compileOption(compilectx) compilectx
}

// compilectx holds the settings for a compilation.
type compilectx struct {
	// name is the free variable's name.
	name string
}

func newctx(opts []Option) compilectx {
	p := compilectx{name: DefaultVar}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.compileOption(p)
	}
	return p
}

type varopt string

// Var sets the name of the free variable. The name must be an identifier: a
// letter or underscore followed by letters, digits, and underscores. Var
// panics if it is not.
func Var(name string) Option {
	if !ValidVar(name) {
		panic("graphcalc: invalid variable name " + strconv.Quote(name))
	}
	return varopt(name)
}

func (o varopt) compileOption(p compilectx) compilectx {
	p.name = string(o)
	return p
}

// ValidVar reports whether s is a valid variable name.
func ValidVar(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
