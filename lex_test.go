package graphcalc

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		v      string
		tokens []token
	}{
		// spaces
		{"", "x", nil},
		{" \t \r\n ", "x", nil},
		// numbers
		{"0", "x", []token{{text: "0", kind: tokenNum, pos: 1}}},
		{"9876543210", "x", []token{{text: "9876543210", kind: tokenNum, pos: 1, val: 9876543210}}},
		{"1 0", "x", []token{{text: "1", kind: tokenNum, pos: 1, val: 1}, {text: "0", kind: tokenNum, pos: 3}}},
		{"1.5", "x", []token{{text: "1.5", kind: tokenNum, pos: 1, val: 1.5}}},
		{"-1", "x", []token{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2, val: 1}}},
		{"2x", "x", []token{{text: "2", kind: tokenNum, pos: 1, val: 2}, {text: "x", kind: tokenVar, pos: 2}}},
		// variable
		{"x", "x", []token{{text: "x", kind: tokenVar, pos: 1}}},
		{" x ", "x", []token{{text: "x", kind: tokenVar, pos: 2}}},
		{"t", "t", []token{{text: "t", kind: tokenVar, pos: 1}}},
		{"theta", "theta", []token{{text: "theta", kind: tokenVar, pos: 1}}},
		// functions
		{"log", "x", []token{{text: "log", kind: tokenFunc, pos: 1}}},
		{"log10", "x", []token{{text: "log10", kind: tokenFunc, pos: 1}}},
		{"sinh", "x", []token{{text: "sinh", kind: tokenFunc, pos: 1}}},
		{"exp", "x", []token{{text: "exp", kind: tokenFunc, pos: 1}}},
		{"sinx", "x", []token{{text: "sin", kind: tokenFunc, pos: 1}, {text: "x", kind: tokenVar, pos: 4}}},
		{"tan(t)", "t", []token{
			{text: "tan", kind: tokenFunc, pos: 1},
			{text: "(", kind: tokenOpen, pos: 4},
			{text: "t", kind: tokenVar, pos: 5},
			{text: ")", kind: tokenClose, pos: 6},
		}},
		// constants
		{"e", "x", []token{{text: "e", kind: tokenConst, pos: 1, val: math.E}}},
		{"pi", "x", []token{{text: "pi", kind: tokenConst, pos: 1, val: math.Pi}}},
		{"PI", "x", []token{{text: "PI", kind: tokenConst, pos: 1, val: math.Pi}}},
		{"E", "x", []token{{text: "E", kind: tokenConst, pos: 1, val: math.E}}},
		{"ex", "x", []token{{text: "e", kind: tokenConst, pos: 1, val: math.E}, {text: "x", kind: tokenVar, pos: 2}}},
		// the variable wins ties
		{"e", "e", []token{{text: "e", kind: tokenVar, pos: 1}}},
		{"exp", "exp", []token{{text: "exp", kind: tokenVar, pos: 1}}},
		// operators and parentheses
		{"+-*/^", "x", []token{
			{text: "+", kind: tokenOp, pos: 1},
			{text: "-", kind: tokenOp, pos: 2},
			{text: "*", kind: tokenOp, pos: 3},
			{text: "/", kind: tokenOp, pos: 4},
			{text: "^", kind: tokenOp, pos: 5},
		}},
		{"()", "x", []token{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}},
		{"x + 10*(5+2)", "x", []token{
			{text: "x", kind: tokenVar, pos: 1},
			{text: "+", kind: tokenOp, pos: 3},
			{text: "10", kind: tokenNum, pos: 5, val: 10},
			{text: "*", kind: tokenOp, pos: 7},
			{text: "(", kind: tokenOpen, pos: 8},
			{text: "5", kind: tokenNum, pos: 9, val: 5},
			{text: "+", kind: tokenOp, pos: 10},
			{text: "2", kind: tokenNum, pos: 11, val: 2},
			{text: ")", kind: tokenClose, pos: 12},
		}},
	}
	for _, c := range cases {
		toks, err := tokenize(c.src, c.v)
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if len(toks) != len(c.tokens) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.tokens, toks)
			continue
		}
		for i, want := range c.tokens {
			if got := toks[i]; got != want {
				t.Errorf("scanning %q: token %d: want %v, got %v", c.src, i, want, got)
			}
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind ErrorKind
		frag string
		col  int
	}{
		{"x @ 2", UnknownToken, "@", 3},
		{"x$", UnknownToken, "$", 2},
		{"1.2.3", UnknownToken, "1.2.3", 1},
		{"x+1..2", UnknownToken, "1..2", 3},
		{"1.", UnknownToken, "1.", 1},
		{".5", UnknownToken, ".5", 1},
		{"y+1", UnknownToken, "y", 1},
		{"x+foo(x)", UnknownToken, "foo", 3},
		{"xyz", UnknownToken, "yz", 2},
		{"π", UnknownToken, "π", 1},
		{"2 ÷ π", UnknownToken, "÷", 3},
		{"sin(x", UnbalancedParens, "", 0},
		{"x + (", UnbalancedParens, "", 0},
		{"x))", UnbalancedParens, "", 0},
		// Parentheses are counted before anything else is checked.
		{"@(", UnbalancedParens, "", 0},
	}
	for _, c := range cases {
		toks, err := tokenize(c.src, "x")
		if err == nil {
			t.Errorf("scanning %q: no error, got %v", c.src, toks)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("scanning %q: error %#v is not *ParseError", c.src, err)
			continue
		}
		if pe.Kind != c.kind || pe.Fragment != c.frag || pe.Col != c.col {
			t.Errorf("scanning %q: want %v %q at %d, got %v %q at %d", c.src, c.kind, c.frag, c.col, pe.Kind, pe.Fragment, pe.Col)
		}
	}
}

// TestLexReconstructs checks that tokens cover all non-space input.
func TestLexReconstructs(t *testing.T) {
	srcs := []string{
		"x+2+5 + 6 + 10",
		"cos( sin(tan(x)) )",
		"x+ 10 *(5 +2)",
		"-x + 1 - (3 + 2)",
		"log10(x)^2 / lgamma(x) * e - PI",
		"\tacosh( x-0.001*(2 - 1))\n",
	}
	nospace := func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}
	for _, src := range srcs {
		toks, err := tokenize(src, "x")
		if err != nil {
			t.Errorf("scanning %q: %v", src, err)
			continue
		}
		var b strings.Builder
		for _, tok := range toks {
			b.WriteString(tok.text)
		}
		if got, want := b.String(), strings.Map(nospace, src); got != want {
			t.Errorf("scanning %q: tokens make %q, want %q", src, got, want)
		}
	}
}

func TestIsNum(t *testing.T) {
	cases := map[string]bool{
		"0":     true,
		"10":    true,
		"1.5":   true,
		"10.25": true,
		"":      false,
		".":     false,
		"1.":    false,
		".1":    false,
		"1.2.3": false,
		"1..2":  false,
	}
	for s, want := range cases {
		if got := isNum(s); got != want {
			t.Errorf("isNum(%q): want %t, got %t", s, want, got)
		}
	}
}
