package graphcalc

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type token struct {
	text string
	kind tokenKind
	pos  int
	// val is the value of a number or constant.
	val float64
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a decimal numeral.
	tokenNum
	// tokenVar is the free variable.
	tokenVar
	// tokenConst is pi or e.
	tokenConst
	// tokenFunc is the name of a catalog function.
	tokenFunc
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

var tokenKindNames = [...]string{
	tokenNone:  "None",
	tokenNum:   "Num",
	tokenVar:   "Var",
	tokenConst: "Const",
	tokenFunc:  "Func",
	tokenOp:    "Op",
	tokenOpen:  "Open",
	tokenClose: "Close",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// constants are the named constants, matched without regard to case.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// balanced reports whether src has as many ( as ).
func balanced(src string) bool {
	n := 0
	for _, r := range src {
		switch r {
		case '(':
			n++
		case ')':
			n--
		}
	}
	return n == 0
}

// tokenize scans src into tokens. variable is the name of the free variable.
// Every non-whitespace rune of src belongs to exactly one token on success.
func tokenize(src, variable string) ([]token, error) {
	if !balanced(src) {
		return nil, &ParseError{Kind: UnbalancedParens}
	}
	var toks []token
	col := 0
	for i := 0; i < len(src); {
		r, sz := utf8.DecodeRuneInString(src[i:])
		col++
		switch {
		case unicode.IsSpace(r):
			i += sz
		case r == '_', unicode.IsLetter(r):
			tok := scanIdent(src[i:], variable)
			if tok.kind == tokenNone {
				return nil, &ParseError{Kind: UnknownToken, Fragment: identRun(src[i:]), Col: col}
			}
			tok.pos = col
			toks = append(toks, tok)
			i += len(tok.text)
			col += utf8.RuneCountInString(tok.text) - 1
		case '0' <= r && r <= '9', r == '.':
			run := numRun(src[i:])
			if !isNum(run) {
				return nil, &ParseError{Kind: UnknownToken, Fragment: run, Col: col}
			}
			v, err := strconv.ParseFloat(run, 64)
			if err != nil {
				// Only overflow is possible here. The value is still
				// correctly rounded to ±Inf.
				if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
					return nil, &ParseError{Kind: UnknownToken, Fragment: run, Col: col}
				}
			}
			toks = append(toks, token{text: run, kind: tokenNum, pos: col, val: v})
			i += len(run)
			col += len(run) - 1
		case r == '(':
			toks = append(toks, token{text: "(", kind: tokenOpen, pos: col})
			i += sz
		case r == ')':
			toks = append(toks, token{text: ")", kind: tokenClose, pos: col})
			i += sz
		case strings.ContainsRune(Operators, r):
			toks = append(toks, token{text: string(r), kind: tokenOp, pos: col})
			i += sz
		default:
			return nil, &ParseError{Kind: UnknownToken, Fragment: string(r), Col: col}
		}
	}
	return toks, nil
}

// scanIdent matches the longest variable, function, or constant name at the
// start of s. Among names of equal length, the variable is preferred over
// functions, and functions over constants. If nothing matches, the result
// has kind tokenNone.
func scanIdent(s, variable string) token {
	var tok token
	if variable != "" && strings.HasPrefix(s, variable) {
		tok = token{text: variable, kind: tokenVar}
	}
	for _, name := range funcnames {
		if len(name) > len(tok.text) && strings.HasPrefix(s, name) {
			tok = token{text: name, kind: tokenFunc}
		}
	}
	for name, v := range constants {
		if len(name) > len(tok.text) && len(s) >= len(name) && strings.EqualFold(s[:len(name)], name) {
			tok = token{text: s[:len(name)], kind: tokenConst, val: v}
		}
	}
	return tok
}

// identRun returns the run of identifier runes at the start of s.
func identRun(s string) string {
	for i, r := range s {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return s[:i]
		}
	}
	return s
}

// numRun returns the run of digits and dots at the start of s.
func numRun(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '.' && (c < '0' || c > '9') {
			return s[:i]
		}
	}
	return s
}

// isNum reports whether s is a decimal numeral: digits, optionally followed
// by a dot and more digits.
func isNum(s string) bool {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s != ""
	}
	whole, frac := s[:dot], s[dot+1:]
	return whole != "" && frac != "" && !strings.Contains(frac, ".")
}
