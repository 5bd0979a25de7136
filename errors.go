package graphcalc

import "strconv"

// ErrorKind classifies a failure to compile an expression. ErrorKind
// implements error so that errors.Is(err, UnknownToken) reports whether a
// compile error is of that kind.
type ErrorKind int8

const (
	kindNone ErrorKind = iota
	// UnbalancedParens indicates that the input contains a different number
	// of open and close parentheses. It is detected before tokenizing.
	UnbalancedParens
	// UnknownToken indicates a character sequence which is not a number,
	// the variable, a function, a constant, an operator, or a parenthesis.
	UnknownToken
	// MismatchedParens indicates a close parenthesis without a matching open
	// one, or an open parenthesis left unclosed.
	MismatchedParens
	// MalformedExpression indicates that the operators and operands do not
	// reduce to exactly one value, e.g. "2*" or "2 3".
	MalformedExpression
)

func (k ErrorKind) String() string {
	switch k {
	case UnbalancedParens:
		return "unbalanced parentheses"
	case UnknownToken:
		return "unknown token"
	case MismatchedParens:
		return "mismatched parentheses"
	case MalformedExpression:
		return "malformed expression"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k ErrorKind) Error() string {
	return k.String()
}

// ParseError is an error compiling an expression. It implements InputError.
type ParseError struct {
	// Kind is the class of error.
	Kind ErrorKind
	// Fragment is the offending text, if any. For UnknownToken, it is the
	// unrecognized input; for operator arity errors, it is the operator.
	Fragment string
	// Col is the rune position of the fragment, or 0 if the error does not
	// concern a single position.
	Col int
}

func (err *ParseError) Error() string {
	msg := err.Kind.String()
	if err.Fragment != "" {
		msg += " " + strconv.Quote(err.Fragment)
	}
	if err.Col > 0 {
		return errpos(err.Col, msg)
	}
	return msg
}

func (err *ParseError) Pos() int {
	return err.Col
}

// Is reports whether target is err's kind. An unbalanced parenthesis count
// is also a parenthesis mismatch.
func (err *ParseError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	if !ok {
		return false
	}
	if k == err.Kind {
		return true
	}
	return k == MismatchedParens && err.Kind == UnbalancedParens
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, or 0 if the
	// error concerns the input as a whole.
	Pos() int
}

var _ InputError = (*ParseError)(nil)
