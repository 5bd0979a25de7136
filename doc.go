// Package graphcalc compiles expressions of one real variable into functions
// that can be sampled many times, e.g. to plot a curve.
//
// The grammar is small: decimal numbers, the variable (x unless set with
// Var), the constants pi and e, the binary operators + - * / and ^, the unary
// functions listed by Functions, and parentheses. "x^2^3" is "x^(2^3)", and a
// leading minus negates, so "-x+1" is "(-x)+1". A minus is only a negation
// when nothing precedes its operand in postfix order, so "x*-1" is malformed
// and "1-(-x)" compiles as "-(1-x)". Write "1+x" or "1-(0-x)" instead.
// Compile converts the infix expression to postfix order with the
// shunting-yard algorithm, then folds the postfix instructions into a tree of
// closures once, so Sample does no parsing.
//
// Division by zero and other operations outside a function's domain produce
// infinities or NaN as in package math. Callers decide how to plot them.
//
package graphcalc
