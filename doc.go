// Package rpn implements an exact decimal calculator for arithmetic
// expressions.
//
// Expressions use + - * / and parentheses over decimal literals such as
// "10.05". Whitespace is ignored everywhere, even between digits. A minus sign
// at the start of an expression, or directly after an operator or an open
// parenthesis, belongs to the number that follows it, so "3*-2" is -6 and
// "5--2" is 7.
//
// Parsing converts an expression to postfix order. Evaluation runs the postfix
// form on an operand stack using Decimal arithmetic: every intermediate result
// is truncated to the working scale (10 fractional digits by default) and the
// final value is rounded half away from zero to the result scale (2 by
// default). No binary floating point is involved, so results are reproducible.
//
package rpn
