package rpn

import (
	"io"
	"strings"
	"unicode"
)

// Expr is a parsed expression in postfix order that can be evaluated with a
// context. An Expr is never modified after parsing, so it is safe to evaluate
// concurrently.
type Expr struct {
	// postfix is the token sequence in evaluation order.
	postfix []lexToken
	// end is the position just past the input, used to report errors found
	// after the last token.
	end int
}

// Parse reads an infix expression to EOF and converts it to postfix form.
// Whitespace anywhere in the input is ignored.
func Parse(src io.RuneScanner) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	return shunt(toks)
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// ParsePostfix reads an expression already in postfix order, with tokens
// separated by whitespace, as produced by Expr.String. Numbers may carry a
// leading minus sign. Parentheses are not allowed.
func ParsePostfix(src string) (*Expr, error) {
	var e Expr
	col := 0
	start := 0
	var field strings.Builder
	flush := func() error {
		if field.Len() == 0 {
			return nil
		}
		defer field.Reset()
		text := field.String()
		tok := lexToken{text: text, pos: start}
		switch {
		case len(text) == 1 && strings.Contains(Operators, text):
			tok.kind = tokenOp
		case strings.ContainsAny(text[:1], "-.0123456789"):
			if _, err := ParseDecimal(text); err != nil {
				return &LexError{Text: text, Kind: "number", Col: start}
			}
			tok.kind = tokenNum
		default:
			return &LexError{Text: text, Col: start}
		}
		e.postfix = append(e.postfix, tok)
		return nil
	}
	for _, r := range src {
		col++
		if unicode.IsSpace(r) {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if field.Len() == 0 {
			start = col
		}
		field.WriteRune(r)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	e.end = col + 1
	return &e, nil
}

// String formats the expression in postfix order with tokens separated by
// single spaces, e.g. "1 2 3 * +".
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.postfix {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

// Tokens returns the text of each token of the expression in postfix order.
func (e *Expr) Tokens() []string {
	v := make([]string, len(e.postfix))
	for i, tok := range e.postfix {
		v[i] = tok.text
	}
	return v
}
