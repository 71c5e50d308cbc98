package rpn

// shunt reorders an infix token sequence ending in EOF into postfix order
// using an explicit operator stack. Parentheses do not appear in the result.
func shunt(toks []lexToken) (*Expr, error) {
	var stack []lexToken
	out := make([]lexToken, 0, len(toks))
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOpen:
			stack = append(stack, tok)
		case tokenClose:
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.pos, Right: tok.text}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		case tokenOp:
			op := binop(tok.text)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokenOpen || !op.yieldsTo(binop(top.text)) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case tokenEOF:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenOpen {
					return nil, &BracketError{Col: top.pos, Left: top.text}
				}
				out = append(out, top)
			}
			return &Expr{postfix: out, end: tok.pos}, nil
		default:
			panic("rpn: invalid token " + tok.String())
		}
	}
	panic("rpn: token sequence without EOF")
}
