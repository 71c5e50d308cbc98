package rpn

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal literal, possibly with a folded-in minus sign.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

//go:generate stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// prev is the kind of the last token scanned, used to decide whether a
	// minus sign belongs to a number.
	prev tokenKind
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads the next non-whitespace rune from the src and updates the
// lexer's position info. Whitespace is dropped entirely, so it never separates
// tokens.
func (l *lexer) readRune() (rune, error) {
	for {
		r, sz, err := l.src.ReadRune()
		if sz > 0 {
			l.rune++
		}
		if err != nil || !unicode.IsSpace(r) {
			return r, err
		}
	}
}

// unreadRune unreads the last rune read and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is reached, the
// result is an EOF token with a nil error. Subsequent calls return an empty
// token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok, err := l.scan()
	l.prev = tok.kind
	return tok, err
}

func (l *lexer) scan() (lexToken, error) {
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			l.eof = true
			return lexToken{kind: tokenEOF, pos: l.rune + 1}, nil
		}
		return lexToken{pos: l.rune}, err
	}
	tok := lexToken{pos: l.rune}
	switch {
	case '0' <= r && r <= '9', r == '.':
		l.unreadRune()
		if err := l.scanNum(); err != nil {
			return lexToken{pos: tok.pos}, err
		}
		tok.text = l.buf.String()
		tok.kind = tokenNum
		return tok, nil
	case r == '-' && l.signed():
		ok, err := l.peekDigit()
		if err != nil {
			return lexToken{pos: tok.pos}, err
		}
		if !ok {
			tok.text = "-"
			tok.kind = tokenOp
			return tok, nil
		}
		l.buf.WriteRune(r)
		if err := l.scanNum(); err != nil {
			return lexToken{pos: tok.pos}, err
		}
		tok.text = l.buf.String()
		tok.kind = tokenNum
		return tok, nil
	case strings.ContainsRune(Operators, r):
		tok.text = string(r)
		tok.kind = tokenOp
		return tok, nil
	case r == '(':
		tok.text = "("
		tok.kind = tokenOpen
		return tok, nil
	case r == ')':
		tok.text = ")"
		tok.kind = tokenClose
		return tok, nil
	default:
		// Write the rune so that it shows up in the error message.
		l.buf.WriteRune(r)
		return lexToken{pos: tok.pos}, l.error("")
	}
}

// signed reports whether a minus sign at the current position may be the sign
// of a number: at the start of input or directly after an operator or an
// open parenthesis.
func (l *lexer) signed() bool {
	switch l.prev {
	case tokenNone, tokenOp, tokenOpen:
		return true
	default:
		return false
	}
}

// peekDigit reports whether the next rune is a decimal digit without
// consuming it.
func (l *lexer) peekDigit() (bool, error) {
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	l.unreadRune()
	return '0' <= r && r <= '9', nil
}

func (l *lexer) scanNum() error {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.':
			if dot {
				l.buf.WriteRune(r)
				return l.error("number")
			}
			dot = true
		default:
			l.unreadRune()
			if !dig {
				return l.error("number")
			}
			return nil
		}
		l.buf.WriteRune(r)
	}
	if !dig {
		return l.error("number")
	}
	return nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// tokenize scans all of src. The last token of a successful result is always
// the EOF token.
func tokenize(src io.RuneScanner) ([]lexToken, error) {
	scan := lex(src)
	var toks []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}
