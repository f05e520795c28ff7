package internal

import (
	"fmt"
	"strings"
)

/*
This file holds the scanner primitives. Each works on the parser's cursor and
leaves it just past what it consumed. None of them allocate tokens; the parser
asks for exactly the kind of lexeme it expects next.
*/

// whitespace is the set of characters skipped between lexemes.
const whitespace = " \t\v\f\r\n"

// parser is the cursor over a source string shared by the scanner primitives
// and the recursive-descent parser.
type parser struct {
	src string
	pos int
}

// eof reports whether the cursor is at the end of the source.
func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

// peek returns the byte at the cursor, or 0 at the end of the source.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

// errorf creates a parse error at the cursor.
func (p *parser) errorf(format string, args ...interface{}) *ParseError {
	return p.errorAt(p.pos, fmt.Sprintf(format, args...))
}

// errorAt creates a parse error at a given offset.
func (p *parser) errorAt(offset int, msg string) *ParseError {
	line := 1 + strings.Count(p.src[:offset], "\n")
	col := offset + 1
	if k := strings.LastIndexByte(p.src[:offset], '\n'); k >= 0 {
		col = offset - k
	}
	return &ParseError{Offset: offset, Line: line, Col: col, Msg: msg, Incomplete: p.eof()}
}

// describe names the character at the cursor for error messages.
func (p *parser) describe() string {
	if p.eof() {
		return "end of input"
	}
	return fmt.Sprintf("%q", p.src[p.pos])
}

// skipSpace advances past whitespace.
func (p *parser) skipSpace() {
	for !p.eof() && strings.IndexByte(whitespace, p.src[p.pos]) >= 0 {
		p.pos++
	}
}

// scanString reads a string literal delimited by the quote character at the
// cursor and returns its contents. There are no escapes.
func (p *parser) scanString() (string, error) {
	if p.eof() || (p.src[p.pos] != '"' && p.src[p.pos] != '\'') {
		return "", p.errorf("expected string, got %s", p.describe())
	}
	start := p.pos
	quote := p.src[p.pos]
	k := strings.IndexByte(p.src[start+1:], quote)
	if k < 0 {
		p.pos = len(p.src)
		return "", p.errorAt(start, "expected end of string, got end of input")
	}
	p.pos = start + 1 + k + 1
	return p.src[start+1 : start+1+k], nil
}

// scanNumber reads a numeric literal: an optional sign, a digit, then digits,
// dots, and underscores, each dot or underscore immediately after a digit.
// The result keeps the separators.
func (p *parser) scanNumber() (string, error) {
	start := p.pos
	if c := p.peek(); c == '+' || c == '-' {
		p.pos++
	}
	if !isDigit(p.peek()) {
		return "", p.errorf("expected digit to start number, got %s", p.describe())
	}
	p.pos++
	for ; !p.eof(); p.pos++ {
		c := p.src[p.pos]
		if isDigit(c) {
			continue
		}
		if c == '.' || c == '_' {
			if !isDigit(p.src[p.pos-1]) {
				return "", p.errorf("expected digit before %q in number", c)
			}
			continue
		}
		break
	}
	if p.src[p.pos-1] == '_' {
		return "", p.errorAt(p.pos-1, "trailing underscore in number")
	}
	return p.src[start:p.pos], nil
}

// scanIdent reads an identifier: a letter or underscore followed by letters,
// digits, and underscores.
func (p *parser) scanIdent() (string, error) {
	if !isIdentStart(p.peek()) {
		return "", p.errorf("expected identifier, got %s", p.describe())
	}
	start := p.pos
	for p.pos++; !p.eof() && (isIdentStart(p.src[p.pos]) || isDigit(p.src[p.pos])); p.pos++ {
	}
	return p.src[start:p.pos], nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
