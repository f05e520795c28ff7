package internal

/*
This file is the recursive-descent parser. Grammar, informally:

	sequence := { [expr] ';' } [expr]
	expr     := postfix [ '=' expr ]
	postfix  := primary { '.' ident | tuple }
	primary  := string | number | ident | '{' sequence '}' | tuple [ '{' sequence '}' ]
	tuple    := '(' [ expr { ',' expr } ] ')'

A tuple directly after a postfix expression is a call. A tuple of bare
identifiers followed by a brace group is a method literal.
*/

import (
	"errors"
	"strconv"
	"strings"
)

// Parse converts source text into its top-level sequence of expressions.
// Parsing stops at the first error; no partial result is returned.
func Parse(source string) ([]Expression, error) {
	p := parser{src: source}
	exprs, err := p.sequence(0)
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected %s", p.describe())
	}
	return exprs, nil
}

// ParseExpression parses source text into a single expression suitable for
// Evaluate: nil for empty source, the sole expression, or a MultiExpr.
func ParseExpression(source string) (Expression, error) {
	exprs, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return NewSequence(exprs), nil
}

// sequence parses expressions separated by semicolons until the closing
// character, which it does not consume. At top level, end is 0 and the
// sequence also ends at any closing bracket so that Parse can report it.
func (p *parser) sequence(end byte) ([]Expression, error) {
	var exprs []Expression
	for {
		p.skipSpace()
		if p.atClose(end) {
			return exprs, nil
		}
		if p.peek() == ';' {
			// Empty statement.
			p.pos++
			continue
		}
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		p.skipSpace()
		if p.atClose(end) {
			return exprs, nil
		}
		if p.peek() != ';' {
			return nil, p.errorf("expected ';' before next expression, got %s", p.describe())
		}
		p.pos++
	}
}

// atClose reports whether the cursor is at the end of a sequence.
func (p *parser) atClose(end byte) bool {
	if p.eof() {
		return true
	}
	c := p.peek()
	if end == 0 {
		return c == '}' || c == ')'
	}
	return c == end
}

// expr parses a postfix expression, turning it into an assignment if an '='
// follows.
func (p *parser) expr() (Expression, error) {
	e, err := p.postfix()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != '=' {
		return e, nil
	}
	g, ok := e.(*GetExpr)
	if !ok {
		return nil, p.errorf("cannot assign to %s", e)
	}
	p.pos++
	v, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &AssignExpr{Target: g.Target, Member: g.Member, Value: v}, nil
}

// postfix parses a primary expression followed by member accesses and calls.
func (p *parser) postfix() (Expression, error) {
	e, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '.':
			p.pos++
			p.skipSpace()
			name, err := p.scanIdent()
			if err != nil {
				return nil, err
			}
			e = &GetExpr{Target: e, Member: name}
		case '(':
			args, err := p.tuple()
			if err != nil {
				return nil, err
			}
			e = &CallExpr{Target: e, Argument: &ListExpr{Items: args}}
		default:
			return e, nil
		}
	}
}

// primary parses a literal, identifier, box, tuple, or method.
func (p *parser) primary() (Expression, error) {
	p.skipSpace()
	c := p.peek()
	switch {
	case p.eof():
		return nil, p.errorf("expected expression, got end of input")
	case c == '"' || c == '\'':
		s, err := p.scanString()
		if err != nil {
			return nil, err
		}
		return &StringExpr{Value: []byte(s)}, nil
	case isDigit(c) || c == '+' || c == '-':
		return p.number()
	case isIdentStart(c):
		name, err := p.scanIdent()
		if err != nil {
			return nil, err
		}
		return &GetExpr{Member: name}, nil
	case c == '{':
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BoxExpr{Body: body}, nil
	case c == '(':
		start := p.pos
		items, err := p.tuple()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != '{' {
			return &ListExpr{Items: items}, nil
		}
		params, err := p.params(start, items)
		if err != nil {
			return nil, err
		}
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BoxExpr{Body: body, Params: params, IsMethod: true}, nil
	}
	return nil, p.errorf("unexpected %s", p.describe())
}

// number parses a numeric literal. A dot makes it real.
func (p *parser) number() (Expression, error) {
	start := p.pos
	text, err := p.scanNumber()
	if err != nil {
		return nil, err
	}
	clean := strings.ReplaceAll(text, "_", "")
	if strings.Contains(clean, ".") {
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return nil, p.malformed(start, text, err)
		}
		return &RealExpr{Value: f}, nil
	}
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return nil, p.malformed(start, text, err)
	}
	return &IntegerExpr{Value: n}, nil
}

// malformed creates the error for a number literal strconv rejected. More
// input cannot fix it.
func (p *parser) malformed(start int, text string, err error) *ParseError {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		err = ne.Err
	}
	pe := p.errorAt(start, "malformed number "+text+": "+err.Error())
	pe.Incomplete = false
	return pe
}

// block parses a brace-delimited sequence.
func (p *parser) block() (Expression, error) {
	p.skipSpace()
	if p.peek() != '{' {
		return nil, p.errorf("expected '{', got %s", p.describe())
	}
	p.pos++
	exprs, err := p.sequence('}')
	if err != nil {
		return nil, err
	}
	if p.peek() != '}' {
		return nil, p.errorf("expected '}', got %s", p.describe())
	}
	p.pos++
	return NewSequence(exprs), nil
}

// tuple parses a parenthesized, comma-separated list of expressions.
func (p *parser) tuple() ([]Expression, error) {
	p.skipSpace()
	if p.peek() != '(' {
		return nil, p.errorf("expected '(', got %s", p.describe())
	}
	p.pos++
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return nil, nil
	}
	var items []Expression
	for {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		items = append(items, e)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return items, nil
		default:
			return nil, p.errorf("expected ',' or ')', got %s", p.describe())
		}
	}
}

// params converts a tuple into a method parameter list. Every item must be an
// untargeted get.
func (p *parser) params(start int, items []Expression) ([]string, error) {
	params := make([]string, len(items))
	for i, e := range items {
		g, ok := e.(*GetExpr)
		if !ok || g.Target != nil {
			return nil, p.errorAt(start, "invalid parameter list: "+e.String()+" is not a name")
		}
		params[i] = g.Member
	}
	return params, nil
}
