package internal_test

import (
	"errors"
	"testing"

	"github.com/hololang/holo/internal"
)

// TestParse tests that source text parses to the expected tree, compared by
// rendering.
func TestParse(t *testing.T) {
	cases := map[string]struct {
		src  string
		want string
	}{
		"Integer":       {"42", "42"},
		"Negative":      {"-7", "-7"},
		"Plus":          {"+7", "7"},
		"Separators":    {"1_000_000", "1000000"},
		"Real":          {"2.50", "2.5"},
		"RealWhole":     {"3.0", "3.0"},
		"RealSep":       {"1_0.2_5", "10.25"},
		"Double":        {`"abc"`, `"abc"`},
		"Single":        {`'a"b'`, `"a\"b"`},
		"Ident":         {"x", "x"},
		"Member":        {"a.b.c", "a.b.c"},
		"Assign":        {"a = 3", "a = 3"},
		"AssignChain":   {"a = b = 3", "a = b = 3"},
		"AssignMember":  {"a.b = 1.5", "a.b = 1.5"},
		"Sequence":      {"x; y", "x; y;"},
		"Trailing":      {"x; y;", "x; y;"},
		"Empties":       {";;x;;", "x"},
		"Box":           {"{ a = 3; }", "{ a = 3 }"},
		"BoxMulti":      {"{ a = 3; b = 4 }", "{ a = 3; b = 4; }"},
		"BoxEmpty":      {"{}", "{}"},
		"Call":          {"f(1, 2)", "f(1, 2)"},
		"CallEmpty":     {"f()", "f()"},
		"CallChain":     {"f()(x).y", "f()(x).y"},
		"Method":        {"(x, y) { x }", "(x, y) { x }"},
		"MethodEmpty":   {"() {}", "() {}"},
		"List":          {"(1, 'a', x)", `(1, "a", x)`},
		"ListEmpty":     {"()", "()"},
		"ListMember":    {"(1, 2).get(0)", "(1, 2).get(0)"},
		"Whitespace":    {"\n\ta\v=\f1\r\n", "a = 1"},
		"SpacedMember":  {"a . b", "a.b"},
		"NestedMethod":  {"f = (g) { g(g) }", "f = (g) { g(g) }"},
		"ArgumentBoxes": {"f({ a = 1 }, () {})", "f({ a = 1 }, () {})"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			e, err := internal.ParseExpression(c.src)
			if err != nil {
				t.Fatalf("couldn't parse %q: %v", c.src, err)
			}
			if got := e.String(); got != c.want {
				t.Errorf("%q parsed wrong: have %s, want %s", c.src, got, c.want)
			}
		})
	}
}

// TestParseEmpty tests that empty programs have no expressions.
func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "  \n", ";", " ; ; "} {
		exprs, err := internal.Parse(src)
		if err != nil {
			t.Errorf("couldn't parse %q: %v", src, err)
		}
		if len(exprs) != 0 {
			t.Errorf("%q parsed to %d expressions", src, len(exprs))
		}
		e, err := internal.ParseExpression(src)
		if err != nil || e != nil {
			t.Errorf("%q parsed to %v, %v", src, e, err)
		}
	}
}

// TestParseTypes tests the node types the parser produces.
func TestParseTypes(t *testing.T) {
	e, err := internal.ParseExpression("f = (x) { x }; f(1)")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := e.(*internal.MultiExpr)
	if !ok || len(m.Exprs) != 2 {
		t.Fatalf("wrong sequence: %#v", e)
	}
	a, ok := m.Exprs[0].(*internal.AssignExpr)
	if !ok || a.Target != nil || a.Member != "f" {
		t.Fatalf("wrong assignment: %#v", m.Exprs[0])
	}
	b, ok := a.Value.(*internal.BoxExpr)
	if !ok || !b.IsMethod || len(b.Params) != 1 || b.Params[0] != "x" {
		t.Fatalf("wrong method: %#v", a.Value)
	}
	c, ok := m.Exprs[1].(*internal.CallExpr)
	if !ok {
		t.Fatalf("wrong call: %#v", m.Exprs[1])
	}
	l, ok := c.Argument.(*internal.ListExpr)
	if !ok || len(l.Items) != 1 {
		t.Fatalf("wrong argument: %#v", c.Argument)
	}
	if n, ok := l.Items[0].(*internal.IntegerExpr); !ok || n.Value != 1 {
		t.Errorf("wrong argument item: %#v", l.Items[0])
	}
}

// TestParseErrors tests that malformed source fails with a located error.
func TestParseErrors(t *testing.T) {
	cases := map[string]struct {
		src        string
		msg        string
		line, col  int
		incomplete bool
	}{
		"NoValue":      {"a = ", "expected expression, got end of input", 1, 5, true},
		"NotAssign":    {"1 = 2", "cannot assign to 1", 1, 3, false},
		"CallAssign":   {"f() = 2", "cannot assign to f()", 1, 5, false},
		"BadParam":     {"(1, x) { x }", "invalid parameter list: 1 is not a name", 1, 1, false},
		"MemberParam":  {"(a.b) { }", "invalid parameter list: a.b is not a name", 1, 1, false},
		"Unterminated": {"x = 'abc", "expected end of string, got end of input", 1, 5, true},
		"NoSemicolon":  {"a b", `expected ';' before next expression, got 'b'`, 1, 3, false},
		"Stray":        {"}", `unexpected '}'`, 1, 1, false},
		"StrayParen":   {"a; )", `unexpected ')'`, 1, 4, false},
		"Underscore":   {"1_", "trailing underscore in number", 1, 2, true},
		"DoubleUnder":  {"1__0", `expected digit before '_' in number`, 1, 3, false},
		"Digitless":    {"-x", "expected digit to start number, got 'x'", 1, 2, false},
		"MemberNumber": {"x.1", "expected identifier, got '1'", 1, 3, false},
		"TupleSep":     {"f(1 2)", `expected ',' or ')', got '2'`, 1, 5, false},
		"OpenTuple":    {"f(1,", "expected expression, got end of input", 1, 5, true},
		"OpenBox":      {"{ a = 1;", "expected '}', got end of input", 1, 9, true},
		"Line":         {"a\n  = )", `unexpected ')'`, 2, 5, false},
		"Overflow":     {"99999999999999999999", "malformed number 99999999999999999999: value out of range", 1, 1, false},
		"TwoDots":      {"1.5.2", "malformed number 1.5.2: invalid syntax", 1, 1, false},
		"Symbol":       {"@", `unexpected '@'`, 1, 1, false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := internal.Parse(c.src)
			var pe *internal.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("%q gave wrong error: %v", c.src, err)
			}
			if pe.Msg != c.msg {
				t.Errorf("%q gave wrong message: have %q, want %q", c.src, pe.Msg, c.msg)
			}
			if pe.Line != c.line || pe.Col != c.col {
				t.Errorf("%q gave wrong position: have %d:%d, want %d:%d", c.src, pe.Line, pe.Col, c.line, c.col)
			}
			if pe.Incomplete != c.incomplete {
				t.Errorf("%q gave wrong incompleteness: have %v, want %v", c.src, pe.Incomplete, c.incomplete)
			}
		})
	}
}
