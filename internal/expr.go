package internal

import (
	"strconv"
	"strings"
)

// An Expression is a node of a parsed program. Expressions are immutable once
// built and may be evaluated any number of times, concurrently with
// themselves.
//
// The evaluator knows the concrete types in this file. Other implementations
// fail evaluation with ErrUnknownNode.
type Expression interface {
	// String renders the expression approximately as source text.
	String() string
}

// MultiExpr evaluates its expressions in order. Its value is that of the last
// one, or null if there are none.
type MultiExpr struct {
	Exprs []Expression
}

// GetExpr looks up a variable. With a nil Target, the lookup is on the active
// target, and a miss there falls back to the null keyword and then to the
// actor's Globals rather than failing outright.
type GetExpr struct {
	Target Expression
	Member string
}

// AssignExpr binds a variable to the value of an expression and yields that
// value. With a nil Target, the binding is on the active target.
type AssignExpr struct {
	Target Expression
	Member string
	Value  Expression
}

// CallExpr calls the method of its target's value with the value of its
// argument as the argument book.
type CallExpr struct {
	Target   Expression
	Argument Expression
}

// BoxExpr builds a new box. A plain box literal evaluates Body with the new
// box as target; a method literal instead keeps Body as the new box's method.
type BoxExpr struct {
	Body     Expression
	Params   []string
	IsMethod bool
}

// StringExpr is a string literal. Value holds UTF-8 bytes.
type StringExpr struct {
	Value []byte
}

// IntegerExpr is an integer literal.
type IntegerExpr struct {
	Value int64
}

// RealExpr is a real literal.
type RealExpr struct {
	Value float64
}

// ListExpr evaluates its items in order and collects them into a list.
type ListExpr struct {
	Items []Expression
}

// ExternalCall invokes a host function with the arguments of the innermost
// call scope. Fn takes precedence over Name; Name is resolved against the
// natives defined on the evaluating actor.
type ExternalCall struct {
	Name string
	Fn   Native
}

// constExpr evaluates to a fixed box. The evaluator creates these to route
// argument binding through ordinary calls.
type constExpr struct {
	box *Box
}

// NewSequence returns the expression for a parsed sequence: nil for none, the
// sole expression for one, or a MultiExpr otherwise.
func NewSequence(exprs []Expression) Expression {
	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return exprs[0]
	default:
		return &MultiExpr{Exprs: exprs}
	}
}

func (e *MultiExpr) String() string {
	b := strings.Builder{}
	for i, x := range e.Exprs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(x.String())
		b.WriteString(";")
	}
	return b.String()
}

func (e *GetExpr) String() string {
	if e.Target == nil {
		return e.Member
	}
	return e.Target.String() + "." + e.Member
}

func (e *AssignExpr) String() string {
	if e.Target == nil {
		return e.Member + " = " + e.Value.String()
	}
	return e.Target.String() + "." + e.Member + " = " + e.Value.String()
}

func (e *CallExpr) String() string {
	if l, ok := e.Argument.(*ListExpr); ok {
		return e.Target.String() + l.String()
	}
	return e.Target.String() + "(" + e.Argument.String() + ")"
}

func (e *BoxExpr) String() string {
	b := strings.Builder{}
	if e.IsMethod {
		b.WriteByte('(')
		b.WriteString(strings.Join(e.Params, ", "))
		b.WriteString(") ")
	}
	b.WriteByte('{')
	if e.Body != nil {
		b.WriteByte(' ')
		b.WriteString(e.Body.String())
		b.WriteByte(' ')
	}
	b.WriteByte('}')
	return b.String()
}

func (e *StringExpr) String() string {
	return strconv.Quote(string(e.Value))
}

func (e *IntegerExpr) String() string {
	return strconv.FormatInt(e.Value, 10)
}

func (e *RealExpr) String() string {
	s := strconv.FormatFloat(e.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func (e *ListExpr) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for i, x := range e.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(x.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (e *ExternalCall) String() string {
	if e.Name == "" {
		return "<native>"
	}
	return "<native " + e.Name + ">"
}

func (e *constExpr) String() string {
	return "<const>"
}
