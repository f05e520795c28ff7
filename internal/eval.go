package internal

/*
This file contains the evaluator. It walks expression trees without recursing
on the Go stack: a stack of frames stands in for the call stack, and a stack of
boxes holds intermediate results.

Each dispatch looks at the top frame, bumps its step counter, and runs the case
for the step the frame was on. A case may push a child frame, push or pop
values, or pop its own frame; the latter is the final step of every expression
kind. When the child finishes, its value is on top of the value stack and the
parent resumes at its next step. The floor of a frame is the depth of the value
stack when it was pushed, so a frame can always discard what its children left
behind.
*/

import (
	"context"
	"fmt"
	"log/slog"
)

// Frame is one entry of the evaluator's control stack.
type Frame struct {
	// Target is the box against which untargeted gets and assignments in Expr
	// resolve.
	Target *Box
	// Expr is the expression being evaluated.
	Expr Expression
	// Step is how many times the frame has been dispatched.
	Step int
	// Floor is the depth of the value stack when the frame was pushed.
	Floor int

	// method is the method resolved by a call frame at step 2.
	method *Method
}

// machine holds the two stacks of a single evaluation.
type machine struct {
	a      *Actor
	values []*Box
	frames []Frame
}

// push adds a frame to evaluate e against target.
func (m *machine) push(target *Box, e Expression) {
	m.frames = append(m.frames, Frame{Target: target, Expr: e, Floor: len(m.values)})
}

// pushValue adds a box to the value stack.
func (m *machine) pushValue(v *Box) {
	m.values = append(m.values, v)
}

// popValue removes and returns the top of the value stack.
func (m *machine) popValue() *Box {
	v := m.values[len(m.values)-1]
	m.values[len(m.values)-1] = nil
	m.values = m.values[:len(m.values)-1]
	return v
}

// trim discards values above depth n.
func (m *machine) trim(n int) {
	for i := n; i < len(m.values); i++ {
		m.values[i] = nil
	}
	m.values = m.values[:n]
}

// Evaluate evaluates an expression against a target box and returns its
// value. Evaluations on the same actor are serialized.
func (a *Actor) Evaluate(target *Box, e Expression) (*Box, error) {
	return a.EvaluateContext(context.Background(), target, e)
}

// EvaluateContext is like Evaluate, but it abandons the evaluation with the
// context's error once ctx is done. The context is checked before every step.
func (a *Actor) EvaluateContext(ctx context.Context, target *Box, e Expression) (*Box, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if target == nil {
		target = a.NewBox()
	}
	if e == nil {
		return a.NullValue, nil
	}
	m := machine{
		a:      a,
		values: []*Box{a.NullValue},
		frames: make([]Frame, 0, 16),
	}
	m.push(target, e)
	done := ctx.Done()
	for len(m.frames) > 0 {
		select {
		case <-done:
			return nil, ctx.Err()
		default: // do nothing
		}
		if err := m.step(); err != nil {
			a.Logger.Debug("evaluation failed", slog.String("expr", e.String()), slog.Any("err", err))
			return nil, err
		}
	}
	return m.values[len(m.values)-1], nil
}

// DoString parses and evaluates source text against a target box.
func (a *Actor) DoString(target *Box, source string) (*Box, error) {
	e, err := ParseExpression(source)
	if err != nil {
		return nil, err
	}
	return a.Evaluate(target, e)
}

// step performs one dispatch of the top frame.
func (m *machine) step() error {
	top := len(m.frames) - 1
	f := m.frames[top]
	m.frames[top].Step++
	m.a.DebugStep(f, len(m.frames), len(m.values))
	var err error
	switch e := f.Expr.(type) {
	case *MultiExpr:
		err = m.multi(f, e)
	case *GetExpr:
		err = m.get(f, e)
	case *AssignExpr:
		err = m.assign(f, e)
	case *CallExpr:
		err = m.call(top, f, e)
	case *BoxExpr:
		m.box(f, e)
	case *StringExpr:
		m.leaf(f, func() *Box { return m.a.NewString(string(e.Value)) })
	case *IntegerExpr:
		m.leaf(f, func() *Box { return m.a.NewInteger(e.Value) })
	case *RealExpr:
		m.leaf(f, func() *Box { return m.a.NewReal(e.Value) })
	case *ListExpr:
		m.list(f, e)
	case *constExpr:
		m.leaf(f, func() *Box { return e.box })
	case *ExternalCall:
		err = m.external(f, e)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownNode, f.Expr)
	}
	if err != nil {
		return &EvalError{Expr: f.Expr, Err: err}
	}
	return nil
}

// pop removes the top frame.
func (m *machine) pop() {
	m.frames[len(m.frames)-1] = Frame{}
	m.frames = m.frames[:len(m.frames)-1]
}

func (m *machine) multi(f Frame, e *MultiExpr) error {
	if len(e.Exprs) == 0 {
		if f.Step == 0 {
			m.pushValue(m.a.NullValue)
			return nil
		}
		m.pop()
		return nil
	}
	if f.Step < len(e.Exprs) {
		m.trim(f.Floor)
		m.push(f.Target, e.Exprs[f.Step])
		return nil
	}
	m.pop()
	return nil
}

func (m *machine) get(f Frame, e *GetExpr) error {
	if e.Target == nil {
		switch f.Step {
		case 0:
			v, ok := m.a.lookup(f.Target, e.Member)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUndefined, e.Member)
			}
			m.pushValue(v)
		default:
			m.pop()
		}
		return nil
	}
	switch f.Step {
	case 0:
		m.push(f.Target, e.Target)
	case 1:
		t := m.popValue()
		v, ok := t.GetVariable(e.Member)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUndefined, e.Member)
		}
		m.pushValue(v)
	default:
		m.pop()
	}
	return nil
}

// lookup resolves an untargeted get: the active target, then the null
// keyword, then the actor's globals.
func (a *Actor) lookup(target *Box, name string) (*Box, bool) {
	if v, ok := target.GetVariable(name); ok {
		return v, true
	}
	if name == "null" {
		return a.NullValue, true
	}
	return a.Globals.GetVariable(name)
}

func (m *machine) assign(f Frame, e *AssignExpr) error {
	if e.Target == nil {
		switch f.Step {
		case 0:
			m.push(f.Target, e.Value)
		case 1:
			if m.a.Sealed(f.Target) {
				return fmt.Errorf("%w: %s", ErrSealed, e.Member)
			}
			v := m.popValue()
			f.Target.SetVariable(e.Member, v)
			m.pushValue(v)
		default:
			m.pop()
		}
		return nil
	}
	switch f.Step {
	case 0:
		m.push(f.Target, e.Target)
	case 1:
		m.push(f.Target, e.Value)
	case 2:
		v := m.popValue()
		t := m.popValue()
		if m.a.Sealed(t) {
			return fmt.Errorf("%w: %s", ErrSealed, e.Member)
		}
		t.SetVariable(e.Member, v)
		m.pushValue(v)
	default:
		m.pop()
	}
	return nil
}

func (m *machine) box(f Frame, e *BoxExpr) {
	switch f.Step {
	case 0:
		if e.IsMethod {
			m.pushValue(m.a.NewMethodBox(&Method{Params: e.Params, Body: e.Body}))
			return
		}
		b := m.a.NewBox()
		m.pushValue(b)
		if e.Body != nil {
			m.push(b, e.Body)
		}
	case 1:
		m.trim(f.Floor + 1)
	default:
		m.pop()
	}
}

// leaf handles expressions that produce a value without children.
func (m *machine) leaf(f Frame, v func() *Box) {
	if f.Step == 0 {
		m.pushValue(v())
		return
	}
	m.pop()
}

func (m *machine) list(f Frame, e *ListExpr) {
	switch {
	case f.Step < len(e.Items):
		m.push(f.Target, e.Items[f.Step])
	case f.Step == len(e.Items):
		items := make([]*Box, len(m.values)-f.Floor)
		copy(items, m.values[f.Floor:])
		m.trim(f.Floor)
		m.pushValue(m.a.NewList(items...))
	default:
		m.pop()
	}
}

func (m *machine) external(f Frame, e *ExternalCall) error {
	if f.Step > 0 {
		m.pop()
		return nil
	}
	fn := e.Fn
	if fn == nil {
		var ok bool
		// The evaluation holds a.mu, so Native would deadlock here.
		if fn, ok = m.a.natives[e.Name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnsupported, e.Name)
		}
	}
	var args []*Box
	if arg, ok := f.Target.GetVariable(ArgumentsVariable); ok {
		if l, ok := arg.Value.([]*Box); ok {
			args = l
		} else {
			args = []*Box{arg}
		}
	}
	r, err := fn(m.a, args)
	if err != nil {
		return err
	}
	if r == nil {
		r = m.a.NullValue
	}
	m.pushValue(r)
	return nil
}
