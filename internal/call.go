package internal

import "fmt"

// call runs the steps of a call frame. top is the frame's index.
func (m *machine) call(top int, f Frame, e *CallExpr) error {
	switch f.Step {
	case 0:
		m.push(f.Target, e.Target)
	case 1:
		m.push(f.Target, e.Argument)
	case 2:
		arg := m.popValue()
		callee := m.popValue()
		meth := callee.GetMethod()
		scope := m.a.NewBoxWith([]*Box{callee}, nil)
		scope.SetVariable(ArgumentsVariable, arg)
		if err := m.a.checkArguments(meth, arg); err != nil {
			return err
		}
		m.frames[top].method = meth
		m.pushValue(scope)
		if meth == nil || len(meth.Params) == 0 {
			return nil
		}
		getter, _ := arg.GetVariable(GetterVariable)
		// Frames run last in, first out, so pushing in declared order binds
		// the last parameter first.
		for i, param := range meth.Params {
			m.push(scope, m.a.bindParam(getter, param, i))
		}
	case 3:
		m.trim(f.Floor + 1)
		scope := m.popValue()
		meth := f.method
		if meth == nil || meth.Body == nil {
			m.pushValue(m.a.NullValue)
			return nil
		}
		m.push(scope, meth.Body)
	default:
		m.pop()
	}
	return nil
}

// checkArguments verifies that arg can supply meth's parameters.
func (a *Actor) checkArguments(meth *Method, arg *Box) error {
	if meth == nil || meth.Variadic {
		return nil
	}
	if items, ok := arg.Value.([]*Box); ok {
		switch {
		case len(items) > len(meth.Params):
			return fmt.Errorf("%w: method takes %d, got %d", ErrTooManyArguments, len(meth.Params), len(items))
		case len(items) < len(meth.Params):
			return fmt.Errorf("%w: %s", ErrMissingArgument, meth.Params[len(items)])
		}
	}
	if len(meth.Params) == 0 {
		return nil
	}
	if _, ok := arg.GetVariable(GetterVariable); !ok {
		return fmt.Errorf("%w: cannot bind %s from %s", ErrNoGetter, meth.Params[0], a.Format(arg))
	}
	return nil
}

// bindParam builds the expression binding the ith parameter from the argument
// book's getter. The getter is invoked through an ordinary call.
func (a *Actor) bindParam(getter *Box, param string, i int) Expression {
	return &AssignExpr{
		Member: param,
		Value: &CallExpr{
			Target:   &constExpr{box: getter},
			Argument: &constExpr{box: a.NewList(a.NewInteger(int64(i)))},
		},
	}
}
