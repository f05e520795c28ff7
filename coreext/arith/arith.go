// Package arith provides arithmetic, comparison, and selection natives.
//
// Integers stay integers unless a Real is involved, in which case both
// operands are converted to Real first.
package arith

import (
	"errors"
	"fmt"

	"github.com/hololang/holo"
	"github.com/hololang/holo/internal"
)

// ErrDivideByZero is returned by div for an Integer division by zero.
var ErrDivideByZero = errors.New("integer division by zero")

func init() {
	internal.Register(initArith)
}

func initArith(a *holo.Actor) {
	a.Define("add", add)
	a.Define("sub", sub)
	a.Define("mul", mul)
	a.Define("div", div)
	a.Define("less", less)
	a.Define("equal", equal)
	a.Define("if", ifElse)
}

// operands extracts the two numeric arguments of a binary operation. If
// either is Real, both are returned as Reals with fl set.
func operands(name string, args []*holo.Box) (x, y int64, fx, fy float64, fl bool, err error) {
	if err = holo.AssertArgCount(name, args, 2); err != nil {
		return
	}
	var ok [2]bool
	for i, p := range []struct {
		n *int64
		f *float64
	}{{&x, &fx}, {&y, &fy}} {
		switch v := args[i].Value.(type) {
		case int64:
			*p.n, *p.f, ok[i] = v, float64(v), true
		case float64:
			*p.f, ok[i], fl = v, true, true
		}
		if !ok[i] {
			err = fmt.Errorf("%w: argument %d to %s must be Integer or Real", holo.ErrType, i, name)
			return
		}
	}
	return
}

// add is a native.
//
// add(x, y) returns the sum of two numbers.
func add(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	x, y, fx, fy, fl, err := operands("add", args)
	if err != nil {
		return nil, err
	}
	if fl {
		return a.NewReal(fx + fy), nil
	}
	return a.NewInteger(x + y), nil
}

// sub is a native.
//
// sub(x, y) returns x minus y.
func sub(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	x, y, fx, fy, fl, err := operands("sub", args)
	if err != nil {
		return nil, err
	}
	if fl {
		return a.NewReal(fx - fy), nil
	}
	return a.NewInteger(x - y), nil
}

// mul is a native.
//
// mul(x, y) returns the product of two numbers.
func mul(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	x, y, fx, fy, fl, err := operands("mul", args)
	if err != nil {
		return nil, err
	}
	if fl {
		return a.NewReal(fx * fy), nil
	}
	return a.NewInteger(x * y), nil
}

// div is a native.
//
// div(x, y) returns x divided by y. Integer division truncates and fails when
// y is zero.
func div(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	x, y, fx, fy, fl, err := operands("div", args)
	if err != nil {
		return nil, err
	}
	if fl {
		return a.NewReal(fx / fy), nil
	}
	if y == 0 {
		return nil, ErrDivideByZero
	}
	return a.NewInteger(x / y), nil
}

// less is a native.
//
// less(x, y) returns true if x is less than y.
func less(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	x, y, fx, fy, fl, err := operands("less", args)
	if err != nil {
		return nil, err
	}
	if fl {
		return a.Bool(fx < fy), nil
	}
	return a.Bool(x < y), nil
}

// equal is a native.
//
// equal(x, y) returns true if x and y are the same box or hold equal
// primitive payloads.
func equal(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	if err := holo.AssertArgCount("equal", args, 2); err != nil {
		return nil, err
	}
	return a.Bool(holo.Equal(args[0], args[1])), nil
}

// ifElse is a native.
//
// if(condition, then, else) returns then unless condition is null or false,
// in which case it returns else. Both branches are already evaluated, so
// programs select methods and call the result to defer work:
//
//	if(c, () { 1 }, () { 2 })()
func ifElse(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	if err := holo.AssertArgCount("if", args, 3); err != nil {
		return nil, err
	}
	if Truthy(args[0]) {
		return args[1], nil
	}
	return args[2], nil
}

// Truthy reports whether a box counts as true for if: anything but null and
// Boolean false.
func Truthy(b *holo.Box) bool {
	if b.IsNull() {
		return false
	}
	v, ok := b.Value.(bool)
	return !ok || v
}
