package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hololang/holo"
	"github.com/hololang/holo/testutils"
)

// TestSetVariable tests that binding null removes a variable.
func TestSetVariable(t *testing.T) {
	a := testutils.TestingActor()
	cases := map[string]struct {
		value *holo.Box
		have  bool
	}{
		"Integer":   {a.NewInteger(1), true},
		"Empty":     {a.NewBox(), true},
		"False":     {a.False, true},
		"Nil":       {nil, false},
		"NullValue": {a.NullValue, false},
		"Null":      {a.Null, false},
		"NullClone": {a.NewBoxWith([]*holo.Box{a.Null}, nil), false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			b := a.NewBox()
			b.SetVariable("x", a.NewInteger(0))
			b.SetVariable("x", c.value)
			v, ok := b.GetVariable("x")
			if ok != c.have {
				t.Fatalf("wrong presence: have %v, want %v", ok, c.have)
			}
			if ok && v != c.value {
				t.Errorf("wrong value: have %s, want %s", a.Format(v), a.Format(c.value))
			}
		})
	}
}

// TestVariableNames tests that VariableNames lists exactly the bound names.
func TestVariableNames(t *testing.T) {
	a := testutils.TestingActor()
	b := a.NewBox()
	b.SetVariable("x", a.NewInteger(1))
	b.SetVariable("y", a.NewInteger(2))
	b.SetVariable("z", a.NewInteger(3))
	b.SetVariable("z", nil)
	testutils.CheckVariables(t, b, []string{"x", "y"})
}

// TestGetComponents tests that components are read from the components
// variable's list payload.
func TestGetComponents(t *testing.T) {
	a := testutils.TestingActor()
	p, q := a.NewBox(), a.NewBox()
	cases := map[string]struct {
		b    *holo.Box
		want []*holo.Box
	}{
		"None":    {a.NewBox(), nil},
		"Two":     {a.NewBoxWith([]*holo.Box{p, q}, nil), []*holo.Box{p, q}},
		"Integer": {a.NewInteger(4), []*holo.Box{a.Integer}},
		"List":    {a.NewList(p), []*holo.Box{a.List}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, c.b.GetComponents())
		})
	}
	t.Run("NotList", func(t *testing.T) {
		b := a.NewBox()
		b.SetVariable(holo.ComponentsVariable, a.NewInteger(1))
		assert.Nil(t, b.GetComponents())
	})
}

// TestIncludes tests component reachability, including through cycles.
func TestIncludes(t *testing.T) {
	a := testutils.TestingActor()
	p := a.NewBox()
	q := a.NewBoxWith([]*holo.Box{p}, nil)
	r := a.NewBoxWith([]*holo.Box{q}, nil)
	// x and y list each other.
	x, y := a.NewBox(), a.NewBox()
	x.SetVariable(holo.ComponentsVariable, a.NewList(y))
	y.SetVariable(holo.ComponentsVariable, a.NewList(x))
	self := a.NewBox()
	self.SetVariable(holo.ComponentsVariable, a.NewList(self))
	cases := map[string]struct {
		b, other *holo.Box
		want     bool
	}{
		"Self":        {p, p, true},
		"Direct":      {q, p, true},
		"Transitive":  {r, p, true},
		"Reverse":     {p, r, false},
		"Unrelated":   {p, x, false},
		"Cycle":       {x, y, true},
		"CycleBack":   {y, x, true},
		"CycleMiss":   {x, p, false},
		"SelfCycle":   {self, p, false},
		"SelfInclude": {self, self, true},
		"Nil":         {p, nil, false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, c.b.Includes(c.other))
		})
	}
}

// TestIsNull tests null classification.
func TestIsNull(t *testing.T) {
	a := testutils.TestingActor()
	derived := a.NewBoxWith([]*holo.Box{a.NullValue}, nil)
	cases := map[string]struct {
		b    *holo.Box
		want bool
	}{
		"Null":      {a.Null, true},
		"NullValue": {a.NullValue, true},
		"Derived":   {derived, true},
		"Empty":     {a.NewBox(), false},
		"False":     {a.False, false},
		"Zero":      {a.NewInteger(0), false},
		"EmptyList": {a.NewList(), false},
		"Globals":   {a.Globals, false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, c.b.IsNull())
		})
	}
}

// TestGetMethod tests delegation through the call variable.
func TestGetMethod(t *testing.T) {
	a := testutils.TestingActor()
	m := &holo.Method{Params: []string{"x"}}
	own := a.NewMethodBox(m)
	one := a.NewBox()
	one.SetVariable(holo.CallVariable, own)
	two := a.NewBox()
	two.SetVariable(holo.CallVariable, one)
	// Delegation shadows a box's own method.
	shadow := a.NewMethodBox(&holo.Method{})
	shadow.SetVariable(holo.CallVariable, own)
	x, y := a.NewBox(), a.NewBox()
	x.SetVariable(holo.CallVariable, y)
	y.SetVariable(holo.CallVariable, x)
	loop := a.NewMethodBox(m)
	loop.SetVariable(holo.CallVariable, loop)
	cases := map[string]struct {
		b    *holo.Box
		want *holo.Method
	}{
		"Own":    {own, m},
		"None":   {a.NewBox(), nil},
		"One":    {one, m},
		"Two":    {two, m},
		"Shadow": {shadow, m},
		"Cycle":  {x, nil},
		"Loop":   {loop, nil},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Same(t, c.want, c.b.GetMethod())
		})
	}
}

// TestUniqueID tests that every box gets a distinct identity.
func TestUniqueID(t *testing.T) {
	a := testutils.TestingActor()
	seen := make(map[uintptr]bool)
	for i := 0; i < 100; i++ {
		id := a.NewInteger(int64(i)).UniqueID()
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}
