package internal

import (
	"sync/atomic"

	"github.com/zephyrtronium/contains"
)

// Reserved variable names.
const (
	// ComponentsVariable holds a list box of the box's components, its
	// structural type tags.
	ComponentsVariable = "components"
	// CallVariable redirects a box's callable behavior to another box.
	CallVariable = "call"
	// GetterVariable is the name of the indexed-retrieval capability used to
	// bind call arguments.
	GetterVariable = "get"
	// ArgumentsVariable is bound on every call scope to the raw argument box.
	ArgumentsVariable = "arguments"
)

// Box is the single runtime value of holo. A box carries variables, an
// optional method, and an opaque payload.
//
// Always use the Actor's factory methods to obtain new boxes. Boxes created
// directly have no identity and cannot be classified by IsNull.
type Box struct {
	// vars is the box's variable mapping. It never holds null-valued boxes.
	vars map[string]*Box
	// Method is the box's own callable behavior, if any. Use GetMethod to
	// resolve delegation through the call variable.
	Method *Method
	// Value is the box's payload: bool, int64, float64, []byte, []*Box,
	// map[*Box]*Box, or nil.
	Value interface{}

	// null is the canonical Null box of the actor that created this box.
	null *Box
	// id is the box's unique ID.
	id uintptr
}

// Method is a parameter list and a body to evaluate in a fresh scope.
type Method struct {
	// Params are the positional parameter names.
	Params []string
	// Body is the expression evaluated with the call scope as target. A nil
	// body evaluates to null.
	Body Expression
	// Variadic methods accept an argument book of any size and bind nothing
	// from it. Their body reads the arguments variable instead.
	Variadic bool
}

// boxcounter is the global counter for box IDs. All accesses to this must be
// atomic.
var boxcounter uintptr

// nextBox increments the box counter and returns its value as a unique ID for
// a new box.
func nextBox() uintptr {
	return atomic.AddUintptr(&boxcounter, 1)
}

// UniqueID returns the box's unique ID.
func (b *Box) UniqueID() uintptr {
	return b.id
}

// GetVariable looks up a variable in the box's own mapping. Components and
// delegates are not searched.
func (b *Box) GetVariable(name string) (*Box, bool) {
	v, ok := b.vars[name]
	return v, ok
}

// SetVariable binds a variable. Binding nil or a null-valued box removes the
// variable instead, so an absent variable and a null one are the same thing.
func (b *Box) SetVariable(name string, value *Box) {
	if value == nil || value.IsNull() {
		delete(b.vars, name)
		return
	}
	if b.vars == nil {
		b.vars = make(map[string]*Box)
	}
	b.vars[name] = value
}

// setRaw binds a variable without the null check. It is used while the
// canonical boxes are still being wired together.
func (b *Box) setRaw(name string, value *Box) {
	if b.vars == nil {
		b.vars = make(map[string]*Box)
	}
	b.vars[name] = value
}

// VariableNames returns the names of the box's variables in no particular
// order.
func (b *Box) VariableNames() []string {
	names := make([]string, 0, len(b.vars))
	for name := range b.vars {
		names = append(names, name)
	}
	return names
}

// GetComponents returns the payload of the box's components variable, or nil
// if it has none or the variable is not a list.
func (b *Box) GetComponents() []*Box {
	c, ok := b.GetVariable(ComponentsVariable)
	if !ok {
		return nil
	}
	l, _ := c.Value.([]*Box)
	return l
}

// GetMethod resolves the box's callable behavior. Starting at b, the call
// variable is followed while it holds a box; the method of the last box in the
// chain is the result. A chain that loops back on itself has no method.
func (b *Box) GetMethod() *Method {
	set := contains.Set{}
	set.Add(b.UniqueID())
	for {
		next, ok := b.GetVariable(CallVariable)
		if !ok || next.IsNull() {
			return b.Method
		}
		if !set.Add(next.UniqueID()) {
			return nil
		}
		b = next
	}
}

// Includes reports whether other is b itself or is reachable from b through
// components, searched breadth-first.
func (b *Box) Includes(other *Box) bool {
	if b == nil || other == nil {
		return false
	}
	queue := []*Box{b}
	set := contains.Set{}
	set.Add(b.UniqueID())
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == other {
			return true
		}
		for _, p := range c.GetComponents() {
			if set.Add(p.UniqueID()) {
				queue = append(queue, p)
			}
		}
	}
	return false
}

// IsNull reports whether the box includes its actor's canonical Null box.
func (b *Box) IsNull() bool {
	return b.Includes(b.null)
}
