package internal

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/text/encoding/unicode"
)

// Actor owns the canonical prototype boxes, creates every box, and evaluates
// expressions. A single Actor may be shared between goroutines; evaluations on
// it run one at a time.
type Actor struct {
	// Canonical prototypes. These are empty boxes compared by identity and
	// used as components of every value of their kind.
	Null       *Box
	Boolean    *Box
	Integer    *Box
	Real       *Box
	String     *Box
	List       *Box
	Dictionary *Box

	// Singletons.
	NullValue *Box
	True      *Box
	False     *Box

	// Globals holds variables visible to untargeted gets whose active target
	// lacks them, including every native defined on the actor. This fallback
	// is an extension: without it, lookups see only the active target.
	Globals *Box

	// Logger receives debug traces and evaluation failures.
	Logger *slog.Logger
	// Debug is an atomic flag controlling whether each evaluation step is
	// traced to Logger.
	Debug uint32

	// mu is held for the full duration of each evaluation and by Define and
	// Native.
	mu sync.Mutex
	// listTag is the components list shared by all list boxes. Its own
	// components variable refers to itself. Like the singletons, it is sealed
	// against assignment from programs, since every list and every box with
	// components would otherwise see the change.
	listTag *Box
	// natives are the host functions available to external calls by name.
	natives map[string]Native
}

// Native is a host function callable through an ExternalCall. args are the
// items of the call's argument book. A nil result means null.
type Native func(a *Actor, args []*Box) (*Box, error)

// NewActor creates an actor with its canonical boxes and runs every
// registered extension on it.
func NewActor() *Actor {
	haveActor.Store(true)

	a := Actor{
		Logger:  slog.Default(),
		natives: make(map[string]Native),
	}
	// The canonical boxes must exist before anything that calls IsNull, which
	// includes SetVariable and therefore every factory besides newBox.
	a.Null = &Box{id: nextBox()}
	a.Null.null = a.Null
	a.Boolean = a.newBox(nil)
	a.Integer = a.newBox(nil)
	a.Real = a.newBox(nil)
	a.String = a.newBox(nil)
	a.List = a.newBox(nil)
	a.Dictionary = a.newBox(nil)
	a.listTag = a.newBox([]*Box{a.List})
	a.listTag.setRaw(ComponentsVariable, a.listTag)
	a.listTag.setRaw(GetterVariable, a.listGetter(a.listTag))

	a.NullValue = a.NewBoxWith([]*Box{a.Null}, nil)
	a.True = a.NewBoolean(true)
	a.False = a.NewBoolean(false)

	a.Globals = a.NewBox()
	a.Globals.SetVariable("true", a.True)
	a.Globals.SetVariable("false", a.False)

	for _, ext := range coreExt {
		ext(&a)
	}
	return &a
}

// newBox creates a box with the given payload and nothing else.
func (a *Actor) newBox(value interface{}) *Box {
	return &Box{Value: value, null: a.Null, id: nextBox()}
}

// NewBox creates an empty box.
func (a *Actor) NewBox() *Box {
	return a.newBox(nil)
}

// NewBoxWith creates a box with the given components and payload. With no
// components, the box has no components variable.
func (a *Actor) NewBoxWith(components []*Box, value interface{}) *Box {
	r := a.newBox(value)
	if len(components) > 0 {
		r.setRaw(ComponentsVariable, a.NewList(components...))
	}
	return r
}

// NewMethodBox creates a box with the given method and no components.
func (a *Actor) NewMethodBox(m *Method) *Box {
	r := a.newBox(nil)
	r.Method = m
	return r
}

// NewNativeBox creates a method box whose body calls a native function. If fn
// is nil, the function is looked up by name when the method is called.
func (a *Actor) NewNativeBox(name string, fn Native) *Box {
	return a.NewMethodBox(&Method{Body: &ExternalCall{Name: name, Fn: fn}, Variadic: true})
}

// NewBoolean creates a new Boolean box. Bool returns the singletons instead.
func (a *Actor) NewBoolean(v bool) *Box {
	return a.NewBoxWith([]*Box{a.Boolean}, v)
}

// Bool converts a bool to the appropriate singleton.
func (a *Actor) Bool(c bool) *Box {
	if c {
		return a.True
	}
	return a.False
}

// NewInteger creates a new Integer box.
func (a *Actor) NewInteger(v int64) *Box {
	return a.NewBoxWith([]*Box{a.Integer}, v)
}

// NewReal creates a new Real box.
func (a *Actor) NewReal(v float64) *Box {
	return a.NewBoxWith([]*Box{a.Real}, v)
}

// NewString creates a new String box holding the UTF-8 encoding of s.
// Ill-formed sequences in s become U+FFFD.
func (a *Actor) NewString(s string) *Box {
	b, err := unicode.UTF8.NewEncoder().Bytes([]byte(s))
	if err != nil {
		b = []byte(s)
	}
	return a.NewStringBytes(b)
}

// NewStringBytes creates a new String box holding b, which the box takes
// ownership of.
func (a *Actor) NewStringBytes(b []byte) *Box {
	return a.NewBoxWith([]*Box{a.String}, b)
}

// NewList creates a new List box holding items. A nil item is stored as null.
// The box responds to get with the item at a position.
func (a *Actor) NewList(items ...*Box) *Box {
	l := make([]*Box, len(items))
	for i, v := range items {
		if v == nil {
			v = a.NullValue
		}
		l[i] = v
	}
	r := a.newBox(l)
	r.setRaw(ComponentsVariable, a.listTag)
	r.setRaw(GetterVariable, a.listGetter(r))
	return r
}

// NewDictionary creates a new Dictionary box holding entries, which the box
// takes ownership of. The box responds to get with the value for a key.
func (a *Actor) NewDictionary(entries map[*Box]*Box) *Box {
	if entries == nil {
		entries = make(map[*Box]*Box)
	}
	r := a.NewBoxWith([]*Box{a.Dictionary}, entries)
	r.setRaw(GetterVariable, a.dictGetter(r))
	return r
}

// Define makes a native function available to external calls under name and
// binds a method box calling it in Globals. Define waits for any running
// evaluation to finish, so natives must not call it.
func (a *Actor) Define(name string, fn Native) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.natives[name] = fn
	a.Globals.SetVariable(name, a.NewNativeBox(name, nil))
}

// Native returns the native function defined under name. Like Define, it
// waits for any running evaluation and must not be called from a native.
func (a *Actor) Native(name string) (Native, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn, ok := a.natives[name]
	return fn, ok
}

// Sealed reports whether programs are forbidden from assigning variables on
// b. The sealed boxes are NullValue, True, False, and the components list
// shared by all lists. Host code may still call SetVariable on them.
func (a *Actor) Sealed(b *Box) bool {
	return b == a.NullValue || b == a.True || b == a.False || b == a.listTag
}

// Register registers a core extension. Each function is called on every new
// actor in the order it is registered. Register should be called from within
// init funcs. Panics if NewActor has been called.
func Register(f func(*Actor)) {
	if haveActor.Load() {
		panic("holo/internal: Register must be called before any Actor is created")
	}
	coreExt = append(coreExt, f)
}

// coreExt is a list of core extensions that have been registered.
var coreExt = make([]func(*Actor), 0, 4)

// haveActor becomes true once NewActor has been called.
var haveActor atomic.Bool
