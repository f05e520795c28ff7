/*
Package holo implements HoloLang, a small prototype-based expression language.

Everything in holo is a box. A box has variables, which map names to other
boxes; possibly a method, which makes the box callable; and an opaque payload
for primitives like integers and strings. There are no classes. Instead, a box
lists its structural types in its components variable, and a box whose call
variable holds another box is callable exactly as that box is.

The interpreter can easily be embedded in another program. To start, use the
NewActor function to create an actor, which creates every box and evaluates
programs. Use Parse or ParseExpression to turn source text into expressions,
then Evaluate them against a target box. Native functions are made available to
programs with the actor's Define method, or for every actor with Register.

Holo Primer

A program is a sequence of expressions separated by semicolons:

	x = 1; y = "two"; x

Its value is the value of the last expression. Assignment binds a variable on
the active target, the box a program is evaluated against, and yields the
assigned value. Assigning null removes the variable.

Braces create a new box and evaluate their contents with it as the active
target, so that assignments inside become its variables:

	point = { x = 3; y = 4 };
	point.x

A parenthesized list of names followed by braces is a method instead:

	first = (a, b) { a };
	first(1, 2)

Calling a method creates a scope box whose only component is the method's box,
binds each parameter by asking the argument book for its item at the
parameter's position, then evaluates the body against the scope. Parameters
are bound from last to first. Any box with a get method can serve as the
argument book, and the scope also holds the book itself in its arguments
variable.

Evaluation never recurses on the Go stack, so arbitrarily deep programs are
limited only by memory.
*/
package holo

import (
	"github.com/hololang/holo/internal"
)

// An Actor creates boxes and evaluates expressions. Evaluations on the same
// actor run one at a time.
type Actor = internal.Actor

// Box is the single runtime value of holo.
//
// Always use an Actor's factory methods to obtain new boxes. Creating boxes
// directly will result in arbitrary failures.
type Box = internal.Box

// Method is a parameter list and a body evaluated in a fresh scope.
type Method = internal.Method

// Native is a host function callable from holo programs.
type Native = internal.Native

// Frame is one entry of the evaluator's control stack.
type Frame = internal.Frame

// An Expression is a node of a parsed program.
type Expression = internal.Expression

// Expression types.
type (
	MultiExpr    = internal.MultiExpr
	GetExpr      = internal.GetExpr
	AssignExpr   = internal.AssignExpr
	CallExpr     = internal.CallExpr
	BoxExpr      = internal.BoxExpr
	StringExpr   = internal.StringExpr
	IntegerExpr  = internal.IntegerExpr
	RealExpr     = internal.RealExpr
	ListExpr     = internal.ListExpr
	ExternalCall = internal.ExternalCall
)

// EvalError is an error raised while evaluating an expression.
type EvalError = internal.EvalError

// ParseError is an error in source text.
type ParseError = internal.ParseError

// Reserved variable names.
const (
	ComponentsVariable = internal.ComponentsVariable
	CallVariable       = internal.CallVariable
	GetterVariable     = internal.GetterVariable
	ArgumentsVariable  = internal.ArgumentsVariable
)

// Evaluation failure reasons.
var (
	ErrUndefined        = internal.ErrUndefined
	ErrNoGetter         = internal.ErrNoGetter
	ErrTooManyArguments = internal.ErrTooManyArguments
	ErrMissingArgument  = internal.ErrMissingArgument
	ErrUnsupported      = internal.ErrUnsupported
	ErrUnknownNode      = internal.ErrUnknownNode
	ErrIndex            = internal.ErrIndex
	ErrType             = internal.ErrType
	ErrSealed           = internal.ErrSealed
)

// NewActor creates an actor with its canonical boxes and every registered
// extension.
func NewActor() *Actor {
	return internal.NewActor()
}

// Parse converts source text into its top-level sequence of expressions.
func Parse(source string) ([]Expression, error) {
	return internal.Parse(source)
}

// ParseExpression parses source text into a single expression: nil for empty
// source, the sole expression, or a MultiExpr.
func ParseExpression(source string) (Expression, error) {
	return internal.ParseExpression(source)
}

// NewSequence returns nil, the sole expression, or a MultiExpr of exprs.
func NewSequence(exprs []Expression) Expression {
	return internal.NewSequence(exprs)
}

// Equal reports whether two boxes are the same box or hold equal primitive
// payloads.
func Equal(x, y *Box) bool {
	return internal.Equal(x, y)
}

// AssertArgCount returns an error if args does not have exactly n items.
func AssertArgCount(name string, args []*Box, n int) error {
	return internal.AssertArgCount(name, args, n)
}

// IntegerArgAt returns the payload of the nth argument, which must be an
// Integer.
func IntegerArgAt(name string, args []*Box, n int) (int64, error) {
	return internal.IntegerArgAt(name, args, n)
}

// StringArgAt returns the payload of the nth argument, which must be a String.
func StringArgAt(name string, args []*Box, n int) ([]byte, error) {
	return internal.StringArgAt(name, args, n)
}

// ListArgAt returns the items of the nth argument, which must be a List.
func ListArgAt(name string, args []*Box, n int) ([]*Box, error) {
	return internal.ListArgAt(name, args, n)
}
