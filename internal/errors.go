package internal

import (
	"errors"
	"fmt"
)

// Evaluation failure reasons. Errors returned by Evaluate wrap exactly one of
// these, or the context's error when evaluation is cancelled.
var (
	// ErrUndefined means a get named a variable the target does not have.
	ErrUndefined = errors.New("variable not found")
	// ErrNoGetter means a call argument has no get capability.
	ErrNoGetter = errors.New("argument has no get capability")
	// ErrTooManyArguments means a call supplied more arguments than the method
	// declares parameters.
	ErrTooManyArguments = errors.New("too many arguments")
	// ErrMissingArgument means a call supplied fewer arguments than the method
	// declares parameters.
	ErrMissingArgument = errors.New("missing argument")
	// ErrUnsupported means an external call names no registered function.
	ErrUnsupported = errors.New("unsupported external call")
	// ErrUnknownNode means the evaluator met an expression type it does not
	// know how to evaluate.
	ErrUnknownNode = errors.New("unknown expression kind")
	// ErrIndex means a getter was asked for a position or key it lacks.
	ErrIndex = errors.New("no such index")
	// ErrType means a native function received a box of the wrong kind.
	ErrType = errors.New("wrong argument type")
	// ErrSealed means an assignment targeted one of the actor's shared
	// singletons.
	ErrSealed = errors.New("cannot assign to sealed box")
)

// EvalError is an error raised while evaluating an expression.
type EvalError struct {
	// Expr is the expression whose evaluation failed.
	Expr Expression
	// Err is the underlying reason.
	Err error
}

// Error returns the error message.
func (err *EvalError) Error() string {
	if err.Expr == nil {
		return err.Err.Error()
	}
	return fmt.Sprintf("%v (in %s)", err.Err, err.Expr)
}

// Unwrap returns the underlying reason.
func (err *EvalError) Unwrap() error {
	return err.Err
}

// ParseError is an error in source text.
type ParseError struct {
	// Offset is the byte offset in the source at which the error occurred.
	Offset int
	// Line and Col are the one-based line and column numbers of Offset.
	Line, Col int
	// Msg describes the error.
	Msg string
	// Incomplete is set when the source ended before the error was found, so
	// that more input might make it valid.
	Incomplete bool
}

// Error returns the error message.
func (err *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", err.Line, err.Col, err.Msg)
}
