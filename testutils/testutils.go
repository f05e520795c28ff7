// Package testutils provides utilities for testing holo code in Go.
package testutils

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/hololang/holo"
)

// testActor is the actor used for all tests.
var testActor *holo.Actor

var testActorInit sync.Once

// TestingActor returns an actor for testing holo. The actor is shared by all
// tests that use this package.
func TestingActor() *holo.Actor {
	testActorInit.Do(ResetTestingActor)
	return testActor
}

// ResetTestingActor reinitializes the actor returned by TestingActor. It is not
// safe to call this in parallel tests.
func ResetTestingActor() {
	testActor = holo.NewActor()
}

// A SourceTestCase is a test case containing holo source code and a predicate
// to check the result.
type SourceTestCase struct {
	// Source is the holo source code to execute.
	Source string
	// Pass is a predicate taking the result of executing Source. If Pass
	// returns false, then the test fails.
	Pass func(result *holo.Box, err error) bool
}

// TestFunc returns a test function for the test case. This uses TestingActor
// to parse and evaluate the code against a fresh target box.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		a := TestingActor()
		e, err := holo.ParseExpression(c.Source)
		if err != nil {
			t.Fatalf("could not parse %q: %v", c.Source, err)
		}
		r, err := a.Evaluate(a.NewBox(), e)
		if !c.Pass(r, err) {
			if err != nil {
				t.Errorf("%q produced wrong result; an error occurred: %v", c.Source, err)
			} else {
				t.Errorf("%q produced wrong result; got %s@%p", c.Source, a.Format(r), r)
			}
		}
	}
}

// PassInteger returns a Pass function for a SourceTestCase that predicates on
// the result being an Integer with the given value.
func PassInteger(want int64) func(*holo.Box, error) bool {
	return func(result *holo.Box, err error) bool {
		if err != nil {
			return false
		}
		v, ok := result.Value.(int64)
		return ok && v == want
	}
}

// PassReal returns a Pass function for a SourceTestCase that predicates on
// the result being a Real with the given value.
func PassReal(want float64) func(*holo.Box, error) bool {
	return func(result *holo.Box, err error) bool {
		if err != nil {
			return false
		}
		v, ok := result.Value.(float64)
		return ok && v == want
	}
}

// PassString returns a Pass function for a SourceTestCase that predicates on
// the result being a String with the given contents.
func PassString(want string) func(*holo.Box, error) bool {
	return func(result *holo.Box, err error) bool {
		if err != nil {
			return false
		}
		v, ok := result.Value.([]byte)
		return ok && string(v) == want
	}
}

// PassEqual returns a Pass function for a SourceTestCase that predicates on
// holo.Equal with want.
func PassEqual(want *holo.Box) func(*holo.Box, error) bool {
	return func(result *holo.Box, err error) bool {
		return err == nil && holo.Equal(want, result)
	}
}

// PassIdentical returns a Pass function for a SourceTestCase that predicates
// on identity equality, i.e. the result must be exactly the given box.
func PassIdentical(want *holo.Box) func(*holo.Box, error) bool {
	return func(result *holo.Box, err error) bool {
		return err == nil && want == result
	}
}

// PassNull returns a Pass function for a SourceTestCase that returns true iff
// evaluation succeeded with a null-valued result.
func PassNull() func(*holo.Box, error) bool {
	return func(result *holo.Box, err error) bool {
		return err == nil && result.IsNull()
	}
}

// PassFailure returns a Pass function for a SourceTestCase that returns true
// iff evaluation failed.
func PassFailure() func(*holo.Box, error) bool {
	return func(result *holo.Box, err error) bool {
		return err != nil
	}
}

// PassErrorIs returns a Pass function for a SourceTestCase that returns true
// iff evaluation failed with an error matching target.
func PassErrorIs(target error) func(*holo.Box, error) bool {
	return func(result *holo.Box, err error) bool {
		return errors.Is(err, target)
	}
}

// PassSuccess returns a Pass function for a SourceTestCase that returns true
// iff evaluation succeeded.
func PassSuccess() func(*holo.Box, error) bool {
	return func(result *holo.Box, err error) bool {
		return err == nil
	}
}

// PassLocalVariables returns a Pass function for a SourceTestCase that
// returns true iff the result directly has all of the variables in want and
// none of the variables in exclude.
func PassLocalVariables(want, exclude []string) func(*holo.Box, error) bool {
	return func(result *holo.Box, err error) bool {
		if err != nil {
			return false
		}
		for _, name := range want {
			if _, ok := result.GetVariable(name); !ok {
				return false
			}
		}
		for _, name := range exclude {
			if _, ok := result.GetVariable(name); ok {
				return false
			}
		}
		return true
	}
}

// CheckVariables is a testing helper to check whether a box has exactly the
// variables we expect.
func CheckVariables(t *testing.T, b *holo.Box, names []string) {
	t.Helper()
	checked := make(map[string]bool, len(names))
	for _, name := range names {
		checked[name] = true
		t.Run("Have_"+name, func(t *testing.T) {
			v, ok := b.GetVariable(name)
			if !ok {
				t.Fatal("no variable", name)
			}
			if v == nil {
				t.Fatal("variable", name, "is nil")
			}
		})
	}
	have := b.VariableNames()
	sort.Strings(have)
	for _, name := range have {
		t.Run("Want_"+name, func(t *testing.T) {
			if !checked[name] {
				t.Fatal("unexpected variable", name)
			}
		})
	}
}

// CheckNatives is a testing helper to check that an actor defines each of the
// given natives and binds them in its globals.
func CheckNatives(t *testing.T, a *holo.Actor, names []string) {
	t.Helper()
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			if _, ok := a.Native(name); !ok {
				t.Error("no native", name)
			}
			if _, ok := a.Globals.GetVariable(name); !ok {
				t.Error("no global", name)
			}
		})
	}
}
