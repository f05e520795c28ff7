package internal

import (
	"bytes"
	"fmt"
)

// listGetter creates the get method of a list box.
func (a *Actor) listGetter(l *Box) *Box {
	return a.NewNativeBox("List.get", func(a *Actor, args []*Box) (*Box, error) {
		return ListGet(a, l, args)
	})
}

// dictGetter creates the get method of a dictionary box.
func (a *Actor) dictGetter(d *Box) *Box {
	return a.NewNativeBox("Dictionary.get", func(a *Actor, args []*Box) (*Box, error) {
		return DictionaryGet(a, d, args)
	})
}

// ListGet is the get capability of List boxes.
//
// get(index) returns the item at a zero-based position.
func ListGet(a *Actor, l *Box, args []*Box) (*Box, error) {
	if err := AssertArgCount("List.get", args, 1); err != nil {
		return nil, err
	}
	k, err := IntegerArgAt("List.get", args, 0)
	if err != nil {
		return nil, err
	}
	items := l.Value.([]*Box)
	if k < 0 || k >= int64(len(items)) {
		return nil, fmt.Errorf("%w: %d not in list of size %d", ErrIndex, k, len(items))
	}
	return items[k], nil
}

// DictionaryGet is the get capability of Dictionary boxes.
//
// get(key) returns the value of the entry whose key is Equal to key.
func DictionaryGet(a *Actor, d *Box, args []*Box) (*Box, error) {
	if err := AssertArgCount("Dictionary.get", args, 1); err != nil {
		return nil, err
	}
	entries := d.Value.(map[*Box]*Box)
	if v, ok := entries[args[0]]; ok {
		return v, nil
	}
	for k, v := range entries {
		if Equal(k, args[0]) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: key %s not in dictionary", ErrIndex, a.Format(args[0]))
}

// Equal reports whether two boxes are the same box or hold equal primitive
// payloads of the same type.
func Equal(x, y *Box) bool {
	if x == y {
		return true
	}
	switch v := x.Value.(type) {
	case bool:
		w, ok := y.Value.(bool)
		return ok && v == w
	case int64:
		w, ok := y.Value.(int64)
		return ok && v == w
	case float64:
		w, ok := y.Value.(float64)
		return ok && v == w
	case []byte:
		w, ok := y.Value.([]byte)
		return ok && bytes.Equal(v, w)
	}
	return false
}

// AssertArgCount returns an error if args does not have exactly n items. name
// is the name of the function used in the generated error message.
func AssertArgCount(name string, args []*Box, n int) error {
	if len(args) > n {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrTooManyArguments, name, n, len(args))
	}
	if len(args) < n {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrMissingArgument, name, n, len(args))
	}
	return nil
}

// IntegerArgAt returns the payload of the nth argument, which must be an
// Integer.
func IntegerArgAt(name string, args []*Box, n int) (int64, error) {
	v, ok := args[n].Value.(int64)
	if !ok {
		return 0, fmt.Errorf("%w: argument %d to %s must be Integer", ErrType, n, name)
	}
	return v, nil
}

// StringArgAt returns the payload of the nth argument, which must be a String.
func StringArgAt(name string, args []*Box, n int) ([]byte, error) {
	v, ok := args[n].Value.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: argument %d to %s must be String", ErrType, n, name)
	}
	return v, nil
}

// ListArgAt returns the items of the nth argument, which must be a List.
func ListArgAt(name string, args []*Box, n int) ([]*Box, error) {
	v, ok := args[n].Value.([]*Box)
	if !ok {
		return nil, fmt.Errorf("%w: argument %d to %s must be List", ErrType, n, name)
	}
	return v, nil
}
