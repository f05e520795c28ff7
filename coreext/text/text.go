// Package text provides string natives.
package text

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hololang/holo"
	"github.com/hololang/holo/internal"
)

func init() {
	internal.Register(initText)
}

func initText(a *holo.Actor) {
	a.Define("concat", concat)
	a.Define("length", length)
	a.Define("upper", upper)
	a.Define("lower", lower)
	a.Define("join", join)
}

// concat is a native.
//
// concat(strings...) returns a new String joining every argument, each of
// which must be a String.
func concat(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	var b []byte
	for i := range args {
		s, err := holo.StringArgAt("concat", args, i)
		if err != nil {
			return nil, err
		}
		b = append(b, s...)
	}
	return a.NewStringBytes(b), nil
}

// length is a native.
//
// length(x) returns the number of characters in a String or items in a List.
func length(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	if err := holo.AssertArgCount("length", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].Value.(type) {
	case []byte:
		return a.NewInteger(int64(utf8.RuneCount(v))), nil
	case []*holo.Box:
		return a.NewInteger(int64(len(v))), nil
	}
	return nil, fmt.Errorf("%w: argument 0 to length must be String or List", holo.ErrType)
}

// join is a native.
//
// join(list, sep) returns a new String joining the items of list, each of
// which must be a String, with sep between them.
func join(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	if err := holo.AssertArgCount("join", args, 2); err != nil {
		return nil, err
	}
	items, err := holo.ListArgAt("join", args, 0)
	if err != nil {
		return nil, err
	}
	sep, err := holo.StringArgAt("join", args, 1)
	if err != nil {
		return nil, err
	}
	var b []byte
	for i := range items {
		s, err := holo.StringArgAt("join", items, i)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			b = append(b, sep...)
		}
		b = append(b, s...)
	}
	return a.NewStringBytes(b), nil
}

// upper is a native.
//
// upper(s) returns s converted to upper case.
func upper(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	return mapCase("upper", cases.Upper(language.Und), a, args)
}

// lower is a native.
//
// lower(s) returns s converted to lower case.
func lower(a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	return mapCase("lower", cases.Lower(language.Und), a, args)
}

func mapCase(name string, c cases.Caser, a *holo.Actor, args []*holo.Box) (*holo.Box, error) {
	if err := holo.AssertArgCount(name, args, 1); err != nil {
		return nil, err
	}
	s, err := holo.StringArgAt(name, args, 0)
	if err != nil {
		return nil, err
	}
	return a.NewStringBytes(c.Bytes(s)), nil
}
