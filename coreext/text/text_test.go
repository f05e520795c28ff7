package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hololang/holo"
	_ "github.com/hololang/holo/coreext/text" // side effects
	"github.com/hololang/holo/testutils"
)

func TestRegister(t *testing.T) {
	testutils.CheckNatives(t, testutils.TestingActor(), []string{"concat", "length", "upper", "lower", "join"})
}

func TestText(t *testing.T) {
	a := testutils.TestingActor()
	cases := map[string]testutils.SourceTestCase{
		"Concat":      {Source: "concat('ab', \"cd\", '')", Pass: testutils.PassString("abcd")},
		"ConcatNone":  {Source: "concat()", Pass: testutils.PassString("")},
		"ConcatType":  {Source: "concat('a', 1)", Pass: testutils.PassErrorIs(holo.ErrType)},
		"Length":      {Source: "length('héllo')", Pass: testutils.PassInteger(5)},
		"LengthList":  {Source: "length((1, 2, 3))", Pass: testutils.PassInteger(3)},
		"LengthType":  {Source: "length(1)", Pass: testutils.PassErrorIs(holo.ErrType)},
		"Upper":       {Source: "upper('straße')", Pass: testutils.PassString("STRASSE")},
		"Lower":       {Source: "lower('ÀB')", Pass: testutils.PassString("àb")},
		"UpperCount":  {Source: "upper('a', 'b')", Pass: testutils.PassErrorIs(holo.ErrTooManyArguments)},
		"LowerType":   {Source: "lower(1)", Pass: testutils.PassErrorIs(holo.ErrType)},
		"Composition": {Source: "s = 'x'; length(concat(s, upper(s)))", Pass: testutils.PassInteger(2)},
		"Join":        {Source: "join(('a', 'b', 'c'), ', ')", Pass: testutils.PassEqual(a.NewString("a, b, c"))},
		"JoinOne":     {Source: "join(('a'), '-')", Pass: testutils.PassEqual(a.NewString("a"))},
		"JoinLength":  {Source: "length(join(('ab', 'c'), ''))", Pass: testutils.PassInteger(3)},
		"JoinNotList": {Source: "join('abc', ',')", Pass: testutils.PassErrorIs(holo.ErrType)},
		"JoinSep":     {Source: "join(('a', 'b'), 0)", Pass: testutils.PassErrorIs(holo.ErrType)},
		"JoinItem":    {Source: "join(('a', 1), ',')", Pass: testutils.PassFailure()},
		"JoinCount":   {Source: "join(('a', 'b'))", Pass: testutils.PassFailure()},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}

func TestConcatFresh(t *testing.T) {
	a := testutils.TestingActor()
	target := a.NewBox()
	r, err := a.DoString(target, "s = 'a'; t = concat(s); t")
	assert.NoError(t, err)
	s, _ := target.GetVariable("s")
	assert.NotSame(t, s, r)
	assert.Equal(t, "\"a\"", a.Format(r))
}
