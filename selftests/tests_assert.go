package selftests

import (
	"github.com/utest-go/utest/framework"
	"github.com/utest-go/utest/uassert"
)

// expectFailure runs check with a collecting asserter and fails the current test unless
// exactly one failure with the given message was reported.
func expectFailure(message string, check func(a *uassert.Asserter)) {
	var got []*uassert.Failure
	a := uassert.New(uassert.FailHandlerFunc(func(f *uassert.Failure) { got = append(got, f) }))
	check(a)
	if len(got) != 1 {
		uassert.Failf("expected one failure %q, got %d", message, len(got))
	}
	uassert.Equal(message, got[0].Message)
	uassert.NotEqual("", got[0].File)
}

func init() {
	framework.DeclareFunc("equal values pass", CategoryAssert, func() error {
		uassert.Equal(5, 5)
		uassert.Equal("text", "text")
		uassert.Equal([]int{1, 2}, []int{1, 2})
		uassert.NotEqual(5, 6)
		return nil
	})

	framework.DeclareFunc("unequal values report both operands", CategoryAssert, func() error {
		expectFailure("Expected [5] saw [6]", func(a *uassert.Asserter) { a.Equal(5, 6) })
		expectFailure("Expected not [7] saw [7]", func(a *uassert.Asserter) { a.NotEqual(7, 7) })
		return nil
	})

	framework.DeclareFunc("boolean checks", CategoryAssert, func() error {
		uassert.That(len("abc") == 3)
		uassert.True(true)
		uassert.False(false)
		expectFailure("Assert expression failed", func(a *uassert.Asserter) { a.That(false) })
		expectFailure("Expected [true] saw [false]", func(a *uassert.Asserter) { a.True(false) })
		expectFailure("Expected [false] saw [true]", func(a *uassert.Asserter) { a.False(true) })
		return nil
	})

	framework.DeclareFunc("nil checks", CategoryAssert, func() error {
		var missing *framework.Info
		uassert.Nil(missing)
		uassert.NotNil(&framework.Info{})
		expectFailure("Expected not [null]", func(a *uassert.Asserter) { a.NotNil(missing) })
		expectFailure("Expected [null]", func(a *uassert.Asserter) { a.Nil(&framework.Info{}) })
		return nil
	})

	framework.DeclareFunc("explicit failure", CategoryAssert, func() error {
		expectFailure("stop here", func(a *uassert.Asserter) { a.Fail("stop here") })
		return nil
	})
}
