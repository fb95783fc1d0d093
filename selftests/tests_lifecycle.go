package selftests

import (
	"errors"
	"strings"

	"github.com/utest-go/utest/framework"
	"github.com/utest-go/utest/uassert"
)

// probe is a test case that records the order of its lifecycle calls. Each step can be
// made to fail by setting the corresponding error.
type probe struct {
	framework.Fixture
	calls                     *[]string
	setUpErr, runErr, tearErr error
	runPanic                  interface{}
}

func (p *probe) SetUp() error {
	*p.calls = append(*p.calls, "setup")
	return p.setUpErr
}

func (p *probe) Run() error {
	*p.calls = append(*p.calls, "run")
	if p.runPanic != nil {
		panic(p.runPanic)
	}
	return p.runErr
}

func (p *probe) TearDown() error {
	*p.calls = append(*p.calls, "teardown")
	return p.tearErr
}

// runProbe executes a probe configured by configure and returns its result and recorded calls.
func runProbe(configure func(p *probe)) (framework.Result, []string) {
	var calls []string
	info := framework.NewInfo("probe", "", func() framework.TestCase {
		p := &probe{calls: &calls}
		if configure != nil {
			configure(p)
		}
		return p
	})
	var res framework.Result
	framework.RunTest(info, &res)
	return res, calls
}

func init() {
	framework.DeclareFunc("lifecycle order", CategoryLifecycle, func() error {
		res, calls := runProbe(nil)
		uassert.Equal(framework.StatusPass, res.Status)
		uassert.Equal("setup,run,teardown", strings.Join(calls, ","))
		uassert.Equal("", res.ErrMessage)
		return nil
	})

	framework.DeclareFunc("failed setup skips body", CategoryLifecycle, func() error {
		res, calls := runProbe(func(p *probe) { p.setUpErr = errors.New("no database") })
		uassert.Equal(framework.StatusFail, res.Status)
		uassert.Equal("setup,teardown", strings.Join(calls, ","))
		uassert.Equal("unhandled exception: no database", res.ErrMessage)
		return nil
	})

	framework.DeclareFunc("panic in body is contained", CategoryLifecycle, func() error {
		res, calls := runProbe(func(p *probe) { p.runPanic = "boom" })
		uassert.Equal(framework.StatusFail, res.Status)
		uassert.Equal("setup,run,teardown", strings.Join(calls, ","))
		uassert.Equal("unhandled exception: boom", res.ErrMessage)
		uassert.Equal("", res.Location())
		return nil
	})

	framework.DeclareFunc("assertion failure has a location", CategoryLifecycle, func() error {
		res, _ := runProbe(func(p *probe) { p.runErr = &uassert.Failure{Message: "m", File: "f.go", Line: 12} })
		uassert.Equal(framework.StatusFail, res.Status)
		uassert.Equal("m", res.ErrMessage)
		uassert.Equal("f.go:12", res.Location())
		return nil
	})

	framework.DeclareFunc("teardown failure fails a passing test", CategoryLifecycle, func() error {
		res, _ := runProbe(func(p *probe) { p.tearErr = errors.New("leak") })
		uassert.Equal(framework.StatusFail, res.Status)
		uassert.Equal("unhandled exception: leak", res.ErrMessage)
		return nil
	})

	framework.DeclareFunc("teardown failure keeps first error", CategoryLifecycle, func() error {
		res, _ := runProbe(func(p *probe) {
			p.runErr = errors.New("first")
			p.tearErr = errors.New("second")
		})
		uassert.Equal("unhandled exception: first", res.ErrMessage)
		return nil
	})

	framework.DeclareFunc("error without description", CategoryLifecycle, func() error {
		res, _ := runProbe(func(p *probe) { p.runErr = errors.New("") })
		uassert.Equal("unhandled exception", res.ErrMessage)
		return nil
	})
}
