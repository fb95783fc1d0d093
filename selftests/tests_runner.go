package selftests

import (
	"errors"

	"github.com/utest-go/utest/framework"
	"github.com/utest-go/utest/uassert"
)

func sampleTests() []*framework.Info {
	pass := func() error { return nil }
	fail := func() error { return errors.New("failed on purpose") }
	return []*framework.Info{
		framework.NewInfo("slow one", "slow", funcTest(fail)),
		framework.NewInfo("fast one", "fast", funcTest(pass)),
		framework.NewInfo("slow two", "slow", funcTest(fail)),
		framework.NewInfo("fast two", "fast", funcTest(pass)),
		framework.NewInfo("db one", "database", funcTest(pass)),
	}
}

type bodyCase struct {
	framework.Fixture
	body func() error
}

func (c *bodyCase) Run() error { return c.body() }

func funcTest(body func() error) func() framework.TestCase {
	return func() framework.TestCase { return &bodyCase{body: body} }
}

func init() {
	framework.DeclareFunc("filter selects tests", CategoryRunner, func() error {
		var results framework.Results
		status := framework.Run(sampleTests(), framework.CategoryFilter("fast"), results.Observe)
		uassert.Equal(framework.StatusPass, status)
		uassert.Equal(2, len(results.Tests))
		uassert.Equal("fast one", results.Tests[0].Name())
		uassert.Equal("fast two", results.Tests[1].Name())
		return nil
	})

	framework.DeclareFunc("any failure fails the run", CategoryRunner, func() error {
		var results framework.Results
		status := framework.Run(sampleTests(), nil, results.Observe)
		uassert.Equal(framework.StatusFail, status)
		uassert.Equal(5, len(results.Tests))
		uassert.Equal(2, len(results.Failures))
		uassert.False(results.OK())
		return nil
	})

	framework.DeclareFunc("empty selection passes", CategoryRunner, func() error {
		observed := 0
		status := framework.Run(sampleTests(), framework.CategoryFilter("none"), func(*framework.Result) { observed++ })
		uassert.Equal(framework.StatusPass, status)
		uassert.Equal(0, observed)
		return nil
	})

	framework.DeclareFunc("regex filter matches category and name", CategoryRunner, func() error {
		var filters framework.RegexFilters
		uassert.Nil(filters.MustMatch.Set("^slow/"))
		uassert.Nil(filters.MustNotMatch.Set("two$"))
		var results framework.Results
		framework.Run(sampleTests(), filters.AsFilter, results.Observe)
		uassert.Equal(1, len(results.Tests))
		uassert.Equal("slow one", results.Tests[0].Name())
		return nil
	})

	framework.DeclareFunc("isolated registry", CategoryRunner, func() error {
		r := framework.NewRegistry()
		for _, info := range sampleTests() {
			r.Add(info)
		}
		uassert.Equal(5, len(r.Tests()))
		uassert.NotEqual(len(framework.Registered().Tests()), 0)
		return nil
	})
}
