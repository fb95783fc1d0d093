package framework

import (
	"runtime"

	"github.com/utest-go/utest/logging"
)

// Info describes a declared test. It is created once per test and is not modified after
// registration; Factory builds a fresh TestCase for every execution.
type Info struct {
	Factory  func() TestCase
	Name     string
	Category string
	File     string
	Line     int
}

// ID is the string that regex filters are matched against: "category/name", or just the
// name for a test without a category.
func (i *Info) ID() string {
	if i.Category == "" {
		return i.Name
	}
	return i.Category + "/" + i.Name
}

func (i *Info) String() string {
	return i.ID()
}

// NewInfo creates an Info whose source location is the caller of NewInfo. It does not
// register it anywhere.
func NewInfo(name, category string, factory func() TestCase) *Info {
	return newInfoAt(name, category, factory, 1)
}

// Declare creates an Info for a TestCase type and adds it to the process-wide registry.
// It is meant to be called from an init function:
//
//	type parserTest struct{ parserFixture }
//
//	func (t *parserTest) Run() error { ... }
//
//	func init() {
//		framework.Declare("parses empty input", "parser", func() framework.TestCase {
//			return &parserTest{}
//		})
//	}
func Declare(name, category string, factory func() TestCase) *Info {
	info := newInfoAt(name, category, factory, 1)
	Registered().Add(info)
	return info
}

// DeclareFunc registers a test whose body is a plain function, with no setup or teardown.
func DeclareFunc(name, category string, body func() error) *Info {
	info := newInfoAt(name, category, func() TestCase {
		return &funcCase{body: body}
	}, 1)
	Registered().Add(info)
	return info
}

// DeclareFixture registers a test that runs body against a fixture value. newFixture is
// called once per execution; the fixture's SetUp runs before body and its TearDown after.
func DeclareFixture[F FixtureHooks](name, category string, newFixture func() F, body func(F) error) *Info {
	info := newInfoAt(name, category, func() TestCase {
		return &fixtureCase[F]{fixture: newFixture(), body: body}
	}, 1)
	Registered().Add(info)
	return info
}

func newInfoAt(name, category string, factory func() TestCase, skip int) *Info {
	info := &Info{
		Factory:  factory,
		Name:     name,
		Category: category,
	}
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		info.File = file
		info.Line = line
	}
	return info
}

type funcCase struct {
	Fixture
	body func() error
}

func (c *funcCase) Run() error {
	return c.body()
}

type fixtureCase[F FixtureHooks] struct {
	fixture F
	body    func(F) error
}

func (c *fixtureCase[F]) SetUp() error { return c.fixture.SetUp() }

func (c *fixtureCase[F]) Run() error { return c.body(c.fixture) }

func (c *fixtureCase[F]) TearDown() error { return c.fixture.TearDown() }

func (c *fixtureCase[F]) DebugOutput() logging.CapturedOutput {
	if src, ok := interface{}(c.fixture).(debugOutputSource); ok {
		return src.DebugOutput()
	}
	return nil
}
