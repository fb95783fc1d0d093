package framework

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/utest-go/utest/uassert"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const declaredCategory = "registry-test"

type counterFixture struct {
	Fixture
	count    int
	tornDown *int
}

func (f *counterFixture) SetUp() error {
	f.count = 10
	f.Debug("set up counter")
	return nil
}

func (f *counterFixture) TearDown() error {
	*f.tornDown++
	return nil
}

type counterTest struct {
	counterFixture
}

func (c *counterTest) Run() error {
	c.count++
	uassert.Equal(11, c.count)
	return nil
}

var (
	declaredTearDowns int
	declaredInfos     []*Info
)

func init() {
	declaredInfos = append(declaredInfos,
		DeclareFunc("first", declaredCategory, func() error { return nil }),
		Declare("second", declaredCategory, func() TestCase {
			return &counterTest{counterFixture{tornDown: &declaredTearDowns}}
		}),
		DeclareFixture("third", declaredCategory,
			func() *counterFixture { return &counterFixture{tornDown: &declaredTearDowns} },
			func(f *counterFixture) error {
				if f.count != 10 {
					return errors.New("fixture was not set up")
				}
				return nil
			}),
	)
}

func declaredTests() []*Info {
	var ret []*Info
	for _, info := range Registered().Tests() {
		if info.Category == declaredCategory {
			ret = append(ret, info)
		}
	}
	return ret
}

func TestRegisteredContainsDeclaredTestsInOrder(t *testing.T) {
	tests := declaredTests()
	require.Len(t, tests, 3)
	assert.Equal(t, declaredInfos, tests)

	var names []string
	for _, info := range tests {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}

func TestDeclaredTestsRecordDeclarationSite(t *testing.T) {
	tests := declaredTests()
	require.Len(t, tests, 3)
	for _, info := range tests {
		assert.Equal(t, "registry_test.go", filepath.Base(info.File))
		assert.Greater(t, info.Line, 0)
	}
	assert.Less(t, tests[0].Line, tests[1].Line)
	assert.Less(t, tests[1].Line, tests[2].Line)
}

func TestRegisteredIsASingleton(t *testing.T) {
	assert.Same(t, Registered(), Registered())
}

func TestDeclaredTestsRunFromRegistry(t *testing.T) {
	declaredTearDowns = 0
	var results Results
	status := RunRegistered(CategoryFilter(declaredCategory), results.Observe)

	assert.Equal(t, StatusPass, status)
	require.Len(t, results.Tests, 3)
	assert.Equal(t, 2, declaredTearDowns)
	assert.Empty(t, results.Tests[0].DebugOutput)
	require.Len(t, results.Tests[1].DebugOutput, 1)
	assert.Equal(t, "set up counter", results.Tests[1].DebugOutput[0].Message)
	require.Len(t, results.Tests[2].DebugOutput, 1)
}

func TestDeclaredTestsGetFreshInstances(t *testing.T) {
	second := declaredTests()[1]
	for i := 0; i < 3; i++ {
		var res Result
		assert.Equal(t, StatusPass, RunTest(second, &res), "run %d: %s", i, res.ErrMessage)
	}
}

func TestNewRegistryIsIndependent(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Tests())

	a, b := passingInfo("a", ""), passingInfo("b", "")
	r.Add(a)
	r.Add(b)
	r.Add(a)
	assert.Equal(t, []*Info{a, b, a}, r.Tests())
	assert.Equal(t, []*Info{a, b, a}, slices.Collect(r.All()))
	assert.NotContains(t, Registered().Tests(), b)
}

func TestNewInfoRecordsCaller(t *testing.T) {
	var info *Info
	line := func() int { info = NewInfo("x", "cat", nil); return currentLine() }()
	assert.Equal(t, thisFile(), info.File)
	assert.Equal(t, line, info.Line)
	assert.Equal(t, "x", info.Name)
	assert.Equal(t, "cat", info.Category)
}

func TestInfoID(t *testing.T) {
	assert.Equal(t, "fast/adds", (&Info{Name: "adds", Category: "fast"}).ID())
	assert.Equal(t, "adds", (&Info{Name: "adds"}).String())
}
