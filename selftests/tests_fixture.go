package selftests

import (
	"sort"

	"github.com/utest-go/utest/framework"
	"github.com/utest-go/utest/uassert"
)

// inventory is a fixture shared by several tests. Every test gets its own instance.
type inventory struct {
	framework.Fixture
	items map[string]int
}

func newInventory() *inventory { return &inventory{} }

func (f *inventory) SetUp() error {
	f.items = map[string]int{"apples": 3, "pears": 1}
	f.Debug("stocked %d kinds of items", len(f.items))
	return nil
}

func (f *inventory) TearDown() error {
	f.items = nil
	return nil
}

func (f *inventory) take(name string, n int) bool {
	if f.items[name] < n {
		return false
	}
	f.items[name] -= n
	return true
}

func (f *inventory) names() []string {
	var ret []string
	for k := range f.items {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

type restockTest struct {
	inventory
}

func (t *restockTest) Run() error {
	t.items["plums"] += 4
	uassert.Equal([]string{"apples", "pears", "plums"}, t.names())
	return nil
}

func init() {
	framework.DeclareFixture("take available items", CategoryFixture, newInventory, func(f *inventory) error {
		uassert.True(f.take("apples", 2))
		uassert.Equal(1, f.items["apples"])
		return nil
	})

	framework.DeclareFixture("cannot take more than stocked", CategoryFixture, newInventory, func(f *inventory) error {
		uassert.False(f.take("pears", 2))
		uassert.Equal(1, f.items["pears"])
		return nil
	})

	framework.DeclareFixture("each test starts from setup", CategoryFixture, newInventory, func(f *inventory) error {
		uassert.Equal(3, f.items["apples"])
		uassert.Equal([]string{"apples", "pears"}, f.names())
		return nil
	})

	framework.Declare("restock", CategoryFixture, func() framework.TestCase { return &restockTest{} })

	framework.DeclareFunc("fixture debug output is attached", CategoryFixture, func() error {
		info := framework.NewInfo("debug", "", func() framework.TestCase { return &restockTest{} })
		var res framework.Result
		uassert.Equal(framework.StatusPass, framework.RunTest(info, &res))
		uassert.Equal(1, len(res.DebugOutput))
		uassert.Equal("stocked 2 kinds of items", res.DebugOutput[0].Message)
		return nil
	})
}
