// Package selftests declares a suite of tests that check the framework using the framework.
//
// Importing the package registers every test in it with framework.Registered. The tests are
// grouped by category so that a run can be narrowed with a category filter.
package selftests

// AllCategories lists the categories used by the tests in this package.
var AllCategories = []string{
	CategoryAssert,
	CategoryLifecycle,
	CategoryRunner,
	CategoryFixture,
}

const (
	CategoryAssert    = "assert"
	CategoryLifecycle = "lifecycle"
	CategoryRunner    = "runner"
	CategoryFixture   = "fixture"
)
