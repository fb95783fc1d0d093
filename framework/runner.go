package framework

import (
	"iter"
	"slices"

	"github.com/utest-go/utest/logging"
)

// Observer receives the Result of each executed test, synchronously and in execution order.
// The Result is complete when the observer is called; it should be copied if it is kept.
type Observer func(*Result)

// Observers combines several observers into one that calls each of them in order.
func Observers(observers ...Observer) Observer {
	return func(r *Result) {
		for _, o := range observers {
			if o != nil {
				o(r)
			}
		}
	}
}

func nullObserver(*Result) {}

// RunTest creates a fresh TestCase from info's factory and executes it, recording the
// outcome in res. A factory that panics produces a failed result, and the test is not run.
func RunTest(info *Info, res *Result) Status {
	res.Info = info
	var tc TestCase
	if err := guard(func() error {
		tc = info.Factory()
		return nil
	}); err != nil {
		res.Exception(err)
		return res.Status
	}
	return Execute(tc, res)
}

// Runner executes a sequence of tests one at a time.
type Runner struct {
	// Filter selects the tests to run. Nil means all of them.
	Filter Filter
	// Observer is called with each executed test's Result. Nil means results are discarded.
	Observer Observer
	// Logger receives debug output about the run itself. Nil means no output.
	Logger logging.Logger
}

// Run executes every test in tests that the filter accepts, in order. Tests rejected by the
// filter are skipped entirely and do not reach the observer. The returned status is
// StatusPass if every executed test passed, including when none were executed.
func (r Runner) Run(tests iter.Seq[*Info]) Status {
	filter := r.Filter
	if filter == nil {
		filter = AcceptAll
	}
	observer := r.Observer
	if observer == nil {
		observer = nullObserver
	}
	logger := r.Logger
	if logger == nil {
		logger = logging.NullLogger()
	}

	executed, passed := 0, 0
	for info := range tests {
		if !filter(info) {
			logger.Printf("Skipping %s: excluded by filter", info)
			continue
		}
		logger.Printf("Running %s", info)
		var res Result
		if RunTest(info, &res) == StatusPass {
			passed++
		}
		executed++
		logger.Printf("Finished %s: %s in %s", info, res.Status, res.Duration)
		observer(&res)
	}

	logger.Printf("Executed %d tests, %d failed", executed, executed-passed)
	if passed == executed {
		return StatusPass
	}
	return StatusFail
}

// Run executes the tests in a slice. See Runner.Run.
func Run(tests []*Info, filter Filter, observer Observer) Status {
	return Runner{Filter: filter, Observer: observer}.Run(slices.Values(tests))
}

// RunRegistered executes the tests in the process-wide registry. See Runner.Run.
func RunRegistered(filter Filter, observer Observer) Status {
	return Runner{Filter: filter, Observer: observer}.Run(Registered().All())
}
