package framework

import (
	"errors"
	"fmt"
	"time"

	"github.com/utest-go/utest/logging"
	"github.com/utest-go/utest/uassert"
)

// TestCase is one executable test. A new instance is created for every execution, so a
// TestCase may keep state in its fields without affecting other runs.
//
// Most implementations embed Fixture, or a type that embeds it, and only define Run.
type TestCase interface {
	SetUp() error
	Run() error
	TearDown() error
}

// FixtureHooks is the setup and teardown half of a TestCase.
type FixtureHooks interface {
	SetUp() error
	TearDown() error
}

// Fixture is the base for test cases and reusable fixtures. Its SetUp and TearDown do
// nothing, and it provides a debug logger whose output is attached to the test's Result.
type Fixture struct {
	debugLogger logging.CapturingLogger
}

func (f *Fixture) SetUp() error { return nil }

func (f *Fixture) TearDown() error { return nil }

// Debug adds a line to the test's debug output.
func (f *Fixture) Debug(message string, args ...interface{}) {
	f.debugLogger.Printf(message, args...)
}

func (f *Fixture) DebugLogger() logging.Logger {
	return &f.debugLogger
}

func (f *Fixture) DebugOutput() logging.CapturedOutput {
	return f.debugLogger.Output()
}

type debugOutputSource interface {
	DebugOutput() logging.CapturedOutput
}

// Execute runs tc through SetUp, Run and TearDown and records the outcome in res.
//
// If SetUp fails, Run is skipped and the failure is recorded as if it came from Run.
// TearDown always runs exactly once, even if the test calls runtime.Goexit. A TearDown
// failure is recorded only if nothing failed before it. A *uassert.Failure, whether panicked
// or returned, produces a failure with its message and source location; any other error or
// panic produces "unhandled exception" followed by its description. Execute never panics.
func Execute(tc TestCase, res *Result) (status Status) {
	start := time.Now()
	finished := false

	defer func() {
		if !finished {
			res.Exception(errExitedEarly)
		}
		if err := guard(func() error { return tc.TearDown() }); err != nil && res.Status == StatusPass {
			record(res, err)
		}
		res.Duration = time.Since(start).Truncate(time.Millisecond)
		if src, ok := tc.(debugOutputSource); ok {
			_ = guard(func() error {
				res.DebugOutput = src.DebugOutput()
				return nil
			})
		}
		status = res.Status
	}()

	err := guard(func() error { return tc.SetUp() })
	if err == nil {
		err = guard(func() error { return tc.Run() })
	}
	record(res, err)
	finished = true
	return res.Status
}

var errExitedEarly = errors.New("test exited without returning")

func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return fn()
}

func panicError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return fmt.Errorf("%v", v)
	}
}

func record(res *Result, err error) {
	switch failure := asFailure(err); {
	case err == nil:
		res.Pass()
	case failure != nil:
		res.Fail(failure.Message, failure.File, failure.Line)
	default:
		res.Exception(err)
	}
}

// asFailure returns the first non-nil *uassert.Failure in err's chain, or nil. An error whose
// Unwrap or As method panics has none.
func asFailure(err error) (failure *uassert.Failure) {
	if err == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			failure = nil
		}
	}()
	if errors.As(err, &failure) {
		return failure
	}
	return nil
}
