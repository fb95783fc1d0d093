package framework

import (
	"fmt"
	"reflect"
	"time"

	"github.com/utest-go/utest/logging"
)

const (
	unhandledExceptionMessage = "unhandled exception"
	emptyFailureMessage       = "Assert failed"
)

// Result is the outcome of one test execution. A fresh Result is created for every
// execution and filled in by Execute.
type Result struct {
	Info        *Info
	Status      Status
	Duration    time.Duration
	ErrMessage  string
	ErrFile     string
	ErrLine     int
	DebugOutput logging.CapturedOutput
}

// Fail records a failure with a known source location. An empty message is replaced with
// "Assert failed", so a failed result always has one.
func (r *Result) Fail(message, file string, line int) {
	if message == "" {
		message = emptyFailureMessage
	}
	r.Status = StatusFail
	r.ErrMessage = message
	r.ErrFile = file
	r.ErrLine = line
}

// Exception records a failure that did not come from an assertion. The source location is
// unknown in that case.
func (r *Result) Exception(err error) {
	r.Status = StatusFail
	r.ErrMessage = unhandledExceptionMessage
	r.ErrFile = ""
	r.ErrLine = 0
	if desc := describe(err); desc != "" {
		r.ErrMessage += ": " + desc
	}
}

// describe returns err's description. A nil error, or one whose Error method panics on a
// nil receiver, has none; any other panic is described by the error's type.
func describe(err error) (desc string) {
	if err == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			if v := reflect.ValueOf(err); v.Kind() == reflect.Ptr && v.IsNil() {
				desc = ""
			} else {
				desc = fmt.Sprintf("%T whose Error method panicked: %v", err, r)
			}
		}
	}()
	return err.Error()
}

// Pass records a successful execution and clears the error fields.
func (r *Result) Pass() {
	r.Status = StatusPass
	r.ErrMessage = ""
	r.ErrFile = ""
	r.ErrLine = 0
}

// Name returns the test name, or an empty string if the result is not attached to a test.
func (r *Result) Name() string {
	if r.Info == nil {
		return ""
	}
	return r.Info.Name
}

// Location returns "file:line" of the failure, or an empty string if it is unknown.
func (r *Result) Location() string {
	if r.ErrFile == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", r.ErrFile, r.ErrLine)
}

// Results is an Observer that collects every result it sees.
type Results struct {
	Tests    []Result
	Failures []Result
}

// Observe records a copy of r. Pass it to a Runner as results.Observe.
func (rs *Results) Observe(r *Result) {
	rs.Tests = append(rs.Tests, *r)
	if r.Status == StatusFail {
		rs.Failures = append(rs.Failures, *r)
	}
}

func (rs Results) OK() bool {
	return len(rs.Failures) == 0
}

// TotalDuration is the sum of the durations of all collected results.
func (rs Results) TotalDuration() time.Duration {
	var total time.Duration
	for _, r := range rs.Tests {
		total += r.Duration
	}
	return total
}
