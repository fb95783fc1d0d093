package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/utest-go/utest/framework"
	"github.com/utest-go/utest/logging"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

func sampleDebugOutput() logging.CapturedOutput {
	return logging.CapturedOutput{{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), Message: "opened file"}}
}

func TestConsoleObserverPass(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	c := &ConsoleObserver{Out: &buf, DebugOutputOnFailure: true}
	c.Observe(&framework.Result{
		Info:        &framework.Info{Name: "adds", Category: "math"},
		Status:      framework.StatusPass,
		Duration:    3 * time.Millisecond,
		DebugOutput: sampleDebugOutput(),
	})
	assert.Equal(t, "[PASS] math/adds (3ms)\n", buf.String())
}

func TestConsoleObserverFailure(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	c := &ConsoleObserver{Out: &buf, DebugOutputOnFailure: true}
	res := &framework.Result{Info: &framework.Info{Name: "adds", Category: "math"}, DebugOutput: sampleDebugOutput()}
	res.Fail("Expected [5] saw [6]", "math_test.go", 12)
	c.Observe(res)

	assert.Equal(t, "[FAIL] math/adds (0s)\n"+
		"  Expected [5] saw [6]\n"+
		"  at math_test.go:12\n"+
		"    DEBUG [2024-01-02 03:04:05.000] opened file\n", buf.String())
}

func TestConsoleObserverExceptionHasNoLocation(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	res := &framework.Result{Info: &framework.Info{Name: "reads"}}
	res.Exception(nil)
	(&ConsoleObserver{Out: &buf}).Observe(res)
	assert.Equal(t, "[FAIL] reads (0s)\n  unhandled exception\n", buf.String())
}

func TestConsoleObserverDebugOnSuccess(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	c := &ConsoleObserver{Out: &buf, DebugOutputOnSuccess: true}
	c.Observe(&framework.Result{
		Info:        &framework.Info{Name: "adds"},
		Status:      framework.StatusPass,
		DebugOutput: sampleDebugOutput(),
	})
	assert.Contains(t, buf.String(), "    DEBUG [2024-01-02 03:04:05.000] opened file\n")
}
