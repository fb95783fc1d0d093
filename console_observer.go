package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/utest-go/utest/framework"

	"github.com/fatih/color"
)

// ConsoleObserver prints one line per finished test, followed by the failure details and,
// if enabled, the test's debug output.
type ConsoleObserver struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleObserver) Observe(r *framework.Result) {
	failed := r.Status != framework.StatusPass
	marker := color.GreenString("PASS")
	if failed {
		marker = color.RedString("FAIL")
	}
	fmt.Fprintf(c.Out, "[%s] %s (%s)\n", marker, r.Info, r.Duration)

	if failed {
		for _, line := range strings.Split(r.ErrMessage, "\n") {
			fmt.Fprintf(c.Out, "  %s\n", line)
		}
		if loc := r.Location(); loc != "" {
			fmt.Fprintf(c.Out, "  at %s\n", loc)
		}
	}
	if len(r.DebugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		r.DebugOutput.Dump(c.Out, "    DEBUG ")
	}
}
