package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/utest-go/utest/framework"
	"github.com/utest-go/utest/logging"
	_ "github.com/utest-go/utest/selftests"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the registered tests as described by args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var params commandParams
	if !params.Read(args[1:], stderr) {
		return 2
	}
	if params.noColor {
		color.NoColor = true
	}

	mainDebugLogger := logging.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(stdout, "", log.LstdFlags)
	}

	PrintFilterDescription(stdout, params)
	fmt.Fprintln(stdout, "Running test suite")

	var results framework.Results
	console := &ConsoleObserver{
		Out:                  stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	observers := []framework.Observer{results.Observe, console.Observe}
	var report *reportObserver
	if params.jsonPath != "" {
		report = newReportObserver()
		observers = append(observers, report.Observe)
	}

	runner := framework.Runner{
		Filter:   params.filter(),
		Observer: framework.Observers(observers...),
		Logger:   logging.LoggerWithPrefix(mainDebugLogger, "[runner] "),
	}
	status := runner.Run(framework.Registered().All())

	fmt.Fprintln(stdout)
	PrintResults(stdout, results)

	if report != nil {
		if err := report.WriteFile(params.jsonPath, status); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if status != framework.StatusPass {
		fmt.Fprintf(stdout, "\nTo run only the failed tests:\n  %s\n", rerunCommand(filepath.Base(args[0]), results.Failures))
		return 1
	}
	return 0
}
