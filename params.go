package main

import (
	"flag"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/utest-go/utest/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	filters    framework.RegexFilters
	categories categoryList
	debug      bool
	debugAll   bool
	jsonPath   string
	noColor    bool
}

// Read parses the command line, not including the program name. Errors and usage go to errOut.
func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet("utest", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run, matched against category/name")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.Var(&c.categories, "category", "run only tests whose category contains this string (may be repeated)")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.StringVar(&c.jsonPath, "json", "", "write a JSON report of the run to this file")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	return true
}

func (c *commandParams) filter() framework.Filter {
	return framework.AllOf(c.filters.AsFilter, framework.CategoryFilter(c.categories...))
}

type categoryList []string

func (l categoryList) String() string {
	return strings.Join(l, ",")
}

func (l *categoryList) Set(value string) error {
	if value == "" {
		return fmt.Errorf("category must not be empty")
	}
	*l = append(*l, value)
	return nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand returns a command line that runs only the given failed tests again.
func rerunCommand(program string, failures []framework.Result) string {
	var b commandBuilder
	b.add(program)
	for _, f := range failures {
		if f.Info != nil {
			b.add("-run", "^"+regexp.QuoteMeta(f.Info.ID())+"$")
		}
	}
	return b.String()
}
