package main

import (
	"fmt"
	"io"

	"github.com/utest-go/utest/framework"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrintFilterDescription explains which tests the command line will leave out.
func PrintFilterDescription(out io.Writer, params commandParams) {
	filters := params.filters
	if !filters.IsDefined() && len(params.categories) == 0 {
		return
	}
	fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
	if len(params.categories) > 0 {
		fmt.Fprintf(out, "  skip any whose category does not contain one of: %s\n", params.categories)
	}
	fmt.Fprintln(out)
}

// PrintResults renders a table of failures, if any, and the totals for the run.
func PrintResults(out io.Writer, results framework.Results) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Test", "Status", "Duration", "Failure"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Failure", WidthMax: 100, WidthMaxEnforcer: text.WrapSoft},
	})
	for _, r := range results.Failures {
		t.AppendRow(table.Row{r.Info.String(), r.Status.String(), r.Duration.String(), failureText(r)})
	}

	status := framework.StatusPass
	if !results.OK() {
		status = framework.StatusFail
	}
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d tests, %d failed", len(results.Tests), len(results.Failures)),
		status.String(),
		results.TotalDuration().String(),
		"",
	})
	t.Render()
}

func failureText(r framework.Result) string {
	if loc := r.Location(); loc != "" {
		return r.ErrMessage + " (" + loc + ")"
	}
	return r.ErrMessage
}
