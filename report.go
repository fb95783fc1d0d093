package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/utest-go/utest/framework"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type jsonReport struct {
	RunID      string            `json:"runId"`
	Status     string            `json:"status"`
	DurationMS int64             `json:"durationMs"`
	Tests      []jsonReportEntry `json:"tests"`
}

type jsonReportEntry struct {
	Name         string                 `json:"name"`
	Category     string                 `json:"category"`
	File         string                 `json:"file"`
	Line         int                    `json:"line"`
	Status       string                 `json:"status"`
	DurationMS   int64                  `json:"durationMs"`
	ErrorMessage ldvalue.OptionalString `json:"errorMessage"`
	ErrorFile    ldvalue.OptionalString `json:"errorFile"`
	ErrorLine    ldvalue.OptionalInt    `json:"errorLine"`
}

// reportObserver accumulates results for a JSON report. Error fields are null for tests
// that passed, and the location fields are null when the failure location is unknown.
type reportObserver struct {
	report jsonReport
}

func newReportObserver() *reportObserver {
	return &reportObserver{report: jsonReport{RunID: uuid.New().String(), Tests: []jsonReportEntry{}}}
}

func (o *reportObserver) Observe(r *framework.Result) {
	e := jsonReportEntry{
		Status:     r.Status.String(),
		DurationMS: r.Duration.Milliseconds(),
	}
	if r.Info != nil {
		e.Name = r.Info.Name
		e.Category = r.Info.Category
		e.File = r.Info.File
		e.Line = r.Info.Line
	}
	if r.Status == framework.StatusFail {
		e.ErrorMessage = ldvalue.NewOptionalString(r.ErrMessage)
		if r.ErrFile != "" {
			e.ErrorFile = ldvalue.NewOptionalString(r.ErrFile)
			e.ErrorLine = ldvalue.NewOptionalInt(r.ErrLine)
		}
	}
	o.report.Tests = append(o.report.Tests, e)
	o.report.DurationMS += e.DurationMS
}

// WriteFile writes the report with the aggregate status of the run.
func (o *reportObserver) WriteFile(path string, status framework.Status) error {
	o.report.Status = status.String()
	data, err := json.MarshalIndent(o.report, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write report to %s: %w", path, err)
	}
	return nil
}
