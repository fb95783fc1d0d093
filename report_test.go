package main

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/utest-go/utest/framework"

	"github.com/google/uuid"
	helpers "github.com/launchdarkly/go-test-helpers/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readReport(t *testing.T, path string) map[string]interface{} {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &report))
	return report
}

func TestReportObserverWritesResults(t *testing.T) {
	o := newReportObserver()
	o.Observe(&framework.Result{
		Info:     &framework.Info{Name: "adds", Category: "math", File: "math.go", Line: 7},
		Status:   framework.StatusPass,
		Duration: 5 * time.Millisecond,
	})
	failed := &framework.Result{Info: &framework.Info{Name: "divides", Category: "math"}, Duration: 2 * time.Millisecond}
	failed.Fail("Expected [2] saw [3]", "math.go", 20)
	o.Observe(failed)
	crashed := &framework.Result{Info: &framework.Info{Name: "parses"}}
	crashed.Exception(nil)
	o.Observe(crashed)

	helpers.WithTempFile(func(path string) {
		require.NoError(t, o.WriteFile(path, framework.StatusFail))
		report := readReport(t, path)

		_, err := uuid.Parse(report["runId"].(string))
		assert.NoError(t, err)
		assert.Equal(t, "fail", report["status"])
		assert.Equal(t, float64(7), report["durationMs"])

		tests := report["tests"].([]interface{})
		require.Len(t, tests, 3)

		passed := tests[0].(map[string]interface{})
		assert.Equal(t, "adds", passed["name"])
		assert.Equal(t, "math", passed["category"])
		assert.Equal(t, "math.go", passed["file"])
		assert.Equal(t, float64(7), passed["line"])
		assert.Equal(t, "pass", passed["status"])
		assert.Equal(t, float64(5), passed["durationMs"])
		assert.Nil(t, passed["errorMessage"])
		assert.Nil(t, passed["errorFile"])
		assert.Nil(t, passed["errorLine"])

		fail := tests[1].(map[string]interface{})
		assert.Equal(t, "fail", fail["status"])
		assert.Equal(t, "Expected [2] saw [3]", fail["errorMessage"])
		assert.Equal(t, "math.go", fail["errorFile"])
		assert.Equal(t, float64(20), fail["errorLine"])

		exception := tests[2].(map[string]interface{})
		assert.Equal(t, "unhandled exception", exception["errorMessage"])
		assert.Nil(t, exception["errorFile"])
		assert.Nil(t, exception["errorLine"])
	})
}

func TestReportObserverEmptyRun(t *testing.T) {
	o := newReportObserver()
	helpers.WithTempFile(func(path string) {
		require.NoError(t, o.WriteFile(path, framework.StatusPass))
		report := readReport(t, path)
		assert.Equal(t, "pass", report["status"])
		assert.Equal(t, []interface{}{}, report["tests"])
	})
}

func TestReportRunIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, newReportObserver().report.RunID, newReportObserver().report.RunID)
}

func TestReportWriteFileError(t *testing.T) {
	err := newReportObserver().WriteFile("/nonexistent-dir/report.json", framework.StatusPass)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot write report to /nonexistent-dir/report.json")
}
