package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLoggerKeepsMessagesInOrder(t *testing.T) {
	var l CapturingLogger
	l.Printf("first %d", 1)
	l.Printf("second %s", "two")

	out := l.Output()
	require.Len(t, out, 2)
	assert.Equal(t, "first 1", out[0].Message)
	assert.Equal(t, "second two", out[1].Message)
	assert.False(t, out[1].Time.Before(out[0].Time))
}

func TestCapturingLoggerOutputIsACopy(t *testing.T) {
	var l CapturingLogger
	l.Printf("a")
	out := l.Output()
	l.Printf("b")
	assert.Len(t, out, 1)
	assert.Len(t, l.Output(), 2)
}

func TestCapturedOutputDump(t *testing.T) {
	when := time.Date(2021, 3, 4, 5, 6, 7, 8000000, time.UTC)
	output := CapturedOutput{
		{Time: when, Message: "hello"},
		{Time: when, Message: "world"},
	}
	var buf bytes.Buffer
	output.Dump(&buf, "  DEBUG ")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"  DEBUG [2021-03-04 05:06:07.008] hello",
		"  DEBUG [2021-03-04 05:06:07.008] world",
	}, lines)
}

func TestLoggerWithPrefix(t *testing.T) {
	var l CapturingLogger
	LoggerWithPrefix(&l, "[runner] ").Printf("value is %d", 3)
	out := l.Output()
	require.Len(t, out, 1)
	assert.Equal(t, "[runner] value is 3", out[0].Message)
}

func TestLoggerWithPrefixOfNilTargetDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		LoggerWithPrefix(nil, "x").Printf("ignored")
	})
}
