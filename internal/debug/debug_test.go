package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// saveAndRestoreState saves the debug package state and returns a cleanup function
func saveAndRestoreState() func() {
	originalDebug := EnableDebug
	originalOutput := debugOutput
	return func() {
		EnableDebug = originalDebug
		debugOutput = originalOutput
	}
}

func TestIsDebugEnabled(t *testing.T) {
	defer saveAndRestoreState()()
	t.Setenv(EnvVar, "")

	EnableDebug = "false"
	assert.False(t, IsDebugEnabled())

	EnableDebug = "true"
	assert.True(t, IsDebugEnabled())

	// Invalid value defaults to false
	EnableDebug = "invalid"
	assert.False(t, IsDebugEnabled())
}

func TestIsDebugEnabled_Env(t *testing.T) {
	defer saveAndRestoreState()()
	EnableDebug = "false"

	t.Setenv(EnvVar, "1")
	assert.True(t, IsDebugEnabled())

	t.Setenv(EnvVar, "true")
	assert.True(t, IsDebugEnabled())

	t.Setenv(EnvVar, "yes")
	assert.False(t, IsDebugEnabled())
}

func TestLog(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "true"
	Log("TEST", "Hello %s", "World")

	output := buf.String()
	assert.Contains(t, output, "[DEBUG:TEST]")
	assert.Contains(t, output, "Hello World")
}

func TestLog_Disabled(t *testing.T) {
	defer saveAndRestoreState()()
	t.Setenv(EnvVar, "")

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "false"
	Log("TEST", "Should not appear")
	Printf("Nor %s", "this")

	assert.Empty(t, buf.String())
}

func TestLog_NoOutput(t *testing.T) {
	defer saveAndRestoreState()()

	SetDebugOutput(nil)
	EnableDebug = "true"
	// Must not panic without a writer
	Log("TEST", "dropped")
	Printf("dropped")
}

func TestComponentLoggers(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "true"

	LogMatcher("popular %d\n", 3)
	LogProcess("query %q\n", "x")
	LogConfig("loaded %s\n", "a.kdl")
	LogBatch("workers %d\n", 2)

	output := buf.String()
	assert.Contains(t, output, "[DEBUG:MATCHER] popular 3")
	assert.Contains(t, output, "[DEBUG:PROCESS] query \"x\"")
	assert.Contains(t, output, "[DEBUG:CONFIG] loaded a.kdl")
	assert.Contains(t, output, "[DEBUG:BATCH] workers 2")
}

func TestPrintf(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	EnableDebug = "true"
	Printf("value=%d", 42)

	assert.Equal(t, "[DEBUG] value=42", buf.String())
}
