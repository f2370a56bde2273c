package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestVerboseToggle(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestGatedLevels_Verbose(t *testing.T) {
	buf := capture(t, true)

	Debug("matched %d chunks", 3)
	Info("loaded %s", "resume.md")
	Warn("skipping stale chunk")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] matched 3 chunks\n")
	assert.Contains(t, out, "[INFO] loaded resume.md\n")
	assert.Contains(t, out, "[WARN] skipping stale chunk\n")
}

func TestGatedLevels_Quiet(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")

	assert.Zero(t, buf.Len())
}

func TestError_IgnoresGate(t *testing.T) {
	buf := capture(t, false)

	Error("generation failed: %s", "timeout")

	assert.Equal(t, "[ERROR] generation failed: timeout\n", buf.String())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Retrieval")

	assert.Equal(t, "\n=== Retrieval ===\n", buf.String())
}

func TestConcurrentUse(t *testing.T) {
	capture(t, false)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			SetVerbose(true)
			Debug("worker %d", n)
			IsVerbose()
			SetVerbose(false)
		}(i)
	}
	wg.Wait()
}
