package logger

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrency_MultipleLevels verifies that the mutex prevents garbled output
// when multiple goroutines log simultaneously at different levels.
func TestConcurrency_MultipleLevels(t *testing.T) {
	stdoutBuf := captureStdout(t)

	cfg := &Config{GeneralLevel: DebugLevel}

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			for j := range messagesPerGoroutine {
				Debugf(cfg, "goroutine-%d-debug-%d", id, j)
				Infof(cfg, "goroutine-%d-info-%d", id, j)
				Warnf(cfg, "goroutine-%d-warn-%d", id, j)
				Errorf(cfg, "goroutine-%d-error-%d", id, j)
			}
		}(i)
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(stdoutBuf.String(), "\n"), "\n")
	require.Len(t, lines, numGoroutines*messagesPerGoroutine*4)

	// Each line should start with a color and tag and end with the reset code.
	for i, line := range lines {
		wellFormed := strings.HasPrefix(line, ColorBlue+"D ") ||
			strings.HasPrefix(line, ColorGreen+"I ") ||
			strings.HasPrefix(line, ColorYellow+"W ") ||
			strings.HasPrefix(line, ColorRed+"E ")

		if !wellFormed || !strings.HasSuffix(line, ColorReset) || strings.Count(line, "goroutine-") != 1 {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
	}
}

// TestConcurrency_RawAndLeveled mixes both channels from many goroutines.
func TestConcurrency_RawAndLeveled(t *testing.T) {
	stdoutBuf := captureStdout(t)

	cfg := &Config{GeneralLevel: InfoLevel, RawEnabled: true}

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := range numGoroutines {
		go func() {
			defer wg.Done()
			LogRaw(cfg, "raw-%d\n", i)
		}()
		go func() {
			defer wg.Done()
			Infof(cfg, "leveled-%d", i)
		}()
	}

	wg.Wait()

	output := stdoutBuf.String()
	assert.Equal(t, numGoroutines, strings.Count(output, "raw-"))
	assert.Equal(t, numGoroutines, strings.Count(output, "leveled-"))
	assert.Equal(t, numGoroutines*2, strings.Count(output, "\n"))
}
