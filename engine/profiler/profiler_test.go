package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickLogsOnlyAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(50 * time.Millisecond)

	assert.False(t, p.Tick(), "first tick inside the interval must not log")

	time.Sleep(60 * time.Millisecond)
	assert.True(t, p.Tick(), "tick after the interval elapsed must log")

	assert.False(t, p.Tick(), "counter resets after logging")
}

func TestSetUpdateIntervalRejectsNonPositive(t *testing.T) {
	p := NewProfiler()
	p.SetUpdateInterval(-1)

	// With the default interval restored, an immediate tick must not log.
	assert.False(t, p.Tick())
}
