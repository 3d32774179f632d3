package engine

import (
	"os"
	"strconv"
	"time"
)

// Default pacing thresholds, in seconds.
const (
	DefaultQuietWindowSeconds    = 60   // silence granted after a thinking-pause request
	DefaultStallThresholdSeconds = 30   // inactivity before a nudge
	DefaultMaxSessionSeconds     = 2700 // hard ceiling; forces WRAP_UP
)

// Config holds the engine's pacing thresholds. Phase duration budgets
// live on the PhaseSpec; these are the session-wide knobs.
type Config struct {
	QuietWindow    time.Duration
	StallThreshold time.Duration
	MaxSession     time.Duration
}

// DefaultEngineConfig returns the standard thresholds.
func DefaultEngineConfig() Config {
	return Config{
		QuietWindow:    DefaultQuietWindowSeconds * time.Second,
		StallThreshold: DefaultStallThresholdSeconds * time.Second,
		MaxSession:     DefaultMaxSessionSeconds * time.Second,
	}
}

// LoadEngineConfig reads thresholds from environment variables, falling
// back to defaults for unset or invalid values.
func LoadEngineConfig() Config {
	cfg := DefaultEngineConfig()
	if d, ok := envSeconds("CASEFLOW_QUIET_WINDOW_SECONDS"); ok {
		cfg.QuietWindow = d
	}
	if d, ok := envSeconds("CASEFLOW_STALL_THRESHOLD_SECONDS"); ok {
		cfg.StallThreshold = d
	}
	if d, ok := envSeconds("CASEFLOW_MAX_SESSION_SECONDS"); ok {
		cfg.MaxSession = d
	}
	return cfg
}

func envSeconds(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return time.Duration(n) * time.Second, true
}

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
