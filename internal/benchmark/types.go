package benchmark

import "time"

// Duration is an elapsed time measured in whole microseconds.
type Duration int64

// FromTime converts a time.Duration, truncating to microseconds.
// Negative inputs clamp to zero.
func FromTime(d time.Duration) Duration {
	if d < 0 {
		return 0
	}
	return Duration(d.Microseconds())
}

// Microseconds returns the raw microsecond count.
func (d Duration) Microseconds() int64 {
	return int64(d)
}

// Std converts back to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d) * time.Microsecond
}

func (d Duration) String() string {
	return FormatDuration(d)
}

// Stats summarizes a set of iteration durations.
type Stats struct {
	Average Duration
	Min     Duration
	Max     Duration
}

// Hook is an optional lifecycle callback run outside the measured window.
type Hook func() error

// Options configures a harness run. Every field is optional.
type Options struct {
	// SetupAll runs once before the first iteration.
	SetupAll Hook
	// Setup runs before each iteration.
	Setup Hook
	// Cleanup runs after each iteration.
	Cleanup Hook
	// CleanupAll runs once after the last iteration.
	CleanupAll Hook

	// Observer receives each duration right after it is measured.
	Observer func(iteration int, d Duration)
}
