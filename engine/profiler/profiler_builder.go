package profiler

import "time"

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithUpdateInterval sets how often statistics are summarized and logged.
// Values <= 0 are ignored.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithUpdateInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithQuiet suppresses log output. Reports are still available through Last.
//
// Parameters:
//   - quiet: true to stop logging
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithQuiet(quiet bool) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.quiet = quiet
	}
}

// WithClock replaces the time source.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}
