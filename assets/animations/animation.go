package animations

import "math"

// epsilon absorbs float error when summing fixed steps up to a period,
// e.g. six ticks of 1/60 s against 0.1 s.
const epsilon = 1e-9

// Timer is a countdown measured in seconds that can repeat.
type Timer struct {
	Period    float64
	Repeating bool
	elapsed   float64
	finished  bool
	stopped   bool
}

func NewTimer(period float64, repeating bool) *Timer {
	return &Timer{
		Period:    period,
		Repeating: repeating,
	}
}

// Tick advances the timer by dt seconds and reports whether it expired
// during this tick. A repeating timer keeps the overshoot; a one-shot
// timer stops at its period.
func (t *Timer) Tick(dt float64) bool {
	t.finished = false
	if t.stopped || dt <= 0 || t.Period <= 0 {
		return false
	}

	t.elapsed += dt
	if t.elapsed+epsilon < t.Period {
		return false
	}

	t.finished = true
	if !t.Repeating {
		t.elapsed = t.Period
		t.stopped = true
		return true
	}

	t.elapsed = math.Mod(t.elapsed+epsilon, t.Period) - epsilon
	if t.elapsed < 0 {
		t.elapsed = 0
	}
	return true
}

// Finished reports whether the last Tick expired the timer.
func (t *Timer) Finished() bool {
	return t.finished
}

func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.stopped = false
}
