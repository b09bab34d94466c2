package quiz

import (
	"fmt"
	"math"
	"time"
)

// Result is the evaluated outcome of a finished session.
type Result struct {
	SessionID string
	Mode      Mode

	Total int
	Score int

	// Percentage is Score over Total as a percent, rounded to one decimal.
	Percentage float64

	Elapsed   time.Duration
	TimeLimit time.Duration

	// Overtime is set when a timed test was submitted by the timer rather
	// than the user. An overtime test never passes.
	Overtime bool

	// PassThreshold is the minimum passing score, half of Total rounded up.
	PassThreshold int
	Passed        bool
}

func newResult(sessionID string, mode Mode, total, score int, elapsed, limit time.Duration, overtime bool) Result {
	r := Result{
		SessionID:     sessionID,
		Mode:          mode,
		Total:         total,
		Score:         score,
		Elapsed:       elapsed,
		TimeLimit:     limit,
		Overtime:      overtime,
		PassThreshold: (total + 1) / 2,
	}
	if total > 0 {
		pct := float64(score) / float64(total) * 100
		r.Percentage = math.Round(pct*10) / 10
	}
	r.Passed = mode == TimedTest && score >= r.PassThreshold && !overtime
	return r
}

// Verdict returns the one-line outcome text. Overtime dominates: a test cut
// off by the timer reads as a time failure even when the score clears the
// threshold.
func (r Result) Verdict() string {
	if r.Mode != TimedTest {
		return fmt.Sprintf("Study round complete: %d of %d correct.", r.Score, r.Total)
	}
	if r.Overtime {
		return fmt.Sprintf("Time expired. The test was submitted automatically and does not count as a pass (needed %d of %d).", r.PassThreshold, r.Total)
	}
	if r.Passed {
		return fmt.Sprintf("Passed! %d of %d correct, threshold was %d.", r.Score, r.Total, r.PassThreshold)
	}
	return fmt.Sprintf("Not passed. %d of %d correct, needed %d.", r.Score, r.Total, r.PassThreshold)
}
