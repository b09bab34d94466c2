package testrun

import "time"

// tickMsg is sent every second to refresh the countdown and to observe a
// timer-forced submission.
type tickMsg time.Time
