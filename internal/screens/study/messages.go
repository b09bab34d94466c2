package study

import "time"

// tickMsg is sent every second to refresh the elapsed time display.
type tickMsg time.Time
