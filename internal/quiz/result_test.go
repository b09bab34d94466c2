package quiz

import (
	"strings"
	"testing"
	"time"
)

func TestResultEvaluation(t *testing.T) {
	tests := []struct {
		name          string
		mode          Mode
		total, score  int
		overtime      bool
		wantThreshold int
		wantPassed    bool
		wantPct       float64
	}{
		{"exact threshold passes", TimedTest, 10, 5, false, 5, true, 50.0},
		{"below threshold fails", TimedTest, 10, 4, false, 5, false, 40.0},
		{"odd total rounds threshold up", TimedTest, 7, 4, false, 4, true, 57.1},
		{"odd total below rounded threshold", TimedTest, 7, 3, false, 4, false, 42.9},
		{"perfect score", TimedTest, 3, 3, false, 2, true, 100.0},
		{"zero score", TimedTest, 3, 0, false, 2, false, 0.0},
		{"overtime overrides passing score", TimedTest, 10, 10, true, 5, false, 100.0},
		{"study sessions never pass", StudySequential, 4, 4, false, 2, false, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResult("id", tt.mode, tt.total, tt.score, time.Minute, time.Hour, tt.overtime)
			if r.PassThreshold != tt.wantThreshold {
				t.Errorf("threshold = %d, want %d", r.PassThreshold, tt.wantThreshold)
			}
			if r.Passed != tt.wantPassed {
				t.Errorf("passed = %v, want %v", r.Passed, tt.wantPassed)
			}
			if r.Percentage != tt.wantPct {
				t.Errorf("percentage = %v, want %v", r.Percentage, tt.wantPct)
			}
		})
	}
}

func TestResultZeroTotal(t *testing.T) {
	r := newResult("id", TimedTest, 0, 0, 0, 0, false)
	if r.Percentage != 0 {
		t.Fatalf("percentage = %v for empty session, want 0", r.Percentage)
	}
}

func TestVerdictOvertimeDominates(t *testing.T) {
	r := newResult("id", TimedTest, 10, 10, time.Hour, time.Hour, true)
	v := r.Verdict()
	if !strings.Contains(v, "Time expired") {
		t.Fatalf("overtime verdict %q does not lead with time expiry", v)
	}
	if strings.Contains(v, "Passed") {
		t.Fatalf("overtime verdict %q reads as a pass", v)
	}
}

func TestVerdictTexts(t *testing.T) {
	pass := newResult("id", TimedTest, 10, 8, time.Minute, time.Hour, false)
	if !strings.Contains(pass.Verdict(), "Passed") {
		t.Errorf("pass verdict = %q", pass.Verdict())
	}
	fail := newResult("id", TimedTest, 10, 2, time.Minute, time.Hour, false)
	if !strings.Contains(fail.Verdict(), "Not passed") {
		t.Errorf("fail verdict = %q", fail.Verdict())
	}
	study := newResult("id", StudyRandom, 10, 7, time.Minute, 0, false)
	if !strings.Contains(study.Verdict(), "Study round complete") {
		t.Errorf("study verdict = %q", study.Verdict())
	}
}
