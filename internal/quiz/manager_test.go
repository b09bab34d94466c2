package quiz

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

const managerFixture = `[
	{"title":"Scheduling","questions":[
		{"question":"Which policy favors short jobs?","options":{"A":"SJF","B":"FIFO"},"correct_option":"A"},
		{"question":"Which policy can starve long jobs?","options":{"A":"SJF","B":"RR"},"correct_option":"A"}
	]},
	{"title":"Memory","questions":[
		{"question":"What does a TLB cache?","options":{"A":"translations","B":"pages"},"correct_option":"A"}
	]}
]`

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(rand.New(rand.NewSource(1)))
	if _, err := m.LoadCatalog([]byte(managerFixture)); err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return m
}

func TestManagerRequiresCatalog(t *testing.T) {
	m := NewManager(nil)

	var nerr *NoCatalogError
	if _, err := m.StartSequential(""); !errors.As(err, &nerr) {
		t.Errorf("StartSequential error = %v, want *NoCatalogError", err)
	}
	if _, err := m.StartRandom(); !errors.As(err, &nerr) {
		t.Errorf("StartRandom error = %v, want *NoCatalogError", err)
	}
	if _, err := m.StartTest(1, 10); !errors.As(err, &nerr) {
		t.Errorf("StartTest error = %v, want *NoCatalogError", err)
	}
	if _, err := m.Search("one two three"); !errors.As(err, &nerr) {
		t.Errorf("Search error = %v, want *NoCatalogError", err)
	}
}

func TestManagerLoadFailureKeepsOldCatalog(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.LoadCatalog([]byte(`{"not":"an array"}`)); err == nil {
		t.Fatal("bad document loaded without error")
	}
	if m.Size() != 3 {
		t.Fatalf("size = %d after failed reload, want 3", m.Size())
	}
	if _, err := m.StartRandom(); err != nil {
		t.Fatalf("sessions broken after failed reload: %v", err)
	}
}

func TestManagerStartSequentialByLecture(t *testing.T) {
	m := newTestManager(t)

	s, err := m.StartSequential("Memory")
	if err != nil {
		t.Fatal(err)
	}
	if s.Size() != 1 {
		t.Fatalf("lecture session size = %d, want 1", s.Size())
	}
	if got := s.Current().Question.Lecture; got != "Memory" {
		t.Fatalf("question from lecture %q, want Memory", got)
	}

	all, err := m.StartSequential("")
	if err != nil {
		t.Fatal(err)
	}
	if all.Size() != 3 {
		t.Fatalf("whole-catalog session size = %d, want 3", all.Size())
	}

	var perr *InvalidParameterError
	if _, err := m.StartSequential("Networking"); !errors.As(err, &perr) {
		t.Fatalf("unknown lecture error = %v, want *InvalidParameterError", err)
	}
}

func TestManagerStartTestValidation(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name           string
		count, minutes int
	}{
		{"zero count", 0, 10},
		{"count above catalog size", 4, 10},
		{"negative count", -1, 10},
		{"zero minutes", 2, 0},
		{"negative minutes", 2, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.StartTest(tt.count, tt.minutes)
			var perr *InvalidParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *InvalidParameterError", err)
			}
		})
	}

	s, err := m.StartTest(3, 30)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Finish()
	if s.Size() != 3 || s.Mode() != TimedTest {
		t.Fatalf("session = size %d mode %v, want 3 questions timed test", s.Size(), s.Mode())
	}
}

func TestManagerStartTestAcceptsAnyPositiveLimit(t *testing.T) {
	m := newTestManager(t)

	// The limit has no upper bound; a multi-day test is odd but valid.
	for _, minutes := range []int{1, 601, 100000} {
		s, err := m.StartTest(2, minutes)
		if err != nil {
			t.Fatalf("StartTest(2, %d) = %v, want session", minutes, err)
		}
		want := time.Duration(minutes) * time.Minute
		if got := s.TimeLimit(); got != want {
			t.Fatalf("time limit = %v, want %v", got, want)
		}
		s.Finish()
	}
}

func TestManagerEndSessionFinishes(t *testing.T) {
	m := newTestManager(t)
	s, err := m.StartRandom()
	if err != nil {
		t.Fatal(err)
	}

	m.EndSession()
	if !s.Finished() {
		t.Fatal("EndSession left the session active")
	}
	if m.Session() != nil {
		t.Fatal("EndSession left a session attached")
	}
}

func TestManagerSearch(t *testing.T) {
	m := newTestManager(t)
	matches, err := m.Search("which policy jobs")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Answer != "SJF" {
		t.Fatalf("top answer = %q, want SJF", matches[0].Answer)
	}
}

func TestManagerLecturesInDocumentOrder(t *testing.T) {
	m := newTestManager(t)
	lectures := m.Lectures()
	if len(lectures) != 2 {
		t.Fatalf("got %d lectures, want 2", len(lectures))
	}
	if lectures[0].Title != "Scheduling" || lectures[1].Title != "Memory" {
		t.Fatalf("lecture order = %q, %q", lectures[0].Title, lectures[1].Title)
	}
	if lectures[0].Count != 2 || lectures[1].Count != 1 {
		t.Fatalf("lecture counts = %d, %d", lectures[0].Count, lectures[1].Count)
	}
}
