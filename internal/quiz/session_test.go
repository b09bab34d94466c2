package quiz

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/quizdeck/quizdeck/internal/catalog"
)

func makeQuestions(n int) []catalog.Question {
	qs := make([]catalog.Question, n)
	for i := range qs {
		qs[i] = catalog.Question{
			ID:   i + 1,
			Text: "question",
			Options: map[string]string{
				"A": "first", "B": "second", "C": "third", "D": "fourth",
			},
			OptionKeys: []string{"A", "B", "C", "D"},
			CorrectKey: "A",
			Lecture:    "Lecture 1",
		}
	}
	return qs
}

func TestSequentialStudyKeepsOrder(t *testing.T) {
	qs := makeQuestions(4)
	s := NewStudySession(StudySequential, qs, rand.New(rand.NewSource(1)))

	for i := 0; i < 4; i++ {
		v := s.Current()
		if v.Question.ID != i+1 {
			t.Fatalf("question %d has ID %d, want %d", i, v.Question.ID, i+1)
		}
		for j, key := range v.DisplayOrder {
			if key != qs[0].OptionKeys[j] {
				t.Fatalf("option order changed in sequential mode: %v", v.DisplayOrder)
			}
		}
		if err := s.SubmitAnswer("A"); err != nil {
			t.Fatal(err)
		}
		s.Advance()
	}
}

func TestStudyAnswerLocks(t *testing.T) {
	s := NewStudySession(StudySequential, makeQuestions(2), nil)

	if err := s.SubmitAnswer("B"); err != nil {
		t.Fatal(err)
	}
	// A second answer to the same question is silently ignored.
	if err := s.SubmitAnswer("A"); err != nil {
		t.Fatalf("repeat answer returned error: %v", err)
	}
	if v := s.Current(); v.UserAnswer != "B" {
		t.Fatalf("locked answer changed to %q", v.UserAnswer)
	}
	if s.Score() != 0 {
		t.Fatalf("score = %d after wrong answer, want 0", s.Score())
	}
}

func TestStudyRejectsUnknownOption(t *testing.T) {
	s := NewStudySession(StudySequential, makeQuestions(1), nil)
	err := s.SubmitAnswer("Z")
	var perr *InvalidParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *InvalidParameterError", err)
	}
	if s.Current().Answered {
		t.Fatal("rejected answer marked the question answered")
	}
}

func TestAdvanceBlockedUntilAnswered(t *testing.T) {
	s := NewStudySession(StudySequential, makeQuestions(2), nil)

	if got := s.Advance(); got != AdvanceBlocked {
		t.Fatalf("Advance before answering = %v, want AdvanceBlocked", got)
	}
	if err := s.SubmitAnswer("A"); err != nil {
		t.Fatal(err)
	}
	if got := s.Advance(); got != Advanced {
		t.Fatalf("Advance after answering = %v, want Advanced", got)
	}
	if s.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", s.Cursor())
	}
}

func TestAdvancePastLastFinishes(t *testing.T) {
	s := NewStudySession(StudySequential, makeQuestions(1), nil)
	if err := s.SubmitAnswer("A"); err != nil {
		t.Fatal(err)
	}
	if got := s.Advance(); got != AdvanceFinished {
		t.Fatalf("Advance on last question = %v, want AdvanceFinished", got)
	}
	if !s.Finished() {
		t.Fatal("session not finished after final advance")
	}
	r := s.Result()
	if r == nil || r.Score != 1 || r.Total != 1 {
		t.Fatalf("result = %+v, want score 1 of 1", r)
	}
	if err := s.SubmitAnswer("A"); err == nil {
		t.Fatal("answer accepted after finish")
	}
}

func TestRetreat(t *testing.T) {
	s := NewStudySession(StudySequential, makeQuestions(3), nil)

	if s.Retreat() {
		t.Fatal("Retreat succeeded at the first question")
	}
	if err := s.SubmitAnswer("A"); err != nil {
		t.Fatal(err)
	}
	s.Advance()
	if !s.Retreat() {
		t.Fatal("Retreat failed at the second question")
	}
	if s.Cursor() != 0 {
		t.Fatalf("cursor = %d after retreat, want 0", s.Cursor())
	}
	// The earlier answer is still locked in.
	if v := s.Current(); !v.Answered || v.UserAnswer != "A" {
		t.Fatalf("revisited question lost its answer: %+v", v)
	}
}

func TestRandomStudyShufflesDeterministically(t *testing.T) {
	qs := makeQuestions(8)
	a := NewStudySession(StudyRandom, qs, rand.New(rand.NewSource(3)))
	b := NewStudySession(StudyRandom, qs, rand.New(rand.NewSource(3)))

	for i := 0; i < 8; i++ {
		va, vb := a.Current(), b.Current()
		if va.Question.ID != vb.Question.ID {
			t.Fatalf("same seed diverged at question %d: %d vs %d", i, va.Question.ID, vb.Question.ID)
		}
		for j := range va.DisplayOrder {
			if va.DisplayOrder[j] != vb.DisplayOrder[j] {
				t.Fatalf("same seed diverged on option order at question %d", i)
			}
		}
		if err := a.SubmitAnswer("A"); err != nil {
			t.Fatal(err)
		}
		if err := b.SubmitAnswer("A"); err != nil {
			t.Fatal(err)
		}
		a.Advance()
		b.Advance()
	}
}

func TestRandomStudyOptionOrderFixedPerItem(t *testing.T) {
	s := NewStudySession(StudyRandom, makeQuestions(1), rand.New(rand.NewSource(9)))
	first := s.Current().DisplayOrder
	second := s.Current().DisplayOrder
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("option order changed between displays: %v vs %v", first, second)
		}
	}
}

func TestTestAnswersRevisableUntilFinish(t *testing.T) {
	s := NewTestSession(makeQuestions(3), 3, time.Hour, rand.New(rand.NewSource(5)))
	defer s.Finish()

	if err := s.SubmitTestAnswer(0, "B"); err != nil {
		t.Fatal(err)
	}
	if err := s.SubmitTestAnswer(0, "A"); err != nil {
		t.Fatalf("revision rejected: %v", err)
	}
	if v := s.Items()[0]; v.UserAnswer != "A" {
		t.Fatalf("answer = %q after revision, want A", v.UserAnswer)
	}

	s.Finish()
	if err := s.SubmitTestAnswer(0, "B"); err == nil {
		t.Fatal("answer accepted after submission")
	}
}

func TestTestFinishCountsOnlyAnswered(t *testing.T) {
	s := NewTestSession(makeQuestions(4), 4, time.Hour, rand.New(rand.NewSource(5)))

	if err := s.SubmitTestAnswer(0, "A"); err != nil {
		t.Fatal(err)
	}
	if err := s.SubmitTestAnswer(1, "B"); err != nil {
		t.Fatal(err)
	}
	r := s.Finish()

	if r.Score != 1 {
		t.Fatalf("score = %d, want 1", r.Score)
	}
	if r.Total != 4 {
		t.Fatalf("total = %d, want 4", r.Total)
	}
	views := s.Items()
	if !views[0].Answered || !views[1].Answered || views[2].Answered || views[3].Answered {
		t.Fatalf("answered flags wrong after finish: %+v", views)
	}
}

func TestTestSessionDrawsSubset(t *testing.T) {
	s := NewTestSession(makeQuestions(10), 4, time.Hour, rand.New(rand.NewSource(2)))
	defer s.Finish()

	if s.Size() != 4 {
		t.Fatalf("size = %d, want 4", s.Size())
	}
	seen := make(map[int]bool)
	for _, v := range s.Items() {
		if seen[v.Question.ID] {
			t.Fatalf("question %d drawn twice", v.Question.ID)
		}
		seen[v.Question.ID] = true
	}
}

func TestTestAdvanceNeverBlocks(t *testing.T) {
	s := NewTestSession(makeQuestions(2), 2, time.Hour, rand.New(rand.NewSource(2)))
	defer s.Finish()

	if got := s.Advance(); got != Advanced {
		t.Fatalf("Advance on unanswered test question = %v, want Advanced", got)
	}
}

func TestTimerForcesSubmission(t *testing.T) {
	s := NewTestSession(makeQuestions(2), 2, time.Second, rand.New(rand.NewSource(2)))

	if err := s.SubmitTestAnswer(0, "A"); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(4 * time.Second)
	for !s.Finished() {
		select {
		case <-deadline:
			t.Fatal("timer expiry never finished the session")
		case <-time.After(100 * time.Millisecond):
		}
	}

	r := s.Result()
	if !r.Overtime {
		t.Fatal("forced submission not marked overtime")
	}
	if r.Passed {
		t.Fatal("overtime test reported as passed")
	}
	if r.Score != 1 {
		t.Fatalf("score = %d, want the one answer given before expiry", r.Score)
	}
}

func TestFinishIdempotent(t *testing.T) {
	s := NewTestSession(makeQuestions(2), 2, time.Hour, rand.New(rand.NewSource(2)))
	first := s.Finish()
	second := s.Finish()
	if first != second {
		t.Fatal("repeated Finish returned a different result")
	}
}

func TestSeek(t *testing.T) {
	s := NewTestSession(makeQuestions(5), 5, time.Hour, rand.New(rand.NewSource(2)))
	defer s.Finish()

	if err := s.Seek(3); err != nil {
		t.Fatal(err)
	}
	if s.Cursor() != 3 {
		t.Fatalf("cursor = %d after seek, want 3", s.Cursor())
	}
	if err := s.Seek(9); err == nil {
		t.Fatal("out-of-range seek accepted")
	}
}
