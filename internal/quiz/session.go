// Package quiz holds the session state machine, scoring, and the manager
// that ties catalog, search, and sessions together.
package quiz

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/shuffle"
	"github.com/quizdeck/quizdeck/internal/timer"
)

// Mode selects how a session presents questions and handles answers.
type Mode int

const (
	// StudySequential walks the chosen questions in document order and
	// locks each answer once given.
	StudySequential Mode = iota

	// StudyRandom behaves like StudySequential over a shuffled question
	// order, with option order shuffled per question as well.
	StudyRandom

	// TimedTest presents a shuffled subset against a countdown. Answers
	// stay revisable until the test is submitted or time expires.
	TimedTest
)

func (m Mode) String() string {
	switch m {
	case StudySequential:
		return "sequential study"
	case StudyRandom:
		return "random study"
	case TimedTest:
		return "timed test"
	}
	return "unknown"
}

// AdvanceOutcome is the result of asking a session to move to the next
// question.
type AdvanceOutcome int

const (
	// Advanced means the cursor moved forward one question.
	Advanced AdvanceOutcome = iota

	// AdvanceBlocked means the current study question has no answer yet.
	AdvanceBlocked

	// AdvanceFinished means the cursor was on the last question and the
	// session has now finished.
	AdvanceFinished
)

// Session is one run through a set of questions. All methods are safe for
// concurrent use; the timer goroutine and the UI loop share a session.
type Session struct {
	mu sync.Mutex

	id     string
	mode   Mode
	items  []*item
	cursor int
	score  int

	finished bool
	result   *Result

	timeLimit time.Duration
	overtime  bool
	clock     timer.Timer

	rng *rand.Rand
}

// NewStudySession starts a study run over the given questions. Sequential
// mode keeps both question and option order; random mode shuffles the
// question order now and each question's option order on first display.
func NewStudySession(mode Mode, questions []catalog.Question, rng *rand.Rand) *Session {
	qs := append([]catalog.Question(nil), questions...)
	if mode == StudyRandom {
		shuffle.Slice(qs, rng)
	}

	s := &Session{id: uuid.NewString(), mode: mode, rng: rng}
	for _, q := range qs {
		it := &item{question: q}
		if mode == StudySequential {
			it.displayOrder = append([]string(nil), q.OptionKeys...)
		}
		s.items = append(s.items, it)
	}
	s.clock.Start(0, nil, nil)
	return s
}

// NewTestSession starts a timed test of count questions drawn uniformly from
// the given pool, against the given time limit. Option order is shuffled per
// question up front. Expiry forces submission of whatever is answered.
func NewTestSession(questions []catalog.Question, count int, limit time.Duration, rng *rand.Rand) *Session {
	pool := append([]catalog.Question(nil), questions...)
	shuffle.Slice(pool, rng)
	if count > len(pool) {
		count = len(pool)
	}
	pool = pool[:count]

	s := &Session{id: uuid.NewString(), mode: TimedTest, timeLimit: limit, rng: rng}
	for _, q := range pool {
		keys := append([]string(nil), q.OptionKeys...)
		shuffle.Slice(keys, rng)
		s.items = append(s.items, &item{question: q, displayOrder: keys})
	}
	s.clock.Start(limit, nil, s.forceFinish)
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Size returns the number of questions in the session.
func (s *Session) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Cursor returns the index of the current question.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Current returns a snapshot of the question under the cursor.
func (s *Session) Current() ItemView {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := s.items[s.cursor]
	if it.displayOrder == nil {
		// Random study shuffles option order on first display.
		keys := append([]string(nil), it.question.OptionKeys...)
		shuffle.Slice(keys, s.rng)
		it.displayOrder = keys
	}
	return it.view(s.cursor)
}

// Items returns snapshots of every question, for answer sheets and review.
func (s *Session) Items() []ItemView {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]ItemView, len(s.items))
	for i, it := range s.items {
		views[i] = it.view(i)
	}
	return views
}

// Answered returns how many questions currently hold an answer.
func (s *Session) Answered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		if it.userAnswer != "" {
			n++
		}
	}
	return n
}

// SubmitAnswer records key as the answer to the current study question.
// Answers lock on first submission; repeats are ignored without error so the
// UI does not have to guard every keypress. Finished sessions reject writes.
func (s *Session) SubmitAnswer(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return &SessionError{Op: "answer", Reason: "session already finished"}
	}
	it := s.items[s.cursor]
	if it.answered {
		return nil
	}
	if _, ok := it.question.Options[key]; !ok {
		return &InvalidParameterError{Parameter: "option", Value: key, Reason: "not an option of this question"}
	}
	it.userAnswer = key
	it.answered = true
	s.rescore()
	return nil
}

// SubmitTestAnswer records key as the answer to question index in a timed
// test. Unlike study answers it may be revised until the test finishes.
func (s *Session) SubmitTestAnswer(index int, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return &SessionError{Op: "answer", Reason: "test already submitted"}
	}
	if index < 0 || index >= len(s.items) {
		return &InvalidParameterError{Parameter: "question index", Value: index, Reason: "out of range"}
	}
	it := s.items[index]
	if _, ok := it.question.Options[key]; !ok {
		return &InvalidParameterError{Parameter: "option", Value: key, Reason: "not an option of this question"}
	}
	it.userAnswer = key
	s.rescore()
	return nil
}

// Advance moves the cursor forward. In study modes the current question must
// be answered first. Advancing off the last question finishes the session.
func (s *Session) Advance() AdvanceOutcome {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return AdvanceFinished
	}
	if s.mode != TimedTest && !s.items[s.cursor].answered {
		s.mu.Unlock()
		return AdvanceBlocked
	}
	if s.cursor+1 < len(s.items) {
		s.cursor++
		s.mu.Unlock()
		return Advanced
	}
	s.mu.Unlock()

	s.Finish()
	return AdvanceFinished
}

// Retreat moves the cursor back one question. It reports false at the first
// question or after the session has finished.
func (s *Session) Retreat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished || s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// Seek moves the cursor to index, for jumping around a test answer sheet.
func (s *Session) Seek(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return &SessionError{Op: "seek", Reason: "session already finished"}
	}
	if index < 0 || index >= len(s.items) {
		return &InvalidParameterError{Parameter: "question index", Value: index, Reason: "out of range"}
	}
	s.cursor = index
	return nil
}

// Finish ends the session, stops the clock, and evaluates the result.
// It is idempotent; later calls return the same result.
func (s *Session) Finish() *Result {
	return s.finish(false)
}

// forceFinish is the timer expiry hook: the test submits as-is and the
// result is marked overtime.
func (s *Session) forceFinish() {
	s.finish(true)
}

func (s *Session) finish(expired bool) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return s.result
	}
	s.finished = true
	s.overtime = expired

	if s.mode == TimedTest {
		// A revisable answer becomes final at submission.
		for _, it := range s.items {
			it.answered = it.userAnswer != ""
		}
	}
	s.rescore()

	elapsed := s.clock.Stop()
	r := newResult(s.id, s.mode, len(s.items), s.score, elapsed, s.timeLimit, s.overtime)
	s.result = &r
	return s.result
}

// rescore recomputes the score with a full pass over the items.
// Callers hold s.mu.
func (s *Session) rescore() {
	score := 0
	for _, it := range s.items {
		if it.answered && it.userAnswer == it.question.CorrectKey {
			score++
		}
	}
	s.score = score
}

// Score returns the current number of correctly answered questions.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Finished reports whether the session has ended. The UI polls this each
// tick to observe a timer-forced submission.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// Result returns the evaluated result, or nil while the session is active.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Elapsed returns time spent in the session, frozen at finish.
func (s *Session) Elapsed() time.Duration {
	return s.clock.Elapsed()
}

// Remaining returns the time left before expiry, never negative.
// It returns zero for sessions without a limit.
func (s *Session) Remaining() time.Duration {
	s.mu.Lock()
	limit := s.timeLimit
	s.mu.Unlock()
	if limit <= 0 {
		return 0
	}
	left := limit - s.clock.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// TimeLimit returns the session's limit, zero for study sessions.
func (s *Session) TimeLimit() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeLimit
}
