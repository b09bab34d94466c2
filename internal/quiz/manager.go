package quiz

import (
	"math/rand"
	"sync"
	"time"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/search"
)

// Test parameter bounds. Minutes convert to the session's time limit.
const (
	MinTestQuestions = 1
	MinTestMinutes   = 1
)

// Manager owns the loaded catalog, its search index, and the single active
// session. The TUI and CLI both drive the app through a Manager.
type Manager struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	index   *search.Index
	session *Session
	rng     *rand.Rand
}

// NewManager returns a Manager with no catalog loaded. A nil rng uses the
// shared math/rand source.
func NewManager(rng *rand.Rand) *Manager {
	return &Manager{rng: rng}
}

// LoadCatalog parses data and swaps in the new catalog and search index.
// On error the previous catalog, if any, stays loaded. The returned warnings
// describe questions that were skipped.
func (m *Manager) LoadCatalog(data []byte) ([]string, error) {
	c, warnings, err := catalog.Parse(data)
	if err != nil {
		return warnings, err
	}
	m.mu.Lock()
	m.catalog = c
	m.index = search.NewIndex(c)
	m.mu.Unlock()
	return warnings, nil
}

// Catalog returns the loaded catalog, nil when none is loaded.
func (m *Manager) Catalog() *catalog.Catalog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.catalog
}

// Size returns the loaded question count, zero when no catalog is loaded.
func (m *Manager) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.catalog == nil {
		return 0
	}
	return m.catalog.Size()
}

// Lectures lists the loaded lectures in document order.
func (m *Manager) Lectures() []catalog.LectureInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.catalog == nil {
		return nil
	}
	return m.catalog.Lectures()
}

// StartSequential begins a sequential study session. An empty lecture title
// selects the whole catalog; an unknown one is an InvalidParameterError.
func (m *Manager) StartSequential(lecture string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.catalog == nil {
		return nil, &NoCatalogError{Op: "start study session"}
	}

	qs := m.catalog.Questions()
	if lecture != "" {
		lqs, ok := m.catalog.LectureQuestions(lecture)
		if !ok {
			return nil, &InvalidParameterError{Parameter: "lecture", Value: lecture, Reason: "no such lecture"}
		}
		qs = lqs
	}
	if len(qs) == 0 {
		return nil, &InvalidParameterError{Parameter: "lecture", Value: lecture, Reason: "lecture has no questions"}
	}

	m.session = NewStudySession(StudySequential, qs, m.rng)
	return m.session, nil
}

// StartRandom begins a random study session over the whole catalog.
func (m *Manager) StartRandom() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.catalog == nil {
		return nil, &NoCatalogError{Op: "start study session"}
	}
	m.session = NewStudySession(StudyRandom, m.catalog.Questions(), m.rng)
	return m.session, nil
}

// StartTest begins a timed test of count questions over minutes minutes.
// Count is bounded by the catalog size; any positive time limit is accepted.
func (m *Manager) StartTest(count, minutes int) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.catalog == nil {
		return nil, &NoCatalogError{Op: "start test"}
	}
	if count < MinTestQuestions || count > m.catalog.Size() {
		return nil, &InvalidParameterError{
			Parameter: "question count",
			Value:     count,
			Reason:    "must be between 1 and the number of loaded questions",
		}
	}
	if minutes < MinTestMinutes {
		return nil, &InvalidParameterError{
			Parameter: "time limit",
			Value:     minutes,
			Reason:    "must be at least 1 minute",
		}
	}

	limit := time.Duration(minutes) * time.Minute
	m.session = NewTestSession(m.catalog.Questions(), count, limit, m.rng)
	return m.session, nil
}

// Session returns the current session, nil when none has been started.
func (m *Manager) Session() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// EndSession finishes and drops the current session, if any.
func (m *Manager) EndSession() {
	m.mu.Lock()
	s := m.session
	m.session = nil
	m.mu.Unlock()
	if s != nil {
		s.Finish()
	}
}

// Search runs a keyword query against the loaded catalog.
func (m *Manager) Search(query string) ([]search.Match, error) {
	m.mu.Lock()
	idx := m.index
	m.mu.Unlock()
	if idx == nil {
		return nil, &NoCatalogError{Op: "search"}
	}
	return idx.Query(query)
}
