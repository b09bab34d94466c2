// Package search implements keyword lookup over loaded quiz questions.
package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quizdeck/quizdeck/internal/catalog"
)

const (
	// MinQueryWords is the minimum number of words a query must contain.
	MinQueryWords = 3

	// MaxResults caps how many matches a query returns.
	MaxResults = 3
)

// QueryError reports a query that cannot be executed, such as one with too
// few words.
type QueryError struct {
	Query  string
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("search %q: %s", e.Query, e.Reason)
}

// Match is one question relevant to a query, with the text of its correct
// option resolved for display.
type Match struct {
	Question catalog.Question
	Answer   string
	Score    int
}

// Index answers keyword queries over one catalog's questions. It precomputes
// lowercased question text; the index is immutable and safe for concurrent
// queries.
type Index struct {
	questions []catalog.Question
	lowered   []string
}

// NewIndex builds an index over every question in the catalog.
func NewIndex(c *catalog.Catalog) *Index {
	qs := c.Questions()
	idx := &Index{
		questions: qs,
		lowered:   make([]string, len(qs)),
	}
	for i, q := range qs {
		idx.lowered[i] = strings.ToLower(q.Text)
	}
	return idx
}

// Query scores every question against the query words and returns up to
// MaxResults matches, highest score first. A question scores one point per
// distinct query word contained in its text, case-insensitively. Queries
// under MinQueryWords words are rejected with a QueryError.
func (idx *Index) Query(query string) ([]Match, error) {
	words := strings.Fields(strings.ToLower(query))
	if len(words) < MinQueryWords {
		return nil, &QueryError{
			Query:  query,
			Reason: fmt.Sprintf("need at least %d words", MinQueryWords),
		}
	}

	// A repeated word counts once.
	seen := make(map[string]struct{}, len(words))
	distinct := words[:0]
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		distinct = append(distinct, w)
	}

	var matches []Match
	for i, text := range idx.lowered {
		score := 0
		for _, w := range distinct {
			if strings.Contains(text, w) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		q := idx.questions[i]
		matches = append(matches, Match{
			Question: q,
			Answer:   q.Options[q.CorrectKey],
			Score:    score,
		})
	}

	// Equal scores keep catalog order.
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	return matches, nil
}
