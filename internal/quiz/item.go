package quiz

import "github.com/quizdeck/quizdeck/internal/catalog"

// item is one question inside a session, carrying the user's answer state.
// Sessions copy questions out of the catalog; the catalog is never mutated.
type item struct {
	question catalog.Question

	// displayOrder is the option key order shown to the user. Sequential
	// study keeps the document order; timed tests shuffle eagerly; random
	// study shuffles lazily the first time the item is displayed, so order
	// is fixed per item per session.
	displayOrder []string

	userAnswer string
	answered   bool
}

// ItemView is a read-only snapshot of one session item. Screens render from
// views instead of reaching into session state.
type ItemView struct {
	Index        int
	Question     catalog.Question
	DisplayOrder []string
	UserAnswer   string
	Answered     bool
}

func (it *item) view(index int) ItemView {
	return ItemView{
		Index:        index,
		Question:     it.question,
		DisplayOrder: append([]string(nil), it.displayOrder...),
		UserAnswer:   it.userAnswer,
		Answered:     it.answered,
	}
}

// Correct reports whether the item was answered with the correct option key.
func (v ItemView) Correct() bool {
	return v.Answered && v.UserAnswer == v.Question.CorrectKey
}
