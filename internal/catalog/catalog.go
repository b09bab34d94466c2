// Package catalog loads and indexes the quiz question document.
//
// A Catalog is immutable once built: sessions copy questions out of it and
// never write back. Reloading produces a whole new Catalog value.
package catalog

// Question is one multiple-choice question from the loaded document.
type Question struct {
	// ID is a positive integer, unique and stable within one load.
	ID int

	// Text is the trimmed question prompt.
	Text string

	// Options maps an option key (usually "A".."D") to its text.
	Options map[string]string

	// OptionKeys preserves the document order of Options, since Go maps don't.
	OptionKeys []string

	// CorrectKey is the uppercased key of the correct option. Always present
	// in Options; records violating that are dropped during parse.
	CorrectKey string

	// Lecture is the derived title of the lecture this question belongs to.
	Lecture string
}

// LectureInfo describes one lecture for selection menus.
type LectureInfo struct {
	Title string
	Count int
}

// Catalog is the full ordered question set plus a per-lecture index.
type Catalog struct {
	questions    []Question
	byLecture    map[string][]int
	lectureOrder []string
}

// Size returns the number of questions in the catalog.
func (c *Catalog) Size() int {
	return len(c.questions)
}

// Questions returns the full ordered question sequence.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) Questions() []Question {
	return c.questions
}

// Lectures returns every lecture with at least one question, in the order
// lectures first appeared in the document.
func (c *Catalog) Lectures() []LectureInfo {
	infos := make([]LectureInfo, 0, len(c.lectureOrder))
	for _, title := range c.lectureOrder {
		n := len(c.byLecture[title])
		if n == 0 {
			continue
		}
		infos = append(infos, LectureInfo{Title: title, Count: n})
	}
	return infos
}

// LectureQuestions returns the ordered questions of one lecture.
// The second return is false when the lecture title is unknown.
func (c *Catalog) LectureQuestions(title string) ([]Question, bool) {
	idxs, ok := c.byLecture[title]
	if !ok {
		return nil, false
	}
	qs := make([]Question, len(idxs))
	for i, idx := range idxs {
		qs[i] = c.questions[idx]
	}
	return qs, true
}
