package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// lectureDoc mirrors one lecture record of the input document.
type lectureDoc struct {
	Title     string          `json:"title"`
	Lecture   json.RawMessage `json:"lecture"`
	Questions []questionDoc   `json:"questions"`
}

// questionDoc mirrors one raw question record. Options stays raw so the
// document key order can be recovered.
type questionDoc struct {
	Question      string          `json:"question"`
	Options       json.RawMessage `json:"options"`
	CorrectOption string          `json:"correct_option"`
}

// Parse builds a Catalog from the raw quiz document.
//
// It returns a non-nil *ParseError when the top level is not an array or no
// valid question survives filtering. Individual malformed questions are
// skipped and reported in the returned warnings, never as an error.
func Parse(data []byte) (*Catalog, []string, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, nil, &ParseError{Reason: "invalid JSON", Err: err}
	}
	if err := validateDocument(parsed); err != nil {
		return nil, nil, &ParseError{Reason: "document must be a top-level array of lecture objects", Err: err}
	}

	var lectures []lectureDoc
	if err := json.Unmarshal(data, &lectures); err != nil {
		return nil, nil, &ParseError{Reason: "decode lecture records", Err: err}
	}

	c := &Catalog{byLecture: make(map[string][]int)}
	var warnings []string
	nextID := 1

	for i, lec := range lectures {
		title := lectureTitle(lec, i)
		if _, seen := c.byLecture[title]; !seen {
			c.byLecture[title] = nil
			c.lectureOrder = append(c.lectureOrder, title)
		}

		for _, qd := range lec.Questions {
			q, err := buildQuestion(qd, title)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("skipped question in lecture %q: %v", title, err))
				continue
			}
			q.ID = nextID
			nextID++
			c.byLecture[title] = append(c.byLecture[title], len(c.questions))
			c.questions = append(c.questions, q)
		}
	}

	if len(c.questions) == 0 {
		return nil, warnings, &ParseError{Reason: "no valid quiz questions in document"}
	}
	return c, warnings, nil
}

// lectureTitle derives a usable lecture title: an explicit title wins, then
// the lecture field (numeric values become a 1-based "Lecture N" label,
// other strings are used verbatim), then a label synthesized from the
// record's 1-based position.
func lectureTitle(lec lectureDoc, index int) string {
	if t := strings.TrimSpace(lec.Title); t != "" {
		return t
	}
	if raw := rawLectureValue(lec.Lecture); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && isDigits(raw) {
			// Numeric index in the document is 0-based; label it 1-based.
			return fmt.Sprintf("Lecture %d", n+1)
		}
		return raw
	}
	return fmt.Sprintf("Lecture %d", index+1)
}

// rawLectureValue renders the lecture field as a trimmed string, whether the
// document holds it as a string or a number.
func rawLectureValue(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// buildQuestion validates one raw question record and converts it into a
// Question. The returned error describes why the record was dropped.
func buildQuestion(qd questionDoc, lecture string) (Question, error) {
	text := strings.TrimSpace(qd.Question)
	if text == "" {
		return Question{}, fmt.Errorf("missing question text")
	}
	correct := strings.ToUpper(strings.TrimSpace(qd.CorrectOption))
	if correct == "" {
		return Question{}, fmt.Errorf("missing correct_option")
	}

	options, keys, err := decodeOptions(qd.Options)
	if err != nil {
		return Question{}, fmt.Errorf("bad options: %w", err)
	}
	if len(options) == 0 {
		return Question{}, fmt.Errorf("missing options")
	}
	if _, ok := options[correct]; !ok {
		return Question{}, fmt.Errorf("correct_option %q not among options", correct)
	}

	return Question{
		Text:       text,
		Options:    options,
		OptionKeys: keys,
		CorrectKey: correct,
		Lecture:    lecture,
	}, nil
}

// decodeOptions decodes the options object while preserving the key order of
// the document, which encoding/json maps discard.
func decodeOptions(raw json.RawMessage) (map[string]string, []string, error) {
	if len(raw) == 0 {
		return nil, nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("options must be an object")
	}

	options := make(map[string]string)
	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected options key token %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, nil, fmt.Errorf("option %q: %w", key, err)
		}
		if _, dup := options[key]; !dup {
			keys = append(keys, key)
		}
		options[key] = value
	}
	return options, keys, nil
}
