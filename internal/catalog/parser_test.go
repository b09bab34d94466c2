package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLectureTitleDerivation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "explicit title wins",
			doc:  `[{"title":"Memory Hierarchy","lecture":"7","questions":[{"question":"q","options":{"A":"a","B":"b"},"correct_option":"A"}]}]`,
			want: []string{"Memory Hierarchy"},
		},
		{
			name: "numeric lecture string becomes 1-based label",
			doc:  `[{"lecture":"2","questions":[{"question":"q","options":{"A":"a","B":"b"},"correct_option":"A"}]}]`,
			want: []string{"Lecture 3"},
		},
		{
			name: "numeric lecture number becomes 1-based label",
			doc:  `[{"lecture":2,"questions":[{"question":"q","options":{"A":"a","B":"b"},"correct_option":"A"}]}]`,
			want: []string{"Lecture 3"},
		},
		{
			name: "non-numeric lecture used verbatim",
			doc:  `[{"lecture":"Week One","questions":[{"question":"q","options":{"A":"a","B":"b"},"correct_option":"A"}]}]`,
			want: []string{"Week One"},
		},
		{
			name: "whitespace title falls through to lecture",
			doc:  `[{"title":"   ","lecture":"0","questions":[{"question":"q","options":{"A":"a","B":"b"},"correct_option":"A"}]}]`,
			want: []string{"Lecture 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, err := Parse([]byte(tt.doc))
			require.NoError(t, err)

			var titles []string
			for _, info := range c.Lectures() {
				titles = append(titles, info.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestLectureTitleSynthesizedFromPosition(t *testing.T) {
	// Four empty lectures then one with neither title nor lecture at index 4:
	// the synthesized label uses the 1-based position.
	doc := `[
		{}, {}, {}, {},
		{"questions":[{"question":"q","options":{"A":"a","B":"b"},"correct_option":"A"}]}
	]`
	c, _, err := Parse([]byte(doc))
	require.NoError(t, err)

	lectures := c.Lectures()
	require.Len(t, lectures, 1)
	assert.Equal(t, "Lecture 5", lectures[0].Title)
}

func TestParseAssignsSequentialIDs(t *testing.T) {
	doc := `[
		{"title":"L1","questions":[
			{"question":"one","options":{"A":"a","B":"b"},"correct_option":"a"},
			{"question":"two","options":{"A":"a","B":"b"},"correct_option":"B"}
		]},
		{"title":"L2","questions":[
			{"question":"three","options":{"A":"a","B":"b"},"correct_option":" b "}
		]}
	]`
	c, warnings, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Equal(t, 3, c.Size())

	for i, q := range c.Questions() {
		// IDs are 1-based and do not restart per lecture.
		assert.Equal(t, i+1, q.ID)
		// correct_option is trimmed and uppercased.
		assert.Contains(t, q.Options, q.CorrectKey)
	}
	assert.Equal(t, "A", c.Questions()[0].CorrectKey)
	assert.Equal(t, "B", c.Questions()[2].CorrectKey)
}

func TestParseSkipsMalformedQuestions(t *testing.T) {
	doc := `[{"title":"L","questions":[
		{"question":"good","options":{"A":"a","B":"b"},"correct_option":"A"},
		{"question":"","options":{"A":"a","B":"b"},"correct_option":"A"},
		{"question":"no options","correct_option":"A"},
		{"question":"no correct","options":{"A":"a","B":"b"}},
		{"question":"correct not present","options":{"A":"a","B":"b"},"correct_option":"C"}
	]}]`
	c, warnings, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, 1, c.Size())
	assert.Len(t, warnings, 4)
	assert.Equal(t, "good", c.Questions()[0].Text)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"top level object", `{"questions":[]}`},
		{"top level string", `"nope"`},
		{"invalid JSON", `[{`},
		{"empty array", `[]`},
		{"all questions invalid", `[{"title":"L","questions":[{"question":"","options":{},"correct_option":""}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			var perr *ParseError
			assert.True(t, errors.As(err, &perr), "want *ParseError, got %T", err)
		})
	}
}

func TestOptionKeyOrderPreserved(t *testing.T) {
	doc := `[{"title":"L","questions":[
		{"question":"q","options":{"C":"c","A":"a","D":"d","B":"b"},"correct_option":"D"}
	]}]`
	c, _, err := Parse([]byte(doc))
	require.NoError(t, err)

	q := c.Questions()[0]
	assert.Equal(t, []string{"C", "A", "D", "B"}, q.OptionKeys)
	assert.Equal(t, "d", q.Options["D"])
}

func TestLectureQuestions(t *testing.T) {
	doc := `[
		{"title":"Alpha","questions":[
			{"question":"a1","options":{"A":"x","B":"y"},"correct_option":"A"},
			{"question":"a2","options":{"A":"x","B":"y"},"correct_option":"B"}
		]},
		{"title":"Beta","questions":[
			{"question":"b1","options":{"A":"x","B":"y"},"correct_option":"A"}
		]}
	]`
	c, _, err := Parse([]byte(doc))
	require.NoError(t, err)

	qs, ok := c.LectureQuestions("Alpha")
	require.True(t, ok)
	require.Len(t, qs, 2)
	assert.Equal(t, "a1", qs[0].Text)
	assert.Equal(t, "a2", qs[1].Text)

	_, ok = c.LectureQuestions("Gamma")
	assert.False(t, ok)

	infos := c.Lectures()
	require.Len(t, infos, 2)
	assert.Equal(t, LectureInfo{Title: "Alpha", Count: 2}, infos[0])
	assert.Equal(t, LectureInfo{Title: "Beta", Count: 1}, infos[1])
}

func TestParseLargeDocument(t *testing.T) {
	// Size invariant: catalogSize equals the number of valid records.
	doc := "["
	for i := 0; i < 10; i++ {
		if i > 0 {
			doc += ","
		}
		doc += fmt.Sprintf(`{"lecture":"%d","questions":[
			{"question":"q%d-1","options":{"A":"a","B":"b"},"correct_option":"A"},
			{"question":"q%d-2","options":{"A":"a","B":"b"},"correct_option":"B"}
		]}`, i, i, i)
	}
	doc += "]"

	c, warnings, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 20, c.Size())
	assert.Len(t, c.Lectures(), 10)
}
