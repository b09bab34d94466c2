// Package testrun implements the screen for an active timed test.
package testrun

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/results"
	"github.com/quizdeck/quizdeck/internal/timer"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// urgentThreshold is when the countdown switches to the urgent style.
const urgentThreshold = time.Minute

// TestScreen runs a timed test. Answers stay revisable until the user
// submits or the timer forces submission.
type TestScreen struct {
	manager *quiz.Manager
	sess    *quiz.Session

	list    components.OptionList
	confirm bool
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)

// New creates a TestScreen over an already started test session.
func New(manager *quiz.Manager, sess *quiz.Session) *TestScreen {
	t := &TestScreen{manager: manager, sess: sess}
	t.loadCurrent()
	return t
}

func (t *TestScreen) loadCurrent() {
	v := t.sess.Current()
	t.list = components.NewOptionList(v.Question.Text, v.DisplayOrder, v.Question.Options)
	if v.UserAnswer != "" {
		t.list.SetChosen(v.UserAnswer)
		t.list.MoveTo(v.UserAnswer)
	}
}

func (t *TestScreen) Init() tea.Cmd {
	return tickCmd()
}

func (t *TestScreen) Title() string {
	return "Timed Test"
}

func (t *TestScreen) KeyHints() []layout.KeyHint {
	if t.confirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit test"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "S", Description: "Submit"},
	}
}

func (t *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// The timer may have submitted the test between ticks.
		if t.sess.Finished() {
			return t, t.showResults()
		}
		return t, tickCmd()

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	return t, nil
}

func (t *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if t.sess.Finished() {
		return t, t.showResults()
	}

	if t.confirm {
		switch msg.String() {
		case "y", "Y", "enter":
			t.sess.Finish()
			return t, t.showResults()
		default:
			t.confirm = false
			return t, nil
		}
	}

	switch msg.String() {
	case "enter":
		return t.record()

	case "right", "l":
		return t.seek(t.sess.Cursor() + 1)

	case "left", "h":
		return t.seek(t.sess.Cursor() - 1)

	case "s", "S":
		t.confirm = true
		return t, nil
	}

	var cmd tea.Cmd
	t.list, cmd = t.list.Update(msg)
	return t, cmd
}

// record stores the highlighted option and moves on to the next question.
func (t *TestScreen) record() (screen.Screen, tea.Cmd) {
	key := t.list.SelectedKey()
	if key == "" {
		return t, nil
	}
	cursor := t.sess.Cursor()
	if err := t.sess.SubmitTestAnswer(cursor, key); err != nil {
		return t, nil
	}
	if cursor+1 < t.sess.Size() {
		return t.seek(cursor + 1)
	}
	t.list.SetChosen(key)
	return t, nil
}

func (t *TestScreen) seek(index int) (screen.Screen, tea.Cmd) {
	if index < 0 || index >= t.sess.Size() {
		return t, nil
	}
	if err := t.sess.Seek(index); err != nil {
		return t, nil
	}
	t.loadCurrent()
	return t, nil
}

func (t *TestScreen) showResults() tea.Cmd {
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(t.manager, t.sess)}
	}
}

func (t *TestScreen) View(width, height int) string {
	if t.confirm {
		return t.viewConfirm(width, height)
	}

	v := t.sess.Current()

	remaining := t.sess.Remaining()
	clock := timer.Format(remaining)
	clockStyle := theme.Correct
	if remaining < urgentThreshold {
		clockStyle = theme.Urgent
	}

	status := fmt.Sprintf("Question %d of %d  •  %d answered  •  ",
		v.Index+1, t.sess.Size(), t.sess.Answered())

	content := theme.Subtitle.Render(status) + clockStyle.Render(clock) + "\n" +
		t.answerSheet() + "\n\n" +
		t.list.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// answerSheet renders one marker per question so gaps are visible before
// submitting.
func (t *TestScreen) answerSheet() string {
	var b strings.Builder
	cursor := t.sess.Cursor()
	for i, v := range t.sess.Items() {
		marker := "·"
		if v.UserAnswer != "" {
			marker = "●"
		}
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if v.UserAnswer != "" {
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		if i == cursor {
			style = style.Bold(true).Underline(true)
		}
		b.WriteString(style.Render(marker))
		if i != t.sess.Size()-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (t *TestScreen) viewConfirm(width, height int) string {
	unanswered := t.sess.Size() - t.sess.Answered()
	msg := "Submit the test now?"
	if unanswered > 0 {
		msg = fmt.Sprintf("Submit with %d unanswered question(s)?", unanswered)
	}
	content := theme.Title.Render("Submit Test") + "\n\n" +
		theme.Body.Render(msg) + "\n\n" +
		theme.Hint.Render("Y to submit, any other key to keep going")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
