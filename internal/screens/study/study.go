// Package study implements the interactive screen for study sessions, both
// sequential and random.
package study

import (
	"fmt"
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

// StudyScreen walks one study session question by question. Answers lock in
// with immediate feedback; answered questions can be revisited.
type StudyScreen struct {
	manager *quiz.Manager
	sess    *quiz.Session

	list    components.OptionList
	blocked bool
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a StudyScreen over an already started session.
func New(manager *quiz.Manager, sess *quiz.Session) *StudyScreen {
	s := &StudyScreen{manager: manager, sess: sess}
	s.loadCurrent()
	return s
}

// loadCurrent rebuilds the option list from the question under the cursor.
func (s *StudyScreen) loadCurrent() {
	v := s.sess.Current()
	s.list = components.NewOptionList(v.Question.Text, v.DisplayOrder, v.Question.Options)
	if v.Answered {
		s.list.Reveal(v.Question.CorrectKey, v.UserAnswer)
	}
	s.blocked = false
}

func (s *StudyScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *StudyScreen) Title() string {
	switch s.sess.Mode() {
	case quiz.StudyRandom:
		return "Random Study"
	default:
		return "Study"
	}
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.list.Locked() {
		return []layout.KeyHint{
			{Key: "Enter/→", Description: "Next"},
			{Key: "←", Description: "Previous"},
			{Key: "Esc", Description: "End session"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←", Description: "Previous"},
		{Key: "Esc", Description: "End session"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.sess.Finished() {
			return s, nil
		}
		return s, tickCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if !s.list.Locked() {
			return s.submit()
		}
		return s.advance()

	case "right", "l":
		return s.advance()

	case "left", "h":
		if s.sess.Retreat() {
			s.loadCurrent()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *StudyScreen) submit() (screen.Screen, tea.Cmd) {
	key := s.list.SelectedKey()
	if key == "" {
		return s, nil
	}
	if err := s.sess.SubmitAnswer(key); err != nil {
		return s, nil
	}
	v := s.sess.Current()
	s.list.Reveal(v.Question.CorrectKey, v.UserAnswer)
	s.blocked = false
	return s, nil
}

func (s *StudyScreen) advance() (screen.Screen, tea.Cmd) {
	switch s.sess.Advance() {
	case quiz.Advanced:
		s.loadCurrent()
		return s, nil
	case quiz.AdvanceBlocked:
		s.blocked = true
		return s, nil
	default:
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(s.manager, s.sess)}
		}
	}
}

func (s *StudyScreen) View(width, height int) string {
	v := s.sess.Current()

	status := fmt.Sprintf("Question %d of %d", v.Index+1, s.sess.Size())
	if v.Question.Lecture != "" {
		status += "  •  " + v.Question.Lecture
	}
	status += "  •  " + timer.Format(s.sess.Elapsed())

	barWidth := width / 2
	if barWidth > 60 {
		barWidth = 60
	}
	progress := components.NewProgressBar("", float64(v.Index+1)/float64(s.sess.Size()), false, barWidth)

	content := theme.Subtitle.Render(status) + "\n" +
		progress.View() + "\n\n" +
		s.list.View()

	if s.list.Locked() {
		if v.Correct() {
			content += "\n" + theme.Correct.Render("Correct!")
		} else {
			content += "\n" + theme.Incorrect.Render(
				fmt.Sprintf("Incorrect. The answer is %s) %s",
					v.Question.CorrectKey, v.Question.Options[v.Question.CorrectKey]))
		}
	} else if s.blocked {
		content += "\n" + theme.Hint.Render("Answer this question before moving on.")
	}

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
