// Package testsetup implements the parameter form shown before a timed test.
package testsetup

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/testrun"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

const (
	fieldCount = iota
	fieldMinutes
	fieldStart
)

// defaults for the form, bounded by the loaded catalog.
const (
	defaultCount   = 30
	defaultMinutes = 30
)

// SetupScreen collects question count and time limit, then starts the test.
type SetupScreen struct {
	manager *quiz.Manager

	count   components.TextInput
	minutes components.TextInput
	start   components.Button
	focus   int

	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen with defaults filled in.
func New(manager *quiz.Manager) *SetupScreen {
	s := &SetupScreen{manager: manager}

	prefill := defaultCount
	if size := manager.Size(); size < prefill {
		prefill = size
	}

	s.count = components.NewTextInput("questions", true, 4)
	s.count.Model.SetValue(fmt.Sprintf("%d", prefill))
	s.minutes = components.NewTextInput("minutes", true, 3)
	s.minutes.Model.SetValue(fmt.Sprintf("%d", defaultMinutes))
	s.minutes.Model.Blur()

	s.start = components.NewButton("Start Test", false, s.startTest)
	return s
}

func (s *SetupScreen) startTest() tea.Cmd {
	return func() tea.Msg {
		count, err := s.count.NumericValue()
		if err != nil {
			return errMsg{fmt.Errorf("question count must be a number")}
		}
		minutes, err := s.minutes.NumericValue()
		if err != nil {
			return errMsg{fmt.Errorf("time limit must be a number")}
		}
		sess, err := s.manager.StartTest(count, minutes)
		if err != nil {
			return errMsg{err}
		}
		return router.ReplaceScreenMsg{Screen: testrun.New(s.manager, sess)}
	}
}

type errMsg struct{ err error }

func (s *SetupScreen) Init() tea.Cmd {
	return s.count.Init()
}

func (s *SetupScreen) Title() string {
	return "Test Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Switch field"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case errMsg:
		s.errMsg = msg.err.Error()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			s.setFocus((s.focus + 1) % 3)
			return s, nil
		case "shift+tab", "up":
			s.setFocus((s.focus + 2) % 3)
			return s, nil
		case "enter":
			// Enter starts the test from any field.
			return s, s.startTest()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldCount:
		s.count, cmd = s.count.Update(msg)
	case fieldMinutes:
		s.minutes, cmd = s.minutes.Update(msg)
	case fieldStart:
		s.start, cmd = s.start.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) setFocus(focus int) {
	s.focus = focus
	s.count.Model.Blur()
	s.minutes.Model.Blur()
	s.start.Active = false
	switch focus {
	case fieldCount:
		s.count.Model.Focus()
	case fieldMinutes:
		s.minutes.Model.Focus()
	case fieldStart:
		s.start.Active = true
	}
}

func (s *SetupScreen) View(width, height int) string {
	title := theme.Title.Render("Timed Test")
	subtitle := theme.Subtitle.Render(
		fmt.Sprintf("Up to %d questions, any positive time limit", s.manager.Size()))

	label := lipgloss.NewStyle().Foreground(theme.Text).Width(16)

	form := label.Render("Questions") + s.count.View() + "\n\n" +
		label.Render("Minutes") + s.minutes.View() + "\n\n" +
		s.start.View()

	content := title + "\n" + subtitle + "\n\n" + form
	if s.errMsg != "" {
		content += "\n\n" + theme.Incorrect.Render(s.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
