// Package search implements the keyword lookup screen.
package search

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/screen"
	searchidx "github.com/quizdeck/quizdeck/internal/search"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// SearchScreen lets the user look up questions by keywords and shows the
// best matches with their correct answers.
type SearchScreen struct {
	manager *quiz.Manager
	input   components.TextInput

	matches  []searchidx.Match
	searched bool
	errMsg   string
}

var _ screen.Screen = (*SearchScreen)(nil)
var _ screen.KeyHintProvider = (*SearchScreen)(nil)

// New creates a new SearchScreen.
func New(manager *quiz.Manager) *SearchScreen {
	return &SearchScreen{
		manager: manager,
		input:   components.NewTextInput("type at least three words...", false, 120),
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SearchScreen) Title() string {
	return "Search"
}

func (s *SearchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SearchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		s.run()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SearchScreen) run() {
	s.errMsg = ""
	s.searched = false

	matches, err := s.manager.Search(s.input.Value())
	if err != nil {
		s.matches = nil
		s.errMsg = err.Error()
		return
	}
	s.matches = matches
	s.searched = true
}

func (s *SearchScreen) View(width, height int) string {
	title := theme.Title.Render("Search Questions")
	prompt := theme.Subtitle.Render(
		fmt.Sprintf("Matches against question text, top %d shown", searchidx.MaxResults))

	content := title + "\n" + prompt + "\n\n" + s.input.View() + "\n"

	switch {
	case s.errMsg != "":
		content += "\n" + theme.Incorrect.Render(s.errMsg)
	case s.searched && len(s.matches) == 0:
		content += "\n" + theme.Hint.Render("No questions matched.")
	case s.searched:
		for i, m := range s.matches {
			content += "\n" + s.renderMatch(i, m, width)
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *SearchScreen) renderMatch(i int, m searchidx.Match, width int) string {
	cw := width - 20
	if cw > 70 {
		cw = 70
	}
	if cw < 30 {
		cw = 30
	}

	head := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%d. %s", i+1, m.Question.Text))
	answer := lipgloss.NewStyle().Foreground(theme.Success).
		Render(fmt.Sprintf("%s) %s", m.Question.CorrectKey, m.Answer))
	meta := theme.Hint.Render(
		fmt.Sprintf("%s  •  %d keyword(s) matched", m.Question.Lecture, m.Score))

	return theme.Card.Width(cw).Render(head + "\n" + answer + "\n" + meta)
}
