package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/lectures"
	"github.com/quizdeck/quizdeck/internal/screens/search"
	"github.com/quizdeck/quizdeck/internal/screens/study"
	"github.com/quizdeck/quizdeck/internal/screens/testsetup"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	manager *quiz.Manager
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(manager *quiz.Manager) *HomeScreen {
	h := &HomeScreen{manager: manager}

	items := []components.MenuItem{
		{Label: "Study by Lecture", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lectures.New(manager)}
			}
		}},
		{Label: "Random Study", Action: func() tea.Cmd {
			return func() tea.Msg {
				sess, err := manager.StartRandom()
				if err != nil {
					return errMsg{err}
				}
				return router.PushScreenMsg{Screen: study.New(manager, sess)}
			}
		}},
		{Label: "Timed Test", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: testsetup.New(manager)}
			}
		}},
		{Label: "Search Questions", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: search.New(manager)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

type errMsg struct{ err error }

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(errMsg); ok {
		h.errMsg = m.err.Error()
		return h, nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		h.errMsg = ""
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("QuizDeck")
	subtitle := theme.Subtitle.Render(
		fmt.Sprintf("%d questions loaded across %d lectures",
			h.manager.Size(), len(h.manager.Lectures())))

	var sections []string
	sections = append(sections, title, subtitle, "", h.menu.View())

	if h.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render("  "+h.errMsg))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
