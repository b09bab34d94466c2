// Package lectures implements the lecture picker for sequential study.
package lectures

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/study"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// LecturesScreen lists the loaded lectures plus a whole-catalog entry.
type LecturesScreen struct {
	manager *quiz.Manager
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*LecturesScreen)(nil)

type errMsg struct{ err error }

// New creates a new LecturesScreen.
func New(manager *quiz.Manager) *LecturesScreen {
	infos := manager.Lectures()

	items := make([]components.MenuItem, 0, len(infos)+1)
	items = append(items, components.MenuItem{
		Label: fmt.Sprintf("All lectures (%d questions)", manager.Size()),
		Action: func() tea.Cmd {
			return startCmd(manager, "")
		},
	})
	for _, info := range infos {
		title := info.Title
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s (%d questions)", info.Title, info.Count),
			Action: func() tea.Cmd {
				return startCmd(manager, title)
			},
		})
	}

	return &LecturesScreen{
		manager: manager,
		menu:    components.NewMenu(items),
	}
}

func startCmd(manager *quiz.Manager, lecture string) tea.Cmd {
	return func() tea.Msg {
		sess, err := manager.StartSequential(lecture)
		if err != nil {
			return errMsg{err}
		}
		return router.PushScreenMsg{Screen: study.New(manager, sess)}
	}
}

func (l *LecturesScreen) Init() tea.Cmd {
	return nil
}

func (l *LecturesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(errMsg); ok {
		l.errMsg = m.err.Error()
		return l, nil
	}

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LecturesScreen) View(width, height int) string {
	title := theme.Title.Render("Choose a Lecture")
	content := title + "\n\n" + l.menu.View()
	if l.errMsg != "" {
		content += "\n" + theme.Incorrect.Render("  "+l.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (l *LecturesScreen) Title() string {
	return "Lectures"
}
