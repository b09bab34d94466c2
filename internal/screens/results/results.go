// Package results shows the evaluated outcome of a finished session and
// lets the user review the answers.
package results

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/timer"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// ResultsScreen displays the result of a finished session. For timed tests
// it offers a question-by-question review.
type ResultsScreen struct {
	manager *quiz.Manager
	sess    *quiz.Session
	result  *quiz.Result

	reviewing bool
	reviewIdx int
	items     []quiz.ItemView
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a finished session. Finish is idempotent,
// so calling it here covers sessions ending through any path.
func New(manager *quiz.Manager, sess *quiz.Session) *ResultsScreen {
	return &ResultsScreen{
		manager: manager,
		sess:    sess,
		result:  sess.Finish(),
		items:   sess.Items(),
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	if r.reviewing {
		return "Review"
	}
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.reviewing {
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "R", Description: "Back to results"},
			{Key: "Enter", Description: "Home"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if r.result.Mode == quiz.TimedTest {
		hints = append([]layout.KeyHint{{Key: "R", Description: "Review answers"}}, hints...)
	}
	return hints
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "enter":
		r.manager.EndSession()
		return r, func() tea.Msg { return router.PopToRootMsg{} }

	case "r", "R":
		if r.result.Mode == quiz.TimedTest {
			r.reviewing = !r.reviewing
		}
		return r, nil

	case "right", "l":
		if r.reviewing && r.reviewIdx+1 < len(r.items) {
			r.reviewIdx++
		}
		return r, nil

	case "left", "h":
		if r.reviewing && r.reviewIdx > 0 {
			r.reviewIdx--
		}
		return r, nil
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	if r.reviewing {
		return r.viewReview(width, height)
	}

	verdictStyle := theme.Incorrect
	if r.result.Passed || r.result.Mode != quiz.TimedTest {
		verdictStyle = theme.Correct
	}

	rows := []string{
		statRow("Score", fmt.Sprintf("%d / %d  (%.1f%%)", r.result.Score, r.result.Total, r.result.Percentage)),
		statRow("Time", timer.Format(r.result.Elapsed)),
	}
	if r.result.Mode == quiz.TimedTest {
		rows = append(rows,
			statRow("Time limit", timer.Format(r.result.TimeLimit)),
			statRow("Pass threshold", fmt.Sprintf("%d correct", r.result.PassThreshold)),
		)
	}

	card := theme.Card.Render(joinRows(rows))

	content := theme.Title.Render("Session Complete") + "\n\n" +
		verdictStyle.Render(r.result.Verdict()) + "\n\n" +
		card

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (r *ResultsScreen) viewReview(width, height int) string {
	v := r.items[r.reviewIdx]

	list := components.NewOptionList(v.Question.Text, v.DisplayOrder, v.Question.Options)
	list.Reveal(v.Question.CorrectKey, v.UserAnswer)

	status := fmt.Sprintf("Question %d of %d", r.reviewIdx+1, len(r.items))
	var outcome string
	switch {
	case v.Correct():
		outcome = theme.Correct.Render("Correct")
	case v.Answered:
		outcome = theme.Incorrect.Render("Incorrect")
	default:
		outcome = theme.Hint.Render("Not answered")
	}

	content := theme.Subtitle.Render(status) + "\n\n" +
		list.View() + "\n" +
		outcome

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func statRow(label, value string) string {
	l := lipgloss.NewStyle().Foreground(theme.TextDim).Width(16).Render(label)
	v := lipgloss.NewStyle().Foreground(theme.Text).Render(value)
	return l + v
}

func joinRows(rows []string) string {
	out := ""
	for i, row := range rows {
		if i > 0 {
			out += "\n"
		}
		out += row
	}
	return out
}
