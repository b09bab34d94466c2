package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// OptionList presents one question's options, keyed by their letters, in a
// caller-supplied display order. The list itself never decides correctness;
// it renders whatever state the screen passes in via Lock and Reveal.
type OptionList struct {
	Question string
	Keys     []string
	Options  map[string]string

	Selected int

	// locked stops cursor movement and selection, used once a study answer
	// is in or a test is submitted.
	locked bool

	// revealed switches the view to feedback colors against CorrectKey.
	revealed   bool
	CorrectKey string
	ChosenKey  string
}

// NewOptionList creates an option list over keys in display order.
func NewOptionList(question string, keys []string, options map[string]string) OptionList {
	return OptionList{
		Question: question,
		Keys:     keys,
		Options:  options,
		Selected: 0,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Selection is read by the screen through
// SelectedKey; submitting is the screen's decision, not the component's.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.locked {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Keys)-1 {
			o.Selected++
		}
	}

	return o, nil
}

// SelectedKey returns the option key under the cursor.
func (o OptionList) SelectedKey() string {
	if o.Selected < 0 || o.Selected >= len(o.Keys) {
		return ""
	}
	return o.Keys[o.Selected]
}

// MoveTo places the cursor on key, used when revisiting an answered question.
func (o *OptionList) MoveTo(key string) {
	for i, k := range o.Keys {
		if k == key {
			o.Selected = i
			return
		}
	}
}

// SetChosen marks key as the recorded answer without freezing the cursor,
// used for revisable test answers.
func (o *OptionList) SetChosen(key string) {
	o.ChosenKey = key
}

// Lock freezes the cursor, remembering what was chosen.
func (o *OptionList) Lock(chosen string) {
	o.locked = true
	o.ChosenKey = chosen
}

// Reveal switches to feedback rendering against the correct key.
func (o *OptionList) Reveal(correct, chosen string) {
	o.locked = true
	o.revealed = true
	o.CorrectKey = correct
	o.ChosenKey = chosen
}

// Locked reports whether the list accepts cursor movement.
func (o OptionList) Locked() bool {
	return o.locked
}

// View renders the question and its options.
func (o OptionList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	for i, key := range o.Keys {
		prefix := "  "
		if i == o.Selected && !o.locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, key, o.Options[key])

		switch {
		case o.revealed && key == o.CorrectKey:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case o.revealed && key == o.ChosenKey:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case o.revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Selected && !o.locked:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case key == o.ChosenKey:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
