package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView wraps a huh.Form as the view for one phase. When the form
// completes, done produces the message that drives the session forward.
type formView struct {
	state    *SharedState
	id       ViewID
	form     *huh.Form
	titleStr string
	intro    string
	done     func() tea.Cmd
	finished bool
}

func newFormView(state *SharedState, id ViewID, title string, form *huh.Form, done func() tea.Cmd) *formView {
	return &formView{
		state:    state,
		id:       id,
		form:     form,
		titleStr: title,
		done:     done,
	}
}

// withIntro sets text rendered above the form.
func (v *formView) withIntro(text string) *formView {
	v.intro = text
	return v
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.finished {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		v.finished = true
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done()
		}
		return v, tea.Batch(cmd, doneCmd)
	}

	return v, cmd
}

func (v *formView) View() string {
	var b strings.Builder
	if v.intro != "" {
		b.WriteString(v.intro)
		b.WriteString("\n\n")
	}
	b.WriteString(v.form.View())
	return b.String()
}

func (v *formView) ID() ViewID    { return v.id }
func (v *formView) Title() string { return v.titleStr }
func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	}
}
