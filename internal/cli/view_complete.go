package cli

import (
	"github.com/alexanderramin/liftoff/internal/cli/formatter"
	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var newWorkoutKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new workout"))

// completeView shows the finished workout in a scrollable viewport.
type completeView struct {
	state   *SharedState
	workout *domain.Workout
	card    string
	vp      viewport.Model
}

func newCompleteView(state *SharedState, w *domain.Workout) *completeView {
	vp := viewport.New(state.Width, max(state.ContentHeight()-2, 1))
	vp.KeyMap = scrollKeyMap()
	card := formatter.FormatWorkout(w)
	vp.SetContent(card)
	return &completeView{state: state, workout: w, card: card, vp: vp}
}

func (v *completeView) ID() ViewID    { return ViewComplete }
func (v *completeView) Title() string { return "Complete" }

func (v *completeView) ShortHelp() []key.Binding {
	return []key.Binding{
		newWorkoutKey,
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *completeView) Init() tea.Cmd { return nil }

func (v *completeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = max(v.state.ContentHeight()-2, 1)
		return v, nil
	case tea.KeyMsg:
		if key.Matches(msg, newWorkoutKey) {
			return v, sendMsg(restartMsg{})
		}
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *completeView) View() string {
	banner := formatter.StyleGreen.Render("✔ Workout complete!") + "  " +
		formatter.Dim(formatter.Plural(v.workout.TotalReps(), "rep")+" across "+formatter.Plural(v.workout.TotalSets(), "set"))
	body := v.card
	if v.state.Height > 0 {
		body = v.vp.View()
	}
	return banner + "\n\n" + body
}

// scrollKeyMap returns a restricted keymap for viewports. Letter keys are
// left free for global shortcuts.
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
