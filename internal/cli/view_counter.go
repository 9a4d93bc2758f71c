package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftoff/internal/cli/formatter"
	"github.com/alexanderramin/liftoff/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type counterKeyMap struct {
	More     key.Binding
	Less     key.Binding
	Complete key.Binding
	Done     key.Binding
	Next     key.Binding
}

var counterKeys = counterKeyMap{
	More:     key.NewBinding(key.WithKeys("+", "=", "up", "k"), key.WithHelp("+/↑", "rep")),
	Less:     key.NewBinding(key.WithKeys("-", "down", "j"), key.WithHelp("-/↓", "rep")),
	Complete: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "complete")),
	Done:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "complete+next")),
	Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
}

// counterView is the rep counter for the current set. It drives the
// session directly and reports each transition with sessionUpdatedMsg.
type counterView struct {
	state *SharedState
}

func newCounterView(state *SharedState) *counterView {
	return &counterView{state: state}
}

func (v *counterView) ID() ViewID    { return ViewCounter }
func (v *counterView) Title() string { return "Workout" }

func (v *counterView) ShortHelp() []key.Binding {
	return []key.Binding{counterKeys.More, counterKeys.Less, counterKeys.Complete, counterKeys.Done, counterKeys.Next}
}

func (v *counterView) Init() tea.Cmd { return nil }

func (v *counterView) current() (session.CounterState, bool) {
	st, ok := v.state.Session.State().(session.CounterState)
	return st, ok
}

func (v *counterView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	st, ok := v.current()
	if !ok {
		return v, nil
	}
	ctrl := v.state.Session
	reps := st.Set().Reps

	switch {
	case key.Matches(keyMsg, counterKeys.More):
		return v, sessionUpdated(ctrl.UpdateReps(st.SetIndex, reps+1))

	case key.Matches(keyMsg, counterKeys.Less):
		if reps == 0 {
			return v, nil
		}
		return v, sessionUpdated(ctrl.UpdateReps(st.SetIndex, reps-1))

	case key.Matches(keyMsg, counterKeys.Complete):
		return v, sessionUpdated(ctrl.CompleteSet(st.SetIndex))

	case key.Matches(keyMsg, counterKeys.Done):
		if err := ctrl.CompleteSet(st.SetIndex); err != nil {
			return v, sessionUpdated(err)
		}
		return v, sessionUpdated(ctrl.Advance(context.Background()))

	case key.Matches(keyMsg, counterKeys.Next):
		return v, sessionUpdated(ctrl.Advance(context.Background()))
	}
	return v, nil
}

func (v *counterView) View() string {
	st, ok := v.current()
	if !ok {
		return ""
	}
	w := st.Workout
	ex := st.Exercise()
	set := st.Set()

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(ex.Exercise.Name))
	b.WriteString("  " + formatter.GroupBadge(ex.Exercise.MuscleGroup))
	b.WriteString(formatter.Dim(fmt.Sprintf("  exercise %d/%d", st.ExerciseIndex+1, len(w.Exercises))))
	b.WriteString("\n")
	if ex.Exercise.Description != "" {
		b.WriteString(formatter.Dim(ex.Exercise.Description) + "\n")
	}
	b.WriteString("\n")

	status := formatter.StyleYellow.Render("○ not done")
	if set.Completed {
		status = formatter.StyleGreen.Render("✔ done")
	}
	repsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorHeader).
		Padding(0, 3).
		Render(formatter.Bold(formatter.Plural(set.Reps, "rep")))
	b.WriteString(formatter.Bold(fmt.Sprintf("Set %d of %d", st.SetIndex+1, len(ex.Sets))) + "  " + status + "\n")
	b.WriteString(repsBox + "\n\n")

	b.WriteString(formatter.SetProgress(w.CompletedSets(), w.TotalSets(), 24) + "\n\n")
	b.WriteString(formatter.RenderTree(formatter.WorkoutTree(w, st.ExerciseIndex, st.SetIndex)))
	return b.String()
}
