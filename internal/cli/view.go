package cli

import (
	"github.com/alexanderramin/liftoff/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI. There is one view per
// session phase.
type ViewID int

const (
	ViewEnergy ViewID = iota
	ViewMethod
	ViewAISetup
	ViewAIForm
	ViewExercises
	ViewCounter
	ViewComplete
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// viewIDForPhase maps a session phase to the view that renders it.
func viewIDForPhase(p session.Phase) ViewID {
	switch p {
	case session.PhaseMethod:
		return ViewMethod
	case session.PhaseAISetup:
		return ViewAISetup
	case session.PhaseAIForm:
		return ViewAIForm
	case session.PhaseExercises:
		return ViewExercises
	case session.PhaseCounter:
		return ViewCounter
	case session.PhaseComplete:
		return ViewComplete
	default:
		return ViewEnergy
	}
}

// newViewForState builds the view for the session's current state.
func newViewForState(state *SharedState, st session.State) View {
	switch s := st.(type) {
	case session.MethodState:
		return newMethodView(state, s.EnergyLevel)
	case session.AISetupState:
		return newAPIKeyView(state)
	case session.AIFormState:
		return newAIPromptView(state)
	case session.ExercisesState:
		return newExerciseChoiceView(state, s.Workout)
	case session.CounterState:
		return newCounterView(state)
	case session.CompleteState:
		return newCompleteView(state, s.Workout)
	default:
		return newEnergyView(state)
	}
}
