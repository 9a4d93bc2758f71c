package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/liftoff/internal/cli/formatter"
	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/alexanderramin/liftoff/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	restartKey = key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "start over"))
	quitKey    = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
)

// appModel is the root bubbletea Model for the TUI. It owns one workout
// session and keeps a stack of the views visited in it, one per phase.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// loading is set while the AI request runs in its tea.Cmd.
	loading bool
	spinner spinner.Model

	// lastErr is the most recent rejected transition or persist failure.
	lastErr error
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:     app,
		Session: app.NewSession(),
	}

	m := appModel{
		state: state,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(formatter.StylePurple),
		),
	}
	m.viewStack = []View{newEnergyView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// syncView follows the session: a new phase pushes its view, a return to
// energy selection resets the stack.
func (m *appModel) syncView() tea.Cmd {
	st := m.state.Session.State()
	want := viewIDForPhase(st.Phase())
	if v := m.activeView(); v != nil && v.ID() == want {
		return nil
	}

	v := newViewForState(m.state, st)
	if want == ViewEnergy {
		m.viewStack = []View{v}
	} else {
		m.viewStack = append(m.viewStack, v)
	}
	return v.Init()
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Phase form results
	case energyChosenMsg:
		return m.apply(m.state.Session.SelectEnergy(msg.level))

	case methodChosenMsg:
		return m.apply(m.state.Session.SelectMethod(context.Background(), msg.useAI))

	case credentialEnteredMsg:
		if err := m.state.App.Credentials.Save(context.Background(), msg.key); err != nil {
			return m.apply(err)
		}
		return m.apply(m.state.Session.ConfirmCredential())

	case aiPromptMsg:
		m.loading = true
		m.lastErr = nil
		return m, tea.Batch(m.spinner.Tick, submitAIForm(m.state.Session, msg.prompt))

	case aiResultMsg:
		m.loading = false
		if msg.err == nil {
			m.state.Notice = msg.outcome.Notice()
		}
		return m.apply(msg.err)

	case exerciseChosenMsg:
		return m.apply(m.state.Session.SelectExercise(msg.exerciseID))

	case sessionUpdatedMsg:
		return m.apply(msg.err)

	case restartMsg:
		return m.restart()
	}

	return m.forward(msg)
}

// forward passes msg to the active view.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// apply records the outcome of a session transition and follows the phase.
// A form spent on a rejected transition is replaced with a fresh one.
func (m appModel) apply(err error) (tea.Model, tea.Cmd) {
	m.lastErr = err
	if err != nil {
		if fv, ok := m.activeView().(*formView); ok && fv.finished {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
	}
	return m, m.syncView()
}

func (m appModel) restart() (tea.Model, tea.Cmd) {
	if err := m.state.Session.Restart(); err != nil {
		m.lastErr = err
		return m, nil
	}
	m.state.Notice = ""
	m.lastErr = nil
	return m, m.syncView()
}

// submitAIForm runs the AI request off the update loop. The session stays
// busy until it returns.
func submitAIForm(ctrl *session.Controller, prompt domain.AIWorkoutPrompt) tea.Cmd {
	return func() tea.Msg {
		outcome, err := ctrl.SubmitAIForm(context.Background(), prompt)
		return aiResultMsg{outcome: outcome, err: err}
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if key.Matches(msg, quitKey) {
		m.quitting = true
		return m, tea.Quit
	}

	// Keys are dropped while the AI request runs.
	if m.loading {
		return m, nil
	}

	if key.Matches(msg, restartKey) {
		if m.state.Session.Phase() == session.PhaseEnergy {
			return m, nil
		}
		return m.restart()
	}

	// Form views receive every key so text fields can take 'q'.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		return m.forward(msg)
	}

	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}

	return m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	switch {
	case m.loading:
		sections = append(sections, "\n  "+m.spinner.View()+" "+formatter.Dim("Generating your workout..."))
	default:
		if v := m.activeView(); v != nil {
			sections = append(sections, v.View())
		}
	}

	if m.lastErr != nil {
		sections = append(sections, formatter.StyleRed.Render("✖ "+m.lastErr.Error()))
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("liftoff")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb
	if level := session.EnergyLevelOf(m.state.Session.State()); level > 0 {
		header += "  " + formatter.Dim("[") + formatter.EnergyMeter(level) + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if !m.loading {
		if v := m.activeView(); v != nil {
			for _, b := range v.ShortHelp() {
				hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
			}
		}
		if m.state.Session.Phase() != session.PhaseEnergy {
			hints = append(hints, formatter.Dim(restartKey.Help().Key+": "+restartKey.Help().Desc))
		}
	}
	hints = append(hints, formatter.Dim(quitKey.Help().Key+": "+quitKey.Help().Desc))

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput returns true if the active view handles its own text
// input and should receive all key events directly.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewEnergy, ViewMethod, ViewAISetup, ViewAIForm, ViewExercises:
		return true
	}
	return false
}
