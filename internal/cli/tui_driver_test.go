package cli

import (
	"testing"

	"github.com/alexanderramin/liftoff/internal/session"
	"github.com/alexanderramin/liftoff/internal/teatest"
)

// TestDriver wraps teatest.Driver with liftoff-specific inspection methods.
// It provides access to appModel internals (view stack, session, loading
// flag) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// ChooseEnergy moves the energy select from its default of 3 to level and
// confirms it.
func (d *TestDriver) ChooseEnergy(level int) {
	d.T.Helper()
	for i := 3; i < level; i++ {
		d.PressDown()
	}
	for i := 3; i > level; i-- {
		d.PressUp()
	}
	d.PressEnter()
}

// ── liftoff-specific inspection ──────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// Session returns the controller driving the TUI.
func (d *TestDriver) Session() *session.Controller {
	return d.appModel().state.Session
}

// Phase returns the session's current phase.
func (d *TestDriver) Phase() session.Phase {
	return d.Session().Phase()
}

// Counter returns the counter state, failing the test outside the counter.
func (d *TestDriver) Counter() session.CounterState {
	d.T.Helper()
	st, ok := d.Session().State().(session.CounterState)
	if !ok {
		d.T.Fatalf("expected counter state, got phase %s", d.Phase())
	}
	return st
}

// Notice returns the notice shown after an AI fallback.
func (d *TestDriver) Notice() string {
	return d.appModel().state.Notice
}

// LastErr returns the last transition error shown in the status line.
func (d *TestDriver) LastErr() error {
	return d.appModel().lastErr
}

// Loading reports whether the spinner is up for an AI request.
func (d *TestDriver) Loading() bool {
	return d.appModel().loading
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
