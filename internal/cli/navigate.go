package cli

import (
	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/alexanderramin/liftoff/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages sent by the phase forms when they complete. The appModel turns
// each into a session transition.

type energyChosenMsg struct {
	level int
}

type methodChosenMsg struct {
	useAI bool
}

type credentialEnteredMsg struct {
	key string
}

type aiPromptMsg struct {
	prompt domain.AIWorkoutPrompt
}

type exerciseChosenMsg struct {
	exerciseID string
}

// aiResultMsg carries the result of the asynchronous AI request.
type aiResultMsg struct {
	outcome *session.AIOutcome
	err     error
}

// sessionUpdatedMsg is sent by views that drive the session directly. The
// appModel reports err and follows any phase change.
type sessionUpdatedMsg struct {
	err error
}

// restartMsg starts a new session from the energy screen.
type restartMsg struct{}

func sendMsg(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func sessionUpdated(err error) tea.Cmd {
	return sendMsg(sessionUpdatedMsg{err: err})
}
