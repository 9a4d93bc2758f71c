package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/liftoff/internal/cli/formatter"
	"github.com/alexanderramin/liftoff/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// liftoffHuhTheme returns a custom huh theme using the Gruvbox palette.
func liftoffHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themedForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(liftoffHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

var energyLabels = map[int]string{
	1: "Exhausted",
	2: "Tired",
	3: "Okay",
	4: "Good",
	5: "Fired up",
}

func newEnergyView(state *SharedState) *formView {
	level := 3
	options := make([]huh.Option[int], 0, domain.MaxEnergyLevel)
	for l := domain.MinEnergyLevel; l <= domain.MaxEnergyLevel; l++ {
		options = append(options, huh.NewOption(fmt.Sprintf("%d  %s", l, energyLabels[l]), l))
	}

	form := themedForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("How is your energy today?").
			Description("Lower energy means fewer sets and reps.").
			Options(options...).
			Value(&level),
	))

	return newFormView(state, ViewEnergy, "Energy", form, func() tea.Cmd {
		return sendMsg(energyChosenMsg{level: level})
	})
}

func newMethodView(state *SharedState, energyLevel int) *formView {
	useAI := false
	form := themedForm(huh.NewGroup(
		huh.NewSelect[bool]().
			Title("How should we build your workout?").
			Options(
				huh.NewOption("Standard workout", false),
				huh.NewOption("AI workout (Gemini)", true),
			).
			Value(&useAI),
	))

	v := newFormView(state, ViewMethod, "Method", form, func() tea.Cmd {
		return sendMsg(methodChosenMsg{useAI: useAI})
	})
	return v.withIntro(formatter.Dim("Energy ") + formatter.EnergyMeter(energyLevel))
}

func newAPIKeyView(state *SharedState) *formView {
	var apiKey string
	form := themedForm(huh.NewGroup(
		huh.NewInput().
			Title("Gemini API key").
			Description("Stored locally and used for AI workouts.").
			EchoMode(huh.EchoModePassword).
			Value(&apiKey).
			Validate(validateRequired),
	))

	return newFormView(state, ViewAISetup, "API Key", form, func() tea.Cmd {
		return sendMsg(credentialEnteredMsg{key: strings.TrimSpace(apiKey)})
	})
}

func newAIPromptView(state *SharedState) *formView {
	var (
		goal        string
		experience  = domain.ExperienceBeginner
		limitations string
	)
	form := themedForm(huh.NewGroup(
		huh.NewInput().
			Title("What is your fitness goal?").
			Placeholder("build strength").
			Value(&goal).
			Validate(validateRequired),
		huh.NewSelect[domain.Experience]().
			Title("Experience level").
			Options(
				huh.NewOption("Beginner", domain.ExperienceBeginner),
				huh.NewOption("Intermediate", domain.ExperienceIntermediate),
				huh.NewOption("Advanced", domain.ExperienceAdvanced),
			).
			Value(&experience),
		huh.NewInput().
			Title("Limitations or injuries").
			Placeholder("none").
			Value(&limitations),
	))

	return newFormView(state, ViewAIForm, "AI Workout", form, func() tea.Cmd {
		return sendMsg(aiPromptMsg{prompt: domain.AIWorkoutPrompt{
			FitnessGoal: goal,
			Experience:  experience,
			Limitations: limitations,
		}})
	})
}

func newExerciseChoiceView(state *SharedState, w *domain.Workout) *formView {
	var exerciseID string
	options := make([]huh.Option[string], 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		reps := 0
		if len(ex.Sets) > 0 {
			reps = ex.Sets[0].Reps
		}
		label := fmt.Sprintf("%s (%s)  %d × %d", ex.Exercise.Name, ex.Exercise.MuscleGroup, len(ex.Sets), reps)
		options = append(options, huh.NewOption(label, ex.Exercise.ID))
	}

	form := themedForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Start with which exercise?").
			Description("The rest follow in order.").
			Options(options...).
			Value(&exerciseID),
	))

	intro := formatter.SourceBadge(w.AIGenerated) + "  " +
		formatter.EnergyMeter(w.EnergyLevel) + "  " +
		formatter.Dim(formatter.Plural(w.TotalSets(), "set"))
	if state.Notice != "" {
		intro = formatter.StyleYellow.Render("! "+state.Notice) + "\n" + intro
	}

	v := newFormView(state, ViewExercises, "Exercises", form, func() tea.Cmd {
		return sendMsg(exerciseChosenMsg{exerciseID: exerciseID})
	})
	return v.withIntro(intro)
}
