package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/alexanderramin/liftoff/internal/repository"
	"github.com/alexanderramin/liftoff/internal/service"
)

// NoActiveSet passed to WorkoutTree marks nothing as in progress.
const NoActiveSet = -1

// WorkoutTree lists every exercise with its sets nested below it. The set
// at (activeExercise, activeSet) is highlighted.
func WorkoutTree(w *domain.Workout, activeExercise, activeSet int) []TreeItem {
	var items []TreeItem
	for i, ex := range w.Exercises {
		done := len(ex.Sets) > 0
		for _, s := range ex.Sets {
			done = done && s.Completed
		}
		items = append(items, TreeItem{
			Title:  ex.Exercise.Name,
			Done:   done,
			Active: i == activeExercise && !done,
			Detail: GroupBadge(ex.Exercise.MuscleGroup),
		})
		for j, s := range ex.Sets {
			items = append(items, TreeItem{
				Title:  fmt.Sprintf("Set %d", j+1),
				Level:  1,
				IsLast: j == len(ex.Sets)-1,
				Done:   s.Completed,
				Active: i == activeExercise && j == activeSet,
				Detail: Plural(s.Reps, "rep"),
			})
		}
	}
	return items
}

// FormatWorkout renders a workout card: metadata, set progress and the
// exercise tree.
func FormatWorkout(w *domain.Workout) string {
	groups := make([]string, 0, len(w.Exercises))
	for _, g := range w.MuscleGroups() {
		groups = append(groups, GroupBadge(g))
	}

	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-8s", label)), value)
	}
	row("ID", ShortID(w.ID))
	row("Date", HumanDate(w.Date))
	row("Energy", EnergyMeter(w.EnergyLevel))
	row("Groups", strings.Join(groups, Dim(", ")))
	row("Source", SourceBadge(w.AIGenerated))
	row("Status", CompletionPill(w.Completed))
	row("Progress", SetProgress(w.CompletedSets(), w.TotalSets(), 20))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(RenderTree(WorkoutTree(w, NoActiveSet, NoActiveSet)), "\n"))

	return RenderBox("Workout", b.String())
}

// FormatHistory renders recent workouts as a table, newest first.
func FormatHistory(summaries []repository.WorkoutSummary, now time.Time) string {
	if len(summaries) == 0 {
		return Dim("No workouts yet. Run liftoff to start one.") + "\n"
	}

	headers := []string{"ID", "WHEN", "ENERGY", "GROUPS", "SETS", "SOURCE"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		groups := make([]string, 0, len(s.MuscleGroups))
		for _, g := range s.MuscleGroups {
			groups = append(groups, GroupBadge(g))
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			RelativeDateFrom(s.Date, now),
			EnergyMeter(s.EnergyLevel),
			strings.Join(groups, Dim(", ")),
			fmt.Sprintf("%d/%d", s.CompletedSets, s.TotalSets),
			SourceBadge(s.AIGenerated),
		})
	}
	return RenderBox("History", RenderTable(headers, rows))
}

// FormatCatalog renders catalog exercises grouped in canonical order.
func FormatCatalog(exercises []domain.Exercise) string {
	headers := []string{"ID", "NAME", "GROUP", "DESCRIPTION"}
	rows := make([][]string, 0, len(exercises))
	for _, ex := range exercises {
		rows = append(rows, []string{
			Dim(ex.ID),
			Bold(ex.Name),
			GroupBadge(ex.MuscleGroup),
			ex.Description,
		})
	}
	return RenderBox("Exercises", RenderTable(headers, rows))
}

// FormatCredentialStatus describes where the Gemini key comes from.
func FormatCredentialStatus(source service.CredentialSource) string {
	switch source {
	case service.CredentialEnv:
		return StyleGreen.Render("● Gemini key set") + Dim(" (from "+service.APIKeyEnv+")") + "\n"
	case service.CredentialStored:
		return StyleGreen.Render("● Gemini key set") + Dim(" (stored in database)") + "\n"
	default:
		return StyleYellow.Render("○ No Gemini key") + Dim(" (AI workouts will ask for one)") + "\n"
	}
}
