package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua       = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// GroupColor returns the style used for a muscle group label.
func GroupColor(g domain.MuscleGroup) lipgloss.Style {
	switch g {
	case domain.MuscleShoulders:
		return StylePurple
	case domain.MuscleLegs:
		return StyleBlue
	case domain.MuscleBack:
		return StyleAqua
	case domain.MuscleArms:
		return StyleYellow
	case domain.MuscleChest:
		return StyleRed
	default:
		return StyleDim
	}
}

// GroupBadge returns a capitalized, colored muscle group label.
func GroupBadge(g domain.MuscleGroup) string {
	if g == "" {
		return StyleDim.Render("--")
	}
	s := string(g)
	return GroupColor(g).Render(strings.ToUpper(s[:1]) + s[1:])
}

// EnergyMeter renders an energy level as filled and empty dots, e.g. "●●●○○ 3/5".
func EnergyMeter(level int) string {
	level = domain.ClampInt(level, 0, domain.MaxEnergyLevel)
	style := StyleGreen
	switch {
	case level <= 2:
		style = StyleRed
	case level == 3:
		style = StyleYellow
	}
	dots := style.Render(strings.Repeat("●", level)) + StyleDim.Render(strings.Repeat("○", domain.MaxEnergyLevel-level))
	return fmt.Sprintf("%s %d/%d", dots, level, domain.MaxEnergyLevel)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
