package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/liftoff/internal/domain"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"future reads as today", now.Add(48 * time.Hour), "Today"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today 07:30", HumanDateFrom(time.Date(2026, 2, 7, 7, 30, 0, 0, time.UTC), now))
	assert.Equal(t, "Yesterday 21:05", HumanDateFrom(time.Date(2026, 2, 6, 21, 5, 0, 0, time.UTC), now))
	assert.Equal(t, "Sep 30, 2022", HumanDateFrom(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), now))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "1b4e28ba", ShortID("workout-1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	assert.Equal(t, "abc", ShortID("abc"))
	assert.Equal(t, "", ShortID(""))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 rep", Plural(1, "rep"))
	assert.Equal(t, "0 reps", Plural(0, "rep"))
	assert.Equal(t, "12 reps", Plural(12, "rep"))
}

func TestGroupBadge(t *testing.T) {
	assert.Equal(t, "Shoulders", stripANSI(GroupBadge(domain.MuscleShoulders)))
	assert.Equal(t, "--", stripANSI(GroupBadge("")))
}

func TestEnergyMeter(t *testing.T) {
	assert.Equal(t, "●●●○○ 3/5", stripANSI(EnergyMeter(3)))
	assert.Equal(t, "●●●●● 5/5", stripANSI(EnergyMeter(9)))
	assert.Equal(t, "○○○○○ 0/5", stripANSI(EnergyMeter(-1)))
}
