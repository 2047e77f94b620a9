package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LevelColor returns the lipgloss style corresponding to a violation level.
func LevelColor(level domain.ViolationLevel) lipgloss.Style {
	switch level {
	case domain.LevelViolation:
		return StyleRed
	case domain.LevelWarning:
		return StyleYellow
	case domain.LevelInfo:
		return StyleBlue
	default:
		return StyleDim
	}
}

// LevelPill returns a colored indicator string such as "● VIOLATION".
func LevelPill(level domain.ViolationLevel) string {
	switch level {
	case domain.LevelViolation:
		return StyleRed.Render("● VIOLATION")
	case domain.LevelWarning:
		return StyleYellow.Render("● WARNING")
	case domain.LevelInfo:
		return StyleBlue.Render("● INFO")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// ActivityPill returns a colored label for an activity type.
func ActivityPill(activityType domain.ActivityType) string {
	switch activityType {
	case domain.ActivityDriving:
		return StyleGreen.Render("● Driving")
	case domain.ActivityBreak:
		return StyleBlue.Render("○ Break")
	case domain.ActivityRest:
		return StylePurple.Render("○ Rest")
	case domain.ActivityOtherWork:
		return StyleYellow.Render("● Other work")
	case domain.ActivityStartWork:
		return StyleFg.Render("▶ Start work")
	case domain.ActivityEndWork:
		return StyleFg.Render("■ End work")
	default:
		return StyleDim.Render(string(activityType))
	}
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
