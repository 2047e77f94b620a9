package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Duration converts a duration into human-friendly "4h 30m" format.
// Negative values keep a single leading sign.
func Duration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	if h > 0 && m > 0 {
		return fmt.Sprintf("%s%dh %dm", sign, h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%s%dh", sign, h)
	}
	return fmt.Sprintf("%s%dm", sign, m)
}

// LongDuration renders a duration with a days component ("1d 4h 30m"),
// used for the multi-day weekly-rest countdowns.
func LongDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Round(time.Minute)
	days := int(d / (24 * time.Hour))
	if days == 0 {
		if sign == "-" {
			return sign + Duration(d)
		}
		return Duration(d)
	}
	rest := d % (24 * time.Hour)
	h := int(rest / time.Hour)
	m := int(rest % time.Hour / time.Minute)
	return fmt.Sprintf("%s%dd %dh %dm", sign, days, h, m)
}

// BudgetStyled renders a remaining budget, red when exhausted and yellow
// when under an hour remains.
func BudgetStyled(remaining time.Duration) string {
	text := Duration(remaining)
	switch {
	case remaining <= 0:
		return StyleRed.Render(text)
	case remaining <= time.Hour:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}

// Timestamp renders an instant for log listings.
func Timestamp(t time.Time) string {
	return t.Local().Format("Mon Jan 2 15:04")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
