package engine

import (
	"fmt"
	"time"
)

// formatDuration renders a duration as "4h 30m" (or "45m") for violation
// and suggestion messages. Negative values keep a single leading sign.
func formatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%s%dm", sign, m)
	}
	return fmt.Sprintf("%s%dh %02dm", sign, h, m)
}

// formatFullDuration renders a duration with a days component, e.g.
// "1d 4h 30m", for the longer weekly-rest countdowns.
func formatFullDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Round(time.Minute)
	days := int(d / (24 * time.Hour))
	rest := d % (24 * time.Hour)
	if days == 0 {
		return formatDuration(d)
	}
	h := int(rest / time.Hour)
	m := int(rest % time.Hour / time.Minute)
	return fmt.Sprintf("%s%dd %dh %02dm", sign, days, h, m)
}
