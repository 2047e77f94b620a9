package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/drivetime/internal/cli/formatter"
	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func drivetimeHuhTheme() *huh.Theme {
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

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateTime(raw string) error {
	if raw == "" {
		return fmt.Errorf("required")
	}
	_, err := time.ParseInLocation(timeLayout, raw, time.Local)
	if err != nil {
		return fmt.Errorf("expected %q", timeLayout)
	}
	return nil
}

func validateHoursMinutes(raw string) error {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}

// runActivityForm collects one activity through a huh form, pre-filling
// the duration from the saved defaults for the selected type.
func runActivityForm(ctx context.Context, app *App) error {
	defaults, err := app.Settings.Defaults(ctx)
	if err != nil {
		return err
	}

	activityType := domain.ActivityDriving
	startStr := time.Now().Format(timeLayout)
	hoursStr := ""
	minutesStr := ""
	ongoing := false

	typeSelect := huh.NewSelect[domain.ActivityType]().
		Title("Activity type").
		Options(
			huh.NewOption("Driving", domain.ActivityDriving),
			huh.NewOption("Break", domain.ActivityBreak),
			huh.NewOption("Rest", domain.ActivityRest),
			huh.NewOption("Other work", domain.ActivityOtherWork),
			huh.NewOption("Start work marker", domain.ActivityStartWork),
			huh.NewOption("End work marker", domain.ActivityEndWork),
		).
		Value(&activityType)

	form := huh.NewForm(
		huh.NewGroup(
			typeSelect,
			huh.NewInput().
				Title("Start (local time)").
				Placeholder(timeLayout).
				Value(&startStr).
				Validate(validateTime),
			huh.NewConfirm().
				Title("Still ongoing?").
				Value(&ongoing),
			huh.NewInput().
				Title("Duration hours (blank = saved default)").
				Value(&hoursStr).
				Validate(validateHoursMinutes),
			huh.NewInput().
				Title("Duration minutes").
				Value(&minutesStr).
				Validate(validateHoursMinutes),
		),
	).WithTheme(drivetimeHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	start, err := parseLocalTime(startStr)
	if err != nil {
		return err
	}

	a := &domain.Activity{Type: activityType, Start: start}
	if !ongoing {
		duration := defaults[activityType].Duration()
		if hoursStr != "" || minutesStr != "" {
			h, _ := strconv.Atoi(hoursStr)
			m, _ := strconv.Atoi(minutesStr)
			duration = time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
		}
		end := start.Add(duration)
		a.End = &end
	}

	if err := app.Activities.Add(ctx, a); err != nil {
		return err
	}
	fmt.Printf("Added %s activity %s\n", a.Type, a.ID)
	return nil
}
