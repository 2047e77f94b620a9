package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/drivetime/internal/cli/formatter"
	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/spf13/cobra"
)

// timeLayout is the local wall-clock format for --start/--end flags.
const timeLayout = "2006-01-02 15:04"

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage the activity log",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityStartCmd(app),
		newActivityStopCmd(app),
		newActivityListCmd(app),
		newActivityRemoveCmd(app),
	)

	return cmd
}

func parseLocalTime(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (expected %q)", raw, timeLayout)
	}
	return t.UTC(), nil
}

func newActivityAddCmd(app *App) *cobra.Command {
	var startStr, endStr, durationStr string
	var interactive bool
	activityType := domain.ActivityDriving

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a completed or ongoing activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Flag-less invocation on a terminal opens the entry form.
			if interactive || (app.interactive() && startStr == "" && !cmd.Flags().Changed("type")) {
				return runActivityForm(ctx, app)
			}

			if startStr == "" {
				return fmt.Errorf("--start is required (or run interactively)")
			}
			start, err := parseLocalTime(startStr)
			if err != nil {
				return err
			}

			a := &domain.Activity{Type: activityType, Start: start}
			switch {
			case endStr != "":
				end, err := parseLocalTime(endStr)
				if err != nil {
					return err
				}
				a.End = &end
			case durationStr != "":
				d, err := time.ParseDuration(durationStr)
				if err != nil {
					return fmt.Errorf("invalid duration %q: %w", durationStr, err)
				}
				end := start.Add(d)
				a.End = &end
			default:
				// Neither end nor duration: the activity is ongoing.
			}

			if err := app.Activities.Add(ctx, a); err != nil {
				return err
			}
			fmt.Printf("Added %s activity %s\n", a.Type, a.ID)
			return nil
		},
	}

	cmd.Flags().Var(newActivityTypeValue(&activityType), "type", "Activity type (driving, break, rest, other_work, ...)")
	cmd.Flags().StringVar(&startStr, "start", "", `Start time, e.g. "2025-03-15 08:00" (local)`)
	cmd.Flags().StringVar(&endStr, "end", "", "End time; omit with --duration or for an ongoing activity")
	cmd.Flags().StringVar(&durationStr, "duration", "", `Duration from start, e.g. "4h30m"`)
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Fill in the activity via a form")

	return cmd
}

func newActivityStartCmd(app *App) *cobra.Command {
	activityType := domain.ActivityDriving

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start an ongoing activity now",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Activities.Start(context.Background(), activityType)
			if err != nil {
				return err
			}
			fmt.Printf("Started %s at %s (%s)\n", a.Type, formatter.Timestamp(a.Start), a.ID)
			return nil
		},
	}

	cmd.Flags().Var(newActivityTypeValue(&activityType), "type", "Activity type to start")
	return cmd
}

func newActivityStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the ongoing activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Activities.Stop(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Stopped %s after %s\n", a.Type, formatter.Duration(a.Duration()))
			return nil
		},
	}
}

func newActivityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.List(context.Background())
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				fmt.Println("No activities logged.")
				return nil
			}

			headers := []string{"ID", "TYPE", "START", "END", "DURATION"}
			rows := make([][]string, 0, len(activities))
			for _, a := range activities {
				end := formatter.Dim("ongoing")
				duration := formatter.Dim("--")
				if a.End != nil {
					end = formatter.Timestamp(*a.End)
					duration = formatter.Duration(a.Duration())
				}
				rows = append(rows, []string{
					formatter.TruncID(a.ID),
					formatter.ActivityPill(a.Type),
					formatter.Timestamp(a.Start),
					end,
					duration,
				})
			}

			fmt.Print(formatter.RenderBox("Activities", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Activities.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed activity %s\n", args[0])
			return nil
		},
	}
}
