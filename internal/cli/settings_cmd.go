package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/drivetime/internal/cli/formatter"
	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage default durations and the weekly-rest reference",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsRestReferenceCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			defaults, err := app.Settings.Defaults(ctx)
			if err != nil {
				return err
			}

			headers := []string{"ACTIVITY", "DEFAULT DURATION"}
			rows := make([][]string, 0, len(domain.DurationalActivityTypes))
			for _, at := range domain.DurationalActivityTypes {
				rows = append(rows, []string{
					formatter.ActivityPill(at),
					formatter.Duration(defaults[at].Duration()),
				})
			}

			content := formatter.RenderTable(headers, rows) + "\n"

			ref, err := app.Settings.LastWeeklyRestEnd(ctx)
			if err != nil {
				return err
			}
			if ref != nil {
				content += formatter.Dim("Weekly-rest reference: "+formatter.Timestamp(*ref)) + "\n"
			} else {
				content += formatter.Dim("Weekly-rest reference: not set") + "\n"
			}

			fmt.Print(formatter.RenderBox("Settings", content))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var hours, minutes int
	activityType := domain.ActivityDriving

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the default duration for an activity type",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			defaults, err := app.Settings.Defaults(ctx)
			if err != nil {
				return err
			}
			defaults[activityType] = domain.ActivityDefaults{Hours: hours, Minutes: minutes}

			if err := app.Settings.SaveDefaults(ctx, defaults); err != nil {
				return err
			}
			fmt.Printf("Default for %s set to %s\n",
				activityType, formatter.Duration(defaults[activityType].Duration()))
			return nil
		},
	}

	cmd.Flags().Var(newActivityTypeValue(&activityType), "type", "Activity type to configure")
	cmd.Flags().IntVar(&hours, "hours", 0, "Default hours")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Default minutes")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newSettingsRestReferenceCmd(app *App) *cobra.Command {
	var atStr string
	var clear bool

	cmd := &cobra.Command{
		Use:   "rest-reference",
		Short: "Set or clear the end of the last known weekly rest",
		Long: "The weekly-rest reference anchors all weekly-cycle accounting.\n" +
			"Set it to the end of the last qualifying weekly rest taken before\n" +
			"the first logged activity.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if clear {
				if err := app.Settings.ClearLastWeeklyRestEnd(ctx); err != nil {
					return err
				}
				fmt.Println("Weekly-rest reference cleared.")
				return nil
			}

			if atStr == "" {
				return fmt.Errorf("either --at or --clear is required")
			}
			at, err := parseLocalTime(atStr)
			if err != nil {
				return err
			}
			if err := app.Settings.SaveLastWeeklyRestEnd(ctx, at); err != nil {
				return err
			}
			fmt.Printf("Weekly-rest reference set to %s\n", formatter.Timestamp(at))
			return nil
		},
	}

	cmd.Flags().StringVar(&atStr, "at", "", `Reference instant, e.g. "2025-03-10 06:00" (local)`)
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the reference")

	return cmd
}
