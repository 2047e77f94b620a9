package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/drivetime/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show remaining driving, duty and rest budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			summary, err := app.Compliance.Summary(ctx)
			if err != nil {
				return err
			}

			if ongoing, err := app.Activities.Ongoing(ctx); err == nil && ongoing != nil {
				fmt.Printf("%s  since %s\n\n",
					formatter.ActivityPill(ongoing.Type),
					formatter.Timestamp(ongoing.Start))
			}

			fmt.Print(formatter.FormatSummary(summary))
			return nil
		},
	}
}
