package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/drivetime/internal/cli/formatter"
	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	var failOnViolation bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the full activity log against driving-time rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			violations, err := app.Compliance.CheckViolations(context.Background())
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatViolations(violations))

			if failOnViolation {
				for _, v := range violations {
					if v.Level == domain.LevelViolation {
						return fmt.Errorf("found %d findings including hard violations", len(violations))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failOnViolation, "fail", false, "Exit non-zero when hard violations are present")
	return cmd
}
