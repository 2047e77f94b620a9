package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drivetime/internal/domain"
)

// FormatSummary formats a StatusSummary into a styled CLI dashboard string.
func FormatSummary(s *domain.StatusSummary) string {
	var b strings.Builder

	headers := []string{"BUDGET", "REMAINING"}
	rows := [][]string{
		{"Continuous driving", BudgetStyled(s.RemainingContinuousDriving)},
		{"Daily driving (normal)", BudgetStyled(s.RemainingDailyDrivingNormal)},
		{"Daily driving (extension)", BudgetStyled(s.RemainingDailyDrivingExtended)},
		{"Daily duty (normal)", BudgetStyled(s.RemainingDailyWorkNormal)},
		{"Daily duty (extension)", BudgetStyled(s.RemainingDailyWorkExtended)},
		{"Weekly driving", BudgetStyled(s.RemainingWeeklyDriving)},
		{"Bi-weekly driving", BudgetStyled(s.RemainingBiWeeklyDriving)},
		{"Until weekly rest due", StyleFg.Render(LongDuration(s.TimeUntilWeeklyRestDue))},
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	rights := fmt.Sprintf("Extended drives %d/2, extended duty periods %d/2 this week; reduced daily rests %d/3 this cycle.",
		s.ExtendedDrivesUsedThisWeek, s.ExtendedWorkPeriodsUsedThisWeek, s.ReducedRestsUsed)
	b.WriteString(Dim(rights) + "\n")

	if s.SplitBreakFirstPartTaken {
		b.WriteString(Dim("Split break: first 15m part taken, a 30m part completes it.") + "\n")
	}

	if s.TotalUncompensatedRest > 0 {
		line := fmt.Sprintf("Uncompensated weekly rest: %s", Duration(s.TotalUncompensatedRest))
		if s.UncompensatedRestDeadline != nil {
			line += fmt.Sprintf(", due by %s", s.UncompensatedRestDeadline.Format("2006-01-02"))
		}
		b.WriteString(StyleYellow.Render(line) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(LevelPill(s.NextActionSuggestion.Level) + "  " +
		LevelColor(s.NextActionSuggestion.Level).Render(s.NextActionSuggestion.Message) + "\n")

	return RenderBox("Status "+s.CurrentWeekKey, b.String())
}

// FormatViolations formats the violation list, or a friendly all-clear.
func FormatViolations(violations []domain.Violation) string {
	if len(violations) == 0 {
		return StyleGreen.Render("No violations found.") + "\n"
	}

	var b strings.Builder
	for _, v := range violations {
		b.WriteString(LevelPill(v.Level) + "  " + StyleFg.Render(v.Message))
		if v.ActivityID != "" {
			b.WriteString("  " + TruncID(v.ActivityID))
		}
		b.WriteString("\n")
	}
	return RenderBox(fmt.Sprintf("%d findings", len(violations)), b.String())
}
