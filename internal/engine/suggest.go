package engine

import (
	"fmt"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
)

// suggestionContext carries everything the cascade predicates inspect.
// Remaining values are the raw, unclamped deltas from the summary.
type suggestionContext struct {
	summary      domain.StatusSummary
	ongoingWork  time.Duration
	ongoingDrive time.Duration
}

// totalRemainingDriving is the normal budget plus the extended slice while
// an extension right is still available this week.
func (c suggestionContext) totalRemainingDriving() time.Duration {
	total := c.summary.RemainingDailyDrivingNormal
	if c.summary.ExtendedDrivesUsedThisWeek < MaxExtendedDrivesPerWeek {
		total += c.summary.RemainingDailyDrivingExtended
	}
	return total
}

func (c suggestionContext) totalRemainingWork() time.Duration {
	total := c.summary.RemainingDailyWorkNormal
	if c.summary.ExtendedWorkPeriodsUsedThisWeek < MaxExtendedWorkPeriodsPerWeek {
		total += c.summary.RemainingDailyWorkExtended
	}
	return total
}

type suggestionRule struct {
	when  func(c suggestionContext) bool
	build func(c suggestionContext) domain.Suggestion
}

// suggestionCascade is evaluated top to bottom; the first matching rule
// wins and everything below it is suppressed.
var suggestionCascade = []suggestionRule{
	{
		when: func(c suggestionContext) bool { return c.summary.RemainingBiWeeklyDriving < 0 },
		build: func(c suggestionContext) domain.Suggestion {
			return violationSuggestion("Bi-weekly driving limit (90h) exceeded. You must not continue driving.")
		},
	},
	{
		when: func(c suggestionContext) bool { return c.summary.RemainingWeeklyDriving < 0 },
		build: func(c suggestionContext) domain.Suggestion {
			return violationSuggestion("Weekly driving limit (56h) exceeded. No more driving this week.")
		},
	},
	{
		when: func(c suggestionContext) bool { return c.summary.TimeUntilWeeklyRestDue < 0 },
		build: func(c suggestionContext) domain.Suggestion {
			return violationSuggestion("Six-day duty span exceeded. Start your weekly rest immediately.")
		},
	},
	{
		when: func(c suggestionContext) bool { return c.totalRemainingWork() < 0 },
		build: func(c suggestionContext) domain.Suggestion {
			return violationSuggestion("Daily duty limit exceeded. Start your daily rest immediately.")
		},
	},
	{
		when: func(c suggestionContext) bool { return c.totalRemainingDriving() < 0 },
		build: func(c suggestionContext) domain.Suggestion {
			return violationSuggestion("Daily driving limit exceeded. Start your daily rest immediately.")
		},
	},
	{
		when: func(c suggestionContext) bool { return c.summary.RemainingContinuousDriving < 0 },
		build: func(c suggestionContext) domain.Suggestion {
			return violationSuggestion(fmt.Sprintf("Continuous driving limit exceeded. Take a %s break now.",
				formatDuration(MinBreakAfterDriving)))
		},
	},
	{
		when: func(c suggestionContext) bool {
			return c.ongoingWork > DailyWorkNormal && c.summary.ExtendedWorkPeriodsUsedThisWeek > 0
		},
		build: func(c suggestionContext) domain.Suggestion {
			return warningSuggestion(fmt.Sprintf("Past the 13h duty mark, an extension right is in use. %s of duty left.",
				formatDuration(c.totalRemainingWork())))
		},
	},
	{
		when: func(c suggestionContext) bool {
			return c.ongoingDrive > DailyDrivingNormal && c.summary.ExtendedDrivesUsedThisWeek > 0
		},
		build: func(c suggestionContext) domain.Suggestion {
			return warningSuggestion(fmt.Sprintf("Past the 9h driving mark, an extension right is in use. %s of driving left.",
				formatDuration(c.totalRemainingDriving())))
		},
	},
	{
		when: func(c suggestionContext) bool { return c.totalRemainingWork() <= 0 },
		build: func(c suggestionContext) domain.Suggestion {
			return warningSuggestion("Daily duty budget is used up. Start your daily rest.")
		},
	},
	{
		when: func(c suggestionContext) bool { return c.totalRemainingDriving() <= 0 },
		build: func(c suggestionContext) domain.Suggestion {
			return warningSuggestion("Daily driving budget is used up. Start your daily rest.")
		},
	},
	{
		when: func(c suggestionContext) bool { return c.summary.RemainingContinuousDriving <= 0 },
		build: func(c suggestionContext) domain.Suggestion {
			return warningSuggestion(fmt.Sprintf("Continuous driving budget reached. Take a %s break.",
				formatDuration(MinBreakAfterDriving)))
		},
	},
	{
		when: func(c suggestionContext) bool { return c.summary.TimeUntilWeeklyRestDue <= 24*time.Hour },
		build: func(c suggestionContext) domain.Suggestion {
			return infoSuggestion(fmt.Sprintf("Weekly rest is coming up: %s left.",
				formatFullDuration(c.summary.TimeUntilWeeklyRestDue)))
		},
	},
	{
		when: func(c suggestionContext) bool { return c.summary.RemainingContinuousDriving <= 30*time.Minute },
		build: func(c suggestionContext) domain.Suggestion {
			return infoSuggestion(fmt.Sprintf("Continuous driving limit is close. Plan a %s break.",
				formatDuration(MinBreakAfterDriving)))
		},
	},
}

// selectSuggestion walks the priority cascade and returns the first match,
// falling back to the time left until the next break.
func selectSuggestion(c suggestionContext) domain.Suggestion {
	for _, rule := range suggestionCascade {
		if rule.when(c) {
			return rule.build(c)
		}
	}
	return infoSuggestion(fmt.Sprintf("%s until your next break.",
		formatDuration(c.summary.RemainingContinuousDriving)))
}

func violationSuggestion(msg string) domain.Suggestion {
	return domain.Suggestion{Level: domain.LevelViolation, Message: msg}
}

func warningSuggestion(msg string) domain.Suggestion {
	return domain.Suggestion{Level: domain.LevelWarning, Message: msg}
}

func infoSuggestion(msg string) domain.Suggestion {
	return domain.Suggestion{Level: domain.LevelInfo, Message: msg}
}
