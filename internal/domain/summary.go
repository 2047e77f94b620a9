package domain

import "time"

// RestDebt is an outstanding weekly-rest compensation obligation: the
// hours a reduced weekly rest fell short of a full one, and the deadline
// by which they must be repaid in one block attached to another rest.
type RestDebt struct {
	Amount   time.Duration
	Deadline time.Time
}

// StatusSummary is the full remaining-budget snapshot for the dashboard.
// Remaining values are raw deltas and go negative once a limit is
// crossed.
type StatusSummary struct {
	RemainingContinuousDriving    time.Duration
	RemainingDailyDrivingNormal   time.Duration
	RemainingDailyDrivingExtended time.Duration
	RemainingDailyWorkNormal      time.Duration
	RemainingDailyWorkExtended    time.Duration
	RemainingWeeklyDriving        time.Duration
	RemainingBiWeeklyDriving      time.Duration
	TimeUntilWeeklyRestDue        time.Duration

	ExtendedDrivesUsedThisWeek      int
	ExtendedWorkPeriodsUsedThisWeek int
	ReducedRestsUsed                int

	TotalUncompensatedRest    time.Duration
	UncompensatedRestDeadline *time.Time

	SplitBreakFirstPartTaken bool
	CurrentWeekKey           string
	NextActionSuggestion     Suggestion
}
