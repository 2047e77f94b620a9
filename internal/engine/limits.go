package engine

import "time"

// Regulation limits, EC 561/2006 style. All durations are wall-clock.
const (
	ContinuousDrivingLimit = 4*time.Hour + 30*time.Minute

	DailyDrivingNormal   = 9 * time.Hour
	DailyDrivingExtended = 10 * time.Hour
	WeeklyDrivingLimit   = 56 * time.Hour
	BiWeeklyDrivingLimit = 90 * time.Hour

	DailyWorkNormal   = 13 * time.Hour
	DailyWorkExtended = 15 * time.Hour

	MinBreakAfterDriving = 45 * time.Minute
	SplitBreakFirstPart  = 15 * time.Minute
	SplitBreakSecondPart = 30 * time.Minute

	DailyRestNormal   = 11 * time.Hour
	DailyRestReduced  = 9 * time.Hour
	WeeklyRestNormal  = 45 * time.Hour
	WeeklyRestReduced = 24 * time.Hour

	MaxSpanBeforeWeeklyRest = 6 * 24 * time.Hour
)

// Weekly rights, reset per ISO week (extensions) or per weekly-rest cycle
// (reduced daily rests).
const (
	MaxExtendedDrivesPerWeek      = 2
	MaxExtendedWorkPeriodsPerWeek = 2
	MaxReducedDailyRestsPerCycle  = 3
)

const (
	// drivingTolerance absorbs entry rounding before the continuous-driving
	// limit is reported as breached.
	drivingTolerance = 5 * time.Minute

	// debtEpsilon is the residual below which a rest debt counts as settled.
	debtEpsilon = time.Minute

	// restDebtGrace is how long after the end of the week of a reduced
	// weekly rest the compensation must be completed.
	restDebtGrace = 14 * 24 * time.Hour
)
