package engine

import (
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
)

// CalculateSummary derives the full remaining-budget snapshot from the
// timeline. Ongoing activities are resolved at now, floored to the whole
// minute so a timer started at 18:00 shows nothing consumed until 18:01.
// The output is recomputed from scratch on every call.
func CalculateSummary(activities []domain.Activity, lastWeeklyRestEnd *time.Time, now time.Time) domain.StatusSummary {
	effectiveNow := now.Truncate(time.Minute)
	_, augmented := prepare(activities, effectiveNow)

	lastActivityEnd := effectiveNow
	var firstActivityStart *time.Time
	if len(augmented) > 0 {
		start := augmented[0].Start
		firstActivityStart = &start
		lastActivityEnd = *augmented[len(augmented)-1].End
	}
	currentWeekKey := WeekKey(lastActivityEnd)

	if len(activities) == 0 && lastWeeklyRestEnd == nil {
		return emptySummary(currentWeekKey)
	}

	_, continuous := TrackContinuousDriving(augmented)

	rights := summaryRights(augmented, lastWeeklyRestEnd, firstActivityStart, effectiveNow, currentWeekKey)

	debtReference := lastWeeklyRestEnd
	if debtReference == nil {
		debtReference = firstActivityStart
	}
	debts := OutstandingRestDebts(augmented, debtReference)

	// The live duty period runs from the last qualifying daily rest.
	ongoingStart := rights.lastRestEnd
	ongoingWork := lastActivityEnd.Sub(ongoingStart)
	var ongoingDrive time.Duration
	for _, act := range augmented {
		if act.Type == domain.ActivityDriving && act.End.After(ongoingStart) {
			ongoingDrive += act.End.Sub(maxTime(act.Start, ongoingStart))
		}
	}

	// An extension right is provisionally consumed as soon as the live
	// period crosses the normal threshold.
	if ongoingDrive > DailyDrivingNormal && rights.extendedDrives < MaxExtendedDrivesPerWeek {
		rights.extendedDrives++
	}
	if ongoingWork > DailyWorkNormal && rights.extendedWorkPeriods < MaxExtendedWorkPeriodsPerWeek {
		rights.extendedWorkPeriods++
	}

	weeklyTotals := WeeklyDrivingTotals(augmented)
	currentWeekDriving := weeklyTotals[currentWeekKey]
	previousWeekDriving := weeklyTotals[WeekKey(lastActivityEnd.Add(-7*24*time.Hour))]

	var timeSinceWeeklyRest time.Duration
	if ref := weeklyRestReference(augmented, lastWeeklyRestEnd); ref != nil {
		timeSinceWeeklyRest = lastActivityEnd.Sub(*ref)
	}

	var totalDebt time.Duration
	var nearestDeadline *time.Time
	for _, debt := range debts {
		totalDebt += debt.Amount
	}
	if len(debts) > 0 {
		deadline := debts[0].Deadline
		nearestDeadline = &deadline
	}

	summary := domain.StatusSummary{
		RemainingContinuousDriving:    ContinuousDrivingLimit - continuous.Accumulated,
		RemainingDailyDrivingNormal:   DailyDrivingNormal - minDuration(ongoingDrive, DailyDrivingNormal),
		RemainingDailyDrivingExtended: (DailyDrivingExtended - DailyDrivingNormal) - maxDuration(0, ongoingDrive-DailyDrivingNormal),
		RemainingDailyWorkNormal:      DailyWorkNormal - minDuration(ongoingWork, DailyWorkNormal),
		RemainingDailyWorkExtended:    (DailyWorkExtended - DailyWorkNormal) - maxDuration(0, ongoingWork-DailyWorkNormal),
		RemainingWeeklyDriving:        WeeklyDrivingLimit - currentWeekDriving,
		RemainingBiWeeklyDriving:      BiWeeklyDrivingLimit - (currentWeekDriving + previousWeekDriving),
		TimeUntilWeeklyRestDue:        MaxSpanBeforeWeeklyRest - timeSinceWeeklyRest,

		ExtendedDrivesUsedThisWeek:      rights.extendedDrives,
		ExtendedWorkPeriodsUsedThisWeek: rights.extendedWorkPeriods,
		ReducedRestsUsed:                rights.reducedRests,

		TotalUncompensatedRest:    totalDebt,
		UncompensatedRestDeadline: nearestDeadline,

		SplitBreakFirstPartTaken: continuous.SplitFirstPartTaken,
		CurrentWeekKey:           currentWeekKey,
	}

	summary.NextActionSuggestion = selectSuggestion(suggestionContext{
		summary:      summary,
		ongoingWork:  ongoingWork,
		ongoingDrive: ongoingDrive,
	})
	return summary
}

func emptySummary(currentWeekKey string) domain.StatusSummary {
	return domain.StatusSummary{
		RemainingContinuousDriving:    ContinuousDrivingLimit,
		RemainingDailyDrivingNormal:   DailyDrivingNormal,
		RemainingDailyDrivingExtended: DailyDrivingExtended - DailyDrivingNormal,
		RemainingDailyWorkNormal:      DailyWorkNormal,
		RemainingDailyWorkExtended:    DailyWorkExtended - DailyWorkNormal,
		RemainingWeeklyDriving:        WeeklyDrivingLimit,
		RemainingBiWeeklyDriving:      BiWeeklyDrivingLimit,
		TimeUntilWeeklyRestDue:        MaxSpanBeforeWeeklyRest,
		CurrentWeekKey:                currentWeekKey,
		NextActionSuggestion: domain.Suggestion{
			Level:   domain.LevelInfo,
			Message: "Log your first activity to start tracking.",
		},
	}
}

// rightsState is the weekly/cycle rights consumption visible in the
// summary: extensions used in the current ISO week and reduced daily
// rests used since the last weekly-qualifying rest.
type rightsState struct {
	extendedDrives      int
	extendedWorkPeriods int
	reducedRests        int
	lastRestEnd         time.Time
}

// summaryRights replays completed duty periods since the last
// weekly-qualifying rest and counts the rights they consumed.
func summaryRights(augmented []domain.Activity, lastWeeklyRestEnd, firstActivityStart *time.Time, now time.Time, currentWeekKey string) rightsState {
	lastWeekly := now
	if lastWeeklyRestEnd != nil {
		lastWeekly = *lastWeeklyRestEnd
	} else if firstActivityStart != nil {
		lastWeekly = *firstActivityStart
	}
	for i := len(augmented) - 1; i >= 0; i-- {
		act := augmented[i]
		if act.Type == domain.ActivityRest && act.Duration() >= WeeklyRestReduced {
			lastWeekly = *act.End
			break
		}
	}

	state := rightsState{lastRestEnd: lastWeekly}
	for _, act := range augmented {
		if !act.End.After(lastWeekly) {
			continue
		}
		if act.Type != domain.ActivityRest || act.Duration() < DailyRestReduced {
			continue
		}

		periodEnd := act.Start
		workDuration := periodEnd.Sub(state.lastRestEnd)
		var driveInPeriod time.Duration
		for _, a := range augmented {
			if a.Type == domain.ActivityDriving && a.End.After(state.lastRestEnd) && a.Start.Before(periodEnd) {
				driveInPeriod += minTime(*a.End, periodEnd).Sub(maxTime(a.Start, state.lastRestEnd))
			}
		}

		if WeekKey(periodEnd) == currentWeekKey {
			if driveInPeriod > DailyDrivingNormal {
				state.extendedDrives++
			}
			if workDuration > DailyWorkNormal {
				state.extendedWorkPeriods++
			}
		}
		if act.Duration() < DailyRestNormal {
			state.reducedRests++
		}
		state.lastRestEnd = *act.End
	}
	return state
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
