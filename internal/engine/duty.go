package engine

import (
	"fmt"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
)

// weekRights tracks per-ISO-week consumption of the two extension rights.
type weekRights struct {
	extendedDrives      map[string]int
	extendedWorkPeriods map[string]int
}

func newWeekRights() weekRights {
	return weekRights{
		extendedDrives:      make(map[string]int),
		extendedWorkPeriods: make(map[string]int),
	}
}

// CheckDutyPeriods segments the augmented timeline into duty periods
// bounded by qualifying daily rests (>= 9h, or the initial reference
// point) and evaluates the daily driving, duty-length and rest rules for
// each completed period, then for the still-open trailing period.
//
// Extension rights (up to 2 extended drives and 2 extended duty periods)
// are consumed per ISO week of the period's end; reduced daily rests (up
// to 3) are consumed per weekly-rest cycle.
func CheckDutyPeriods(activities []domain.Activity, lastWeeklyRestEnd *time.Time, now time.Time) []domain.Violation {
	var violations []domain.Violation

	lastQualifyingRestEnd := dutyReference(activities, lastWeeklyRestEnd, now)
	rights := newWeekRights()
	var driveInPeriod time.Duration
	reducedRestsUsed := 0

	for _, act := range activities {
		if !act.End.After(lastQualifyingRestEnd) {
			continue
		}

		if act.Type == domain.ActivityDriving {
			driveInPeriod += act.End.Sub(maxTime(act.Start, lastQualifyingRestEnd))
		}

		if act.Type != domain.ActivityRest {
			continue
		}
		restDuration := act.Duration()
		if restDuration >= WeeklyRestReduced {
			// A weekly-qualifying rest starts a fresh cycle of reduced
			// daily rest allowances.
			reducedRestsUsed = 0
		}
		if restDuration < DailyRestReduced {
			continue
		}

		periodEnd := act.Start
		periodDuration := periodEnd.Sub(lastQualifyingRestEnd)

		if periodDuration > 24*time.Hour {
			violations = append(violations, domain.Violation{
				Level:      domain.LevelViolation,
				Message:    "No daily rest within 24 hours of the end of the previous rest.",
				ActivityID: act.ID,
			})
		}

		violations = append(violations, checkPeriodLimits(periodDuration, driveInPeriod, WeekKey(periodEnd), &rights, act.ID)...)

		if restDuration < DailyRestNormal {
			if reducedRestsUsed < MaxReducedDailyRestsPerCycle {
				reducedRestsUsed++
			} else {
				violations = append(violations, domain.Violation{
					Level: domain.LevelViolation,
					Message: fmt.Sprintf("Insufficient daily rest: no reduced-rest allowance left this cycle (rest was %s, 11h required).",
						formatDuration(restDuration)),
					ActivityID: act.ID,
				})
			}
		}

		lastQualifyingRestEnd = *act.End
		driveInPeriod = 0
	}

	// The trailing open period is checked with the same thresholds but
	// consumes no rights; it only reports on the live period.
	if len(activities) > 0 {
		last := activities[len(activities)-1]
		if last.End.After(lastQualifyingRestEnd) {
			openDuration := last.End.Sub(lastQualifyingRestEnd)
			var openDrive time.Duration
			for _, act := range activities {
				if act.Type == domain.ActivityDriving && act.End.After(lastQualifyingRestEnd) {
					openDrive += act.End.Sub(maxTime(act.Start, lastQualifyingRestEnd))
				}
			}

			if openDuration > 24*time.Hour {
				violations = append(violations, domain.Violation{
					Level:      domain.LevelViolation,
					Message:    "More than 24 hours since the last qualifying rest without a new daily rest.",
					ActivityID: last.ID,
				})
			}

			weekKey := WeekKey(*last.End)
			if openDuration > DailyWorkExtended ||
				(openDuration > DailyWorkNormal && rights.extendedWorkPeriods[weekKey] >= MaxExtendedWorkPeriodsPerWeek) {
				violations = append(violations, domain.Violation{
					Level: domain.LevelViolation,
					Message: fmt.Sprintf("Daily duty limit exceeded in the current duty period: %s.",
						formatDuration(openDuration)),
					ActivityID: last.ID,
				})
			}
			if openDrive > DailyDrivingExtended ||
				(openDrive > DailyDrivingNormal && rights.extendedDrives[weekKey] >= MaxExtendedDrivesPerWeek) {
				violations = append(violations, domain.Violation{
					Level: domain.LevelViolation,
					Message: fmt.Sprintf("Daily driving limit exceeded in the current duty period: %s.",
						formatDuration(openDrive)),
					ActivityID: last.ID,
				})
			}
		}
	}

	return violations
}

// checkPeriodLimits applies the duty-length and driving thresholds for one
// completed period, consuming extension rights from the owning week.
func checkPeriodLimits(periodDuration, driveInPeriod time.Duration, weekKey string, rights *weekRights, activityID string) []domain.Violation {
	var violations []domain.Violation

	switch {
	case periodDuration > DailyWorkExtended,
		periodDuration > DailyWorkNormal && rights.extendedWorkPeriods[weekKey] >= MaxExtendedWorkPeriodsPerWeek:
		violations = append(violations, domain.Violation{
			Level:      domain.LevelViolation,
			Message:    fmt.Sprintf("Daily duty limit exceeded: duty period lasted %s.", formatDuration(periodDuration)),
			ActivityID: activityID,
		})
	case periodDuration > DailyWorkNormal:
		rights.extendedWorkPeriods[weekKey]++
	}

	switch {
	case driveInPeriod > DailyDrivingExtended,
		driveInPeriod > DailyDrivingNormal && rights.extendedDrives[weekKey] >= MaxExtendedDrivesPerWeek:
		violations = append(violations, domain.Violation{
			Level:      domain.LevelViolation,
			Message:    fmt.Sprintf("Daily driving limit exceeded: %s driven in one duty period.", formatDuration(driveInPeriod)),
			ActivityID: activityID,
		})
	case driveInPeriod > DailyDrivingNormal:
		rights.extendedDrives[weekKey]++
	}

	return violations
}

// dutyReference picks the starting reference for duty accounting: the
// caller-supplied last weekly rest end, else the first activity's start,
// else now.
func dutyReference(activities []domain.Activity, lastWeeklyRestEnd *time.Time, now time.Time) time.Time {
	if lastWeeklyRestEnd != nil {
		return *lastWeeklyRestEnd
	}
	if len(activities) > 0 {
		return activities[0].Start
	}
	return now
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
