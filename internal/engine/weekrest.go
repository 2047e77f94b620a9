package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
)

// weeklyRest is one weekly-qualifying rest (>= 24h), bucketed by the ISO
// week its end falls in.
type weeklyRest struct {
	id      string
	reduced bool
}

// restsByWeek groups weekly-qualifying rests by the week key of their end.
func restsByWeek(activities []domain.Activity) map[string][]weeklyRest {
	grouped := make(map[string][]weeklyRest)
	for _, act := range activities {
		if act.Type != domain.ActivityRest || act.Duration() < WeeklyRestReduced {
			continue
		}
		key := WeekKey(*act.End)
		grouped[key] = append(grouped[key], weeklyRest{
			id:      act.ID,
			reduced: act.Duration() < WeeklyRestNormal,
		})
	}
	return grouped
}

// invalidConsecutiveReduced returns the ids of reduced weekly rests that
// may not open a compensation debt: at most one normal-or-long weekly rest
// must occur in any two consecutive weeks, so when two adjacent weeks hold
// only reduced rests, the second week's rests are disqualified.
func invalidConsecutiveReduced(grouped map[string][]weeklyRest) map[string]bool {
	invalid := make(map[string]bool)
	keys := sortedWeekKeys(grouped)
	if len(keys) < 2 {
		return invalid
	}

	allWeeks := WeeksInRange(keys[0], keys[len(keys)-1])
	for i := 0; i+1 < len(allWeeks); i++ {
		week1 := grouped[allWeeks[i]]
		week2 := grouped[allWeeks[i+1]]
		if len(week1) > 0 && allReduced(week1) && len(week2) > 0 && allReduced(week2) {
			for _, rest := range week2 {
				invalid[rest.id] = true
			}
		}
	}
	return invalid
}

func allReduced(rests []weeklyRest) bool {
	for _, rest := range rests {
		if !rest.reduced {
			return false
		}
	}
	return true
}

func sortedWeekKeys(grouped map[string][]weeklyRest) []string {
	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// OutstandingRestDebts replays the timeline's weekly rests and returns the
// compensation debts still open, sorted by ascending deadline.
//
// The first valid reduced weekly rest in a week opens a debt of
// 45h - duration with a deadline two weeks past the end of that ISO week.
// Rests of 45h or longer settle open debts earliest-deadline-first with
// their surplus over 45h; residue below one minute counts as settled.
func OutstandingRestDebts(activities []domain.Activity, initialWeeklyRestEnd *time.Time) []domain.RestDebt {
	relevant := make([]domain.Activity, 0, len(activities))
	for _, act := range activities {
		if initialWeeklyRestEnd != nil && !act.End.After(*initialWeeklyRestEnd) {
			continue
		}
		relevant = append(relevant, act)
	}
	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Start.Before(relevant[j].Start)
	})

	invalid := invalidConsecutiveReduced(restsByWeek(relevant))

	var debts []domain.RestDebt
	weeksWithNormalRest := make(map[string]bool)
	weeksWithReducedRest := make(map[string]bool)

	for _, act := range relevant {
		if act.Type != domain.ActivityRest {
			continue
		}
		restDuration := act.Duration()
		weekKey := WeekKey(*act.End)

		switch {
		case restDuration >= WeeklyRestNormal:
			weeksWithNormalRest[weekKey] = true
			surplus := restDuration - WeeklyRestNormal
			if surplus > 0 {
				debts = settleDebts(debts, surplus)
			}
		case restDuration >= WeeklyRestReduced &&
			!invalid[act.ID] &&
			!weeksWithNormalRest[weekKey] &&
			!weeksWithReducedRest[weekKey]:
			debts = append(debts, domain.RestDebt{
				Amount:   WeeklyRestNormal - restDuration,
				Deadline: WeekEnd(*act.End).Add(restDebtGrace),
			})
			weeksWithReducedRest[weekKey] = true
		}
	}

	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].Deadline.Before(debts[j].Deadline)
	})
	return debts
}

// settleDebts pays surplus into the open debts in ascending deadline order
// and drops any debt paid down below the settlement epsilon.
func settleDebts(debts []domain.RestDebt, surplus time.Duration) []domain.RestDebt {
	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].Deadline.Before(debts[j].Deadline)
	})
	for i := range debts {
		if surplus <= 0 {
			break
		}
		payment := debts[i].Amount
		if surplus < payment {
			payment = surplus
		}
		debts[i].Amount -= payment
		surplus -= payment
	}

	remaining := debts[:0]
	for _, debt := range debts {
		if debt.Amount > debtEpsilon {
			remaining = append(remaining, debt)
		}
	}
	return remaining
}

// CheckWeeklyRest enforces the six-day rule and the ban on reduced weekly
// rests in two consecutive weeks.
func CheckWeeklyRest(activities []domain.Activity, lastWeeklyRestEnd *time.Time) []domain.Violation {
	if len(activities) == 0 {
		return nil
	}
	var violations []domain.Violation

	reference := weeklyRestReference(activities, lastWeeklyRestEnd)
	last := activities[len(activities)-1]
	if reference != nil && last.End.Sub(*reference) > MaxSpanBeforeWeeklyRest {
		onWeeklyRest := last.Type == domain.ActivityRest && last.Duration() >= WeeklyRestReduced
		if !onWeeklyRest {
			violations = append(violations, domain.Violation{
				Level:   domain.LevelViolation,
				Message: "More than six days of duty since the last weekly rest without starting a new one.",
			})
		}
	}

	grouped := restsByWeek(activities)
	keys := sortedWeekKeys(grouped)
	if len(keys) > 1 {
		allWeeks := WeeksInRange(keys[0], keys[len(keys)-1])
		for i := 0; i+1 < len(allWeeks); i++ {
			week1 := grouped[allWeeks[i]]
			week2 := grouped[allWeeks[i+1]]
			if len(week1) > 0 && allReduced(week1) && len(week2) > 0 && allReduced(week2) {
				violations = append(violations, domain.Violation{
					Level: domain.LevelViolation,
					Message: fmt.Sprintf("Reduced weekly rests in two consecutive weeks (%s, %s): at least one normal weekly rest (45h) is required in any two-week span.",
						allWeeks[i], allWeeks[i+1]),
					ActivityID: week2[0].id,
				})
			}
		}
	}
	return violations
}

// CheckRestCompensation reports when the earliest outstanding rest debt is
// already past its deadline.
func CheckRestCompensation(activities []domain.Activity, lastWeeklyRestEnd *time.Time, now time.Time) []domain.Violation {
	reference := lastWeeklyRestEnd
	if reference == nil && len(activities) > 0 {
		start := activities[0].Start
		reference = &start
	}
	debts := OutstandingRestDebts(activities, reference)
	if len(debts) == 0 || !debts[0].Deadline.Before(now) {
		return nil
	}
	return []domain.Violation{{
		Level: domain.LevelViolation,
		Message: fmt.Sprintf("Rest compensation deadline passed on %s: %s of reduced weekly rest is still owed.",
			debts[0].Deadline.Format("2006-01-02"), formatDuration(debts[0].Amount)),
	}}
}

// weeklyRestReference is the end of the most recent weekly-qualifying rest
// in the timeline, the caller-supplied reference if later (or if none in
// the timeline), else the first activity's start.
func weeklyRestReference(activities []domain.Activity, lastWeeklyRestEnd *time.Time) *time.Time {
	reference := lastWeeklyRestEnd
	for _, act := range activities {
		if act.Type == domain.ActivityRest && act.Duration() >= WeeklyRestReduced {
			if reference == nil || act.End.After(*reference) {
				end := *act.End
				reference = &end
			}
		}
	}
	if reference == nil && len(activities) > 0 {
		start := activities[0].Start
		reference = &start
	}
	return reference
}
