package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
)

// WeeklyDrivingTotals apportions every driving activity across ISO week
// boundaries (Monday 00:00 UTC) and sums the driving time per week key.
func WeeklyDrivingTotals(activities []domain.Activity) map[string]time.Duration {
	totals := make(map[string]time.Duration)
	for _, act := range activities {
		if act.Type != domain.ActivityDriving {
			continue
		}
		for start, end := act.Start, *act.End; start.Before(end); {
			boundary := WeekEnd(start)
			segmentEnd := boundary
			if end.Before(boundary) {
				segmentEnd = end
			}
			totals[WeekKey(start)] += segmentEnd.Sub(start)
			start = segmentEnd
		}
	}
	return totals
}

// CheckWeeklyDriving reports weeks over the 56h single-week limit and
// consecutive week pairs (gap weeks included) over the 90h bi-weekly
// limit.
func CheckWeeklyDriving(activities []domain.Activity) []domain.Violation {
	totals := WeeklyDrivingTotals(activities)
	if len(totals) == 0 {
		return nil
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var violations []domain.Violation
	for _, key := range keys {
		if totals[key] > WeeklyDrivingLimit {
			violations = append(violations, domain.Violation{
				Level: domain.LevelViolation,
				Message: fmt.Sprintf("Weekly driving limit (56h) exceeded in %s: %s driven.",
					key, formatDuration(totals[key])),
			})
		}
	}

	allWeeks := WeeksInRange(keys[0], keys[len(keys)-1])
	for i := 0; i+1 < len(allWeeks); i++ {
		pairTotal := totals[allWeeks[i]] + totals[allWeeks[i+1]]
		if pairTotal > BiWeeklyDrivingLimit {
			violations = append(violations, domain.Violation{
				Level: domain.LevelViolation,
				Message: fmt.Sprintf("Bi-weekly driving limit (90h) exceeded across %s and %s: %s driven.",
					allWeeks[i], allWeeks[i+1], formatDuration(pairTotal)),
			})
		}
	}
	return violations
}
