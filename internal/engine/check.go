package engine

import (
	"fmt"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
)

// CheckOverlaps validates the sorted (but not augmented) timeline: each
// activity must have ended before the next one starts. Overlaps are data
// violations, not errors, because entries come from free-form user input
// and a result must always be produced.
func CheckOverlaps(sorted []domain.Activity) []domain.Violation {
	var violations []domain.Violation
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i].End.After(sorted[i+1].Start) {
			violations = append(violations, domain.Violation{
				Level: domain.LevelViolation,
				Message: fmt.Sprintf("Activities overlap: %q starts while %q is still in progress.",
					sorted[i+1].Type, sorted[i].Type),
				ActivityID: sorted[i+1].ID,
			})
		}
	}
	return violations
}

// CheckAllViolations runs every rule check over the timeline and returns
// the concatenated violations in discovery order: input validation,
// continuous driving, duty periods, weekly driving, weekly rest, rest
// compensation. Ongoing activities are resolved at now.
func CheckAllViolations(activities []domain.Activity, lastWeeklyRestEnd *time.Time, now time.Time) []domain.Violation {
	if len(activities) == 0 && lastWeeklyRestEnd == nil {
		return nil
	}

	sorted, augmented := prepare(activities, now)

	violations := CheckOverlaps(sorted)
	continuous, _ := TrackContinuousDriving(augmented)
	violations = append(violations, continuous...)
	violations = append(violations, CheckDutyPeriods(augmented, lastWeeklyRestEnd, now)...)
	violations = append(violations, CheckWeeklyDriving(augmented)...)
	violations = append(violations, CheckWeeklyRest(augmented, lastWeeklyRestEnd)...)
	violations = append(violations, CheckRestCompensation(augmented, lastWeeklyRestEnd, now)...)
	return violations
}
