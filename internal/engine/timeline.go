package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
)

// CloseOngoing returns a copy of activities with every unresolved End set
// to now. Input order is preserved; callers' activities are not touched.
func CloseOngoing(activities []domain.Activity, now time.Time) []domain.Activity {
	closed := make([]domain.Activity, 0, len(activities))
	for _, act := range activities {
		c := act.Clone()
		if c.End == nil {
			end := now
			c.End = &end
		}
		if c.End.Before(c.Start) {
			panic(fmt.Sprintf("activity %s: end %s before start %s", c.ID, c.End, c.Start))
		}
		closed = append(closed, c)
	}
	return closed
}

// Normalize closes ongoing activities at now and sorts the result by
// (start, end) ascending, so an open interval sorts after a closed one
// starting at the same instant.
func Normalize(activities []domain.Activity, now time.Time) []domain.Activity {
	closed := CloseOngoing(activities, now)
	sort.SliceStable(closed, func(i, j int) bool {
		if !closed[i].Start.Equal(closed[j].Start) {
			return closed[i].Start.Before(closed[j].Start)
		}
		return closed[i].End.Before(*closed[j].End)
	})
	return closed
}

// ImplicitRestID derives the id of a synthesized rest from the activities
// bracketing the gap it fills.
func ImplicitRestID(prevID, nextID string) string {
	return fmt.Sprintf("implicit-rest-%s-%s", prevID, nextID)
}

// InjectImplicitRests inserts a synthetic Rest activity into every gap of
// at least a reduced daily rest between consecutive activities. Such gaps
// represent rest the driver took without logging it (overnight, typically).
// The input must already be normalized.
func InjectImplicitRests(sorted []domain.Activity) []domain.Activity {
	if len(sorted) < 2 {
		return sorted
	}

	augmented := make([]domain.Activity, 0, len(sorted))
	augmented = append(augmented, sorted[0])
	for i := 0; i < len(sorted)-1; i++ {
		current := sorted[i]
		next := sorted[i+1]
		if next.Start.Sub(*current.End) >= DailyRestReduced {
			start := *current.End
			end := next.Start
			augmented = append(augmented, domain.Activity{
				ID:    ImplicitRestID(current.ID, next.ID),
				Type:  domain.ActivityRest,
				Start: start,
				End:   &end,
			})
		}
		augmented = append(augmented, next)
	}
	return augmented
}

// prepare runs the full normalization pipeline used by both engine entry
// points: close ongoing at now, sort, inject implicit rests.
func prepare(activities []domain.Activity, now time.Time) (sorted, augmented []domain.Activity) {
	sorted = Normalize(activities, now)
	augmented = InjectImplicitRests(sorted)
	return sorted, augmented
}
