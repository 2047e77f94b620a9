package engine

import (
	"fmt"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
)

// ContinuousState is the rolling continuous-driving accumulator at the end
// of the timeline, used by the summary path.
type ContinuousState struct {
	Accumulated         time.Duration
	SplitFirstPartTaken bool
}

// observe feeds one activity through the split-break state machine.
// A break or rest of 45 minutes, or of 30 minutes when the 15-minute first
// split part was already taken, resets the accumulator.
func (s *ContinuousState) observe(act domain.Activity) {
	switch act.Type {
	case domain.ActivityDriving:
		s.Accumulated += act.Duration()
	case domain.ActivityBreak, domain.ActivityRest:
		pause := act.Duration()
		switch {
		case pause >= MinBreakAfterDriving,
			s.SplitFirstPartTaken && pause >= SplitBreakSecondPart:
			s.Accumulated = 0
			s.SplitFirstPartTaken = false
		case pause >= SplitBreakFirstPart:
			s.SplitFirstPartTaken = true
		}
	}
}

// TrackContinuousDriving walks the augmented timeline accumulating driving
// time between qualifying breaks, and reports a violation on every driving
// activity that pushes the accumulator past the limit (plus tolerance).
func TrackContinuousDriving(activities []domain.Activity) ([]domain.Violation, ContinuousState) {
	var violations []domain.Violation
	var state ContinuousState

	for _, act := range activities {
		state.observe(act)
		if act.Type == domain.ActivityDriving && state.Accumulated > ContinuousDrivingLimit+drivingTolerance {
			violations = append(violations, domain.Violation{
				Level: domain.LevelViolation,
				Message: fmt.Sprintf("Continuous driving limit (4h 30m) exceeded: currently %s without a qualifying break.",
					formatDuration(state.Accumulated)),
				ActivityID: act.ID,
			})
		}
	}
	return violations, state
}
