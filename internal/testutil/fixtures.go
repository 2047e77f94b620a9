package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
)

var testActivityCounter atomic.Int64

// Activity options
type ActivityOption func(*domain.Activity)

func WithID(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.ID = id
	}
}

// StillOngoing leaves the activity open (End == nil).
func StillOngoing() ActivityOption {
	return func(a *domain.Activity) {
		a.End = nil
	}
}

// NewTestActivity builds a closed activity of the given type and span.
func NewTestActivity(activityType domain.ActivityType, start time.Time, duration time.Duration, opts ...ActivityOption) domain.Activity {
	end := start.Add(duration)
	a := domain.Activity{
		ID:    fmt.Sprintf("act-%03d", testActivityCounter.Add(1)),
		Type:  activityType,
		Start: start,
		End:   &end,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Shorthand builders for the common timeline shapes in engine tests.

func Driving(start time.Time, d time.Duration, opts ...ActivityOption) domain.Activity {
	return NewTestActivity(domain.ActivityDriving, start, d, opts...)
}

func Break(start time.Time, d time.Duration, opts ...ActivityOption) domain.Activity {
	return NewTestActivity(domain.ActivityBreak, start, d, opts...)
}

func Rest(start time.Time, d time.Duration, opts ...ActivityOption) domain.Activity {
	return NewTestActivity(domain.ActivityRest, start, d, opts...)
}

func OtherWork(start time.Time, d time.Duration, opts ...ActivityOption) domain.Activity {
	return NewTestActivity(domain.ActivityOtherWork, start, d, opts...)
}
