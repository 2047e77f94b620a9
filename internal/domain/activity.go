package domain

import (
	"fmt"
	"time"
)

// ActivityType classifies a logged activity on the driver's timeline.
type ActivityType string

const (
	ActivityStartWork ActivityType = "start_work"
	ActivityDriving   ActivityType = "driving"
	ActivityBreak     ActivityType = "break"
	ActivityRest      ActivityType = "rest"
	ActivityOtherWork ActivityType = "other_work"
	ActivityEndWork   ActivityType = "end_work"
)

// ValidActivityTypes is the set of accepted activity type strings.
var ValidActivityTypes = map[string]bool{
	string(ActivityStartWork): true,
	string(ActivityDriving):   true,
	string(ActivityBreak):     true,
	string(ActivityRest):      true,
	string(ActivityOtherWork): true,
	string(ActivityEndWork):   true,
}

// DurationalActivityTypes are the types that span time and carry a
// configurable default duration. The start/end work markers do not.
var DurationalActivityTypes = []ActivityType{
	ActivityDriving,
	ActivityBreak,
	ActivityRest,
	ActivityOtherWork,
}

// Activity is one interval on the driver's timeline. End is nil while the
// activity is still in progress.
type Activity struct {
	ID    string
	Type  ActivityType
	Start time.Time
	End   *time.Time
}

// Ongoing reports whether the activity is still open.
func (a Activity) Ongoing() bool {
	return a.End == nil
}

// Duration returns the closed interval's length. It panics on an open
// activity: callers must resolve ongoing activities against a reference
// instant first.
func (a Activity) Duration() time.Duration {
	if a.End == nil {
		panic(fmt.Sprintf("activity %s is still ongoing", a.ID))
	}
	return a.End.Sub(a.Start)
}

// Clone returns a deep copy, so mutating the copy's End cannot alias the
// original.
func (a Activity) Clone() Activity {
	c := a
	if a.End != nil {
		end := *a.End
		c.End = &end
	}
	return c
}
