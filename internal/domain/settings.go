package domain

import "time"

// ActivityDefaults is the default duration applied when an activity of a
// given type is logged without an explicit end.
type ActivityDefaults struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func (d ActivityDefaults) Duration() time.Duration {
	return time.Duration(d.Hours)*time.Hour + time.Duration(d.Minutes)*time.Minute
}

// Settings maps activity types to their default durations.
type Settings map[ActivityType]ActivityDefaults

// DefaultSettings returns the built-in defaults used until the driver
// saves their own.
func DefaultSettings() Settings {
	return Settings{
		ActivityDriving:   {Hours: 4, Minutes: 30},
		ActivityBreak:     {Hours: 0, Minutes: 45},
		ActivityRest:      {Hours: 11, Minutes: 0},
		ActivityOtherWork: {Hours: 2, Minutes: 0},
	}
}
