package engine

import (
	"fmt"
	"time"
)

// maxWeekRange caps week enumeration at four years of keys, guarding
// against a corrupted range ever looping unbounded.
const maxWeekRange = 208

// WeekKey returns the ISO-8601 week key for t, e.g. "2025-W07". Weeks run
// Monday 00:00 UTC to the next Monday 00:00 UTC.
func WeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeekStart returns Monday 00:00 UTC of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	u := t.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	sinceMonday := (int(u.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -sinceMonday)
}

// WeekEnd returns the exclusive end of the ISO week containing t: the
// following Monday 00:00 UTC.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 7)
}

// weekKeyStart parses a week key back into its Monday 00:00 UTC instant.
func weekKeyStart(key string) (time.Time, error) {
	var year, week int
	if _, err := fmt.Sscanf(key, "%d-W%d", &year, &week); err != nil {
		return time.Time{}, fmt.Errorf("parsing week key %q: %w", key, err)
	}
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	return WeekStart(jan4).AddDate(0, 0, (week-1)*7), nil
}

// WeeksInRange enumerates every ISO week key from startKey through endKey
// inclusive, including weeks with no data. Returns nil for malformed or
// reversed inputs.
func WeeksInRange(startKey, endKey string) []string {
	if startKey == "" || endKey == "" {
		return nil
	}
	cursor, err := weekKeyStart(startKey)
	if err != nil {
		return nil
	}

	var weeks []string
	for len(weeks) < maxWeekRange {
		key := WeekKey(cursor)
		weeks = append(weeks, key)
		if key == endKey {
			return weeks
		}
		cursor = cursor.AddDate(0, 0, 7)
	}
	return nil
}
