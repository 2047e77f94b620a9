package engine

import (
	"testing"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/alexanderramin/drivetime/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dayBuilder appends activities back to back from a moving cursor.
type dayBuilder struct {
	cursor time.Time
	acts   []domain.Activity
}

func (b *dayBuilder) add(activityType domain.ActivityType, d time.Duration) *dayBuilder {
	b.acts = append(b.acts, testutil.NewTestActivity(activityType, b.cursor, d))
	b.cursor = b.cursor.Add(d)
	return b
}

func (b *dayBuilder) drive(d time.Duration) *dayBuilder  { return b.add(domain.ActivityDriving, d) }
func (b *dayBuilder) pause(d time.Duration) *dayBuilder  { return b.add(domain.ActivityBreak, d) }
func (b *dayBuilder) rest(d time.Duration) *dayBuilder   { return b.add(domain.ActivityRest, d) }
func (b *dayBuilder) work(d time.Duration) *dayBuilder   { return b.add(domain.ActivityOtherWork, d) }

// extendedDrivingDay is 9h30m of driving in an 11h duty period, closed by
// the given daily rest.
func (b *dayBuilder) extendedDrivingDay(restDuration time.Duration) *dayBuilder {
	return b.drive(4 * time.Hour).
		pause(45 * time.Minute).
		drive(4 * time.Hour).
		pause(45 * time.Minute).
		drive(90 * time.Minute).
		rest(restDuration)
}

func TestCheckDutyPeriods_CompliantDay(t *testing.T) {
	b := &dayBuilder{cursor: baseDay}
	b.drive(4 * time.Hour).
		pause(45 * time.Minute).
		drive(4 * time.Hour).
		rest(11 * time.Hour)

	violations := CheckDutyPeriods(b.acts, nil, b.cursor)
	assert.Empty(t, violations)
}

func TestCheckDutyPeriods_ExtensionRightsThenViolation(t *testing.T) {
	// Three 9h30m driving days ending in the same ISO week: the first two
	// consume the extended-drive rights, the third is a violation.
	b := &dayBuilder{cursor: baseDay}
	b.extendedDrivingDay(11 * time.Hour)
	b.extendedDrivingDay(11 * time.Hour)
	b.extendedDrivingDay(11 * time.Hour)

	violations := CheckDutyPeriods(b.acts, nil, b.cursor)
	require.Len(t, violations, 1)
	assert.Equal(t, domain.LevelViolation, violations[0].Level)
	assert.Contains(t, violations[0].Message, "Daily driving limit exceeded")
	assert.Contains(t, violations[0].Message, "9h 30m")
}

func TestCheckDutyPeriods_DrivingOverExtendedLimit(t *testing.T) {
	// 10h30m of driving violates even with extension rights untouched.
	b := &dayBuilder{cursor: baseDay}
	b.drive(4 * time.Hour).
		pause(45 * time.Minute).
		drive(4 * time.Hour).
		pause(45 * time.Minute).
		drive(2*time.Hour + 30*time.Minute).
		rest(11 * time.Hour)

	violations := CheckDutyPeriods(b.acts, nil, b.cursor)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "10h 30m")
}

func TestCheckDutyPeriods_TwentyFourHourRule(t *testing.T) {
	// The daily rest begins 24h45m after the reference point: one finding
	// for the missed 24h window, one for the 15h duty ceiling.
	b := &dayBuilder{cursor: baseDay}
	b.drive(4 * time.Hour).
		pause(45 * time.Minute).
		work(8 * time.Hour).
		pause(4 * time.Hour).
		work(8 * time.Hour).
		rest(11 * time.Hour)

	violations := CheckDutyPeriods(b.acts, nil, b.cursor)
	require.Len(t, violations, 2)
	assert.Contains(t, violations[0].Message, "24 hours")
	assert.Contains(t, violations[1].Message, "Daily duty limit exceeded")
}

func TestCheckDutyPeriods_ReducedRestAllowanceExhausted(t *testing.T) {
	// Four reduced daily rests without a weekly rest in between: the
	// fourth has no allowance left.
	b := &dayBuilder{cursor: baseDay}
	for i := 0; i < 4; i++ {
		b.drive(4 * time.Hour).
			pause(45 * time.Minute).
			work(4 * time.Hour).
			rest(9*time.Hour + 30*time.Minute)
	}

	violations := CheckDutyPeriods(b.acts, nil, b.cursor)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "Insufficient daily rest")
	assert.Contains(t, violations[0].Message, "9h 30m")
}

func TestCheckDutyPeriods_WeeklyRestResetsReducedAllowance(t *testing.T) {
	// Three reduced rests, a 24h weekly rest, then another reduced rest:
	// the new cycle has a fresh allowance.
	b := &dayBuilder{cursor: baseDay}
	for i := 0; i < 3; i++ {
		b.drive(4 * time.Hour).
			pause(45 * time.Minute).
			work(4 * time.Hour).
			rest(9*time.Hour + 30*time.Minute)
	}
	b.rest(24 * time.Hour)
	b.drive(4 * time.Hour).
		pause(45 * time.Minute).
		work(4 * time.Hour).
		rest(9*time.Hour + 30*time.Minute)

	violations := CheckDutyPeriods(b.acts, nil, b.cursor)
	assert.Empty(t, violations)
}

func TestCheckDutyPeriods_TrailingOpenPeriod(t *testing.T) {
	// No daily rest yet and already 10h30m behind the wheel: the live
	// period is checked without consuming any extension right.
	b := &dayBuilder{cursor: baseDay}
	b.drive(4 * time.Hour).
		pause(45 * time.Minute).
		drive(6*time.Hour + 30*time.Minute)

	violations := CheckDutyPeriods(b.acts, nil, b.cursor)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "current duty period")
	assert.Contains(t, violations[0].Message, "10h 30m")
}

func TestCheckDutyPeriods_ActivitiesBeforeReferenceIgnored(t *testing.T) {
	ref := baseDay.Add(12 * time.Hour)
	// 10h of driving, but all of it before the weekly-rest reference.
	b := &dayBuilder{cursor: baseDay}
	b.drive(5 * time.Hour).drive(5 * time.Hour)

	violations := CheckDutyPeriods(b.acts, &ref, b.cursor)
	assert.Empty(t, violations)
}
