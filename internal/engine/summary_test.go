package engine

import (
	"testing"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/alexanderramin/drivetime/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSummary_EmptyTimeline(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	summary := CalculateSummary(nil, nil, now)

	assert.Equal(t, ContinuousDrivingLimit, summary.RemainingContinuousDriving)
	assert.Equal(t, DailyDrivingNormal, summary.RemainingDailyDrivingNormal)
	assert.Equal(t, time.Hour, summary.RemainingDailyDrivingExtended)
	assert.Equal(t, DailyWorkNormal, summary.RemainingDailyWorkNormal)
	assert.Equal(t, 2*time.Hour, summary.RemainingDailyWorkExtended)
	assert.Equal(t, WeeklyDrivingLimit, summary.RemainingWeeklyDriving)
	assert.Equal(t, BiWeeklyDrivingLimit, summary.RemainingBiWeeklyDriving)
	assert.Equal(t, "2025-W11", summary.CurrentWeekKey)
	assert.Equal(t, domain.LevelInfo, summary.NextActionSuggestion.Level)
	assert.Contains(t, summary.NextActionSuggestion.Message, "first activity")
}

func TestCalculateSummary_SimpleDrive(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	now := start.Add(2 * time.Hour)
	acts := []domain.Activity{testutil.Driving(start, 2*time.Hour)}

	summary := CalculateSummary(acts, nil, now)

	assert.Equal(t, 2*time.Hour+30*time.Minute, summary.RemainingContinuousDriving)
	assert.Equal(t, 7*time.Hour, summary.RemainingDailyDrivingNormal)
	assert.Equal(t, time.Hour, summary.RemainingDailyDrivingExtended)
	assert.Equal(t, 11*time.Hour, summary.RemainingDailyWorkNormal)
	assert.Equal(t, 54*time.Hour, summary.RemainingWeeklyDriving)
	assert.Equal(t, 88*time.Hour, summary.RemainingBiWeeklyDriving)
	assert.Equal(t, 6*24*time.Hour-2*time.Hour, summary.TimeUntilWeeklyRestDue)
	assert.Equal(t, 0, summary.ExtendedDrivesUsedThisWeek)
	assert.Equal(t, "2025-W11", summary.CurrentWeekKey)
	assert.Equal(t, domain.LevelInfo, summary.NextActionSuggestion.Level)
	assert.Contains(t, summary.NextActionSuggestion.Message, "2h 30m until your next break")
}

func TestCalculateSummary_Deterministic(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	now := start.Add(9 * time.Hour)
	acts := []domain.Activity{
		testutil.Driving(start, 4*time.Hour),
		testutil.Break(start.Add(4*time.Hour), 45*time.Minute),
		testutil.Driving(start.Add(4*time.Hour+45*time.Minute), 4*time.Hour),
	}

	first := CalculateSummary(acts, nil, now)
	second := CalculateSummary(acts, nil, now)
	assert.Equal(t, first, second)
}

func TestCalculateSummary_FlooredToWholeMinute(t *testing.T) {
	// A timer started 30 seconds ago has consumed nothing yet.
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	now := start.Add(30 * time.Second)
	acts := []domain.Activity{testutil.Driving(start, 0, testutil.StillOngoing())}

	summary := CalculateSummary(acts, nil, now)
	assert.Equal(t, ContinuousDrivingLimit, summary.RemainingContinuousDriving)
	assert.Equal(t, DailyDrivingNormal, summary.RemainingDailyDrivingNormal)
}

func TestCalculateSummary_ProvisionalExtensionConsumed(t *testing.T) {
	// 9h30m of driving in the live period: the extension right is counted
	// as used and the dashboard warns that it is being spent.
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	b := &dayBuilder{cursor: start}
	b.drive(4 * time.Hour).
		pause(45 * time.Minute).
		drive(4 * time.Hour).
		pause(45 * time.Minute).
		drive(90 * time.Minute)

	summary := CalculateSummary(b.acts, nil, b.cursor)

	assert.Equal(t, 1, summary.ExtendedDrivesUsedThisWeek)
	assert.Equal(t, time.Duration(0), summary.RemainingDailyDrivingNormal)
	assert.Equal(t, 30*time.Minute, summary.RemainingDailyDrivingExtended)
	assert.Equal(t, domain.LevelWarning, summary.NextActionSuggestion.Level)
	assert.Contains(t, summary.NextActionSuggestion.Message, "9h driving mark")
}

func TestCalculateSummary_SplitBreakFirstPart(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	acts := []domain.Activity{
		testutil.Driving(start, 2*time.Hour),
		testutil.Break(start.Add(2*time.Hour), 20*time.Minute),
	}
	summary := CalculateSummary(acts, nil, start.Add(3*time.Hour))
	assert.True(t, summary.SplitBreakFirstPartTaken)
}

func TestCalculateSummary_UncompensatedRest(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	acts := []domain.Activity{
		testutil.Rest(monday, 30*time.Hour),
		testutil.Driving(monday.Add(30*time.Hour), 2*time.Hour),
	}
	summary := CalculateSummary(acts, nil, monday.Add(32*time.Hour))

	assert.Equal(t, 15*time.Hour, summary.TotalUncompensatedRest)
	require.NotNil(t, summary.UncompensatedRestDeadline)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *summary.UncompensatedRestDeadline)
}
