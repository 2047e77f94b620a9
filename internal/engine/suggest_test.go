package engine

import (
	"testing"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/stretchr/testify/assert"
)

// healthySummary has comfortable margin on every budget.
func healthySummary() domain.StatusSummary {
	return domain.StatusSummary{
		RemainingContinuousDriving:    4 * time.Hour,
		RemainingDailyDrivingNormal:   8 * time.Hour,
		RemainingDailyDrivingExtended: time.Hour,
		RemainingDailyWorkNormal:      12 * time.Hour,
		RemainingDailyWorkExtended:    2 * time.Hour,
		RemainingWeeklyDriving:        50 * time.Hour,
		RemainingBiWeeklyDriving:      80 * time.Hour,
		TimeUntilWeeklyRestDue:        5 * 24 * time.Hour,
	}
}

func TestSelectSuggestion_Default(t *testing.T) {
	s := selectSuggestion(suggestionContext{summary: healthySummary()})
	assert.Equal(t, domain.LevelInfo, s.Level)
	assert.Equal(t, "4h 00m until your next break.", s.Message)
}

func TestSelectSuggestion_BiWeeklyBeatsEverything(t *testing.T) {
	summary := healthySummary()
	summary.RemainingBiWeeklyDriving = -time.Hour
	summary.RemainingWeeklyDriving = -time.Hour
	summary.RemainingContinuousDriving = -time.Hour

	s := selectSuggestion(suggestionContext{summary: summary})
	assert.Equal(t, domain.LevelViolation, s.Level)
	assert.Contains(t, s.Message, "Bi-weekly")
}

func TestSelectSuggestion_DutyExhaustedBeforeDriving(t *testing.T) {
	summary := healthySummary()
	summary.RemainingDailyWorkNormal = -time.Hour
	summary.RemainingDailyWorkExtended = 0
	summary.RemainingDailyDrivingNormal = -time.Hour
	summary.RemainingDailyDrivingExtended = 0

	s := selectSuggestion(suggestionContext{summary: summary})
	assert.Equal(t, domain.LevelViolation, s.Level)
	assert.Contains(t, s.Message, "Daily duty limit")
}

func TestSelectSuggestion_ContinuousBudgetUsedUp(t *testing.T) {
	summary := healthySummary()
	summary.RemainingContinuousDriving = 0

	s := selectSuggestion(suggestionContext{summary: summary})
	assert.Equal(t, domain.LevelWarning, s.Level)
	assert.Contains(t, s.Message, "45m break")
}

func TestSelectSuggestion_WeeklyRestApproaching(t *testing.T) {
	summary := healthySummary()
	summary.TimeUntilWeeklyRestDue = 20 * time.Hour

	s := selectSuggestion(suggestionContext{summary: summary})
	assert.Equal(t, domain.LevelInfo, s.Level)
	assert.Contains(t, s.Message, "Weekly rest is coming up")
	assert.Contains(t, s.Message, "20h 00m")
}

func TestSelectSuggestion_ContinuousApproachingIsLowestInfo(t *testing.T) {
	summary := healthySummary()
	summary.RemainingContinuousDriving = 25 * time.Minute

	s := selectSuggestion(suggestionContext{summary: summary})
	assert.Equal(t, domain.LevelInfo, s.Level)
	assert.Contains(t, s.Message, "Plan a 45m break")
}

func TestSelectSuggestion_ExhaustedExtensionBlocksMoreDriving(t *testing.T) {
	// Both extension rights already spent: only the normal budget counts,
	// and it is gone.
	summary := healthySummary()
	summary.RemainingDailyDrivingNormal = 0
	summary.ExtendedDrivesUsedThisWeek = MaxExtendedDrivesPerWeek

	s := selectSuggestion(suggestionContext{summary: summary})
	assert.Equal(t, domain.LevelWarning, s.Level)
	assert.Contains(t, s.Message, "Daily driving budget is used up")
}
