package engine

import (
	"testing"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/alexanderramin/drivetime/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekMonday(weekOffset int) time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*weekOffset)
}

func TestOutstandingRestDebts_ReducedRestOpensDebt(t *testing.T) {
	// A 30h weekly rest in W11 leaves 15h owed, due two weeks after the
	// end of that ISO week.
	rest := testutil.Rest(weekMonday(0), 30*time.Hour)

	debts := OutstandingRestDebts([]domain.Activity{rest}, nil)
	require.Len(t, debts, 1)
	assert.Equal(t, 15*time.Hour, debts[0].Amount)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), debts[0].Deadline)
}

func TestOutstandingRestDebts_NormalRestOpensNothing(t *testing.T) {
	rest := testutil.Rest(weekMonday(0), 45*time.Hour)
	assert.Empty(t, OutstandingRestDebts([]domain.Activity{rest}, nil))
}

func TestOutstandingRestDebts_SurplusSettlesOldestFirst(t *testing.T) {
	acts := []domain.Activity{
		testutil.Rest(weekMonday(0), 30*time.Hour), // debt 15h, due 2025-03-31
		testutil.Rest(weekMonday(1), 45*time.Hour), // normal, no surplus
		testutil.Rest(weekMonday(2), 40*time.Hour), // debt 5h, due 2025-04-14
		testutil.Rest(weekMonday(3), 61*time.Hour), // 16h surplus
	}

	debts := OutstandingRestDebts(acts, nil)
	// The surplus clears the 15h debt and then 1h of the 5h debt.
	require.Len(t, debts, 1)
	assert.Equal(t, 4*time.Hour, debts[0].Amount)
	assert.Equal(t, time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC), debts[0].Deadline)
}

func TestOutstandingRestDebts_ResidueWithinEpsilonCountsAsSettled(t *testing.T) {
	acts := []domain.Activity{
		testutil.Rest(weekMonday(0), 30*time.Hour),                // debt 15h
		testutil.Rest(weekMonday(1), 59*time.Hour+59*time.Minute), // surplus 14h59m
	}

	debts := OutstandingRestDebts(acts, nil)
	assert.Empty(t, debts)
}

func TestOutstandingRestDebts_ConsecutiveReducedDisqualified(t *testing.T) {
	// Reduced rests in two adjacent weeks: only the first may open a debt.
	acts := []domain.Activity{
		testutil.Rest(weekMonday(0), 30*time.Hour),
		testutil.Rest(weekMonday(1), 30*time.Hour),
	}

	debts := OutstandingRestDebts(acts, nil)
	require.Len(t, debts, 1)
	assert.Equal(t, 15*time.Hour, debts[0].Amount)
}

func TestOutstandingRestDebts_RestsBeforeReferenceIgnored(t *testing.T) {
	ref := weekMonday(1)
	acts := []domain.Activity{
		testutil.Rest(weekMonday(0), 30*time.Hour),
	}
	assert.Empty(t, OutstandingRestDebts(acts, &ref))
}

func TestCheckWeeklyRest_SixDayRule(t *testing.T) {
	ref := baseDay
	var acts []domain.Activity
	for day := 0; day <= 7; day++ {
		acts = append(acts, testutil.Driving(baseDay.AddDate(0, 0, day), 2*time.Hour))
	}

	violations := CheckWeeklyRest(acts, &ref)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "six days")
}

func TestCheckWeeklyRest_NoFindingWhileOnWeeklyRest(t *testing.T) {
	ref := baseDay
	acts := []domain.Activity{
		testutil.Driving(baseDay, 2*time.Hour),
		testutil.Rest(baseDay.AddDate(0, 0, 6), 30*time.Hour),
	}
	assert.Empty(t, CheckWeeklyRest(acts, &ref))
}

func TestCheckWeeklyRest_ConsecutiveReducedWeeks(t *testing.T) {
	second := testutil.Rest(weekMonday(1), 30*time.Hour)
	acts := []domain.Activity{
		testutil.Rest(weekMonday(0), 30*time.Hour),
		second,
	}

	violations := CheckWeeklyRest(acts, nil)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "2025-W11, 2025-W12")
	assert.Equal(t, second.ID, violations[0].ActivityID)
}

func TestCheckRestCompensation_OverdueDebt(t *testing.T) {
	rest := testutil.Rest(weekMonday(0), 30*time.Hour)
	now := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)

	violations := CheckRestCompensation([]domain.Activity{rest}, nil, now)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "2025-03-31")
	assert.Contains(t, violations[0].Message, "15h 00m")
}

func TestCheckRestCompensation_DebtNotYetDue(t *testing.T) {
	rest := testutil.Rest(weekMonday(0), 30*time.Hour)
	now := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, CheckRestCompensation([]domain.Activity{rest}, nil, now))
}
