package availability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timehuddle/models"
)

func mondayToFriday(startMin, endMin int) []models.WeeklyRule {
	rules := make([]models.WeeklyRule, 0, 5)
	for day := 1; day <= 5; day++ {
		rules = append(rules, models.WeeklyRule{DayOfWeek: day, StartMinuteOfDay: startMin, EndMinuteOfDay: endMin})
	}
	return rules
}

func TestExpandWeeklyRules_OneWeek(t *testing.T) {
	// Monday 2026-06-15 .. Monday 2026-06-22, UTC schedule.
	rangeStart := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	rangeEnd := rangeStart.AddDate(0, 0, 7)

	out, err := ExpandWeeklyRules(mondayToFriday(9*60, 17*60), time.UTC, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.Len(t, out, 5, "one block per weekday rule")

	first := out[0]
	assert.True(t, first.Start.Equal(time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)))
	assert.True(t, first.End.Equal(time.Date(2026, 6, 15, 17, 0, 0, 0, time.UTC)))
	for _, iv := range out {
		assert.Equal(t, 8*time.Hour, iv.Duration())
	}
}

func TestExpandWeeklyRules_DuplicateRulesCollapsed(t *testing.T) {
	rules := []models.WeeklyRule{
		{DayOfWeek: 1, StartMinuteOfDay: 9 * 60, EndMinuteOfDay: 17 * 60},
		{DayOfWeek: 1, StartMinuteOfDay: 9 * 60, EndMinuteOfDay: 17 * 60},
	}
	rangeStart := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	out, err := ExpandWeeklyRules(rules, time.UTC, rangeStart, rangeStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestExpandWeeklyRules_ClosedDaySentinel(t *testing.T) {
	rules := []models.WeeklyRule{
		{DayOfWeek: 1, StartMinuteOfDay: 0, EndMinuteOfDay: 0},
	}
	rangeStart := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	out, err := ExpandWeeklyRules(rules, time.UTC, rangeStart, rangeStart.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExpandWeeklyRules_InvertedRuleIsConfigurationError(t *testing.T) {
	rules := []models.WeeklyRule{
		{DayOfWeek: 2, StartMinuteOfDay: 17 * 60, EndMinuteOfDay: 9 * 60},
	}
	rangeStart := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	_, err := ExpandWeeklyRules(rules, time.UTC, rangeStart, rangeStart.AddDate(0, 0, 7))
	require.Error(t, err)

	var confErr *ConfigurationError
	require.True(t, errors.As(err, &confErr), "want ConfigurationError, got %T", err)
}

func TestExpandWeeklyRules_SpringForwardShortensBlock(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	// Clocks jump 01:00 GMT -> 02:00 BST on Sunday 2026-03-29. A nominal
	// 4h block spanning the transition is only 3h of absolute time.
	rules := []models.WeeklyRule{
		{DayOfWeek: 0, StartMinuteOfDay: 0, EndMinuteOfDay: 4 * 60},
	}
	rangeStart := time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC)
	rangeEnd := rangeStart.AddDate(0, 0, 7)

	out, err := ExpandWeeklyRules(rules, london, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.Len(t, out, 1)

	iv := out[0]
	assert.Equal(t, 3*time.Hour, iv.Duration())
	assert.True(t, iv.Start.Equal(time.Date(2026, 3, 29, 0, 0, 0, 0, time.UTC)))
	assert.True(t, iv.End.Equal(time.Date(2026, 3, 29, 3, 0, 0, 0, time.UTC)), "04:00 BST is 03:00 UTC")
}

func TestExpandWeeklyRules_FallBackLengthensBlock(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	// Clocks fall back 02:00 BST -> 01:00 GMT on Sunday 2026-10-25.
	rules := []models.WeeklyRule{
		{DayOfWeek: 0, StartMinuteOfDay: 0, EndMinuteOfDay: 4 * 60},
	}
	rangeStart := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	rangeEnd := rangeStart.AddDate(0, 0, 7)

	out, err := ExpandWeeklyRules(rules, london, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 5*time.Hour, out[0].Duration())
}

func TestExpandWeeklyRules_NoMatchingDaysProducesNothing(t *testing.T) {
	rules := []models.WeeklyRule{
		{DayOfWeek: 6, StartMinuteOfDay: 9 * 60, EndMinuteOfDay: 12 * 60},
	}
	// Monday-Friday window only; the Saturday rule never fires.
	rangeStart := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	out, err := ExpandWeeklyRules(rules, time.UTC, rangeStart, rangeStart.AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExpandWeeklyRules_ClampsToQueryRange(t *testing.T) {
	rules := []models.WeeklyRule{
		{DayOfWeek: 1, StartMinuteOfDay: 9 * 60, EndMinuteOfDay: 17 * 60},
	}
	// Range starts mid-morning on Monday.
	rangeStart := time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)
	out, err := ExpandWeeklyRules(rules, time.UTC, rangeStart, rangeStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Start.Equal(rangeStart))
}
