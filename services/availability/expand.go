package availability

import (
	"fmt"
	"sort"
	"time"

	"timehuddle/models"
)

const dateLayout = "2006-01-02"

// ExpandWeeklyRules turns a schedule's recurring weekly rules into concrete
// UTC intervals covering [rangeStart, rangeEnd). Days are iterated in the
// schedule's timezone and each rule is anchored with time.Date on that
// calendar day, so the offset in effect on that day applies. A fixed-offset
// shortcut would drift across DST transitions.
//
// Duplicate rules are tolerated and collapsed. A rule with start == end == 0
// is the closed-day convention and contributes nothing; any other rule with
// start >= end is corrupt schedule data and fails with a ConfigurationError.
func ExpandWeeklyRules(rules []models.WeeklyRule, loc *time.Location, rangeStart, rangeEnd time.Time) ([]models.TimeInterval, error) {
	if !rangeEnd.After(rangeStart) {
		return nil, nil
	}
	bounds := models.TimeInterval{Start: rangeStart.UTC(), End: rangeEnd.UTC()}

	byDay := make(map[time.Weekday][]models.WeeklyRule)
	seen := make(map[models.WeeklyRule]struct{})
	for _, rule := range rules {
		if rule.StartMinuteOfDay == 0 && rule.EndMinuteOfDay == 0 {
			continue
		}
		if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
			return nil, NewConfigurationError(fmt.Sprintf("weekly rule day of week %d is outside 0-6", rule.DayOfWeek))
		}
		if rule.StartMinuteOfDay < 0 || rule.EndMinuteOfDay > 24*60 {
			return nil, NewConfigurationError(fmt.Sprintf("weekly rule minutes %d-%d fall outside the day", rule.StartMinuteOfDay, rule.EndMinuteOfDay))
		}
		if rule.StartMinuteOfDay >= rule.EndMinuteOfDay {
			return nil, NewConfigurationError(fmt.Sprintf("weekly rule on day %d starts at minute %d but ends at %d", rule.DayOfWeek, rule.StartMinuteOfDay, rule.EndMinuteOfDay))
		}
		if _, dup := seen[rule]; dup {
			continue
		}
		seen[rule] = struct{}{}
		byDay[time.Weekday(rule.DayOfWeek)] = append(byDay[time.Weekday(rule.DayOfWeek)], rule)
	}
	for _, dayRules := range byDay {
		sort.Slice(dayRules, func(i, j int) bool {
			return dayRules[i].StartMinuteOfDay < dayRules[j].StartMinuteOfDay
		})
	}

	var out []models.TimeInterval
	localStart := rangeStart.In(loc)
	localEnd := rangeEnd.In(loc)
	day := time.Date(localStart.Year(), localStart.Month(), localStart.Day(), 0, 0, 0, 0, loc)
	for ; day.Before(localEnd); day = day.AddDate(0, 0, 1) {
		for _, rule := range byDay[day.Weekday()] {
			iv := localMinutesToUTC(day, rule.StartMinuteOfDay, rule.EndMinuteOfDay, loc)
			if clamped, ok := iv.ClampTo(bounds); ok {
				out = append(out, clamped)
			}
		}
	}
	return out, nil
}

// localMinutesToUTC builds the UTC interval for one calendar day from local
// minutes-of-day. On a DST transition day the two bounds can carry different
// offsets, which is exactly what makes the absolute duration shrink or grow
// relative to the nominal wall-clock length.
func localMinutesToUTC(day time.Time, startMin, endMin int, loc *time.Location) models.TimeInterval {
	y, m, d := day.Date()
	start := time.Date(y, m, d, startMin/60, startMin%60, 0, 0, loc)
	end := time.Date(y, m, d, endMin/60, endMin%60, 0, 0, loc)
	return models.TimeInterval{Start: start.UTC(), End: end.UTC()}
}
