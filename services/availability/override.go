package availability

import (
	"fmt"
	"sort"
	"time"

	"timehuddle/models"
)

// ApplyDateOverrides overlays date-specific exceptions onto the expanded
// recurring intervals. An override fully replaces its day's recurring
// blocks, never merging per range, so a day overridden to
// [13:00,15:00) loses its recurring 09:00-17:00 entirely. Overrides dated
// before today in the schedule's timezone are ignored so stale rows can
// never suppress recurring availability.
//
// Duplicate override rows for one date are coalesced into a single logical
// override with all their ranges kept. Overlapping ranges within a date are
// passed through untouched; overlap is harmless for availability.
func ApplyDateOverrides(recurring []models.TimeInterval, overrides []models.DateOverride, loc *time.Location, now, rangeStart, rangeEnd time.Time) ([]models.TimeInterval, error) {
	if len(overrides) == 0 {
		return recurring, nil
	}
	bounds := models.TimeInterval{Start: rangeStart.UTC(), End: rangeEnd.UTC()}
	today := now.In(loc).Format(dateLayout)

	merged := make(map[string][]models.OverrideRange)
	var dates []string
	for _, o := range overrides {
		if o.Date < today {
			continue
		}
		if _, ok := merged[o.Date]; !ok {
			dates = append(dates, o.Date)
		}
		merged[o.Date] = append(merged[o.Date], o.Ranges...)
	}
	if len(merged) == 0 {
		return recurring, nil
	}

	var out []models.TimeInterval
	for _, iv := range recurring {
		date := iv.Start.In(loc).Format(dateLayout)
		if _, overridden := merged[date]; overridden {
			continue
		}
		out = append(out, iv)
	}

	for _, date := range dates {
		day, err := time.ParseInLocation(dateLayout, date, loc)
		if err != nil {
			return nil, NewConfigurationError(fmt.Sprintf("date override has malformed date %q", date))
		}
		for _, r := range merged[date] {
			if r.IsZeroLength() {
				// All-day-unavailable sentinel: the day contributes nothing.
				continue
			}
			iv := localMinutesToUTC(day, r.StartMinuteOfDay, r.EndMinuteOfDay, loc)
			if clamped, ok := iv.ClampTo(bounds); ok {
				out = append(out, clamped)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}
