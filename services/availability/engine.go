package availability

import (
	"fmt"
	"time"

	"timehuddle/models"
)

// ComputeAvailability runs the full single-user pipeline over pre-fetched
// snapshots: expand weekly rules, overlay date overrides, subtract busy
// time. It performs no I/O and never mutates the schedule, so per-host
// computations can run concurrently without coordination.
func ComputeAvailability(query models.AvailabilityQuery, busy []models.BusyInterval, now time.Time) ([]models.TimeInterval, error) {
	loc, err := time.LoadLocation(query.Schedule.TimeZone)
	if err != nil {
		return nil, NewConfigurationError(fmt.Sprintf("schedule %s has unknown timezone %q", query.Schedule.ID, query.Schedule.TimeZone))
	}

	recurring, err := ExpandWeeklyRules(query.Schedule.WeeklyRules, loc, query.RangeStart, query.RangeEnd)
	if err != nil {
		return nil, err
	}

	merged, err := ApplyDateOverrides(recurring, query.Schedule.DateOverrides, loc, now, query.RangeStart, query.RangeEnd)
	if err != nil {
		return nil, err
	}

	return SubtractBusyIntervals(merged, busy, query.BufferBefore, query.BufferAfter), nil
}
