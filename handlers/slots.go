package handlers

import (
	"time"

	"timehuddle/models"
)

// SlotStarts splits availability intervals into candidate booking start
// times of the given duration, stepping by step within each interval.
// Starts in the past (before now) are skipped. Overlapping input intervals
// are tolerated; duplicate starts are collapsed.
func SlotStarts(intervals []models.TimeInterval, duration, step time.Duration, now time.Time) []time.Time {
	if duration <= 0 || step <= 0 {
		return nil
	}
	seen := make(map[int64]struct{})
	var slots []time.Time
	for _, iv := range intervals {
		for t := iv.Start; !t.Add(duration).After(iv.End); t = t.Add(step) {
			if t.Before(now) {
				continue
			}
			if _, dup := seen[t.Unix()]; dup {
				continue
			}
			seen[t.Unix()] = struct{}{}
			slots = append(slots, t)
		}
	}
	return slots
}
