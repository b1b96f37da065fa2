package availability

import (
	"sort"
	"time"

	"timehuddle/models"
)

// SubtractBusyIntervals removes existing bookings and synced calendar busy
// blocks from the availability set. Every busy block is first widened by the
// buffers so back-to-back bookings keep breathing room, then overlapping
// blocks are coalesced so a slot shadowed by several of them is only cut
// once. An empty result is a valid outcome: the range is fully booked.
func SubtractBusyIntervals(avail []models.TimeInterval, busy []models.BusyInterval, bufferBefore, bufferAfter time.Duration) []models.TimeInterval {
	if len(busy) == 0 || len(avail) == 0 {
		return avail
	}

	padded := make([]models.TimeInterval, 0, len(busy))
	for _, b := range busy {
		iv := models.TimeInterval{
			Start: b.Start.Add(-bufferBefore).UTC(),
			End:   b.End.Add(bufferAfter).UTC(),
		}
		if iv.IsZeroLength() {
			continue
		}
		padded = append(padded, iv)
	}

	for _, block := range coalesce(padded) {
		var remaining []models.TimeInterval
		for _, iv := range avail {
			remaining = append(remaining, iv.Subtract(block)...)
		}
		avail = remaining
		if len(avail) == 0 {
			break
		}
	}
	return avail
}

// coalesce unions overlapping or touching intervals into a sorted minimal
// set. The input slice is sorted in place.
func coalesce(intervals []models.TimeInterval) []models.TimeInterval {
	if len(intervals) <= 1 {
		return intervals
	}
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})
	merged := []models.TimeInterval{intervals[0]}
	for _, next := range intervals[1:] {
		last := &merged[len(merged)-1]
		if !next.Start.After(last.End) {
			if next.End.After(last.End) {
				last.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}
