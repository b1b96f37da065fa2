package availability

import (
	"fmt"

	"timehuddle/models"
)

// MergeUserAvailability combines per-host availability according to the
// event's scheduling policy. Collective events need every host free, so the
// sets are intersected; round-robin events need any one host free, so the
// sets are unioned. Managed events carry exactly one assigned host and pass
// through untouched. An empty merge result is a normal "no availability"
// outcome, not an error.
func MergeUserAvailability(perUser [][]models.TimeInterval, policy models.SchedulingPolicy) ([]models.TimeInterval, error) {
	switch policy {
	case models.PolicyManaged:
		if len(perUser) != 1 {
			return nil, NewConfigurationError(fmt.Sprintf("managed events take exactly one assigned host, got %d", len(perUser)))
		}
		return perUser[0], nil

	case models.PolicyCollective:
		if len(perUser) == 0 {
			return nil, nil
		}
		result := coalesce(append([]models.TimeInterval(nil), perUser[0]...))
		for _, next := range perUser[1:] {
			result = intersect(result, coalesce(append([]models.TimeInterval(nil), next...)))
			if len(result) == 0 {
				break
			}
		}
		return result, nil

	case models.PolicyRoundRobin:
		var all []models.TimeInterval
		for _, ivs := range perUser {
			all = append(all, ivs...)
		}
		return coalesce(all), nil

	default:
		return nil, NewConfigurationError(fmt.Sprintf("unknown scheduling policy %q", policy))
	}
}

// intersect walks two sorted, non-overlapping interval sets with two
// pointers and keeps the common parts.
func intersect(a, b []models.TimeInterval) []models.TimeInterval {
	var out []models.TimeInterval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := a[i].Start
		if b[j].Start.After(start) {
			start = b[j].Start
		}
		end := a[i].End
		if b[j].End.Before(end) {
			end = b[j].End
		}
		if end.After(start) {
			out = append(out, models.TimeInterval{Start: start, End: end})
		}
		if a[i].End.Before(b[j].End) {
			i++
		} else {
			j++
		}
	}
	return out
}
