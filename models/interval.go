package models

import "time"

// TimeInterval is a half-open range [Start, End) of absolute instants.
// Both bounds are stored in UTC; conversion into a display timezone happens
// only at the presentation boundary.
type TimeInterval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// IsZeroLength reports whether the interval spans no time at all.
func (iv TimeInterval) IsZeroLength() bool {
	return !iv.End.After(iv.Start)
}

// Duration returns the absolute length of the interval.
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether two half-open intervals share any instant.
// An interval ending exactly when another begins does not overlap.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Subtract removes other from iv and returns the remaining pieces:
// none if other covers iv, one if other truncates an edge, two if other
// is strictly contained. Zero-length remainders are dropped.
func (iv TimeInterval) Subtract(other TimeInterval) []TimeInterval {
	if !iv.Overlaps(other) {
		return []TimeInterval{iv}
	}
	var pieces []TimeInterval
	if other.Start.After(iv.Start) {
		pieces = append(pieces, TimeInterval{Start: iv.Start, End: other.Start})
	}
	if other.End.Before(iv.End) {
		pieces = append(pieces, TimeInterval{Start: other.End, End: iv.End})
	}
	return pieces
}

// ClampTo restricts iv to bounds. The second return value is false when
// nothing of iv survives inside bounds.
func (iv TimeInterval) ClampTo(bounds TimeInterval) (TimeInterval, bool) {
	start := iv.Start
	if start.Before(bounds.Start) {
		start = bounds.Start
	}
	end := iv.End
	if end.After(bounds.End) {
		end = bounds.End
	}
	if !end.After(start) {
		return TimeInterval{}, false
	}
	return TimeInterval{Start: start, End: end}, true
}
