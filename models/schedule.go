package models

// WeeklyRule is one recurring working block, expressed in the schedule's
// local time as minutes from midnight. DayOfWeek follows time.Weekday
// numbering (0 = Sunday). A rule with start == end == 0 marks the day as
// closed and contributes no interval.
type WeeklyRule struct {
	DayOfWeek        int `bson:"dayOfWeek" json:"dayOfWeek"`
	StartMinuteOfDay int `bson:"startMinute" json:"startMinute"`
	EndMinuteOfDay   int `bson:"endMinute" json:"endMinute"`
}

// OverrideRange is a single local-time window inside a date override,
// minutes from midnight on the override's date.
type OverrideRange struct {
	StartMinuteOfDay int `bson:"startMinute" json:"startMinute"`
	EndMinuteOfDay   int `bson:"endMinute" json:"endMinute"`
}

// IsZeroLength reports the all-day-unavailable sentinel form of a range.
func (r OverrideRange) IsZeroLength() bool {
	return r.EndMinuteOfDay <= r.StartMinuteOfDay
}

// DateOverride replaces a single day's recurring hours. Date is a
// "2006-01-02" calendar date in the schedule's timezone. Empty Ranges
// (or a single zero-length range) means the day is unavailable entirely.
type DateOverride struct {
	Date   string          `bson:"date" json:"date"`
	Ranges []OverrideRange `bson:"ranges" json:"ranges"`
}

// Unavailable reports whether the override marks its whole day as closed.
func (o DateOverride) Unavailable() bool {
	if len(o.Ranges) == 0 {
		return true
	}
	for _, r := range o.Ranges {
		if !r.IsZeroLength() {
			return false
		}
	}
	return true
}

// Schedule is a named, reusable availability definition: recurring weekly
// rules plus date-specific overrides, anchored to one IANA timezone.
// The availability engine treats a Schedule as an immutable snapshot;
// edits happen in the CRUD layer.
type Schedule struct {
	ID            string         `bson:"id" json:"id"`
	UserID        string         `bson:"userId" json:"userId"`
	Name          string         `bson:"name" json:"name"`
	TimeZone      string         `bson:"timeZone" json:"timeZone"`
	WeeklyRules   []WeeklyRule   `bson:"weeklyRules" json:"weeklyRules"`
	DateOverrides []DateOverride `bson:"dateOverrides" json:"dateOverrides"`
}
