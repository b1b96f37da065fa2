package models

import "time"

// Busy interval sources.
const (
	BusySourceBooking  = "booking"
	BusySourceCalendar = "external-calendar"
)

// BusyInterval is an opaque blocking range produced by an existing booking
// or a synced external calendar. The engine only reads Start/End; Source is
// carried for logging and debugging.
type BusyInterval struct {
	Start  time.Time `bson:"start" json:"start"`
	End    time.Time `bson:"end" json:"end"`
	Source string    `bson:"source" json:"source"`
}

// Booking is the stored form of a confirmed booking, read back as busy time
// and counted for round-robin fairness.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	EventTypeID string    `bson:"eventTypeId" json:"eventTypeId"`
	HostUserID  string    `bson:"hostUserId" json:"hostUserId"`
	Start       time.Time `bson:"start" json:"start"`
	End         time.Time `bson:"end" json:"end"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
