package models

import "time"

// SchedulingPolicy selects how a multi-host event combines its hosts'
// availability.
type SchedulingPolicy string

const (
	// PolicyCollective requires every host to be free (intersection).
	PolicyCollective SchedulingPolicy = "collective"
	// PolicyRoundRobin offers any single free host (union) and assigns
	// bookings via lucky-user selection.
	PolicyRoundRobin SchedulingPolicy = "roundRobin"
	// PolicyManaged pins the event to one assigned host; no merge.
	PolicyManaged SchedulingPolicy = "managed"
)

// EventHost is a bookable participant of a team event type. CreatedAt is
// the account creation instant, used as the stable round-robin tie-break.
type EventHost struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// AvailabilityQuery carries everything the engine needs for one user's
// availability window. TimeZone is the requesting client's zone and is only
// applied when rendering results; all internal arithmetic stays in UTC and
// the schedule's own zone.
type AvailabilityQuery struct {
	Schedule     Schedule      `json:"schedule"`
	TimeZone     string        `json:"timeZone"`
	RangeStart   time.Time     `json:"rangeStart"`
	RangeEnd     time.Time     `json:"rangeEnd"`
	BufferBefore time.Duration `json:"bufferBefore"`
	BufferAfter  time.Duration `json:"bufferAfter"`
}
