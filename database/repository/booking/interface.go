package bookingRepo

import (
	"context"
	"time"

	"timehuddle/models"
)

// BookingRepository aggregates the blocking ranges the engine subtracts:
// confirmed bookings plus busy blocks synced from connected external
// calendars. It also answers the booking counts behind round-robin
// fairness.
type BookingRepository interface {
	GetBusyIntervals(ctx context.Context, userID string, rangeStart, rangeEnd time.Time) ([]models.BusyInterval, error)
	CountBookingsByHost(ctx context.Context, eventTypeID string, userIDs []string, since, until time.Time) (map[string]int, error)
}
