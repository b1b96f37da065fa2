package availability

import (
	"context"
	"time"

	bookingRepo "timehuddle/database/repository/booking"
	scheduleRepo "timehuddle/database/repository/schedule"
	"timehuddle/models"

	"github.com/go-redis/redis/v8"
)

// AvailabilityService exposes read-side availability computation to the
// HTTP layer and background workers.
type AvailabilityService interface {
	GetAvailability(ctx context.Context, scheduleID string, rangeStart, rangeEnd time.Time, bufferBefore, bufferAfter time.Duration) ([]models.TimeInterval, error)
	GetUserAvailability(ctx context.Context, userID string, rangeStart, rangeEnd time.Time, bufferBefore, bufferAfter time.Duration) ([]models.TimeInterval, error)
	GetMultiUserAvailability(ctx context.Context, queries []models.AvailabilityQuery, policy models.SchedulingPolicy) ([]models.TimeInterval, error)
	GetTeamAvailability(ctx context.Context, scheduleIDs []string, policy models.SchedulingPolicy, rangeStart, rangeEnd time.Time, bufferBefore, bufferAfter time.Duration) ([]models.TimeInterval, error)
	PickLuckyUser(ctx context.Context, eventTypeID string, hosts []models.EventHost, lookback time.Duration) (models.EventHost, error)
	RefreshAvailability(ctx context.Context, scheduleID string, rangeStart, rangeEnd time.Time, bufferBefore, bufferAfter time.Duration) ([]models.TimeInterval, error)
}

// DefaultAvailabilityService implements AvailabilityService. Cache may be
// nil, in which case results are recomputed on every call.
type DefaultAvailabilityService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
	Cache        *redis.Client
	CacheTTL     time.Duration
}
