package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"timehuddle/models"
	"timehuddle/utils"

	"go.uber.org/zap"
)

// GetAvailability loads the schedule snapshot and the user's busy intervals,
// then runs the pure pipeline. Results are cached briefly in Redis keyed by
// schedule and query window; the cache is also what the warm worker fills.
func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, scheduleID string, rangeStart, rangeEnd time.Time, bufferBefore, bufferAfter time.Duration) ([]models.TimeInterval, error) {
	sched, err := s.ScheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule %s: %w", scheduleID, err)
	}

	query := buildQuery(sched, rangeStart, rangeEnd, bufferBefore, bufferAfter)
	if cached, ok := s.cachedResult(ctx, query); ok {
		return cached, nil
	}
	return s.computeAndStore(ctx, query)
}

// RefreshAvailability recomputes unconditionally and overwrites the cache
// entry. The warm worker calls it after schedule edits; going through
// GetAvailability there would serve the pre-edit entry back on a cache hit
// and never reach the recompute.
func (s *DefaultAvailabilityService) RefreshAvailability(ctx context.Context, scheduleID string, rangeStart, rangeEnd time.Time, bufferBefore, bufferAfter time.Duration) ([]models.TimeInterval, error) {
	sched, err := s.ScheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule %s: %w", scheduleID, err)
	}
	return s.computeAndStore(ctx, buildQuery(sched, rangeStart, rangeEnd, bufferBefore, bufferAfter))
}

// GetUserAvailability unions availability across every schedule the user
// owns. Per-schedule results go through the shared cache, so a hot schedule
// queried on its own and through its owner shares one cache entry.
func (s *DefaultAvailabilityService) GetUserAvailability(ctx context.Context, userID string, rangeStart, rangeEnd time.Time, bufferBefore, bufferAfter time.Duration) ([]models.TimeInterval, error) {
	schedules, err := s.ScheduleRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules for user %s: %w", userID, err)
	}

	var all []models.TimeInterval
	for i := range schedules {
		query := buildQuery(&schedules[i], rangeStart, rangeEnd, bufferBefore, bufferAfter)
		intervals, ok := s.cachedResult(ctx, query)
		if !ok {
			intervals, err = s.computeAndStore(ctx, query)
			if err != nil {
				return nil, err
			}
		}
		all = append(all, intervals...)
	}
	return coalesce(all), nil
}

func buildQuery(sched *models.Schedule, rangeStart, rangeEnd time.Time, bufferBefore, bufferAfter time.Duration) models.AvailabilityQuery {
	return models.AvailabilityQuery{
		Schedule:     *sched,
		RangeStart:   rangeStart.UTC(),
		RangeEnd:     rangeEnd.UTC(),
		BufferBefore: bufferBefore,
		BufferAfter:  bufferAfter,
	}
}

func (s *DefaultAvailabilityService) computeAndStore(ctx context.Context, query models.AvailabilityQuery) ([]models.TimeInterval, error) {
	busy, err := s.BookingRepo.GetBusyIntervals(ctx, query.Schedule.UserID, query.RangeStart, query.RangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load busy intervals for user %s: %w", query.Schedule.UserID, err)
	}

	intervals, err := ComputeAvailability(query, busy, time.Now())
	if err != nil {
		return nil, err
	}

	s.storeResult(ctx, query, intervals)
	utils.GetLogger().Debug("computed availability",
		zap.String("scheduleID", query.Schedule.ID),
		zap.Int("busyBlocks", len(busy)),
		zap.Int("intervals", len(intervals)))
	return intervals, nil
}

// GetMultiUserAvailability runs each host's pipeline concurrently and folds
// the results with the event's policy. The fold waits for every host; if any
// sub-computation fails the whole call fails rather than returning a partial
// merge.
func (s *DefaultAvailabilityService) GetMultiUserAvailability(ctx context.Context, queries []models.AvailabilityQuery, policy models.SchedulingPolicy) ([]models.TimeInterval, error) {
	if len(queries) == 0 {
		return nil, nil
	}
	now := time.Now()

	perUser := make([][]models.TimeInterval, len(queries))
	errs := make([]error, len(queries))
	var wg sync.WaitGroup
	for i := range queries {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q := queries[i]
			busy, err := s.BookingRepo.GetBusyIntervals(ctx, q.Schedule.UserID, q.RangeStart.UTC(), q.RangeEnd.UTC())
			if err != nil {
				errs[i] = fmt.Errorf("failed to load busy intervals for user %s: %w", q.Schedule.UserID, err)
				return
			}
			perUser[i], errs[i] = ComputeAvailability(q, busy, now)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return MergeUserAvailability(perUser, policy)
}

// GetTeamAvailability resolves schedule IDs into per-host queries and
// delegates to GetMultiUserAvailability.
func (s *DefaultAvailabilityService) GetTeamAvailability(ctx context.Context, scheduleIDs []string, policy models.SchedulingPolicy, rangeStart, rangeEnd time.Time, bufferBefore, bufferAfter time.Duration) ([]models.TimeInterval, error) {
	queries := make([]models.AvailabilityQuery, 0, len(scheduleIDs))
	for _, id := range scheduleIDs {
		sched, err := s.ScheduleRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load schedule %s: %w", id, err)
		}
		queries = append(queries, models.AvailabilityQuery{
			Schedule:     *sched,
			RangeStart:   rangeStart.UTC(),
			RangeEnd:     rangeEnd.UTC(),
			BufferBefore: bufferBefore,
			BufferAfter:  bufferAfter,
		})
	}
	return s.GetMultiUserAvailability(ctx, queries, policy)
}

// PickLuckyUser orders the hosts deterministically (account creation, then
// ID), loads their booking counts over the lookback window and returns the
// fairness winner.
func (s *DefaultAvailabilityService) PickLuckyUser(ctx context.Context, eventTypeID string, hosts []models.EventHost, lookback time.Duration) (models.EventHost, error) {
	if len(hosts) == 0 {
		return models.EventHost{}, NewConfigurationError("round-robin selection requires at least one eligible host")
	}

	ordered := append([]models.EventHost(nil), hosts...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	ids := make([]string, len(ordered))
	for i, h := range ordered {
		ids[i] = h.ID
	}
	until := time.Now()
	counts, err := s.BookingRepo.CountBookingsByHost(ctx, eventTypeID, ids, until.Add(-lookback), until)
	if err != nil {
		return models.EventHost{}, fmt.Errorf("failed to load booking counts for event type %s: %w", eventTypeID, err)
	}
	return SelectLuckyUser(ordered, counts)
}

func cacheKey(q models.AvailabilityQuery) string {
	return fmt.Sprintf("%s%s:%d:%d:%d:%d",
		utils.AvailabilityCachePrefix,
		q.Schedule.ID,
		q.RangeStart.Unix(), q.RangeEnd.Unix(),
		int64(q.BufferBefore/time.Minute), int64(q.BufferAfter/time.Minute))
}

func (s *DefaultAvailabilityService) cachedResult(ctx context.Context, q models.AvailabilityQuery) ([]models.TimeInterval, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, cacheKey(q)).Bytes()
	if err != nil {
		return nil, false
	}
	var intervals []models.TimeInterval
	if err := json.Unmarshal(raw, &intervals); err != nil {
		return nil, false
	}
	return intervals, true
}

func (s *DefaultAvailabilityService) storeResult(ctx context.Context, q models.AvailabilityQuery, intervals []models.TimeInterval) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(intervals)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = utils.AvailabilityCacheTTL
	}
	if err := s.Cache.Set(ctx, cacheKey(q), raw, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability", zap.String("scheduleID", q.Schedule.ID), zap.Error(err))
	}
}
