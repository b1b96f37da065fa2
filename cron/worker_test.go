package cron

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timehuddle/models"
)

// recordingAvailabilityService records which service method the warm handler
// goes through.
type recordingAvailabilityService struct {
	getCalls     int
	refreshCalls int
	scheduleID   string
	rangeStart   time.Time
	rangeEnd     time.Time
}

func (r *recordingAvailabilityService) GetAvailability(_ context.Context, scheduleID string, _, _ time.Time, _, _ time.Duration) ([]models.TimeInterval, error) {
	r.getCalls++
	r.scheduleID = scheduleID
	return nil, nil
}

func (r *recordingAvailabilityService) RefreshAvailability(_ context.Context, scheduleID string, rangeStart, rangeEnd time.Time, _, _ time.Duration) ([]models.TimeInterval, error) {
	r.refreshCalls++
	r.scheduleID = scheduleID
	r.rangeStart = rangeStart
	r.rangeEnd = rangeEnd
	return nil, nil
}

func (r *recordingAvailabilityService) GetUserAvailability(_ context.Context, _ string, _, _ time.Time, _, _ time.Duration) ([]models.TimeInterval, error) {
	return nil, nil
}

func (r *recordingAvailabilityService) GetMultiUserAvailability(_ context.Context, _ []models.AvailabilityQuery, _ models.SchedulingPolicy) ([]models.TimeInterval, error) {
	return nil, nil
}

func (r *recordingAvailabilityService) GetTeamAvailability(_ context.Context, _ []string, _ models.SchedulingPolicy, _, _ time.Time, _, _ time.Duration) ([]models.TimeInterval, error) {
	return nil, nil
}

func (r *recordingAvailabilityService) PickLuckyUser(_ context.Context, _ string, _ []models.EventHost, _ time.Duration) (models.EventHost, error) {
	return models.EventHost{}, nil
}

func TestHandleWarmTask_BypassesCachedEntry(t *testing.T) {
	svc := &recordingAvailabilityService{}

	payload, err := json.Marshal(models.WarmPayload{ScheduleID: "sched-1", Days: 3})
	require.NoError(t, err)
	task := asynq.NewTask(TypeAvailabilityWarm, payload)

	require.NoError(t, handleWarmTask(svc)(context.Background(), task))

	// A warm enqueued right after a schedule edit must recompute, not serve
	// the pre-edit cache entry back.
	assert.Equal(t, 1, svc.refreshCalls)
	assert.Zero(t, svc.getCalls, "warm must not go through the cache-reading path")
	assert.Equal(t, "sched-1", svc.scheduleID)
	assert.Equal(t, 3*24*time.Hour, svc.rangeEnd.Sub(svc.rangeStart))
}

func TestHandleWarmTask_RejectsMalformedPayload(t *testing.T) {
	svc := &recordingAvailabilityService{}
	task := asynq.NewTask(TypeAvailabilityWarm, []byte("{not json"))

	require.Error(t, handleWarmTask(svc)(context.Background(), task))
	assert.Zero(t, svc.refreshCalls)
}
