package scheduleRepo

import (
	"context"

	"timehuddle/models"
)

// ScheduleRepository provides read-only schedule snapshots to the
// availability engine. Schedule edits happen in the CRUD layer and are
// sequenced there; the engine only ever reads.
type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (*models.Schedule, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Schedule, error)
}
