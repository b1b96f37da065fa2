// File: database/repository/schedule/schedule_mongo.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"timehuddle/database"
	"timehuddle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo returns a ScheduleRepository backed by the
// "schedules" collection.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.MongoClient.Database("timehuddle").Collection("schedules")
	return &mongoScheduleRepo{coll: coll}
}

func (r *mongoScheduleRepo) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sched models.Schedule
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sched); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("schedule %s not found: %w", id, err)
		}
		return nil, err
	}
	return &sched, nil
}

func (r *mongoScheduleRepo) GetByUserID(ctx context.Context, userID string) ([]models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}
