// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"timehuddle/database"
	"timehuddle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBookingRepo struct {
	bookingColl *mongo.Collection
	busyColl    *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by the "bookings"
// collection and the "externalBusy" collection the calendar sync layer
// writes into.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("timehuddle")
	return &mongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		busyColl:    db.Collection("externalBusy"),
	}
}

// externalBusyDoc is the stored form of a synced calendar busy block.
type externalBusyDoc struct {
	UserID     string    `bson:"userId"`
	CalendarID string    `bson:"calendarId"`
	Start      time.Time `bson:"start"`
	End        time.Time `bson:"end"`
}

func (r *mongoBookingRepo) GetBusyIntervals(ctx context.Context, userID string, rangeStart, rangeEnd time.Time) ([]models.BusyInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var busy []models.BusyInterval

	// Confirmed bookings overlapping the window (half-open semantics).
	bookingFilter := bson.M{
		"hostUserId": userID,
		"status":     bson.M{"$ne": "cancelled"},
		"start":      bson.M{"$lt": rangeEnd},
		"end":        bson.M{"$gt": rangeStart},
	}
	cursor, err := r.bookingColl.Find(ctx, bookingFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		busy = append(busy, models.BusyInterval{Start: b.Start, End: b.End, Source: models.BusySourceBooking})
	}

	// Synced external calendar blocks for the same window.
	busyFilter := bson.M{
		"userId": userID,
		"start":  bson.M{"$lt": rangeEnd},
		"end":    bson.M{"$gt": rangeStart},
	}
	cursor, err = r.busyColl.Find(ctx, busyFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to query external busy blocks: %w", err)
	}
	var blocks []externalBusyDoc
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	for _, blk := range blocks {
		busy = append(busy, models.BusyInterval{Start: blk.Start, End: blk.End, Source: models.BusySourceCalendar})
	}

	return busy, nil
}

func (r *mongoBookingRepo) CountBookingsByHost(ctx context.Context, eventTypeID string, userIDs []string, since, until time.Time) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"eventTypeId": eventTypeID,
			"hostUserId":  bson.M{"$in": userIDs},
			"status":      bson.M{"$ne": "cancelled"},
			"createdAt":   bson.M{"$gte": since, "$lt": until},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$hostUserId",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.bookingColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking counts: %w", err)
	}
	var rows []struct {
		ID    string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	// Zero-fill so hosts without bookings still rank.
	counts := make(map[string]int, len(userIDs))
	for _, id := range userIDs {
		counts[id] = 0
	}
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}
