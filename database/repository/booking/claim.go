package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sweepstack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Claim performs the one write in the system that must be linearizable
// across concurrent callers. The condition and the assignment live in a
// single FindOneAndUpdate, so the storage engine serializes competing
// claims: whichever claim the filter matches first wins, and every later
// claim no longer matches. There is deliberately no read-then-write here.
//
// The $or arm matching the caller's own ID makes a winner's retry succeed
// again instead of reporting a conflict.
func (repo *MongoBookingRepo) Claim(ctx context.Context, id, cleanerID string) (*models.Booking, error) {
	filter := bson.M{
		"id":     id,
		"status": models.StatusBooked,
		"$or": bson.A{
			bson.M{"cleaner_id": ""},
			bson.M{"cleaner_id": cleanerID},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"cleaner_id": cleanerID,
			"updated_at": time.Now(),
		},
	}

	var claimed models.Booking
	err := repo.coll.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&claimed)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Condition not met: missing, not BOOKED, or claimed by someone
		// else. The service layer reads the record to name which.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("claim booking %s failed: %w", id, err)
	}
	return &claimed, nil
}
