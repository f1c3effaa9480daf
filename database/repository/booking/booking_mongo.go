package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sweepstack/database"
	"sweepstack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository backed by MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a repository over the bookings collection.
func NewMongoBookingRepo() *MongoBookingRepo {
	repo := &MongoBookingRepo{
		coll: database.GetDatabase().Collection("bookings"),
	}
	repo.ensureIndexes()
	return repo
}

func (repo *MongoBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	if _, err := repo.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert booking failed: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch booking %s failed: %w", id, err)
	}
	return &b, nil
}

func (repo *MongoBookingRepo) List(ctx context.Context, f ListFilter) ([]models.Booking, error) {
	filter := bson.M{}
	if f.CustomerID != "" {
		filter["customer_id"] = f.CustomerID
	}
	if f.CleanerID != "" {
		filter["cleaner_id"] = f.CleanerID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Unclaimed {
		filter["cleaner_id"] = ""
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cur, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode bookings failed: %w", err)
	}
	return out, nil
}

func (repo *MongoBookingRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Booking, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	var updated models.Booking
	err := repo.coll.FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update booking %s failed: %w", id, err)
	}
	return &updated, nil
}
