package ratesheetRepo

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

// MongoRateSheetRepo implements RateSheetRepository backed by MongoDB.
type MongoRateSheetRepo struct {
	coll *mongo.Collection
}

func NewMongoRateSheetRepo() *MongoRateSheetRepo {
	repo := &MongoRateSheetRepo{
		coll: database.GetDatabase().Collection("rate_sheets"),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "version", Value: -1}},
		Options: options.Index().SetUnique(true),
	})
	return repo
}

func (repo *MongoRateSheetRepo) Latest(ctx context.Context) (*models.RateSheet, error) {
	var sheet models.RateSheet
	err := repo.coll.FindOne(
		ctx,
		bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}}),
	).Decode(&sheet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch latest rate sheet failed: %w", err)
	}
	return &sheet, nil
}

func (repo *MongoRateSheetRepo) Publish(ctx context.Context, sheet *models.RateSheet) (int, error) {
	latest, err := repo.Latest(ctx)
	if err != nil {
		return 0, err
	}
	next := 1
	if latest != nil {
		next = latest.Version + 1
	}

	sheet.Version = next
	sheet.CreatedAt = time.Now()
	if _, err := repo.coll.InsertOne(ctx, sheet); err != nil {
		// The unique version index turns two racing publishes into one
		// winner and one retryable error.
		return 0, fmt.Errorf("publish rate sheet v%d failed: %w", next, err)
	}
	return next, nil
}
