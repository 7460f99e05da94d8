package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"go-parcel/models"
)

// TrackingRepository handles the append-only tracking log.
type TrackingRepository interface {
	Insert(ctx context.Context, event models.TrackingEvent) (*mongo.InsertOneResult, error)
}

type trackingRepository struct {
	collection *mongo.Collection
}

func NewTrackingRepository(db *mongo.Database) TrackingRepository {
	return &trackingRepository{collection: db.Collection("tracking")}
}

func (r *trackingRepository) Insert(ctx context.Context, event models.TrackingEvent) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, event)
}
