package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-parcel/models"
)

// RiderRepository handles database operations for rider applications.
type RiderRepository interface {
	Insert(ctx context.Context, rider models.Rider) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Rider, error)
	FindByStatus(ctx context.Context, status string) ([]models.Rider, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	UpdateStatusFrom(ctx context.Context, id primitive.ObjectID, from, to string) (*mongo.UpdateResult, error)
}

type riderRepository struct {
	collection *mongo.Collection
}

func NewRiderRepository(db *mongo.Database) RiderRepository {
	return &riderRepository{collection: db.Collection("riders")}
}

func (r *riderRepository) Insert(ctx context.Context, rider models.Rider) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, rider)
}

func (r *riderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Rider, error) {
	var rider models.Rider
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rider); err != nil {
		return nil, err
	}
	return &rider, nil
}

func (r *riderRepository) FindByStatus(ctx context.Context, status string) ([]models.Rider, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var riders []models.Rider
	if err := cursor.All(ctx, &riders); err != nil {
		return nil, err
	}
	return riders, nil
}

func (r *riderRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.collection.DeleteOne(ctx, bson.M{"_id": id})
}

// UpdateStatusFrom moves a rider to a new status only when the current
// status matches exactly. The filter is the lifecycle guard: a rider that
// already left the source state matches nothing.
func (r *riderRepository) UpdateStatusFrom(ctx context.Context, id primitive.ObjectID, from, to string) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
}
