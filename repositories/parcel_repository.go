package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-parcel/models"
)

// ParcelRepository handles database operations for parcels.
type ParcelRepository interface {
	Insert(ctx context.Context, parcel models.Parcel) (*mongo.InsertOneResult, error)
	FindByOwner(ctx context.Context, email string) ([]models.Parcel, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}

type parcelRepository struct {
	collection *mongo.Collection
}

func NewParcelRepository(db *mongo.Database) ParcelRepository {
	return &parcelRepository{collection: db.Collection("parcels")}
}

func (r *parcelRepository) Insert(ctx context.Context, parcel models.Parcel) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, parcel)
}

// FindByOwner returns the owner's parcels, most recent first.
func (r *parcelRepository) FindByOwner(ctx context.Context, email string) ([]models.Parcel, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var parcels []models.Parcel
	if err := cursor.All(ctx, &parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}

func (r *parcelRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&parcel); err != nil {
		return nil, err
	}
	return &parcel, nil
}

func (r *parcelRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.collection.DeleteOne(ctx, bson.M{"_id": id})
}

// MarkPaid flips the parcel's payment status to Paid. A parcel already
// marked yields ModifiedCount 0, which the payment ledger relies on to
// suppress duplicate history entries.
func (r *parcelRepository) MarkPaid(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"paymentStatus": models.PaymentStatusPaid},
	})
}
