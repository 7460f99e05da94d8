package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-parcel/models"
)

// PaymentRepository handles the append-only payment history collection.
type PaymentRepository interface {
	Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error)
	FindByPayer(ctx context.Context, email string) ([]models.Payment, error)
}

type paymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{collection: db.Collection("payments")}
}

func (r *paymentRepository) Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, payment)
}

// FindByPayer returns the payer's history, latest on top.
func (r *paymentRepository) FindByPayer(ctx context.Context, email string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
