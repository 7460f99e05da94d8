package repositories

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-parcel/models"
)

// UserRepository handles database operations for users. Email lookups are
// case-insensitive because the identity provider does not normalize case.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	Search(ctx context.Context, partial string, limit int64) ([]models.User, error)
	UpdateRoleByID(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error)
	UpdateRoleByEmail(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
}

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection("users")}
}

func emailExact(email string) bson.M {
	return bson.M{"email": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(email) + "$", Options: "i"}}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, emailExact(email)).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, user)
}

func (r *userRepository) Search(ctx context.Context, partial string, limit int64) ([]models.User, error) {
	filter := bson.M{"email": primitive.Regex{Pattern: regexp.QuoteMeta(partial), Options: "i"}}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateRoleByID(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
}

func (r *userRepository) UpdateRoleByEmail(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, emailExact(email), bson.M{"$set": bson.M{"role": role}})
}
