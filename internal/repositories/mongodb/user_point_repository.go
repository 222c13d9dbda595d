package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/pointgrid/point-backend/internal/models"
	"github.com/pointgrid/point-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure UserPointRepository implements the interface
var _ repositories.UserPointRepository = (*UserPointRepository)(nil)

// UserPointRepository handles MongoDB operations for user point balances.
type UserPointRepository struct {
	collection *mongo.Collection
}

// NewUserPointRepository creates a new UserPointRepository.
func NewUserPointRepository(db *mongo.Database) *UserPointRepository {
	return &UserPointRepository{
		collection: db.Collection("user_points"),
	}
}

// Get returns the stored balance for userID. A user with no document reads
// as a zero balance stamped with the current time; nothing is written.
func (r *UserPointRepository) Get(ctx context.Context, userID int64) (models.UserPoint, error) {
	var point models.UserPoint
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&point)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.UserPoint{
				ID:           userID,
				Point:        0,
				UpdateMillis: time.Now().UnixMilli(),
			}, nil
		}
		return models.UserPoint{}, err
	}
	return point, nil
}

// SetBalance upserts the balance document for userID and returns the
// document as written.
func (r *UserPointRepository) SetBalance(ctx context.Context, userID int64, balance int64) (models.UserPoint, error) {
	update := bson.M{
		"$set": bson.M{
			"point":        balance,
			"updateMillis": time.Now().UnixMilli(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var point models.UserPoint
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(&point)
	if err != nil {
		return models.UserPoint{}, err
	}
	return point, nil
}
