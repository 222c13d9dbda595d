package mongodb

import (
	"context"

	"github.com/pointgrid/point-backend/internal/models"
	"github.com/pointgrid/point-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure PointHistoryRepository implements the interface
var _ repositories.PointHistoryRepository = (*PointHistoryRepository)(nil)

// PointHistoryRepository handles MongoDB operations for the transaction
// ledger. Record IDs come from a counters collection so they stay strictly
// increasing across all users.
type PointHistoryRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

// NewPointHistoryRepository creates a new PointHistoryRepository.
func NewPointHistoryRepository(db *mongo.Database) *PointHistoryRepository {
	return &PointHistoryRepository{
		collection: db.Collection("point_histories"),
		counters:   db.Collection("counters"),
	}
}

// nextID atomically increments and returns the shared ledger sequence.
func (r *PointHistoryRepository) nextID(ctx context.Context) (int64, error) {
	update := bson.M{"$inc": bson.M{"seq": int64(1)}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx, bson.M{"_id": "point_histories"}, update, opts).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// Append inserts a new ledger record under the next global ID.
func (r *PointHistoryRepository) Append(ctx context.Context, userID int64, amount int64, txType models.TransactionType, updateMillis int64) (models.PointHistory, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return models.PointHistory{}, err
	}

	history := models.PointHistory{
		ID:           id,
		UserID:       userID,
		Amount:       amount,
		Type:         txType,
		UpdateMillis: updateMillis,
	}
	if _, err := r.collection.InsertOne(ctx, history); err != nil {
		return models.PointHistory{}, err
	}
	return history, nil
}

// FindByUserID returns all records for userID ordered by record ID, which
// matches insertion order because IDs are assigned at insertion.
func (r *PointHistoryRepository) FindByUserID(ctx context.Context, userID int64) ([]models.PointHistory, error) {
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var histories []models.PointHistory
	if err = cursor.All(ctx, &histories); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil if no documents found
	if histories == nil {
		histories = []models.PointHistory{}
	}
	return histories, nil
}
