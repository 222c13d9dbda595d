package memory

import (
	"context"
	"sync"

	"github.com/pointgrid/point-backend/internal/models"
	"github.com/pointgrid/point-backend/internal/repositories"
)

// Compile-time check to ensure PointHistoryRepository implements the interface
var _ repositories.PointHistoryRepository = (*PointHistoryRepository)(nil)

// PointHistoryRepository is the in-memory transaction ledger. Record IDs
// come from a single counter shared across all users.
type PointHistoryRepository struct {
	mu        sync.RWMutex
	nextID    int64
	histories map[int64][]models.PointHistory
}

// NewPointHistoryRepository creates an empty in-memory ledger.
func NewPointHistoryRepository() *PointHistoryRepository {
	return &PointHistoryRepository{
		nextID:    1,
		histories: make(map[int64][]models.PointHistory),
	}
}

// Append stores a new record under the next global ID and returns it.
func (r *PointHistoryRepository) Append(ctx context.Context, userID int64, amount int64, txType models.TransactionType, updateMillis int64) (models.PointHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := models.PointHistory{
		ID:           r.nextID,
		UserID:       userID,
		Amount:       amount,
		Type:         txType,
		UpdateMillis: updateMillis,
	}
	r.nextID++
	r.histories[userID] = append(r.histories[userID], history)
	return history, nil
}

// FindByUserID returns a snapshot of the user's records in insertion order.
func (r *PointHistoryRepository) FindByUserID(ctx context.Context, userID int64) ([]models.PointHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.histories[userID]
	// Copy so callers never observe later appends through the shared slice.
	histories := make([]models.PointHistory, len(stored))
	copy(histories, stored)
	return histories, nil
}
