package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pointgrid/point-backend/internal/models"
	"github.com/pointgrid/point-backend/internal/repositories"
)

// Compile-time check to ensure UserPointRepository implements the interface
var _ repositories.UserPointRepository = (*UserPointRepository)(nil)

// UserPointRepository is the in-memory balance store. It is the default
// backend; state lives for the lifetime of the process.
type UserPointRepository struct {
	mu     sync.RWMutex
	points map[int64]models.UserPoint
}

// NewUserPointRepository creates an empty in-memory balance store.
func NewUserPointRepository() *UserPointRepository {
	return &UserPointRepository{
		points: make(map[int64]models.UserPoint),
	}
}

// Get returns the stored balance for userID, or the implicit default
// (zero balance, current time) without persisting it.
func (r *UserPointRepository) Get(ctx context.Context, userID int64) (models.UserPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if point, ok := r.points[userID]; ok {
		return point, nil
	}
	return models.UserPoint{
		ID:           userID,
		Point:        0,
		UpdateMillis: time.Now().UnixMilli(),
	}, nil
}

// SetBalance overwrites the balance for userID and stamps the current time.
func (r *UserPointRepository) SetBalance(ctx context.Context, userID int64, balance int64) (models.UserPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	point := models.UserPoint{
		ID:           userID,
		Point:        balance,
		UpdateMillis: time.Now().UnixMilli(),
	}
	r.points[userID] = point
	return point, nil
}
