package repositories

import (
	"context"

	"github.com/pointgrid/point-backend/internal/models"
)

// UserPointRepository defines the interface for user point balance storage.
type UserPointRepository interface {
	// Get returns the current balance record for userID. Unknown users read
	// as a zero balance stamped with the current time; a pure read never
	// creates a persisted record.
	Get(ctx context.Context, userID int64) (models.UserPoint, error)
	// SetBalance unconditionally overwrites (or creates) the stored balance
	// for userID, stamps the current time, and returns the stored record.
	// Callers are responsible for ensuring balance >= 0.
	SetBalance(ctx context.Context, userID int64, balance int64) (models.UserPoint, error)
}

// PointHistoryRepository defines the interface for the append-only
// transaction ledger.
type PointHistoryRepository interface {
	// Append stores a new history record with a freshly assigned, globally
	// increasing ID and returns it.
	Append(ctx context.Context, userID int64, amount int64, txType models.TransactionType, updateMillis int64) (models.PointHistory, error)
	// FindByUserID returns all records for userID in insertion order.
	// Users with no records get an empty slice, never an error.
	FindByUserID(ctx context.Context, userID int64) ([]models.PointHistory, error)
}
