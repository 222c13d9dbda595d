package services

import (
	"context"

	"github.com/pointgrid/point-backend/internal/models"
)

// PointService defines the interface for point balance operations.
type PointService interface {
	GetPoint(ctx context.Context, userID int64) (models.UserPoint, error)
	GetHistories(ctx context.Context, userID int64) ([]models.PointHistory, error)
	Charge(ctx context.Context, userID int64, amount int64) (models.UserPoint, error)
	Use(ctx context.Context, userID int64, amount int64) (models.UserPoint, error)
}
