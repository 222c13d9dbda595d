package services

import (
	"context"
	"log/slog"
	"math"

	"github.com/pointgrid/point-backend/internal/models"
	"github.com/pointgrid/point-backend/internal/repositories"
)

// Compile-time check to ensure PointServiceImpl implements PointService
var _ PointService = (*PointServiceImpl)(nil)

// PointServiceImpl orchestrates validation, the balance read-modify-write,
// and the ledger append. Mutations on the same user are serialized by a
// per-user lock; different users proceed concurrently.
type PointServiceImpl struct {
	userPointRepo    repositories.UserPointRepository
	pointHistoryRepo repositories.PointHistoryRepository
	userLocks        *userLocker
}

// NewPointService creates a new PointServiceImpl backed by the given
// repositories.
func NewPointService(userPointRepo repositories.UserPointRepository, pointHistoryRepo repositories.PointHistoryRepository) *PointServiceImpl {
	return &PointServiceImpl{
		userPointRepo:    userPointRepo,
		pointHistoryRepo: pointHistoryRepo,
		userLocks:        newUserLocker(),
	}
}

// GetPoint returns the current balance for userID.
func (s *PointServiceImpl) GetPoint(ctx context.Context, userID int64) (models.UserPoint, error) {
	if userID <= 0 {
		return models.UserPoint{}, ErrInvalidUserID
	}
	return s.userPointRepo.Get(ctx, userID)
}

// GetHistories returns the user's transaction records in insertion order.
func (s *PointServiceImpl) GetHistories(ctx context.Context, userID int64) ([]models.PointHistory, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	return s.pointHistoryRepo.FindByUserID(ctx, userID)
}

// Charge adds amount to the user's balance and appends a CHARGE record
// stamped with the updated balance's timestamp.
func (s *PointServiceImpl) Charge(ctx context.Context, userID int64, amount int64) (models.UserPoint, error) {
	if userID <= 0 {
		return models.UserPoint{}, ErrInvalidUserID
	}
	if amount <= 0 {
		return models.UserPoint{}, ErrInvalidAmount
	}

	unlock := s.userLocks.lock(userID)
	defer unlock()

	current, err := s.userPointRepo.Get(ctx, userID)
	if err != nil {
		return models.UserPoint{}, err
	}
	if current.Point > math.MaxInt64-amount {
		return models.UserPoint{}, ErrBalanceOverflow
	}

	updated, err := s.userPointRepo.SetBalance(ctx, userID, current.Point+amount)
	if err != nil {
		return models.UserPoint{}, err
	}
	if _, err := s.pointHistoryRepo.Append(ctx, userID, amount, models.TransactionTypeCharge, updated.UpdateMillis); err != nil {
		return models.UserPoint{}, err
	}

	slog.Info("charged points", "userId", userID, "amount", amount, "balance", updated.Point)
	return updated, nil
}

// Use subtracts amount from the user's balance and appends a USE record
// stamped with the updated balance's timestamp. Fails without side effects
// when the balance is too low.
func (s *PointServiceImpl) Use(ctx context.Context, userID int64, amount int64) (models.UserPoint, error) {
	if userID <= 0 {
		return models.UserPoint{}, ErrInvalidUserID
	}
	if amount <= 0 {
		return models.UserPoint{}, ErrInvalidAmount
	}

	unlock := s.userLocks.lock(userID)
	defer unlock()

	current, err := s.userPointRepo.Get(ctx, userID)
	if err != nil {
		return models.UserPoint{}, err
	}
	if current.Point < amount {
		return models.UserPoint{}, ErrInsufficientBalance
	}

	updated, err := s.userPointRepo.SetBalance(ctx, userID, current.Point-amount)
	if err != nil {
		return models.UserPoint{}, err
	}
	if _, err := s.pointHistoryRepo.Append(ctx, userID, amount, models.TransactionTypeUse, updated.UpdateMillis); err != nil {
		return models.UserPoint{}, err
	}

	slog.Info("used points", "userId", userID, "amount", amount, "balance", updated.Point)
	return updated, nil
}
