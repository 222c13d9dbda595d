package memory

import (
	"context"
	"testing"

	"github.com/pointgrid/point-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointHistoryRepository_Append(t *testing.T) {
	repo := NewPointHistoryRepository()
	ctx := context.Background()

	t.Run("stores the record as given", func(t *testing.T) {
		history, err := repo.Append(ctx, 1, 1000, models.TransactionTypeCharge, 1234)
		require.NoError(t, err)

		assert.Equal(t, int64(1), history.UserID)
		assert.Equal(t, int64(1000), history.Amount)
		assert.Equal(t, models.TransactionTypeCharge, history.Type)
		assert.Equal(t, int64(1234), history.UpdateMillis)
	})

	t.Run("ids increase across users", func(t *testing.T) {
		a, err := repo.Append(ctx, 1, 10, models.TransactionTypeCharge, 1)
		require.NoError(t, err)
		b, err := repo.Append(ctx, 2, 10, models.TransactionTypeCharge, 1)
		require.NoError(t, err)
		c, err := repo.Append(ctx, 1, 10, models.TransactionTypeUse, 1)
		require.NoError(t, err)

		assert.Greater(t, b.ID, a.ID)
		assert.Greater(t, c.ID, b.ID)
	})
}

func TestPointHistoryRepository_FindByUserID(t *testing.T) {
	repo := NewPointHistoryRepository()
	ctx := context.Background()

	t.Run("empty slice for unknown user", func(t *testing.T) {
		histories, err := repo.FindByUserID(ctx, 99)
		require.NoError(t, err)
		assert.NotNil(t, histories)
		assert.Empty(t, histories)
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		_, err := repo.Append(ctx, 7, 100, models.TransactionTypeCharge, 1)
		require.NoError(t, err)
		_, err = repo.Append(ctx, 7, 200, models.TransactionTypeCharge, 2)
		require.NoError(t, err)
		_, err = repo.Append(ctx, 7, 50, models.TransactionTypeUse, 3)
		require.NoError(t, err)
		// Another user's record must not leak in.
		_, err = repo.Append(ctx, 8, 999, models.TransactionTypeCharge, 4)
		require.NoError(t, err)

		histories, err := repo.FindByUserID(ctx, 7)
		require.NoError(t, err)
		require.Len(t, histories, 3)
		assert.Equal(t, int64(100), histories[0].Amount)
		assert.Equal(t, int64(200), histories[1].Amount)
		assert.Equal(t, int64(50), histories[2].Amount)
		assert.Equal(t, models.TransactionTypeUse, histories[2].Type)
	})

	t.Run("result is a snapshot", func(t *testing.T) {
		_, err := repo.Append(ctx, 9, 100, models.TransactionTypeCharge, 1)
		require.NoError(t, err)

		snapshot, err := repo.FindByUserID(ctx, 9)
		require.NoError(t, err)

		_, err = repo.Append(ctx, 9, 200, models.TransactionTypeCharge, 2)
		require.NoError(t, err)

		assert.Len(t, snapshot, 1)
	})
}
