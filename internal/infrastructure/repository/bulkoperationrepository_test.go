package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
)

func TestBulkOperationRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBulkOperationRepository(db)
	ctx := context.Background()

	op, err := ticket.NewBulkOperation(vo.BulkChangePriority, 1, []uint{10, 11, 12})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, op))
	assert.NotZero(t, op.ID())

	t.Run("round-trips the started operation", func(t *testing.T) {
		found, err := repo.GetByID(ctx, op.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, vo.BulkChangePriority, found.OperationType())
		assert.Equal(t, vo.BulkStatusStarted, found.Status())
		assert.Equal(t, []uint{10, 11, 12}, found.TicketIDs())
		assert.Nil(t, found.CompletedAt())
	})

	t.Run("unknown ID reads as nil without error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("update persists results and completion", func(t *testing.T) {
		op.RecordResult(10, true, "")
		op.RecordResult(11, true, "")
		op.RecordResult(12, false, "ticket is closed")
		require.NoError(t, op.Complete())
		require.NoError(t, repo.Update(ctx, op))

		found, err := repo.GetByID(ctx, op.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, vo.BulkStatusCompleted, found.Status())
		assert.NotNil(t, found.CompletedAt())
		assert.Equal(t, 2, found.SucceededCount())
		assert.Equal(t, 1, found.FailedCount())
	})
}

func TestBulkOperationRepository_ListByInitiator(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBulkOperationRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		op, err := ticket.NewBulkOperation(vo.BulkChangeStatus, 1, []uint{uint(100 + i)})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, op))
	}
	other, err := ticket.NewBulkOperation(vo.BulkAssignToAdmin, 2, []uint{200})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	ops, total, err := repo.ListByInitiator(ctx, 1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, ops, 2)

	ops, total, err = repo.ListByInitiator(ctx, 2, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, ops, 1)
	assert.Equal(t, vo.BulkAssignToAdmin, ops[0].OperationType())
}
