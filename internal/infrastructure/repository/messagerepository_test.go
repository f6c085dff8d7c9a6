package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "alumnet/internal/domain/ticket/valueobjects"
)

func TestMessageRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	ticketRepo := NewTicketRepository(db)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Login broken", vo.PriorityMedium, 10, "TKT-2026-000010")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	t.Run("save assigns an ID and round-trips", func(t *testing.T) {
		m := createTestMessage(t, tk.ID(), 10, "I cannot sign in since yesterday", false)

		require.NoError(t, repo.Save(ctx, m))
		assert.NotZero(t, m.ID())

		found, err := repo.GetByID(ctx, m.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, tk.ID(), found.TicketID())
		assert.Equal(t, "I cannot sign in since yesterday", found.Body())
		assert.False(t, found.IsFromAdmin())
	})

	t.Run("unknown ID reads as nil without error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("thread comes back oldest first", func(t *testing.T) {
		other := createTestTicket(t, "Thread order", vo.PriorityLow, 11, "TKT-2026-000011")
		require.NoError(t, ticketRepo.Save(ctx, other))

		first := createTestMessage(t, other.ID(), 11, "first", false)
		require.NoError(t, repo.Save(ctx, first))
		second := createTestMessage(t, other.ID(), 1, "second", true)
		require.NoError(t, repo.Save(ctx, second))

		thread, err := repo.GetByTicketID(ctx, other.ID())
		require.NoError(t, err)
		require.Len(t, thread, 2)
		assert.Equal(t, "first", thread[0].Body())
		assert.Equal(t, "second", thread[1].Body())
	})
}

func TestMessageRepository_MarkAdminMessagesRead(t *testing.T) {
	db := setupTestDB(t)
	ticketRepo := NewTicketRepository(db)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Read receipts", vo.PriorityMedium, 20, "TKT-2026-000020")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	adminMsg := createTestMessage(t, tk.ID(), 1, "We are looking into it", true)
	require.NoError(t, repo.Save(ctx, adminMsg))
	memberMsg := createTestMessage(t, tk.ID(), 20, "Thanks", false)
	require.NoError(t, repo.Save(ctx, memberMsg))

	require.NoError(t, repo.MarkAdminMessagesRead(ctx, tk.ID(), time.Now()))

	thread, err := repo.GetByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, thread, 2)
	for _, m := range thread {
		if m.IsFromAdmin() {
			assert.NotNil(t, m.ReadAt())
		} else {
			assert.Nil(t, m.ReadAt())
		}
	}
}

func TestMessageRepository_EditHistory(t *testing.T) {
	db := setupTestDB(t)
	ticketRepo := NewTicketRepository(db)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Edited thread", vo.PriorityMedium, 30, "TKT-2026-000030")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	m := createTestMessage(t, tk.ID(), 30, "original wording", false)
	require.NoError(t, repo.Save(ctx, m))

	edit, err := m.Edit("clearer wording", "", 30, "typo")
	require.NoError(t, err)
	require.NoError(t, repo.SaveEdit(ctx, edit))
	require.NoError(t, repo.Update(ctx, m))

	found, err := repo.GetByID(ctx, m.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "clearer wording", found.Body())
	assert.True(t, found.IsEdited())
	assert.NotNil(t, found.EditedAt())

	edits, err := repo.GetEditsByMessageID(ctx, m.ID())
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, "original wording", edits[0].PreviousBody())
	assert.Equal(t, "typo", edits[0].Reason())
	assert.Equal(t, uint(30), edits[0].EditorID())

	t.Run("no edits yields empty history", func(t *testing.T) {
		other := createTestMessage(t, tk.ID(), 30, "never touched", false)
		require.NoError(t, repo.Save(ctx, other))

		edits, err := repo.GetEditsByMessageID(ctx, other.ID())
		require.NoError(t, err)
		assert.Empty(t, edits)
	})
}
