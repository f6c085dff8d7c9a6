package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
)

func TestReactionRepository(t *testing.T) {
	db := setupTestDB(t)
	ticketRepo := NewTicketRepository(db)
	messageRepo := NewMessageRepository(db)
	repo := NewReactionRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Reactions", vo.PriorityMedium, 50, "TKT-2026-000050")
	require.NoError(t, ticketRepo.Save(ctx, tk))
	m := createTestMessage(t, tk.ID(), 1, "Fixed in the latest release", true)
	require.NoError(t, messageRepo.Save(ctx, m))

	t.Run("save and find by triple", func(t *testing.T) {
		r, err := ticket.NewMessageReaction(m.ID(), 50, vo.ReactionHelpful)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, r))
		assert.NotZero(t, r.ID())

		found, err := repo.Find(ctx, m.ID(), 50, vo.ReactionHelpful)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, r.ID(), found.ID())
	})

	t.Run("different type on the same message is absent", func(t *testing.T) {
		found, err := repo.Find(ctx, m.ID(), 50, vo.ReactionThanks)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("lists all reactions of a message", func(t *testing.T) {
		r, err := ticket.NewMessageReaction(m.ID(), 51, vo.ReactionAgree)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, r))

		reactions, err := repo.GetByMessageID(ctx, m.ID())
		require.NoError(t, err)
		assert.Len(t, reactions, 2)
	})

	t.Run("delete removes the reaction", func(t *testing.T) {
		found, err := repo.Find(ctx, m.ID(), 50, vo.ReactionHelpful)
		require.NoError(t, err)
		require.NotNil(t, found)

		require.NoError(t, repo.Delete(ctx, found.ID()))

		gone, err := repo.Find(ctx, m.ID(), 50, vo.ReactionHelpful)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}
