package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	apperrors "alumnet/internal/shared/errors"
)

func TestToggleReactionUseCase_Execute_AddThenRemove(t *testing.T) {
	existing := reconstructTicket(t, vo.StatusInProgress)
	msg := reconstructMessageAt(t, true, false, time.Now().Add(-time.Hour))

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockMessages := &mockMessageRepository{
		GetByIDFunc: func(ctx context.Context, messageID uint) (*ticket.Message, error) {
			return msg, nil
		},
	}

	// First toggle: nothing exists yet, so the reaction is created.
	var savedReaction *ticket.MessageReaction
	mockReactions := &mockReactionRepository{
		SaveFunc: func(ctx context.Context, r *ticket.MessageReaction) error {
			if err := r.SetID(5); err != nil {
				return err
			}
			savedReaction = r
			return nil
		},
	}
	var published events.DomainEvent
	mockPub := &mockEventPublisher{
		PublishFunc: func(event events.DomainEvent) error {
			published = event
			return nil
		},
	}

	useCase := NewToggleReactionUseCase(mockTickets, mockMessages, mockReactions, mockPub, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ToggleReactionCommand{
		MessageID:    fixtureMessageID,
		UserID:       fixtureCreatorID,
		ReactionType: "HELPFUL",
	})

	require.NoError(t, err)
	assert.True(t, result.Added)
	require.NotNil(t, savedReaction)
	assert.Equal(t, vo.ReactionHelpful, savedReaction.ReactionType())
	require.NotNil(t, published)
	assert.Equal(t, ticket.EventReactionAdded, published.GetEventType())

	// Second toggle: the identical triple exists, so it is removed.
	var deletedID uint
	mockReactions.FindFunc = func(ctx context.Context, messageID, userID uint, reactionType vo.ReactionType) (*ticket.MessageReaction, error) {
		return savedReaction, nil
	}
	mockReactions.DeleteFunc = func(ctx context.Context, reactionID uint) error {
		deletedID = reactionID
		return nil
	}

	result, err = useCase.Execute(context.Background(), ToggleReactionCommand{
		MessageID:    fixtureMessageID,
		UserID:       fixtureCreatorID,
		ReactionType: "HELPFUL",
	})

	require.NoError(t, err)
	assert.False(t, result.Added)
	assert.Equal(t, uint(5), deletedID)
}

func TestToggleReactionUseCase_Execute_InvalidReactionType(t *testing.T) {
	useCase := NewToggleReactionUseCase(
		&mockTicketRepository{}, &mockMessageRepository{}, &mockReactionRepository{},
		&mockEventPublisher{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ToggleReactionCommand{
		MessageID:    fixtureMessageID,
		UserID:       fixtureCreatorID,
		ReactionType: "FIRE",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestToggleReactionUseCase_Execute_InternalNoteHiddenFromMembers(t *testing.T) {
	existing := reconstructTicket(t, vo.StatusInProgress)
	msg := reconstructMessageAt(t, true, true, time.Now().Add(-time.Hour))

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockMessages := &mockMessageRepository{
		GetByIDFunc: func(ctx context.Context, messageID uint) (*ticket.Message, error) {
			return msg, nil
		},
	}

	useCase := NewToggleReactionUseCase(
		mockTickets, mockMessages, &mockReactionRepository{}, &mockEventPublisher{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ToggleReactionCommand{
		MessageID:    fixtureMessageID,
		UserID:       fixtureCreatorID,
		IsAdmin:      false,
		ReactionType: "THANKS",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListReactionsUseCase_Execute_GroupsByType(t *testing.T) {
	existing := reconstructTicket(t, vo.StatusInProgress)
	msg := reconstructMessageAt(t, true, false, time.Now().Add(-time.Hour))

	r1, err := ticket.ReconstructMessageReaction(1, fixtureMessageID, 10, vo.ReactionHelpful, time.Now())
	require.NoError(t, err)
	r2, err := ticket.ReconstructMessageReaction(2, fixtureMessageID, 11, vo.ReactionHelpful, time.Now())
	require.NoError(t, err)
	r3, err := ticket.ReconstructMessageReaction(3, fixtureMessageID, 10, vo.ReactionThanks, time.Now())
	require.NoError(t, err)

	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockMessages := &mockMessageRepository{
		GetByIDFunc: func(ctx context.Context, messageID uint) (*ticket.Message, error) {
			return msg, nil
		},
	}
	mockReactions := &mockReactionRepository{
		GetByMessageIDFunc: func(ctx context.Context, messageID uint) ([]*ticket.MessageReaction, error) {
			return []*ticket.MessageReaction{r1, r2, r3}, nil
		},
	}

	mockDirectory := &mockAdminDirectory{
		GetUserProfileFunc: func(ctx context.Context, userID uint) (*ticket.UserProfile, error) {
			names := map[uint]string{10: "Ada Moreno", 11: "Ben Okafor"}
			return &ticket.UserProfile{ID: userID, Name: names[userID]}, nil
		},
	}

	useCase := NewListReactionsUseCase(mockTickets, mockMessages, mockReactions, mockDirectory, &mockLogger{})

	groups, err := useCase.Execute(context.Background(), ListReactionsQuery{
		MessageID: fixtureMessageID,
		ViewerID:  fixtureCreatorID,
	})

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "HELPFUL", groups[0].ReactionType)
	assert.Equal(t, 2, groups[0].Count)
	require.Len(t, groups[0].Users, 2)
	assert.Equal(t, uint(10), groups[0].Users[0].UserID)
	assert.Equal(t, "Ada Moreno", groups[0].Users[0].Name)
	assert.Equal(t, uint(11), groups[0].Users[1].UserID)
	assert.Equal(t, "Ben Okafor", groups[0].Users[1].Name)
	assert.Equal(t, "THANKS", groups[1].ReactionType)
	assert.Equal(t, 1, groups[1].Count)
}
