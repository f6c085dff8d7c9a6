package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type ToggleReactionCommand struct {
	MessageID    uint
	UserID       uint
	IsAdmin      bool
	ReactionType string
}

type ToggleReactionResult struct {
	// Added is true when the toggle created the reaction, false when it
	// removed an existing identical one.
	Added bool
}

// ToggleReactionUseCase flips a (message, user, type) reaction marker.
type ToggleReactionUseCase struct {
	ticketRepo   ticket.TicketRepository
	messageRepo  ticket.MessageRepository
	reactionRepo ticket.ReactionRepository
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewToggleReactionUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	reactionRepo ticket.ReactionRepository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ToggleReactionUseCase {
	return &ToggleReactionUseCase{
		ticketRepo:   ticketRepo,
		messageRepo:  messageRepo,
		reactionRepo: reactionRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *ToggleReactionUseCase) Execute(ctx context.Context, cmd ToggleReactionCommand) (*ToggleReactionResult, error) {
	reactionType, err := vo.NewReactionType(cmd.ReactionType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	msg, err := uc.messageRepo.GetByID(ctx, cmd.MessageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load message: %w", err)
	}
	if msg == nil {
		return nil, apperrors.NewNotFoundError("message not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, msg.TicketID())
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil || !t.CanBeViewedBy(cmd.UserID, cmd.IsAdmin) {
		return nil, apperrors.NewNotFoundError("message not found")
	}
	if msg.IsInternalNote() && !cmd.IsAdmin {
		return nil, apperrors.NewNotFoundError("message not found")
	}

	existing, err := uc.reactionRepo.Find(ctx, cmd.MessageID, cmd.UserID, reactionType)
	if err != nil {
		return nil, fmt.Errorf("failed to look up reaction: %w", err)
	}

	if existing != nil {
		if delErr := uc.reactionRepo.Delete(ctx, existing.ID()); delErr != nil {
			uc.logger.Errorw("failed to remove reaction", "reaction_id", existing.ID(), "error", delErr)
			return nil, fmt.Errorf("failed to remove reaction: %w", delErr)
		}
		return &ToggleReactionResult{Added: false}, nil
	}

	reaction, err := ticket.NewMessageReaction(cmd.MessageID, cmd.UserID, reactionType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.reactionRepo.Save(ctx, reaction); err != nil {
		uc.logger.Errorw("failed to save reaction", "message_id", cmd.MessageID, "error", err)
		return nil, fmt.Errorf("failed to save reaction: %w", err)
	}

	if pubErr := uc.publisher.Publish(ticket.NewReactionAddedEvent(t, reaction)); pubErr != nil {
		uc.logger.Warnw("failed to publish reaction added event", "message_id", cmd.MessageID, "error", pubErr)
	}

	return &ToggleReactionResult{Added: true}, nil
}
