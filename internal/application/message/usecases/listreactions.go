package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/message/dto"
	"alumnet/internal/domain/ticket"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type ListReactionsQuery struct {
	MessageID uint
	ViewerID  uint
	IsAdmin   bool
}

// ListReactionsUseCase returns a message's reactions grouped by type, each
// reacting user expanded to their public profile.
type ListReactionsUseCase struct {
	ticketRepo   ticket.TicketRepository
	messageRepo  ticket.MessageRepository
	reactionRepo ticket.ReactionRepository
	directory    ticket.AdminDirectory
	logger       logger.Interface
}

func NewListReactionsUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	reactionRepo ticket.ReactionRepository,
	directory ticket.AdminDirectory,
	logger logger.Interface,
) *ListReactionsUseCase {
	return &ListReactionsUseCase{
		ticketRepo:   ticketRepo,
		messageRepo:  messageRepo,
		reactionRepo: reactionRepo,
		directory:    directory,
		logger:       logger,
	}
}

func (uc *ListReactionsUseCase) Execute(ctx context.Context, query ListReactionsQuery) ([]dto.ReactionGroupDTO, error) {
	msg, err := uc.messageRepo.GetByID(ctx, query.MessageID)
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
	if t == nil || !t.CanBeViewedBy(query.ViewerID, query.IsAdmin) {
		return nil, apperrors.NewNotFoundError("message not found")
	}
	if msg.IsInternalNote() && !query.IsAdmin {
		return nil, apperrors.NewNotFoundError("message not found")
	}

	reactions, err := uc.reactionRepo.GetByMessageID(ctx, query.MessageID)
	if err != nil {
		uc.logger.Errorw("failed to load reactions", "message_id", query.MessageID, "error", err)
		return nil, fmt.Errorf("failed to load reactions: %w", err)
	}

	profiles := make(map[uint]*ticket.UserProfile)
	for _, r := range reactions {
		if _, seen := profiles[r.UserID()]; seen {
			continue
		}
		profile, err := uc.directory.GetUserProfile(ctx, r.UserID())
		if err != nil {
			uc.logger.Warnw("failed to resolve reaction user profile",
				"user_id", r.UserID(), "error", err)
			continue
		}
		profiles[r.UserID()] = profile
	}

	return dto.GroupReactions(reactions, profiles), nil
}
