package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/message/dto"
	"alumnet/internal/domain/ticket"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type GetEditHistoryQuery struct {
	MessageID uint
	ViewerID  uint
	IsAdmin   bool
}

// GetEditHistoryUseCase returns a message's edit snapshots, oldest first.
type GetEditHistoryUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewGetEditHistoryUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *GetEditHistoryUseCase {
	return &GetEditHistoryUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *GetEditHistoryUseCase) Execute(ctx context.Context, query GetEditHistoryQuery) ([]dto.MessageEditDTO, error) {
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

	edits, err := uc.messageRepo.GetEditsByMessageID(ctx, query.MessageID)
	if err != nil {
		uc.logger.Errorw("failed to load edit history", "message_id", query.MessageID, "error", err)
		return nil, fmt.Errorf("failed to load edit history: %w", err)
	}

	return dto.ToMessageEditDTOs(edits), nil
}
