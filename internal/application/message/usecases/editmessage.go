package usecases

import (
	"context"
	"fmt"
	"time"

	"alumnet/internal/application/message/dto"
	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	"alumnet/internal/shared/constants"
	"alumnet/internal/shared/db"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type EditMessageCommand struct {
	MessageID uint
	EditorID  uint
	IsAdmin   bool
	NewBody   string
	Reason    string
}

// EditMessageUseCase replaces a message's content, snapshotting the prior
// content into the edit history in the same transaction. Senders get a
// bounded edit window; admins are unrestricted.
type EditMessageUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	renderer    ContentRenderer
	txMgr       db.Transactor
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewEditMessageUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	renderer ContentRenderer,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *EditMessageUseCase {
	return &EditMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		renderer:    renderer,
		txMgr:       txMgr,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *EditMessageUseCase) Execute(ctx context.Context, cmd EditMessageCommand) (*dto.MessageDTO, error) {
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
	if t == nil || !t.CanBeViewedBy(cmd.EditorID, cmd.IsAdmin) {
		return nil, apperrors.NewNotFoundError("message not found")
	}

	editWindow := time.Duration(constants.MessageEditWindowHours) * time.Hour
	if err := msg.CanBeEditedBy(cmd.EditorID, cmd.IsAdmin, time.Now(), editWindow); err != nil {
		return nil, apperrors.NewForbiddenError(err.Error())
	}

	formatted, err := uc.renderer.Render(msg.ContentType(), cmd.NewBody)
	if err != nil {
		return nil, apperrors.NewValidationError("failed to render message content", err.Error())
	}

	snapshot, err := msg.Edit(cmd.NewBody, formatted, cmd.EditorID, cmd.Reason)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if saveErr := uc.messageRepo.SaveEdit(txCtx, snapshot); saveErr != nil {
			return fmt.Errorf("failed to save edit history: %w", saveErr)
		}
		if updateErr := uc.messageRepo.Update(txCtx, msg); updateErr != nil {
			return fmt.Errorf("failed to update message: %w", updateErr)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to edit message", "message_id", cmd.MessageID, "error", txErr)
		return nil, txErr
	}

	event := ticket.NewMessageEditedEvent(t, msg, cmd.EditorID, cmd.Reason)
	if pubErr := uc.publisher.Publish(event); pubErr != nil {
		uc.logger.Warnw("failed to publish message edited event", "message_id", msg.ID(), "error", pubErr)
	}

	result := dto.ToMessageDTO(msg)
	return &result, nil
}
