package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	"alumnet/internal/shared/db"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type ReopenTicketCommand struct {
	TicketID   uint
	ReopenedBy uint
	IsAdmin    bool
	Reason     string
}

// ReopenTicketUseCase returns a resolved or closed ticket to the REOPENED
// state and drops the reason into the conversation as a system message, so
// the reopen and its record land atomically.
type ReopenTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	txMgr       db.Transactor
	publisher   events.EventPublisher
	logger      logger.Interface
}

func NewReopenTicketUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ReopenTicketUseCase {
	return &ReopenTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		txMgr:       txMgr,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *ReopenTicketUseCase) Execute(ctx context.Context, cmd ReopenTicketCommand) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}
	if !t.CanBeViewedBy(cmd.ReopenedBy, cmd.IsAdmin) {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if err := t.Reopen(cmd.Reason, cmd.ReopenedBy); err != nil {
		return nil, apperrors.NewInvalidStateError(err.Error())
	}

	sysMsg, err := ticket.NewSystemMessage(t.ID(), cmd.ReopenedBy, "Ticket reopened: "+cmd.Reason)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if updateErr := uc.ticketRepo.Update(txCtx, t); updateErr != nil {
			return fmt.Errorf("failed to update ticket: %w", updateErr)
		}
		if saveErr := uc.messageRepo.Save(txCtx, sysMsg); saveErr != nil {
			return fmt.Errorf("failed to save reopen message: %w", saveErr)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to reopen ticket", "ticket_id", t.ID(), "error", txErr)
		return nil, txErr
	}

	if pubErr := uc.publisher.Publish(ticket.NewTicketReopenedEvent(t, cmd.Reason)); pubErr != nil {
		uc.logger.Warnw("failed to publish ticket reopened event", "ticket_id", t.ID(), "error", pubErr)
	}

	uc.logger.Infow("ticket reopened",
		"ticket_id", t.ID(), "reopened_by", cmd.ReopenedBy, "reopen_count", t.ReopenCount())

	return dto.ToTicketDTO(t), nil
}
