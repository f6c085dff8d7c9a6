package usecases

import (
	"context"
	"fmt"
	"strings"

	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	"alumnet/internal/shared/constants"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID       uint
	ClosedBy       uint
	ResolutionNote string
}

// CloseTicketUseCase closes a ticket with a mandatory resolution note.
type CloseTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.TicketRepository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*dto.TicketDTO, error) {
	note := strings.TrimSpace(cmd.ResolutionNote)
	if len(note) < constants.MinResolutionNoteLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("resolution note must be at least %d characters", constants.MinResolutionNoteLength))
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if err := t.Close(note, cmd.ClosedBy); err != nil {
		return nil, apperrors.NewInvalidStateError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to close ticket", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	if pubErr := uc.publisher.Publish(ticket.NewTicketClosedEvent(t, cmd.ClosedBy)); pubErr != nil {
		uc.logger.Warnw("failed to publish ticket closed event", "ticket_id", t.ID(), "error", pubErr)
	}

	uc.logger.Infow("ticket closed", "ticket_id", t.ID(), "closed_by", cmd.ClosedBy)

	return dto.ToTicketDTO(t), nil
}
