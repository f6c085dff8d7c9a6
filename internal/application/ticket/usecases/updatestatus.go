package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type UpdateStatusCommand struct {
	TicketID  uint
	AdminID   uint
	NewStatus string
}

// UpdateStatusUseCase moves a ticket along the status machine on an
// admin's behalf. Closing with a resolution note has its own operation.
type UpdateStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewUpdateStatusUseCase(
	ticketRepo ticket.TicketRepository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.TicketDTO, error) {
	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	oldStatus := t.Status().String()

	if err := t.ChangeStatus(newStatus, cmd.AdminID); err != nil {
		return nil, apperrors.NewInvalidStateError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	if oldStatus != t.Status().String() {
		if pubErr := uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus, cmd.AdminID)); pubErr != nil {
			uc.logger.Warnw("failed to publish status changed event", "ticket_id", t.ID(), "error", pubErr)
		}
	}

	uc.logger.Infow("ticket status updated",
		"ticket_id", t.ID(), "old_status", oldStatus, "new_status", t.Status().String(), "admin_id", cmd.AdminID)

	return dto.ToTicketDTO(t), nil
}
