package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
	AssignedBy uint
}

// AssignTicketUseCase assigns a ticket to an admin. The assignee must be
// an active admin; reassignment replaces the current one.
type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	admins     ticket.AdminDirectory
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	admins ticket.AdminDirectory,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		admins:     admins,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	isAdmin, err := uc.admins.IsActiveSuperAdmin(ctx, cmd.AssigneeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignee role: %w", err)
	}
	if !isAdmin {
		return nil, apperrors.NewValidationError("assignee is not an active admin")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	previousAssignee := t.AssigneeID()

	if err := t.AssignTo(cmd.AssigneeID, cmd.AssignedBy); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to assign ticket", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	event := ticket.NewTicketAssignedEvent(t, previousAssignee, cmd.AssigneeID, cmd.AssignedBy)
	if pubErr := uc.publisher.Publish(event); pubErr != nil {
		uc.logger.Warnw("failed to publish ticket assigned event", "ticket_id", t.ID(), "error", pubErr)
	}

	uc.logger.Infow("ticket assigned",
		"ticket_id", t.ID(), "assignee_id", cmd.AssigneeID, "assigned_by", cmd.AssignedBy)

	return dto.ToTicketDTO(t), nil
}
