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

type UpdateTicketCommand struct {
	TicketID    uint
	OwnerID     uint
	Subject     *string
	Description *string
	CategoryID  *uint
	Priority    *string
}

// UpdateTicketUseCase applies owner edits to an open ticket. The load is
// owner scoped, so a foreign ticket ID reads as not found.
type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	categories ticket.CategoryDirectory
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categories ticket.CategoryDirectory,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		categories: categories,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetOwnedByID(ctx, cmd.TicketID, cmd.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if cmd.CategoryID != nil {
		category, catErr := uc.categories.GetByID(ctx, *cmd.CategoryID)
		if catErr != nil {
			return nil, fmt.Errorf("failed to load category: %w", catErr)
		}
		if category == nil || !category.IsActive {
			return nil, apperrors.NewValidationError("category does not exist or is inactive")
		}
	}

	var priority *vo.Priority
	if cmd.Priority != nil {
		p, prioErr := vo.NewPriority(*cmd.Priority)
		if prioErr != nil {
			return nil, apperrors.NewValidationError(prioErr.Error())
		}
		priority = &p
	}

	changed := changedFields(cmd)

	if err := t.UpdateDetails(cmd.Subject, cmd.Description, cmd.CategoryID, priority); err != nil {
		return nil, apperrors.NewInvalidStateError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	if pubErr := uc.publisher.Publish(ticket.NewTicketUpdatedEvent(t, changed)); pubErr != nil {
		uc.logger.Warnw("failed to publish ticket updated event", "ticket_id", t.ID(), "error", pubErr)
	}

	return dto.ToTicketDTO(t), nil
}

func changedFields(cmd UpdateTicketCommand) []string {
	fields := make([]string, 0, 4)
	if cmd.Subject != nil {
		fields = append(fields, "subject")
	}
	if cmd.Description != nil {
		fields = append(fields, "description")
	}
	if cmd.CategoryID != nil {
		fields = append(fields, "category_id")
	}
	if cmd.Priority != nil {
		fields = append(fields, "priority")
	}
	return fields
}
