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

type RateSatisfactionCommand struct {
	TicketID uint
	OwnerID  uint
	Rating   int
	Note     string
}

// RateSatisfactionUseCase records the owner's satisfaction rating on a
// resolved or closed ticket. Re-rating overwrites the previous rating.
type RateSatisfactionUseCase struct {
	ticketRepo ticket.TicketRepository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewRateSatisfactionUseCase(
	ticketRepo ticket.TicketRepository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *RateSatisfactionUseCase {
	return &RateSatisfactionUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *RateSatisfactionUseCase) Execute(ctx context.Context, cmd RateSatisfactionCommand) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetOwnedByID(ctx, cmd.TicketID, cmd.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if err := t.RateSatisfaction(cmd.Rating, cmd.Note, cmd.OwnerID); err != nil {
		return nil, apperrors.NewInvalidStateError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to save satisfaction rating", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	if pubErr := uc.publisher.Publish(ticket.NewTicketRatedEvent(t, cmd.Rating)); pubErr != nil {
		uc.logger.Warnw("failed to publish ticket rated event", "ticket_id", t.ID(), "error", pubErr)
	}

	return dto.ToTicketDTO(t), nil
}
