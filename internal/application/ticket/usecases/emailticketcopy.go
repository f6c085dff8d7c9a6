package usecases

import (
	"context"
	"fmt"
	"strings"

	"alumnet/internal/domain/ticket"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type EmailTicketCopyCommand struct {
	TicketID       uint
	RequesterID    uint
	IsAdmin        bool
	RecipientEmail string
}

// EmailTicketCopyUseCase mails a copy of the ticket conversation on
// explicit request. This is the only path that ever sends email; nothing
// in the ticket lifecycle notifies automatically.
type EmailTicketCopyUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	mailer      ticket.Mailer
	logger      logger.Interface
}

func NewEmailTicketCopyUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	mailer ticket.Mailer,
	logger logger.Interface,
) *EmailTicketCopyUseCase {
	return &EmailTicketCopyUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

func (uc *EmailTicketCopyUseCase) Execute(ctx context.Context, cmd EmailTicketCopyCommand) error {
	email := strings.TrimSpace(cmd.RecipientEmail)
	if email == "" || !strings.Contains(email, "@") {
		return apperrors.NewValidationError("a valid recipient email is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil || !t.CanBeViewedBy(cmd.RequesterID, cmd.IsAdmin) {
		return apperrors.NewNotFoundError("ticket not found")
	}

	msgs, err := uc.messageRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}

	// The copy carries exactly what the requester could see on screen.
	msgs = ticket.VisibleMessages(msgs, cmd.IsAdmin)

	if err := uc.mailer.SendTicketCopy(ctx, email, t, msgs); err != nil {
		uc.logger.Errorw("failed to send ticket copy", "ticket_id", t.ID(), "error", err)
		return fmt.Errorf("failed to send ticket copy: %w", err)
	}

	uc.logger.Infow("ticket copy sent", "ticket_id", t.ID(), "requester_id", cmd.RequesterID)
	return nil
}
