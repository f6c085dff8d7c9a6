package usecases

import (
	"context"
	"fmt"
	"time"

	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	"alumnet/internal/shared/db"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

// AttachmentInput describes an already-uploaded file to link to the new
// message.
type AttachmentInput struct {
	FileName     string
	OriginalName string
	FileSize     int64
	MimeType     string
	StoragePath  string
}

type AddMessageCommand struct {
	TicketID       uint
	SenderID       uint
	IsAdmin        bool
	Body           string
	ContentType    string
	IsInternalNote bool
	Attachments    []AttachmentInput
}

type AddMessageResult struct {
	MessageID    uint
	TicketStatus string
	CreatedAt    time.Time
}

// AddMessageUseCase appends a message to a ticket's conversation. The
// message, the status bump it may trigger, and the sender's draft cleanup
// commit together.
type AddMessageUseCase struct {
	ticketRepo     ticket.TicketRepository
	messageRepo    ticket.MessageRepository
	draftRepo      ticket.DraftRepository
	attachmentRepo ticket.AttachmentRepository
	renderer       ContentRenderer
	txMgr          db.Transactor
	publisher      events.EventPublisher
	logger         logger.Interface
}

func NewAddMessageUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	draftRepo ticket.DraftRepository,
	attachmentRepo ticket.AttachmentRepository,
	renderer ContentRenderer,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		ticketRepo:     ticketRepo,
		messageRepo:    messageRepo,
		draftRepo:      draftRepo,
		attachmentRepo: attachmentRepo,
		renderer:       renderer,
		txMgr:          txMgr,
		publisher:      publisher,
		logger:         logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil || !t.CanBeViewedBy(cmd.SenderID, cmd.IsAdmin) {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if cmd.IsInternalNote && !cmd.IsAdmin {
		return nil, apperrors.NewForbiddenError("only admins can write internal notes")
	}

	contentType, err := vo.NewContentType(cmd.ContentType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	formatted, err := uc.renderer.Render(contentType, cmd.Body)
	if err != nil {
		return nil, apperrors.NewValidationError("failed to render message content", err.Error())
	}

	msg, err := ticket.NewMessage(cmd.TicketID, cmd.SenderID, cmd.Body, contentType, formatted, cmd.IsAdmin, cmd.IsInternalNote)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	statusBumped := false

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if saveErr := uc.messageRepo.Save(txCtx, msg); saveErr != nil {
			return fmt.Errorf("failed to save message: %w", saveErr)
		}

		msgID := msg.ID()
		for _, in := range cmd.Attachments {
			att, attErr := ticket.NewAttachment(cmd.TicketID, &msgID, in.FileName, in.OriginalName, in.FileSize, in.MimeType, in.StoragePath, cmd.SenderID)
			if attErr != nil {
				return apperrors.NewValidationError(attErr.Error())
			}
			if saveErr := uc.attachmentRepo.Save(txCtx, att); saveErr != nil {
				return fmt.Errorf("failed to save attachment: %w", saveErr)
			}
		}

		statusBumped = t.ApplyMessageBump(cmd.IsAdmin)
		if updateErr := uc.ticketRepo.Update(txCtx, t); updateErr != nil {
			return fmt.Errorf("failed to update ticket: %w", updateErr)
		}

		// Sending clears any pending draft for this ticket.
		if draftErr := uc.draftRepo.Delete(txCtx, cmd.TicketID, cmd.SenderID); draftErr != nil {
			return fmt.Errorf("failed to clear draft: %w", draftErr)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to add message", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	if pubErr := uc.publisher.Publish(ticket.NewMessageAddedEvent(t, msg, statusBumped)); pubErr != nil {
		uc.logger.Warnw("failed to publish message added event", "message_id", msg.ID(), "error", pubErr)
	}

	uc.logger.Infow("message added",
		"ticket_id", t.ID(), "message_id", msg.ID(), "from_admin", cmd.IsAdmin, "status_bumped", statusBumped)

	return &AddMessageResult{
		MessageID:    msg.ID(),
		TicketStatus: t.Status().String(),
		CreatedAt:    msg.CreatedAt(),
	}, nil
}
