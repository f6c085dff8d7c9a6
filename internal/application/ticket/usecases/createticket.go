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

// AttachmentInput is the descriptor of an already-uploaded file to record
// against the new ticket. Byte storage happens before the core is called.
type AttachmentInput struct {
	FileName     string
	OriginalName string
	FileSize     int64
	MimeType     string
	StoragePath  string
}

type CreateTicketCommand struct {
	CreatorID   uint
	Subject     string
	Description string
	CategoryID  uint
	Priority    string
	// AssigneeID optionally routes the new ticket straight to an admin.
	AssigneeID  uint
	Attachments []AttachmentInput
}

type CreateTicketResult struct {
	TicketID  uint
	Number    string
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	categories     ticket.CategoryDirectory
	admins         ticket.AdminDirectory
	numberGen      ticket.NumberGenerator
	txMgr          db.Transactor
	publisher      events.EventPublisher
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	categories ticket.CategoryDirectory,
	admins ticket.AdminDirectory,
	numberGen ticket.NumberGenerator,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		categories:     categories,
		admins:         admins,
		numberGen:      numberGen,
		txMgr:          txMgr,
		publisher:      publisher,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "creator_id", cmd.CreatorID, "category_id", cmd.CategoryID)

	category, err := uc.categories.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to load category", "category_id", cmd.CategoryID, "error", err)
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	if category == nil || !category.IsActive {
		return nil, apperrors.NewValidationError("category does not exist or is inactive")
	}

	priority := vo.DefaultPriority()
	if cmd.Priority != "" {
		priority, err = vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if cmd.AssigneeID != 0 {
		isAdmin, adminErr := uc.admins.IsActiveSuperAdmin(ctx, cmd.AssigneeID)
		if adminErr != nil {
			uc.logger.Errorw("failed to check assignee", "assignee_id", cmd.AssigneeID, "error", adminErr)
			return nil, fmt.Errorf("failed to check assignee: %w", adminErr)
		}
		if !isAdmin {
			return nil, apperrors.NewValidationError("assignee is not an active admin")
		}
	}

	t, err := ticket.NewTicket(cmd.Subject, cmd.Description, cmd.CategoryID, priority, cmd.CreatorID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.AssigneeID != 0 {
		if assignErr := t.AssignTo(cmd.AssigneeID, cmd.CreatorID); assignErr != nil {
			return nil, apperrors.NewValidationError(assignErr.Error())
		}
	}

	// Number allocation and the insert share one transaction so a failed
	// save never burns a sequence value visible to readers.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		number, genErr := uc.numberGen.Generate(txCtx)
		if genErr != nil {
			return fmt.Errorf("failed to generate ticket number: %w", genErr)
		}
		if setErr := t.SetNumber(number); setErr != nil {
			return setErr
		}
		if saveErr := uc.ticketRepo.Save(txCtx, t); saveErr != nil {
			return fmt.Errorf("failed to save ticket: %w", saveErr)
		}
		for _, in := range cmd.Attachments {
			att, attErr := ticket.NewAttachment(t.ID(), nil, in.FileName, in.OriginalName, in.FileSize, in.MimeType, in.StoragePath, cmd.CreatorID)
			if attErr != nil {
				return apperrors.NewValidationError(attErr.Error())
			}
			if saveErr := uc.attachmentRepo.Save(txCtx, att); saveErr != nil {
				return fmt.Errorf("failed to save attachment: %w", saveErr)
			}
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to create ticket", "creator_id", cmd.CreatorID, "error", txErr)
		return nil, txErr
	}

	if pubErr := uc.publisher.Publish(ticket.NewTicketCreatedEvent(t)); pubErr != nil {
		uc.logger.Warnw("failed to publish ticket created event", "ticket_id", t.ID(), "error", pubErr)
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "number", t.Number())

	return &CreateTicketResult{
		TicketID:  t.ID(),
		Number:    t.Number(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
	}, nil
}
