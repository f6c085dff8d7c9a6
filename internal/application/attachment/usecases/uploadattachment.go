package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/attachment/dto"
	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	"alumnet/internal/shared/db"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

// maxAttachmentSize caps uploads at 10 MiB.
const maxAttachmentSize = 10 << 20

type UploadAttachmentCommand struct {
	TicketID     uint
	MessageID    *uint
	UploaderID   uint
	IsAdmin      bool
	FileName     string
	OriginalName string
	MimeType     string
	StoragePath  string
	Content      []byte
}

// UploadAttachmentUseCase records an uploaded file against a ticket,
// deriving the checksum and image metadata in the same transaction. The
// bytes themselves are already on storage when this runs.
type UploadAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	probe          FileProbe
	txMgr          db.Transactor
	publisher      events.EventPublisher
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	probe FileProbe,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		probe:          probe,
		txMgr:          txMgr,
		publisher:      publisher,
		logger:         logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentDTO, error) {
	if len(cmd.Content) == 0 {
		return nil, apperrors.NewValidationError("attachment content is empty")
	}
	if len(cmd.Content) > maxAttachmentSize {
		return nil, apperrors.NewValidationError("attachment exceeds the maximum size of 10 MiB")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil || !t.CanBeViewedBy(cmd.UploaderID, cmd.IsAdmin) {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	attachment, err := ticket.NewAttachment(
		cmd.TicketID,
		cmd.MessageID,
		cmd.FileName,
		cmd.OriginalName,
		int64(len(cmd.Content)),
		cmd.MimeType,
		cmd.StoragePath,
		cmd.UploaderID,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	checksum, isImage, width, height := uc.probe.Probe(cmd.Content)

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if saveErr := uc.attachmentRepo.Save(txCtx, attachment); saveErr != nil {
			return fmt.Errorf("failed to save attachment: %w", saveErr)
		}

		metadata, metaErr := ticket.NewFileMetadata(attachment.ID(), checksum, isImage, width, height, "")
		if metaErr != nil {
			return metaErr
		}
		if saveErr := uc.attachmentRepo.SaveMetadata(txCtx, metadata); saveErr != nil {
			return fmt.Errorf("failed to save file metadata: %w", saveErr)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to record attachment", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	if pubErr := uc.publisher.Publish(ticket.NewAttachmentAddedEvent(t, attachment)); pubErr != nil {
		uc.logger.Warnw("failed to publish attachment added event", "attachment_id", attachment.ID(), "error", pubErr)
	}

	uc.logger.Infow("attachment recorded",
		"ticket_id", cmd.TicketID, "attachment_id", attachment.ID(), "size", attachment.FileSize(), "is_image", isImage)

	result := dto.ToAttachmentDTO(attachment)
	return &result, nil
}
