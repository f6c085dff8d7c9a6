package usecases

import (
	"context"
	"fmt"
	"time"

	"alumnet/internal/application/attachment/dto"
	"alumnet/internal/domain/ticket"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type ListAttachmentsQuery struct {
	TicketID uint
	ViewerID uint
	IsAdmin  bool
}

type GetAttachmentQuery struct {
	TicketID     uint
	AttachmentID uint
	ViewerID     uint
	IsAdmin      bool
}

type GetAttachmentResult struct {
	Attachment  dto.AttachmentDTO
	Metadata    *dto.FileMetadataDTO
	StoragePath string
}

// ListAttachmentsUseCase returns a ticket's attachment descriptors.
type ListAttachmentsUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]dto.AttachmentDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil || !t.CanBeViewedBy(query.ViewerID, query.IsAdmin) {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "ticket_id", query.TicketID, "error", err)
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	return dto.ToAttachmentDTOs(attachments), nil
}

// GetAttachmentUseCase resolves a single attachment for download, bumping
// its download counter and access stamp.
type GetAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewGetAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *GetAttachmentUseCase {
	return &GetAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetAttachmentUseCase) Execute(ctx context.Context, query GetAttachmentQuery) (*GetAttachmentResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil || !t.CanBeViewedBy(query.ViewerID, query.IsAdmin) {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	var attachment *ticket.Attachment
	for _, a := range attachments {
		if a.ID() == query.AttachmentID {
			attachment = a
			break
		}
	}
	if attachment == nil {
		return nil, apperrors.NewNotFoundError("attachment not found")
	}

	if err := uc.attachmentRepo.TouchDownload(ctx, attachment.ID(), time.Now()); err != nil {
		// The download still proceeds; only the counter is lost.
		uc.logger.Warnw("failed to record attachment download", "attachment_id", attachment.ID(), "error", err)
	}

	metadata, err := uc.attachmentRepo.GetMetadata(ctx, attachment.ID())
	if err != nil {
		uc.logger.Warnw("failed to load file metadata", "attachment_id", attachment.ID(), "error", err)
	}

	return &GetAttachmentResult{
		Attachment:  dto.ToAttachmentDTO(attachment),
		Metadata:    dto.ToFileMetadataDTO(metadata),
		StoragePath: attachment.StoragePath(),
	}, nil
}
