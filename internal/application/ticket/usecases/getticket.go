package usecases

import (
	"context"
	"fmt"
	"time"

	attachmentdto "alumnet/internal/application/attachment/dto"
	messagedto "alumnet/internal/application/message/dto"
	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/ticket"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	ViewerID uint
	IsAdmin  bool
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	messageRepo    ticket.MessageRepository
	attachmentRepo ticket.AttachmentRepository
	cache          TicketCache
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	attachmentRepo ticket.AttachmentRepository,
	cache TicketCache,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		messageRepo:    messageRepo,
		attachmentRepo: attachmentRepo,
		cache:          cache,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}
	if !t.CanBeViewedBy(query.ViewerID, query.IsAdmin) {
		// A foreign ticket looks exactly like an absent one.
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	viewerIsOwner := t.CreatorID() == query.ViewerID && !query.IsAdmin

	// Owners viewing their ticket mark admin replies as read, so a cached
	// detail would hide the read stamps the view itself produces. Only
	// bypass the write when there is nothing to stamp.
	if viewerIsOwner {
		if markErr := uc.messageRepo.MarkAdminMessagesRead(ctx, t.ID(), time.Now()); markErr != nil {
			uc.logger.Warnw("failed to mark admin messages read", "ticket_id", t.ID(), "error", markErr)
		}
	} else {
		if cached, cacheErr := uc.cache.GetDetail(ctx, query.TicketID, query.IsAdmin); cacheErr == nil && cached != nil {
			return cached, nil
		}
	}

	msgs, err := uc.messageRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	msgs = ticket.VisibleMessages(msgs, query.IsAdmin)

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	detail := &dto.TicketDetailDTO{
		Ticket:      dto.ToTicketDTO(t),
		Messages:    messagedto.ToMessageDTOs(msgs),
		Attachments: attachmentdto.ToAttachmentDTOs(attachments),
	}

	if cacheErr := uc.cache.SetDetail(ctx, query.TicketID, query.IsAdmin, detail); cacheErr != nil {
		uc.logger.Warnw("failed to cache ticket detail", "ticket_id", query.TicketID, "error", cacheErr)
	}

	return detail, nil
}
