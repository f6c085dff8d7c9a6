package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/message/dto"
	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type SaveDraftCommand struct {
	TicketID    uint
	UserID      uint
	IsAdmin     bool
	Body        string
	ContentType string
}

type GetDraftQuery struct {
	TicketID uint
	UserID   uint
}

type DeleteDraftCommand struct {
	TicketID uint
	UserID   uint
}

// SaveDraftUseCase upserts the single unsent message a user keeps per
// ticket.
type SaveDraftUseCase struct {
	ticketRepo ticket.TicketRepository
	draftRepo  ticket.DraftRepository
	logger     logger.Interface
}

func NewSaveDraftUseCase(
	ticketRepo ticket.TicketRepository,
	draftRepo ticket.DraftRepository,
	logger logger.Interface,
) *SaveDraftUseCase {
	return &SaveDraftUseCase{
		ticketRepo: ticketRepo,
		draftRepo:  draftRepo,
		logger:     logger,
	}
}

func (uc *SaveDraftUseCase) Execute(ctx context.Context, cmd SaveDraftCommand) (*dto.DraftDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil || !t.CanBeViewedBy(cmd.UserID, cmd.IsAdmin) {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	contentType, err := vo.NewContentType(cmd.ContentType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	draft, err := ticket.NewMessageDraft(cmd.TicketID, cmd.UserID, cmd.Body, contentType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.draftRepo.Upsert(ctx, draft); err != nil {
		uc.logger.Errorw("failed to save draft", "ticket_id", cmd.TicketID, "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	return dto.ToDraftDTO(draft), nil
}

// GetDraftUseCase returns the caller's draft for a ticket, or nil when
// there is none.
type GetDraftUseCase struct {
	draftRepo ticket.DraftRepository
	logger    logger.Interface
}

func NewGetDraftUseCase(draftRepo ticket.DraftRepository, logger logger.Interface) *GetDraftUseCase {
	return &GetDraftUseCase{draftRepo: draftRepo, logger: logger}
}

func (uc *GetDraftUseCase) Execute(ctx context.Context, query GetDraftQuery) (*dto.DraftDTO, error) {
	draft, err := uc.draftRepo.Get(ctx, query.TicketID, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return dto.ToDraftDTO(draft), nil
}

// DeleteDraftUseCase discards the caller's draft. Deleting an absent
// draft succeeds.
type DeleteDraftUseCase struct {
	draftRepo ticket.DraftRepository
	logger    logger.Interface
}

func NewDeleteDraftUseCase(draftRepo ticket.DraftRepository, logger logger.Interface) *DeleteDraftUseCase {
	return &DeleteDraftUseCase{draftRepo: draftRepo, logger: logger}
}

func (uc *DeleteDraftUseCase) Execute(ctx context.Context, cmd DeleteDraftCommand) error {
	if err := uc.draftRepo.Delete(ctx, cmd.TicketID, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete draft", "ticket_id", cmd.TicketID, "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
