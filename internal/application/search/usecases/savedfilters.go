package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/search/dto"
	"alumnet/internal/domain/ticket"
	"alumnet/internal/shared/db"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
)

type CreateSavedFilterCommand struct {
	OwnerID   uint
	Name      string
	Config    dto.FilterConfigDTO
	IsDefault bool
}

type UpdateSavedFilterCommand struct {
	FilterID  uint
	OwnerID   uint
	Name      string
	Config    dto.FilterConfigDTO
	IsDefault bool
}

type DeleteSavedFilterCommand struct {
	FilterID uint
	OwnerID  uint
}

type ListSavedFiltersQuery struct {
	OwnerID uint
}

type ApplySavedFilterQuery struct {
	FilterID uint
	ViewerID uint
	IsAdmin  bool
	Page     int
	PageSize int
}

// CreateSavedFilterUseCase stores a named search predicate. Marking it
// default clears the previous default in the same transaction, keeping at
// most one per user.
type CreateSavedFilterUseCase struct {
	filterRepo ticket.SavedFilterRepository
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewCreateSavedFilterUseCase(
	filterRepo ticket.SavedFilterRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateSavedFilterUseCase {
	return &CreateSavedFilterUseCase{filterRepo: filterRepo, txMgr: txMgr, logger: logger}
}

func (uc *CreateSavedFilterUseCase) Execute(ctx context.Context, cmd CreateSavedFilterCommand) (*dto.SavedFilterDTO, error) {
	filter, err := ticket.NewSavedFilter(cmd.OwnerID, cmd.Name, cmd.Config.ToDomain(), cmd.IsDefault)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if cmd.IsDefault {
			if clearErr := uc.filterRepo.ClearDefault(txCtx, cmd.OwnerID); clearErr != nil {
				return fmt.Errorf("failed to clear previous default: %w", clearErr)
			}
		}
		if saveErr := uc.filterRepo.Save(txCtx, filter); saveErr != nil {
			return fmt.Errorf("failed to save filter: %w", saveErr)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to create saved filter", "owner_id", cmd.OwnerID, "error", txErr)
		return nil, txErr
	}

	return dto.ToSavedFilterDTO(filter), nil
}

// UpdateSavedFilterUseCase rewrites an existing filter the caller owns.
type UpdateSavedFilterUseCase struct {
	filterRepo ticket.SavedFilterRepository
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewUpdateSavedFilterUseCase(
	filterRepo ticket.SavedFilterRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateSavedFilterUseCase {
	return &UpdateSavedFilterUseCase{filterRepo: filterRepo, txMgr: txMgr, logger: logger}
}

func (uc *UpdateSavedFilterUseCase) Execute(ctx context.Context, cmd UpdateSavedFilterCommand) (*dto.SavedFilterDTO, error) {
	filter, err := uc.filterRepo.GetByID(ctx, cmd.FilterID, cmd.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load filter: %w", err)
	}
	if filter == nil {
		return nil, apperrors.NewNotFoundError("saved filter not found")
	}

	if err := filter.Update(cmd.Name, cmd.Config.ToDomain(), cmd.IsDefault); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if cmd.IsDefault {
			if clearErr := uc.filterRepo.ClearDefault(txCtx, cmd.OwnerID); clearErr != nil {
				return fmt.Errorf("failed to clear previous default: %w", clearErr)
			}
		}
		if updateErr := uc.filterRepo.Update(txCtx, filter); updateErr != nil {
			return fmt.Errorf("failed to update filter: %w", updateErr)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to update saved filter", "filter_id", cmd.FilterID, "error", txErr)
		return nil, txErr
	}

	return dto.ToSavedFilterDTO(filter), nil
}

// DeleteSavedFilterUseCase removes a filter the caller owns.
type DeleteSavedFilterUseCase struct {
	filterRepo ticket.SavedFilterRepository
	logger     logger.Interface
}

func NewDeleteSavedFilterUseCase(filterRepo ticket.SavedFilterRepository, logger logger.Interface) *DeleteSavedFilterUseCase {
	return &DeleteSavedFilterUseCase{filterRepo: filterRepo, logger: logger}
}

func (uc *DeleteSavedFilterUseCase) Execute(ctx context.Context, cmd DeleteSavedFilterCommand) error {
	filter, err := uc.filterRepo.GetByID(ctx, cmd.FilterID, cmd.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to load filter: %w", err)
	}
	if filter == nil {
		return apperrors.NewNotFoundError("saved filter not found")
	}

	if err := uc.filterRepo.Delete(ctx, cmd.FilterID, cmd.OwnerID); err != nil {
		uc.logger.Errorw("failed to delete saved filter", "filter_id", cmd.FilterID, "error", err)
		return fmt.Errorf("failed to delete filter: %w", err)
	}
	return nil
}

// ListSavedFiltersUseCase returns the caller's filters, default first.
type ListSavedFiltersUseCase struct {
	filterRepo ticket.SavedFilterRepository
	logger     logger.Interface
}

func NewListSavedFiltersUseCase(filterRepo ticket.SavedFilterRepository, logger logger.Interface) *ListSavedFiltersUseCase {
	return &ListSavedFiltersUseCase{filterRepo: filterRepo, logger: logger}
}

func (uc *ListSavedFiltersUseCase) Execute(ctx context.Context, query ListSavedFiltersQuery) ([]dto.SavedFilterDTO, error) {
	filters, err := uc.filterRepo.ListByOwner(ctx, query.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to list saved filters", "owner_id", query.OwnerID, "error", err)
		return nil, fmt.Errorf("failed to list saved filters: %w", err)
	}
	return dto.ToSavedFilterDTOs(filters), nil
}

// ApplySavedFilterUseCase loads a stored predicate and runs it as an
// advanced search.
type ApplySavedFilterUseCase struct {
	filterRepo ticket.SavedFilterRepository
	search     AdvancedSearchExecutor
	logger     logger.Interface
}

func NewApplySavedFilterUseCase(
	filterRepo ticket.SavedFilterRepository,
	search AdvancedSearchExecutor,
	logger logger.Interface,
) *ApplySavedFilterUseCase {
	return &ApplySavedFilterUseCase{filterRepo: filterRepo, search: search, logger: logger}
}

func (uc *ApplySavedFilterUseCase) Execute(ctx context.Context, query ApplySavedFilterQuery) (*AdvancedSearchResult, error) {
	filter, err := uc.filterRepo.GetByID(ctx, query.FilterID, query.ViewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load filter: %w", err)
	}
	if filter == nil {
		return nil, apperrors.NewNotFoundError("saved filter not found")
	}

	return uc.search.Execute(ctx, AdvancedSearchQuery{
		ViewerID: query.ViewerID,
		IsAdmin:  query.IsAdmin,
		Config:   dto.ToFilterConfigDTO(filter.Config()),
		Page:     query.Page,
		PageSize: query.PageSize,
	})
}
