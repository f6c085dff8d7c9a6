package usecases

import (
	"context"
	"fmt"
	"time"

	"alumnet/internal/application/search/dto"
	ticketdto "alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
	"alumnet/internal/shared/utils"
)

type AdvancedSearchQuery struct {
	ViewerID uint
	IsAdmin  bool
	Config   dto.FilterConfigDTO
	Page     int
	PageSize int
}

// AdvancedSearchUseCase runs a multi-criteria ticket search. Non-admin
// callers search only their own tickets no matter what the filter says.
type AdvancedSearchUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewAdvancedSearchUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *AdvancedSearchUseCase {
	return &AdvancedSearchUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *AdvancedSearchUseCase) Execute(ctx context.Context, query AdvancedSearchQuery) (*AdvancedSearchResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter, err := buildFilter(query.Config, pagination)
	if err != nil {
		return nil, err
	}

	if !query.IsAdmin {
		filter.CreatorID = &query.ViewerID
		filter.AssigneeID = nil
	} else {
		filter.SortByPriority = true
	}

	tickets, total, err := uc.ticketRepo.List(ctx, *filter)
	if err != nil {
		uc.logger.Errorw("failed to search tickets", "viewer_id", query.ViewerID, "error", err)
		return nil, fmt.Errorf("failed to search tickets: %w", err)
	}

	return &AdvancedSearchResult{
		Items:      ticketdto.ToTicketListItemDTOs(tickets),
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	}, nil
}

// buildFilter translates a serializable filter config into the repository
// filter, validating enum fields and date bounds.
func buildFilter(config dto.FilterConfigDTO, pagination utils.Pagination) (*ticket.TicketFilter, error) {
	filter := &ticket.TicketFilter{
		Search:   config.Search,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if config.Status != "" {
		status, err := vo.NewTicketStatus(config.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if config.Priority != "" {
		priority, err := vo.NewPriority(config.Priority)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if config.CategoryID != 0 {
		categoryID := config.CategoryID
		filter.CategoryID = &categoryID
	}
	if config.AssigneeID != 0 {
		assigneeID := config.AssigneeID
		filter.AssigneeID = &assigneeID
	}
	if config.DateFrom != "" {
		from, err := time.Parse("2006-01-02", config.DateFrom)
		if err != nil {
			return nil, apperrors.NewValidationError("date_from must be in YYYY-MM-DD format")
		}
		filter.CreatedFrom = &from
	}
	if config.DateTo != "" {
		to, err := time.Parse("2006-01-02", config.DateTo)
		if err != nil {
			return nil, apperrors.NewValidationError("date_to must be in YYYY-MM-DD format")
		}
		// Inclusive end of day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.CreatedTo = &to
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil && filter.CreatedTo.Before(*filter.CreatedFrom) {
		return nil, apperrors.NewValidationError("date_to must not be before date_from")
	}

	return filter, nil
}
