package usecases

import (
	"context"
	"fmt"
	"time"

	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
	"alumnet/internal/shared/utils"
)

type ListAdminTicketsQuery struct {
	Status      string
	Priority    string
	CategoryID  uint
	AssigneeID  uint
	CreatorID   uint
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
}

// ListAdminTicketsUseCase serves the admin queue: every ticket, filterable
// on all dimensions, urgent work first.
type ListAdminTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	cache      TicketCache
	logger     logger.Interface
}

func NewListAdminTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	cache TicketCache,
	logger logger.Interface,
) *ListAdminTicketsUseCase {
	return &ListAdminTicketsUseCase{
		ticketRepo: ticketRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *ListAdminTicketsUseCase) Execute(ctx context.Context, query ListAdminTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.TicketFilter{
		Search:         query.Search,
		CreatedFrom:    query.CreatedFrom,
		CreatedTo:      query.CreatedTo,
		SortByPriority: true,
		Page:           pagination.Page,
		PageSize:       pagination.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.CategoryID != 0 {
		filter.CategoryID = &query.CategoryID
	}
	if query.AssigneeID != 0 {
		filter.AssigneeID = &query.AssigneeID
	}
	if query.CreatorID != 0 {
		filter.CreatorID = &query.CreatorID
	}

	hash := filterHash(filter)

	if cached, err := uc.cache.GetList(ctx, "admin", hash); err == nil && cached != nil {
		return uc.result(cached, pagination), nil
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list admin tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	list := &CachedTicketList{
		Items: dto.ToTicketListItemDTOs(tickets),
		Total: total,
	}

	if cacheErr := uc.cache.SetList(ctx, "admin", hash, list, true); cacheErr != nil {
		uc.logger.Warnw("failed to cache admin ticket list", "error", cacheErr)
	}

	return uc.result(list, pagination), nil
}

func (uc *ListAdminTicketsUseCase) result(list *CachedTicketList, pagination utils.Pagination) *ListTicketsResult {
	return &ListTicketsResult{
		Items:      list.Items,
		Total:      list.Total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(list.Total, pagination.PageSize),
	}
}
