package usecases

import (
	"context"

	"alumnet/internal/application/search/dto"
	ticketdto "alumnet/internal/application/ticket/dto"
)

type AdvancedSearchExecutor interface {
	Execute(ctx context.Context, query AdvancedSearchQuery) (*AdvancedSearchResult, error)
}

type CreateSavedFilterExecutor interface {
	Execute(ctx context.Context, cmd CreateSavedFilterCommand) (*dto.SavedFilterDTO, error)
}

type UpdateSavedFilterExecutor interface {
	Execute(ctx context.Context, cmd UpdateSavedFilterCommand) (*dto.SavedFilterDTO, error)
}

type DeleteSavedFilterExecutor interface {
	Execute(ctx context.Context, cmd DeleteSavedFilterCommand) error
}

type ListSavedFiltersExecutor interface {
	Execute(ctx context.Context, query ListSavedFiltersQuery) ([]dto.SavedFilterDTO, error)
}

type ApplySavedFilterExecutor interface {
	Execute(ctx context.Context, query ApplySavedFilterQuery) (*AdvancedSearchResult, error)
}

type AdvancedSearchResult struct {
	Items      []ticketdto.TicketListItemDTO
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}
