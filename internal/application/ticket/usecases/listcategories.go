package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/ticket"
	"alumnet/internal/shared/logger"
)

// ListCategoriesUseCase returns the active ticket categories, cached with
// a long TTL since the directory changes rarely.
type ListCategoriesUseCase struct {
	categories ticket.CategoryDirectory
	cache      TicketCache
	logger     logger.Interface
}

func NewListCategoriesUseCase(
	categories ticket.CategoryDirectory,
	cache TicketCache,
	logger logger.Interface,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categories: categories,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]dto.CategoryDTO, error) {
	if cached, err := uc.cache.GetCategories(ctx); err == nil && cached != nil {
		return cached, nil
	}

	categories, err := uc.categories.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := dto.ToCategoryDTOs(categories)

	if cacheErr := uc.cache.SetCategories(ctx, result); cacheErr != nil {
		uc.logger.Warnw("failed to cache categories", "error", cacheErr)
	}

	return result, nil
}
