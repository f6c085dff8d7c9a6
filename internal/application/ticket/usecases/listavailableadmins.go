package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/ticket"
	"alumnet/internal/shared/logger"
)

// ListAvailableAdminsUseCase returns the admins a ticket can be assigned
// to.
type ListAvailableAdminsUseCase struct {
	admins ticket.AdminDirectory
	cache  TicketCache
	logger logger.Interface
}

func NewListAvailableAdminsUseCase(
	admins ticket.AdminDirectory,
	cache TicketCache,
	logger logger.Interface,
) *ListAvailableAdminsUseCase {
	return &ListAvailableAdminsUseCase{
		admins: admins,
		cache:  cache,
		logger: logger,
	}
}

func (uc *ListAvailableAdminsUseCase) Execute(ctx context.Context) ([]dto.AdminDTO, error) {
	if cached, err := uc.cache.GetAvailableAdmins(ctx); err == nil && cached != nil {
		return cached, nil
	}

	admins, err := uc.admins.ListAvailableAdmins(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list available admins", "error", err)
		return nil, fmt.Errorf("failed to list available admins: %w", err)
	}

	result := dto.ToAdminDTOs(admins)

	if cacheErr := uc.cache.SetAvailableAdmins(ctx, result); cacheErr != nil {
		uc.logger.Warnw("failed to cache available admins", "error", cacheErr)
	}

	return result, nil
}
