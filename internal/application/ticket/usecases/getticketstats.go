package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/ticket"
	"alumnet/internal/shared/logger"
)

type GetTicketStatsQuery struct {
	// OwnerID scopes the counts to one member's tickets. Zero means the
	// platform-wide admin dashboard.
	OwnerID uint
	// AssigneeID, on the admin dashboard, additionally computes the
	// requesting admin's own queue counts.
	AssigneeID uint
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	cache      TicketCache
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(
	ticketRepo ticket.TicketRepository,
	cache TicketCache,
	logger logger.Interface,
) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, query GetTicketStatsQuery) (*dto.TicketStatsDTO, error) {
	scopeKey := "admin"
	if query.OwnerID != 0 {
		scopeKey = fmt.Sprintf("user:%d", query.OwnerID)
	} else if query.AssigneeID != 0 {
		scopeKey = fmt.Sprintf("admin:%d", query.AssigneeID)
	}

	if cached, err := uc.cache.GetStats(ctx, scopeKey); err == nil && cached != nil {
		return cached, nil
	}

	filter := ticket.TicketFilter{}
	if query.OwnerID != 0 {
		filter.CreatorID = &query.OwnerID
	}

	stats, err := uc.ticketRepo.CountStats(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count ticket stats", "owner_id", query.OwnerID, "error", err)
		return nil, fmt.Errorf("failed to count ticket stats: %w", err)
	}

	result := dto.ToTicketStatsDTO(stats)

	if query.OwnerID == 0 && query.AssigneeID != 0 {
		assigned, err := uc.ticketRepo.CountStats(ctx, ticket.TicketFilter{AssigneeID: &query.AssigneeID})
		if err != nil {
			uc.logger.Errorw("failed to count assigned ticket stats", "assignee_id", query.AssigneeID, "error", err)
			return nil, fmt.Errorf("failed to count assigned ticket stats: %w", err)
		}
		result.AssignedToMe = dto.ToTicketStatsDTO(assigned)
	}

	if cacheErr := uc.cache.SetStats(ctx, scopeKey, result); cacheErr != nil {
		uc.logger.Warnw("failed to cache ticket stats", "scope", scopeKey, "error", cacheErr)
	}

	return result, nil
}
