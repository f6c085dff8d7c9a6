package usecases

import (
	"context"

	"alumnet/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListAdminTicketsExecutor interface {
	Execute(ctx context.Context, query ListAdminTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.TicketDTO, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*dto.TicketDTO, error)
}

type ReopenTicketExecutor interface {
	Execute(ctx context.Context, cmd ReopenTicketCommand) (*dto.TicketDTO, error)
}

type RateSatisfactionExecutor interface {
	Execute(ctx context.Context, cmd RateSatisfactionCommand) (*dto.TicketDTO, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context, query GetTicketStatsQuery) (*dto.TicketStatsDTO, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]dto.CategoryDTO, error)
}

type ListAvailableAdminsExecutor interface {
	Execute(ctx context.Context) ([]dto.AdminDTO, error)
}

type EmailTicketCopyExecutor interface {
	Execute(ctx context.Context, cmd EmailTicketCopyCommand) error
}

type GetAuditTrailExecutor interface {
	Execute(ctx context.Context, query GetAuditTrailQuery) (*GetAuditTrailResult, error)
}

// TicketCache is the read-through cache the ticket query paths consult.
// Implementations key detail entries per viewer role so internal notes
// cached for admins never leak into member responses.
type TicketCache interface {
	GetDetail(ctx context.Context, ticketID uint, adminView bool) (*dto.TicketDetailDTO, error)
	SetDetail(ctx context.Context, ticketID uint, adminView bool, detail *dto.TicketDetailDTO) error
	GetList(ctx context.Context, scopeKey, filterHash string) (*CachedTicketList, error)
	SetList(ctx context.Context, scopeKey, filterHash string, list *CachedTicketList, adminScope bool) error
	GetStats(ctx context.Context, scopeKey string) (*dto.TicketStatsDTO, error)
	SetStats(ctx context.Context, scopeKey string, stats *dto.TicketStatsDTO) error
	GetCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	SetCategories(ctx context.Context, categories []dto.CategoryDTO) error
	GetAvailableAdmins(ctx context.Context) ([]dto.AdminDTO, error)
	SetAvailableAdmins(ctx context.Context, admins []dto.AdminDTO) error
}

// CachedTicketList is the serialized form of one page of ticket list
// results.
type CachedTicketList struct {
	Items []dto.TicketListItemDTO `json:"items"`
	Total int64                   `json:"total"`
}
