package mappers

import (
	"fmt"

	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	"alumnet/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket domain entities and persistence
// models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                 t.ID(),
		Number:             t.Number(),
		Subject:            t.Subject(),
		Description:        t.Description(),
		CategoryID:         t.CategoryID(),
		Priority:           t.Priority().String(),
		Status:             t.Status().String(),
		CreatorID:          t.CreatorID(),
		AssigneeID:         t.AssigneeID(),
		AssignedAt:         t.AssignedAt(),
		LastActivity:       t.LastActivity(),
		ReopenCount:        t.ReopenCount(),
		ResolvedAt:         t.ResolvedAt(),
		ResolvedBy:         t.ResolvedBy(),
		ResolutionNote:     t.ResolutionNote(),
		SatisfactionRating: t.SatisfactionRating(),
		SatisfactionNote:   t.SatisfactionNote(),
		RatedAt:            t.RatedAt(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority on ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status on ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Subject,
		model.Description,
		model.CategoryID,
		priority,
		status,
		model.CreatorID,
		model.AssigneeID,
		model.AssignedAt,
		model.LastActivity,
		model.ReopenCount,
		model.ResolvedAt,
		model.ResolvedBy,
		model.ResolutionNote,
		model.SatisfactionRating,
		model.SatisfactionNote,
		model.RatedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
