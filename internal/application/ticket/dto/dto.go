package dto

import (
	"time"

	"alumnet/internal/domain/ticket"
)

type TicketDTO struct {
	ID                 uint       `json:"id"`
	Number             string     `json:"number"`
	Subject            string     `json:"subject"`
	Description        string     `json:"description"`
	CategoryID         uint       `json:"category_id"`
	CategoryName       string     `json:"category_name,omitempty"`
	Priority           string     `json:"priority"`
	Status             string     `json:"status"`
	CreatorID          uint       `json:"creator_id"`
	AssigneeID         *uint      `json:"assignee_id"`
	AssignedAt         *time.Time `json:"assigned_at"`
	LastActivity       time.Time  `json:"last_activity"`
	ReopenCount        int        `json:"reopen_count"`
	ResolvedAt         *time.Time `json:"resolved_at"`
	ResolvedBy         *uint      `json:"resolved_by"`
	ResolutionNote     string     `json:"resolution_note,omitempty"`
	SatisfactionRating *int       `json:"satisfaction_rating"`
	SatisfactionNote   string     `json:"satisfaction_note,omitempty"`
	RatedAt            *time.Time `json:"rated_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type TicketListItemDTO struct {
	ID           uint      `json:"id"`
	Number       string    `json:"number"`
	Subject      string    `json:"subject"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	CategoryID   uint      `json:"category_id"`
	CreatorID    uint      `json:"creator_id"`
	AssigneeID   *uint     `json:"assignee_id"`
	ReopenCount  int       `json:"reopen_count"`
	LastActivity time.Time `json:"last_activity"`
	CreatedAt    time.Time `json:"created_at"`
}

type TicketStatsDTO struct {
	Total      int64            `json:"total"`
	Open       int64            `json:"open"`
	Closed     int64            `json:"closed"`
	ByStatus   map[string]int64 `json:"by_status"`
	UrgentOpen int64            `json:"urgent_open"`
	// AssignedToMe carries the requesting admin's own queue counts on the
	// admin dashboard. Absent on the member view.
	AssignedToMe *TicketStatsDTO `json:"assigned_to_me,omitempty"`
}

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AdminDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type AuditEntryDTO struct {
	ID          uint                   `json:"id"`
	TicketID    uint                   `json:"ticket_id"`
	PerformerID *uint                  `json:"performer_id"`
	Action      string                 `json:"action"`
	Description string                 `json:"description"`
	FieldName   string                 `json:"field_name,omitempty"`
	OldValue    string                 `json:"old_value,omitempty"`
	NewValue    string                 `json:"new_value,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
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

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:           t.ID(),
		Number:       t.Number(),
		Subject:      t.Subject(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		CategoryID:   t.CategoryID(),
		CreatorID:    t.CreatorID(),
		AssigneeID:   t.AssigneeID(),
		ReopenCount:  t.ReopenCount(),
		LastActivity: t.LastActivity(),
		CreatedAt:    t.CreatedAt(),
	}
}

func ToTicketListItemDTOs(tickets []*ticket.Ticket) []TicketListItemDTO {
	items := make([]TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, ToTicketListItemDTO(t))
	}
	return items
}

func ToTicketStatsDTO(stats *ticket.TicketStats) *TicketStatsDTO {
	if stats == nil {
		return nil
	}

	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[status.String()] = count
	}

	return &TicketStatsDTO{
		Total:      stats.Total,
		Open:       stats.OpenLike,
		Closed:     stats.ClosedLike,
		ByStatus:   byStatus,
		UrgentOpen: stats.UrgentOpenLike,
	}
}

func ToCategoryDTOs(categories []*ticket.Category) []CategoryDTO {
	items := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		items = append(items, CategoryDTO{ID: c.ID, Name: c.Name})
	}
	return items
}

func ToAdminDTOs(admins []*ticket.AdminProfile) []AdminDTO {
	items := make([]AdminDTO, 0, len(admins))
	for _, a := range admins {
		items = append(items, AdminDTO{
			ID:        a.ID,
			Name:      a.Name,
			Email:     a.Email,
			AvatarURL: a.AvatarURL,
		})
	}
	return items
}

func ToAuditEntryDTO(e *ticket.AuditEntry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:          e.ID(),
		TicketID:    e.TicketID(),
		PerformerID: e.PerformerID(),
		Action:      e.Action().String(),
		Description: e.Description(),
		FieldName:   e.FieldName(),
		OldValue:    e.OldValue(),
		NewValue:    e.NewValue(),
		Metadata:    e.Metadata(),
		CreatedAt:   e.CreatedAt(),
	}
}

func ToAuditEntryDTOs(entries []*ticket.AuditEntry) []AuditEntryDTO {
	items := make([]AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, ToAuditEntryDTO(e))
	}
	return items
}
