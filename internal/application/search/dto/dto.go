package dto

import (
	"time"

	"alumnet/internal/domain/ticket"
)

type SavedFilterDTO struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Config    FilterConfigDTO `json:"config"`
	IsDefault bool            `json:"is_default"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type FilterConfigDTO struct {
	Status     string `json:"status,omitempty"`
	Priority   string `json:"priority,omitempty"`
	CategoryID uint   `json:"category_id,omitempty"`
	AssigneeID uint   `json:"assignee_id,omitempty"`
	Search     string `json:"search,omitempty"`
	DateFrom   string `json:"date_from,omitempty"`
	DateTo     string `json:"date_to,omitempty"`
}

func (c FilterConfigDTO) ToDomain() ticket.FilterConfig {
	return ticket.FilterConfig{
		Status:     c.Status,
		Priority:   c.Priority,
		CategoryID: c.CategoryID,
		AssigneeID: c.AssigneeID,
		Search:     c.Search,
		DateFrom:   c.DateFrom,
		DateTo:     c.DateTo,
	}
}

func ToFilterConfigDTO(c ticket.FilterConfig) FilterConfigDTO {
	return FilterConfigDTO{
		Status:     c.Status,
		Priority:   c.Priority,
		CategoryID: c.CategoryID,
		AssigneeID: c.AssigneeID,
		Search:     c.Search,
		DateFrom:   c.DateFrom,
		DateTo:     c.DateTo,
	}
}

func ToSavedFilterDTO(f *ticket.SavedFilter) *SavedFilterDTO {
	if f == nil {
		return nil
	}
	return &SavedFilterDTO{
		ID:        f.ID(),
		Name:      f.Name(),
		Config:    ToFilterConfigDTO(f.Config()),
		IsDefault: f.IsDefault(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}

func ToSavedFilterDTOs(filters []*ticket.SavedFilter) []SavedFilterDTO {
	items := make([]SavedFilterDTO, 0, len(filters))
	for _, f := range filters {
		items = append(items, *ToSavedFilterDTO(f))
	}
	return items
}
