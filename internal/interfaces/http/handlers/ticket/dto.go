package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"alumnet/internal/application/ticket/usecases"
	"alumnet/internal/shared/errors"
	"alumnet/internal/shared/utils"
)

type CreateTicketRequest struct {
	Subject     string                   `json:"subject" binding:"required,max=200"`
	Description string                   `json:"description" binding:"required,max=10000"`
	CategoryID  uint                     `json:"category_id" binding:"required"`
	Priority    string                   `json:"priority" binding:"required"`
	AssigneeID  uint                     `json:"assignee_id,omitempty"`
	Attachments []AttachmentInputRequest `json:"attachments,omitempty" binding:"omitempty,max=10,dive"`
}

type AttachmentInputRequest struct {
	FileName     string `json:"file_name" binding:"required,max=255"`
	OriginalName string `json:"original_name" binding:"required,max=255"`
	FileSize     int64  `json:"file_size" binding:"required,min=1"`
	MimeType     string `json:"mime_type" binding:"required,max=100"`
	StoragePath  string `json:"storage_path" binding:"required,max=500"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	cmd := usecases.CreateTicketCommand{
		CreatorID:   creatorID,
		Subject:     r.Subject,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Priority:    r.Priority,
		AssigneeID:  r.AssigneeID,
	}
	for _, a := range r.Attachments {
		cmd.Attachments = append(cmd.Attachments, usecases.AttachmentInput{
			FileName:     a.FileName,
			OriginalName: a.OriginalName,
			FileSize:     a.FileSize,
			MimeType:     a.MimeType,
			StoragePath:  a.StoragePath,
		})
	}
	return cmd
}

type UpdateTicketRequest struct {
	Subject     *string `json:"subject,omitempty" binding:"omitempty,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=10000"`
	CategoryID  *uint   `json:"category_id,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, ownerID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		OwnerID:     ownerID,
		Subject:     r.Subject,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Priority:    r.Priority,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type CloseTicketRequest struct {
	ResolutionNote string `json:"resolution_note" binding:"required,max=2000"`
}

type ReopenTicketRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type RateSatisfactionRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Note   string `json:"note,omitempty" binding:"max=1000"`
}

type EmailCopyRequest struct {
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
}

type ListTicketsRequest struct {
	Page     int
	PageSize int
	Status   string
	Priority string
	Search   string
}

func (r *ListTicketsRequest) ToQuery(ownerID uint) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		OwnerID:  ownerID,
		Status:   r.Status,
		Priority: r.Priority,
		Search:   r.Search,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	p := utils.ParsePagination(c)
	return &ListTicketsRequest{
		Page:     p.Page,
		PageSize: p.PageSize,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}
}

type ListAdminTicketsRequest struct {
	Page        int
	PageSize    int
	Status      string
	Priority    string
	CategoryID  uint
	AssigneeID  uint
	CreatorID   uint
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

func (r *ListAdminTicketsRequest) ToQuery() usecases.ListAdminTicketsQuery {
	return usecases.ListAdminTicketsQuery{
		Status:      r.Status,
		Priority:    r.Priority,
		CategoryID:  r.CategoryID,
		AssigneeID:  r.AssigneeID,
		CreatorID:   r.CreatorID,
		Search:      r.Search,
		CreatedFrom: r.CreatedFrom,
		CreatedTo:   r.CreatedTo,
		Page:        r.Page,
		PageSize:    r.PageSize,
	}
}

func parseListAdminTicketsRequest(c *gin.Context) (*ListAdminTicketsRequest, error) {
	p := utils.ParsePagination(c)
	req := &ListAdminTicketsRequest{
		Page:     p.Page,
		PageSize: p.PageSize,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}

	var err error
	if req.CategoryID, err = parseQueryID(c, "category_id"); err != nil {
		return nil, err
	}
	if req.AssigneeID, err = parseQueryID(c, "assignee_id"); err != nil {
		return nil, err
	}
	if req.CreatorID, err = parseQueryID(c, "creator_id"); err != nil {
		return nil, err
	}

	if req.CreatedFrom, err = parseQueryDate(c, "created_from"); err != nil {
		return nil, err
	}
	if req.CreatedTo, err = parseQueryDate(c, "created_to"); err != nil {
		return nil, err
	}

	return req, nil
}

func parseQueryID(c *gin.Context, key string) (uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.NewValidationError("invalid " + key)
	}
	return uint(id), nil
}

func parseQueryDate(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errors.NewValidationError(key + " must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}
