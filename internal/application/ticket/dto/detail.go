package dto

import (
	attachmentdto "alumnet/internal/application/attachment/dto"
	messagedto "alumnet/internal/application/message/dto"
)

// TicketDetailDTO is the full ticket view: the ticket, its conversation as
// visible to the viewer, and its attachments. This is the unit of
// detail caching, stored separately per viewer role.
type TicketDetailDTO struct {
	Ticket      *TicketDTO                    `json:"ticket"`
	Messages    []messagedto.MessageDTO       `json:"messages"`
	Attachments []attachmentdto.AttachmentDTO `json:"attachments"`
}
