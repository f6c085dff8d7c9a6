package message

import (
	"alumnet/internal/application/message/usecases"
)

type AddMessageRequest struct {
	Body           string                   `json:"body" binding:"required,max=10000"`
	ContentType    string                   `json:"content_type,omitempty"`
	IsInternalNote bool                     `json:"is_internal_note"`
	Attachments    []AttachmentInputRequest `json:"attachments,omitempty" binding:"omitempty,max=10,dive"`
}

type AttachmentInputRequest struct {
	FileName     string `json:"file_name" binding:"required,max=255"`
	OriginalName string `json:"original_name" binding:"required,max=255"`
	FileSize     int64  `json:"file_size" binding:"required,min=1"`
	MimeType     string `json:"mime_type" binding:"required,max=100"`
	StoragePath  string `json:"storage_path" binding:"required,max=500"`
}

func (r *AddMessageRequest) ToCommand(ticketID, senderID uint, isAdmin bool) usecases.AddMessageCommand {
	cmd := usecases.AddMessageCommand{
		TicketID:       ticketID,
		SenderID:       senderID,
		IsAdmin:        isAdmin,
		Body:           r.Body,
		ContentType:    r.ContentType,
		IsInternalNote: r.IsInternalNote,
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

type EditMessageRequest struct {
	Body   string `json:"body" binding:"required,max=10000"`
	Reason string `json:"reason,omitempty" binding:"max=500"`
}

type ToggleReactionRequest struct {
	ReactionType string `json:"reaction_type" binding:"required,max=50"`
}

type SaveDraftRequest struct {
	Body        string `json:"body" binding:"required,max=10000"`
	ContentType string `json:"content_type,omitempty"`
}
