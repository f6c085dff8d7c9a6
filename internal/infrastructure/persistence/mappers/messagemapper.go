package mappers

import (
	"fmt"

	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	"alumnet/internal/infrastructure/persistence/models"
)

// MessageMapper converts messages, edit snapshots, reactions, and drafts
// between domain and persistence shapes.
type MessageMapper interface {
	ToModel(msg *ticket.Message) *models.MessageModel
	ToDomain(model *models.MessageModel) (*ticket.Message, error)
	EditToModel(edit *ticket.MessageEdit) *models.MessageEditModel
	EditToDomain(model *models.MessageEditModel) (*ticket.MessageEdit, error)
	ReactionToModel(r *ticket.MessageReaction) *models.MessageReactionModel
	ReactionToDomain(model *models.MessageReactionModel) (*ticket.MessageReaction, error)
	DraftToModel(d *ticket.MessageDraft) *models.MessageDraftModel
	DraftToDomain(model *models.MessageDraftModel) (*ticket.MessageDraft, error)
}

type MessageMapperImpl struct{}

func NewMessageMapper() MessageMapper {
	return &MessageMapperImpl{}
}

func (m *MessageMapperImpl) ToModel(msg *ticket.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:               msg.ID(),
		TicketID:         msg.TicketID(),
		SenderID:         msg.SenderID(),
		Body:             msg.Body(),
		ContentType:      msg.ContentType().String(),
		FormattedContent: msg.FormattedContent(),
		IsFromAdmin:      msg.IsFromAdmin(),
		IsInternalNote:   msg.IsInternalNote(),
		IsSystem:         msg.IsSystem(),
		IsEdited:         msg.IsEdited(),
		EditedAt:         msg.EditedAt(),
		ReadAt:           msg.ReadAt(),
		CreatedAt:        msg.CreatedAt(),
		UpdatedAt:        msg.UpdatedAt(),
	}
}

func (m *MessageMapperImpl) ToDomain(model *models.MessageModel) (*ticket.Message, error) {
	contentType, err := vo.NewContentType(model.ContentType)
	if err != nil {
		return nil, fmt.Errorf("invalid content type on message %d: %w", model.ID, err)
	}

	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.SenderID,
		model.Body,
		contentType,
		model.FormattedContent,
		model.IsFromAdmin,
		model.IsInternalNote,
		model.IsSystem,
		model.IsEdited,
		model.EditedAt,
		model.ReadAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *MessageMapperImpl) EditToModel(edit *ticket.MessageEdit) *models.MessageEditModel {
	return &models.MessageEditModel{
		ID:                edit.ID(),
		MessageID:         edit.MessageID(),
		EditorID:          edit.EditorID(),
		PreviousBody:      edit.PreviousBody(),
		PreviousFormatted: edit.PreviousFormatted(),
		Reason:            edit.Reason(),
		CreatedAt:         edit.CreatedAt(),
	}
}

func (m *MessageMapperImpl) EditToDomain(model *models.MessageEditModel) (*ticket.MessageEdit, error) {
	return ticket.ReconstructMessageEdit(
		model.ID,
		model.MessageID,
		model.EditorID,
		model.PreviousBody,
		model.PreviousFormatted,
		model.Reason,
		model.CreatedAt,
	)
}

func (m *MessageMapperImpl) ReactionToModel(r *ticket.MessageReaction) *models.MessageReactionModel {
	return &models.MessageReactionModel{
		ID:           r.ID(),
		MessageID:    r.MessageID(),
		UserID:       r.UserID(),
		ReactionType: r.ReactionType().String(),
		CreatedAt:    r.CreatedAt(),
	}
}

func (m *MessageMapperImpl) ReactionToDomain(model *models.MessageReactionModel) (*ticket.MessageReaction, error) {
	reactionType, err := vo.NewReactionType(model.ReactionType)
	if err != nil {
		return nil, fmt.Errorf("invalid reaction type on reaction %d: %w", model.ID, err)
	}

	return ticket.ReconstructMessageReaction(
		model.ID,
		model.MessageID,
		model.UserID,
		reactionType,
		model.CreatedAt,
	)
}

func (m *MessageMapperImpl) DraftToModel(d *ticket.MessageDraft) *models.MessageDraftModel {
	return &models.MessageDraftModel{
		ID:          d.ID(),
		TicketID:    d.TicketID(),
		UserID:      d.UserID(),
		Body:        d.Body(),
		ContentType: d.ContentType().String(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

func (m *MessageMapperImpl) DraftToDomain(model *models.MessageDraftModel) (*ticket.MessageDraft, error) {
	contentType, err := vo.NewContentType(model.ContentType)
	if err != nil {
		return nil, fmt.Errorf("invalid content type on draft %d: %w", model.ID, err)
	}

	return ticket.ReconstructMessageDraft(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Body,
		contentType,
		model.UpdatedAt,
	)
}
