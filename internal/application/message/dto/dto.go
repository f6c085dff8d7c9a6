package dto

import (
	"time"

	"alumnet/internal/domain/ticket"
)

type MessageDTO struct {
	ID               uint       `json:"id"`
	TicketID         uint       `json:"ticket_id"`
	SenderID         uint       `json:"sender_id"`
	SenderName       string     `json:"sender_name,omitempty"`
	SenderAvatarURL  string     `json:"sender_avatar_url,omitempty"`
	Body             string     `json:"body"`
	ContentType      string     `json:"content_type"`
	FormattedContent string     `json:"formatted_content,omitempty"`
	IsFromAdmin      bool       `json:"is_from_admin"`
	IsInternalNote   bool       `json:"is_internal_note"`
	IsSystem         bool       `json:"is_system"`
	IsEdited         bool       `json:"is_edited"`
	EditedAt         *time.Time `json:"edited_at"`
	ReadAt           *time.Time `json:"read_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

type MessageEditDTO struct {
	ID                uint      `json:"id"`
	MessageID         uint      `json:"message_id"`
	EditorID          uint      `json:"editor_id"`
	PreviousBody      string    `json:"previous_body"`
	PreviousFormatted string    `json:"previous_formatted,omitempty"`
	Reason            string    `json:"reason,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ReactionUserDTO is one reacting user inside a reaction group, carrying
// the public profile fields when the directory could resolve them.
type ReactionUserDTO struct {
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	ReactedAt time.Time `json:"reacted_at"`
}

// ReactionGroupDTO aggregates a message's reactions by type, with the set
// of users behind each count.
type ReactionGroupDTO struct {
	ReactionType string            `json:"reaction_type"`
	Count        int               `json:"count"`
	Users        []ReactionUserDTO `json:"users"`
}

type DraftDTO struct {
	TicketID    uint      `json:"ticket_id"`
	Body        string    `json:"body"`
	ContentType string    `json:"content_type"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToMessageDTO(m *ticket.Message) MessageDTO {
	return MessageDTO{
		ID:               m.ID(),
		TicketID:         m.TicketID(),
		SenderID:         m.SenderID(),
		Body:             m.Body(),
		ContentType:      m.ContentType().String(),
		FormattedContent: m.FormattedContent(),
		IsFromAdmin:      m.IsFromAdmin(),
		IsInternalNote:   m.IsInternalNote(),
		IsSystem:         m.IsSystem(),
		IsEdited:         m.IsEdited(),
		EditedAt:         m.EditedAt(),
		ReadAt:           m.ReadAt(),
		CreatedAt:        m.CreatedAt(),
	}
}

func ToMessageDTOs(msgs []*ticket.Message) []MessageDTO {
	items := make([]MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, ToMessageDTO(m))
	}
	return items
}

func ToMessageEditDTO(e *ticket.MessageEdit) MessageEditDTO {
	return MessageEditDTO{
		ID:                e.ID(),
		MessageID:         e.MessageID(),
		EditorID:          e.EditorID(),
		PreviousBody:      e.PreviousBody(),
		PreviousFormatted: e.PreviousFormatted(),
		Reason:            e.Reason(),
		CreatedAt:         e.CreatedAt(),
	}
}

func ToMessageEditDTOs(edits []*ticket.MessageEdit) []MessageEditDTO {
	items := make([]MessageEditDTO, 0, len(edits))
	for _, e := range edits {
		items = append(items, ToMessageEditDTO(e))
	}
	return items
}

// GroupReactions folds raw reactions into per-type groups, preserving the
// first-seen order of types and the creation order of users within each
// group. Users absent from the profiles map keep their bare ID.
func GroupReactions(reactions []*ticket.MessageReaction, profiles map[uint]*ticket.UserProfile) []ReactionGroupDTO {
	order := make([]string, 0)
	groups := make(map[string]*ReactionGroupDTO)

	for _, r := range reactions {
		rt := r.ReactionType().String()
		g, ok := groups[rt]
		if !ok {
			g = &ReactionGroupDTO{ReactionType: rt}
			groups[rt] = g
			order = append(order, rt)
		}
		g.Count++

		user := ReactionUserDTO{UserID: r.UserID(), ReactedAt: r.CreatedAt()}
		if p := profiles[r.UserID()]; p != nil {
			user.Name = p.Name
			user.AvatarURL = p.AvatarURL
		}
		g.Users = append(g.Users, user)
	}

	result := make([]ReactionGroupDTO, 0, len(order))
	for _, rt := range order {
		result = append(result, *groups[rt])
	}
	return result
}

func ToDraftDTO(d *ticket.MessageDraft) *DraftDTO {
	if d == nil {
		return nil
	}
	return &DraftDTO{
		TicketID:    d.TicketID(),
		Body:        d.Body(),
		ContentType: d.ContentType().String(),
		UpdatedAt:   d.UpdatedAt(),
	}
}
