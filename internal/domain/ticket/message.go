package ticket

import (
	"fmt"
	"time"

	vo "alumnet/internal/domain/ticket/valueobjects"
)

// Message is one entry in a ticket's conversation. Messages are append
// only: edits snapshot the prior content into edit history, and nothing is
// ever deleted. isFromAdmin is derived from the sender's role at creation
// time and never re-derived.
type Message struct {
	id               uint
	ticketID         uint
	senderID         uint
	body             string
	contentType      vo.ContentType
	formattedContent string
	isFromAdmin      bool
	isInternalNote   bool
	isSystem         bool
	isEdited         bool
	editedAt         *time.Time
	readAt           *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewMessage(
	ticketID uint,
	senderID uint,
	body string,
	contentType vo.ContentType,
	formattedContent string,
	isFromAdmin bool,
	isInternalNote bool,
) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body cannot be empty")
	}
	if len(body) > 10000 {
		return nil, fmt.Errorf("message body exceeds maximum length of 10000 characters")
	}
	if !contentType.IsValid() {
		return nil, fmt.Errorf("invalid content type")
	}

	// Internal notes are an admin-only concept.
	if isInternalNote && !isFromAdmin {
		isInternalNote = false
	}

	now := time.Now()
	return &Message{
		ticketID:         ticketID,
		senderID:         senderID,
		body:             body,
		contentType:      contentType,
		formattedContent: formattedContent,
		isFromAdmin:      isFromAdmin,
		isInternalNote:   isInternalNote,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// NewSystemMessage creates a system-authored message (reopen reasons and
// similar automated thread entries). The sender is the user whose action
// produced it, but the message is flagged as system-generated.
func NewSystemMessage(ticketID uint, actorID uint, body string) (*Message, error) {
	msg, err := NewMessage(ticketID, actorID, body, vo.ContentTypePlainText, "", false, false)
	if err != nil {
		return nil, err
	}
	msg.isSystem = true
	return msg, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	senderID uint,
	body string,
	contentType vo.ContentType,
	formattedContent string,
	isFromAdmin bool,
	isInternalNote bool,
	isSystem bool,
	isEdited bool,
	editedAt *time.Time,
	readAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if !contentType.IsValid() {
		return nil, fmt.Errorf("invalid content type")
	}

	return &Message{
		id:               id,
		ticketID:         ticketID,
		senderID:         senderID,
		body:             body,
		contentType:      contentType,
		formattedContent: formattedContent,
		isFromAdmin:      isFromAdmin,
		isInternalNote:   isInternalNote,
		isSystem:         isSystem,
		isEdited:         isEdited,
		editedAt:         editedAt,
		readAt:           readAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (m *Message) ID() uint                     { return m.id }
func (m *Message) TicketID() uint               { return m.ticketID }
func (m *Message) SenderID() uint               { return m.senderID }
func (m *Message) Body() string                 { return m.body }
func (m *Message) ContentType() vo.ContentType  { return m.contentType }
func (m *Message) FormattedContent() string     { return m.formattedContent }
func (m *Message) IsFromAdmin() bool            { return m.isFromAdmin }
func (m *Message) IsInternalNote() bool         { return m.isInternalNote }
func (m *Message) IsSystem() bool               { return m.isSystem }
func (m *Message) IsEdited() bool               { return m.isEdited }
func (m *Message) EditedAt() *time.Time         { return m.editedAt }
func (m *Message) ReadAt() *time.Time           { return m.readAt }
func (m *Message) CreatedAt() time.Time         { return m.createdAt }
func (m *Message) UpdatedAt() time.Time         { return m.updatedAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// CanBeEditedBy reports whether editorID may edit this message at the
// given time. The original sender may edit within the edit window; admins
// are unrestricted.
func (m *Message) CanBeEditedBy(editorID uint, editorIsAdmin bool, at time.Time, editWindow time.Duration) error {
	if editorIsAdmin {
		return nil
	}
	if m.senderID != editorID {
		return fmt.Errorf("only the original sender or an admin can edit a message")
	}
	if at.Sub(m.createdAt) > editWindow {
		return fmt.Errorf("edit window of %s has passed", editWindow)
	}
	return nil
}

// Edit replaces the message content and returns the snapshot of the
// pre-edit content that must be appended to the edit history.
func (m *Message) Edit(newBody, newFormattedContent string, editorID uint, reason string) (*MessageEdit, error) {
	if len(newBody) == 0 {
		return nil, fmt.Errorf("message body cannot be empty")
	}
	if len(newBody) > 10000 {
		return nil, fmt.Errorf("message body exceeds maximum length of 10000 characters")
	}

	snapshot, err := NewMessageEdit(m.id, editorID, m.body, m.formattedContent, reason)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	m.body = newBody
	m.formattedContent = newFormattedContent
	m.isEdited = true
	m.editedAt = &now
	m.updatedAt = now

	return snapshot, nil
}

// MarkRead stamps the time the ticket owner first saw this message.
func (m *Message) MarkRead(at time.Time) {
	if m.readAt == nil {
		m.readAt = &at
	}
}

// VisibleMessages projects a message list for a viewer: internal notes are
// dropped unless the viewer is an admin. Storage queries never encode this
// rule; every read path goes through this projection.
func VisibleMessages(msgs []*Message, viewerIsAdmin bool) []*Message {
	if viewerIsAdmin {
		return msgs
	}

	visible := make([]*Message, 0, len(msgs))
	for _, m := range msgs {
		if m.IsInternalNote() {
			continue
		}
		visible = append(visible, m)
	}
	return visible
}

// MessageEdit is the immutable snapshot taken before each edit.
type MessageEdit struct {
	id               uint
	messageID        uint
	editorID         uint
	previousBody     string
	previousFormatted string
	reason           string
	createdAt        time.Time
}

func NewMessageEdit(messageID, editorID uint, previousBody, previousFormatted, reason string) (*MessageEdit, error) {
	if editorID == 0 {
		return nil, fmt.Errorf("editor ID is required")
	}

	return &MessageEdit{
		messageID:         messageID,
		editorID:          editorID,
		previousBody:      previousBody,
		previousFormatted: previousFormatted,
		reason:            reason,
		createdAt:         time.Now(),
	}, nil
}

func ReconstructMessageEdit(
	id uint,
	messageID uint,
	editorID uint,
	previousBody string,
	previousFormatted string,
	reason string,
	createdAt time.Time,
) (*MessageEdit, error) {
	if id == 0 {
		return nil, fmt.Errorf("message edit ID cannot be zero")
	}

	return &MessageEdit{
		id:                id,
		messageID:         messageID,
		editorID:          editorID,
		previousBody:      previousBody,
		previousFormatted: previousFormatted,
		reason:            reason,
		createdAt:         createdAt,
	}, nil
}

func (e *MessageEdit) ID() uint                  { return e.id }
func (e *MessageEdit) MessageID() uint           { return e.messageID }
func (e *MessageEdit) EditorID() uint            { return e.editorID }
func (e *MessageEdit) PreviousBody() string      { return e.previousBody }
func (e *MessageEdit) PreviousFormatted() string { return e.previousFormatted }
func (e *MessageEdit) Reason() string            { return e.reason }
func (e *MessageEdit) CreatedAt() time.Time      { return e.createdAt }

func (e *MessageEdit) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("message edit ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message edit ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *MessageEdit) SetMessageID(messageID uint) {
	if e.messageID == 0 {
		e.messageID = messageID
	}
}

// MessageReaction is a (message, user, type) marker. The triple is unique;
// toggling an existing identical reaction removes it.
type MessageReaction struct {
	id           uint
	messageID    uint
	userID       uint
	reactionType vo.ReactionType
	createdAt    time.Time
}

func NewMessageReaction(messageID, userID uint, reactionType vo.ReactionType) (*MessageReaction, error) {
	if messageID == 0 {
		return nil, fmt.Errorf("message ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !reactionType.IsValid() {
		return nil, fmt.Errorf("invalid reaction type")
	}

	return &MessageReaction{
		messageID:    messageID,
		userID:       userID,
		reactionType: reactionType,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructMessageReaction(
	id uint,
	messageID uint,
	userID uint,
	reactionType vo.ReactionType,
	createdAt time.Time,
) (*MessageReaction, error) {
	if id == 0 {
		return nil, fmt.Errorf("reaction ID cannot be zero")
	}

	return &MessageReaction{
		id:           id,
		messageID:    messageID,
		userID:       userID,
		reactionType: reactionType,
		createdAt:    createdAt,
	}, nil
}

func (r *MessageReaction) ID() uint                      { return r.id }
func (r *MessageReaction) MessageID() uint               { return r.messageID }
func (r *MessageReaction) UserID() uint                  { return r.userID }
func (r *MessageReaction) ReactionType() vo.ReactionType { return r.reactionType }
func (r *MessageReaction) CreatedAt() time.Time          { return r.createdAt }

func (r *MessageReaction) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reaction ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reaction ID cannot be zero")
	}
	r.id = id
	return nil
}

// MessageDraft is the at-most-one unsent message per (ticket, user) pair.
// It is upserted on save and deleted on send or explicit clear.
type MessageDraft struct {
	id          uint
	ticketID    uint
	userID      uint
	body        string
	contentType vo.ContentType
	updatedAt   time.Time
}

func NewMessageDraft(ticketID, userID uint, body string, contentType vo.ContentType) (*MessageDraft, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !contentType.IsValid() {
		return nil, fmt.Errorf("invalid content type")
	}

	return &MessageDraft{
		ticketID:    ticketID,
		userID:      userID,
		body:        body,
		contentType: contentType,
		updatedAt:   time.Now(),
	}, nil
}

func ReconstructMessageDraft(
	id uint,
	ticketID uint,
	userID uint,
	body string,
	contentType vo.ContentType,
	updatedAt time.Time,
) (*MessageDraft, error) {
	if id == 0 {
		return nil, fmt.Errorf("draft ID cannot be zero")
	}

	return &MessageDraft{
		id:          id,
		ticketID:    ticketID,
		userID:      userID,
		body:        body,
		contentType: contentType,
		updatedAt:   updatedAt,
	}, nil
}

func (d *MessageDraft) ID() uint                    { return d.id }
func (d *MessageDraft) TicketID() uint              { return d.ticketID }
func (d *MessageDraft) UserID() uint                { return d.userID }
func (d *MessageDraft) Body() string                { return d.body }
func (d *MessageDraft) ContentType() vo.ContentType { return d.contentType }
func (d *MessageDraft) UpdatedAt() time.Time        { return d.updatedAt }
