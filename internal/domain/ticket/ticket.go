package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "alumnet/internal/domain/ticket/valueobjects"
)

// Ticket is a single support request tracked through a status lifecycle.
// It has exactly one owner, at most one assigned admin, and is never
// physically deleted; closing is part of the status lifecycle.
type Ticket struct {
	id                 uint
	number             string
	subject            string
	description        string
	categoryID         uint
	priority           vo.Priority
	status             vo.TicketStatus
	creatorID          uint
	assigneeID         *uint
	assignedAt         *time.Time
	lastActivity       time.Time
	reopenCount        int
	resolvedAt         *time.Time
	resolvedBy         *uint
	resolutionNote     string
	satisfactionRating *int
	satisfactionNote   string
	ratedAt            *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

func NewTicket(
	subject string,
	description string,
	categoryID uint,
	priority vo.Priority,
	creatorID uint,
) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category is required")
	}
	if priority == "" {
		priority = vo.DefaultPriority()
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()

	return &Ticket{
		subject:      subject,
		description:  description,
		categoryID:   categoryID,
		priority:     priority,
		status:       vo.StatusOpen,
		creatorID:    creatorID,
		lastActivity: now,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	subject string,
	description string,
	categoryID uint,
	priority vo.Priority,
	status vo.TicketStatus,
	creatorID uint,
	assigneeID *uint,
	assignedAt *time.Time,
	lastActivity time.Time,
	reopenCount int,
	resolvedAt *time.Time,
	resolvedBy *uint,
	resolutionNote string,
	satisfactionRating *int,
	satisfactionNote string,
	ratedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if reopenCount < 0 {
		return nil, fmt.Errorf("reopen count cannot be negative")
	}

	return &Ticket{
		id:                 id,
		number:             number,
		subject:            subject,
		description:        description,
		categoryID:         categoryID,
		priority:           priority,
		status:             status,
		creatorID:          creatorID,
		assigneeID:         assigneeID,
		assignedAt:         assignedAt,
		lastActivity:       lastActivity,
		reopenCount:        reopenCount,
		resolvedAt:         resolvedAt,
		resolvedBy:         resolvedBy,
		resolutionNote:     resolutionNote,
		satisfactionRating: satisfactionRating,
		satisfactionNote:   satisfactionNote,
		ratedAt:            ratedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                  { return t.id }
func (t *Ticket) Number() string            { return t.number }
func (t *Ticket) Subject() string           { return t.subject }
func (t *Ticket) Description() string       { return t.description }
func (t *Ticket) CategoryID() uint          { return t.categoryID }
func (t *Ticket) Priority() vo.Priority     { return t.priority }
func (t *Ticket) Status() vo.TicketStatus   { return t.status }
func (t *Ticket) CreatorID() uint           { return t.creatorID }
func (t *Ticket) AssigneeID() *uint         { return t.assigneeID }
func (t *Ticket) AssignedAt() *time.Time    { return t.assignedAt }
func (t *Ticket) LastActivity() time.Time   { return t.lastActivity }
func (t *Ticket) ReopenCount() int          { return t.reopenCount }
func (t *Ticket) ResolvedAt() *time.Time    { return t.resolvedAt }
func (t *Ticket) ResolvedBy() *uint         { return t.resolvedBy }
func (t *Ticket) ResolutionNote() string    { return t.resolutionNote }
func (t *Ticket) SatisfactionRating() *int  { return t.satisfactionRating }
func (t *Ticket) SatisfactionNote() string  { return t.satisfactionNote }
func (t *Ticket) RatedAt() *time.Time       { return t.ratedAt }
func (t *Ticket) CreatedAt() time.Time      { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time      { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// Touch bumps lastActivity after any ticket-visible change.
func (t *Ticket) Touch() {
	now := time.Now()
	t.lastActivity = now
	t.updatedAt = now
}

// AssignTo assigns the ticket to an admin. At most one admin is assigned
// at a time; reassignment replaces the previous assignee.
func (t *Ticket) AssignTo(assigneeID uint, assignedBy uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	now := time.Now()
	t.assigneeID = &assigneeID
	t.assignedAt = &now
	t.Touch()

	return nil
}

// ChangeStatus moves the ticket along a legal transition edge. Entering
// RESOLVED stamps resolution metadata; no other side effects.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, changedBy uint) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.Touch()

	if newStatus.IsResolved() {
		now := time.Now()
		t.resolvedAt = &now
		t.resolvedBy = &changedBy
	}

	return nil
}

// ApplyMessageBump adjusts the status for a newly added message using the
// message transition table: an admin message moves OPEN to IN_PROGRESS, a
// user message moves WAITING_FOR_USER to IN_PROGRESS. Always bumps
// lastActivity.
func (t *Ticket) ApplyMessageBump(fromAdmin bool) bool {
	next, changed := t.status.AfterMessage(fromAdmin)
	if changed {
		t.status = next
	}
	t.Touch()
	return changed
}

// Close resolves the ticket with a mandatory resolution note.
func (t *Ticket) Close(resolutionNote string, closedBy uint) error {
	resolutionNote = strings.TrimSpace(resolutionNote)
	if len(resolutionNote) == 0 {
		return fmt.Errorf("resolution note is required")
	}

	if t.status.IsClosed() {
		return nil
	}

	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close ticket with status %s", t.status)
	}

	now := time.Now()
	t.status = vo.StatusClosed
	t.resolvedAt = &now
	t.resolvedBy = &closedBy
	t.resolutionNote = resolutionNote
	t.Touch()

	return nil
}

// Reopen returns a resolved or closed ticket to the REOPENED state,
// incrementing reopenCount and clearing resolution metadata. The caller
// appends the system message recording the reason.
func (t *Ticket) Reopen(reason string, reopenedBy uint) error {
	if len(strings.TrimSpace(reason)) == 0 {
		return fmt.Errorf("reopen reason is required")
	}

	if !t.status.IsClosedLike() {
		return fmt.Errorf("only resolved or closed tickets can be reopened")
	}

	t.status = vo.StatusReopened
	t.reopenCount++
	t.resolvedAt = nil
	t.resolvedBy = nil
	t.resolutionNote = ""
	t.Touch()

	return nil
}

// RateSatisfaction records the owner's satisfaction rating. Only valid
// while the ticket is resolved or closed, and only for the owner.
func (t *Ticket) RateSatisfaction(rating int, note string, ratedBy uint) error {
	if ratedBy != t.creatorID {
		return fmt.Errorf("only the ticket owner can rate satisfaction")
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if !t.status.IsClosedLike() {
		return fmt.Errorf("satisfaction can only be rated on resolved or closed tickets")
	}

	now := time.Now()
	t.satisfactionRating = &rating
	t.satisfactionNote = note
	t.ratedAt = &now
	t.updatedAt = now

	return nil
}

// UpdateDetails applies owner edits to subject, description, category, and
// priority. Only allowed while the ticket is in an open-like state.
func (t *Ticket) UpdateDetails(subject, description *string, categoryID *uint, priority *vo.Priority) error {
	if !t.status.IsOpenLike() {
		return fmt.Errorf("cannot update a %s ticket", t.status)
	}

	if subject != nil {
		if len(*subject) == 0 || len(*subject) > 200 {
			return fmt.Errorf("subject must be between 1 and 200 characters")
		}
		t.subject = *subject
	}

	if description != nil {
		if len(*description) == 0 || len(*description) > 5000 {
			return fmt.Errorf("description must be between 1 and 5000 characters")
		}
		t.description = *description
	}

	if categoryID != nil {
		if *categoryID == 0 {
			return fmt.Errorf("category is required")
		}
		t.categoryID = *categoryID
	}

	if priority != nil {
		if !priority.IsValid() {
			return fmt.Errorf("invalid priority: %s", *priority)
		}
		t.priority = *priority
	}

	t.Touch()
	return nil
}

// CanBeViewedBy reports whether userID may see this ticket. Admins see
// everything; members only their own tickets.
func (t *Ticket) CanBeViewedBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return t.creatorID == userID
}

// IsAssignedTo reports whether the ticket is currently assigned to adminID.
func (t *Ticket) IsAssignedTo(adminID uint) bool {
	return t.assigneeID != nil && *t.assigneeID == adminID
}

func (t *Ticket) Validate() error {
	if len(t.subject) == 0 {
		return fmt.Errorf("subject is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if t.categoryID == 0 {
		return fmt.Errorf("category is required")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.creatorID == 0 {
		return fmt.Errorf("creator ID is required")
	}
	return nil
}
