package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen           TicketStatus = "OPEN"
	StatusInProgress     TicketStatus = "IN_PROGRESS"
	StatusWaitingForUser TicketStatus = "WAITING_FOR_USER"
	StatusReopened       TicketStatus = "REOPENED"
	StatusResolved       TicketStatus = "RESOLVED"
	StatusClosed         TicketStatus = "CLOSED"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:           true,
	StatusInProgress:     true,
	StatusWaitingForUser: true,
	StatusReopened:       true,
	StatusResolved:       true,
	StatusClosed:         true,
}

// ticketStatusTransitions is the single source of truth for legal status
// walks. RESOLVED and CLOSED are re-enterable through REOPENED, so the
// machine is cyclic rather than terminal.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusInProgress,
		StatusWaitingForUser,
		StatusResolved,
		StatusClosed,
	},
	StatusInProgress: {
		StatusWaitingForUser,
		StatusResolved,
		StatusClosed,
	},
	StatusWaitingForUser: {
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	},
	StatusReopened: {
		StatusInProgress,
		StatusWaitingForUser,
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusReopened,
		StatusClosed,
	},
	StatusClosed: {
		StatusReopened,
	},
}

// messageStatusBumps maps (current status, sender is admin) to the status a
// new message moves the ticket into. Consulted by the message-add operation
// instead of inline conditionals so the legal-transition invariant stays
// testable in isolation.
var messageStatusBumps = map[TicketStatus]map[bool]TicketStatus{
	StatusOpen: {
		true: StatusInProgress,
	},
	StatusWaitingForUser: {
		false: StatusInProgress,
	},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// AfterMessage returns the status the ticket takes once a message from the
// given sender kind lands on it, and whether that changes anything.
func (ts TicketStatus) AfterMessage(fromAdmin bool) (TicketStatus, bool) {
	bumps, ok := messageStatusBumps[ts]
	if !ok {
		return ts, false
	}
	next, ok := bumps[fromAdmin]
	if !ok {
		return ts, false
	}
	return next, true
}

// IsOpenLike reports whether the status counts toward "open" dashboard
// buckets: OPEN, IN_PROGRESS, WAITING_FOR_USER, REOPENED.
func (ts TicketStatus) IsOpenLike() bool {
	switch ts {
	case StatusOpen, StatusInProgress, StatusWaitingForUser, StatusReopened:
		return true
	}
	return false
}

// IsClosedLike reports whether the status counts toward "closed" dashboard
// buckets: RESOLVED, CLOSED.
func (ts TicketStatus) IsClosedLike() bool {
	return ts == StatusResolved || ts == StatusClosed
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsWaitingForUser() bool {
	return ts == StatusWaitingForUser
}

func (ts TicketStatus) IsReopened() bool {
	return ts == StatusReopened
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

// OpenLikeStatuses returns the statuses in the "open" dashboard bucket.
func OpenLikeStatuses() []TicketStatus {
	return []TicketStatus{StatusOpen, StatusInProgress, StatusWaitingForUser, StatusReopened}
}

// ClosedLikeStatuses returns the statuses in the "closed" dashboard bucket.
func ClosedLikeStatuses() []TicketStatus {
	return []TicketStatus{StatusResolved, StatusClosed}
}
