package usecases

import (
	"testing"
	"time"

	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
)

const (
	fixtureTicketID  = uint(1)
	fixtureCreatorID = uint(10)
	fixtureAdminID   = uint(99)
)

func reconstructTicket(t *testing.T, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()

	created := time.Now().Add(-48 * time.Hour)
	var resolvedAt *time.Time
	var resolvedBy *uint
	resolutionNote := ""
	if status.IsClosedLike() {
		at := time.Now().Add(-time.Hour)
		by := fixtureAdminID
		resolvedAt = &at
		resolvedBy = &by
		resolutionNote = "replaced the expired certificate"
	}

	tk, err := ticket.ReconstructTicket(
		fixtureTicketID,
		"TKT-2026-000001",
		"Cannot access alumni directory",
		"The directory page returns a blank screen after login.",
		3,
		vo.PriorityMedium,
		status,
		fixtureCreatorID,
		nil,
		nil,
		created,
		0,
		resolvedAt,
		resolvedBy,
		resolutionNote,
		nil,
		"",
		nil,
		created,
		created,
	)
	if err != nil {
		t.Fatalf("reconstruct ticket: %v", err)
	}
	return tk
}

func reconstructMessage(t *testing.T, id uint, fromAdmin, internalNote bool) *ticket.Message {
	t.Helper()

	created := time.Now().Add(-time.Hour)
	senderID := fixtureCreatorID
	if fromAdmin {
		senderID = fixtureAdminID
	}
	msg, err := ticket.ReconstructMessage(
		id,
		fixtureTicketID,
		senderID,
		"message body",
		vo.ContentTypePlainText,
		"",
		fromAdmin,
		internalNote,
		false,
		false,
		nil,
		nil,
		created,
		created,
	)
	if err != nil {
		t.Fatalf("reconstruct message: %v", err)
	}
	return msg
}
