package usecases

import (
	"testing"
	"time"

	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
)

const (
	fixtureTicketID  = uint(1)
	fixtureMessageID = uint(10)
	fixtureCreatorID = uint(10)
	fixtureAdminID   = uint(99)
)

func reconstructTicket(t *testing.T, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()

	created := time.Now().Add(-48 * time.Hour)
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
		nil,
		nil,
		"",
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

func reconstructMessageAt(t *testing.T, fromAdmin, internalNote bool, createdAt time.Time) *ticket.Message {
	t.Helper()

	senderID := fixtureCreatorID
	if fromAdmin {
		senderID = fixtureAdminID
	}
	msg, err := ticket.ReconstructMessage(
		fixtureMessageID,
		fixtureTicketID,
		senderID,
		"original body",
		vo.ContentTypePlainText,
		"original body",
		fromAdmin,
		internalNote,
		false,
		false,
		nil,
		nil,
		createdAt,
		createdAt,
	)
	if err != nil {
		t.Fatalf("reconstruct message: %v", err)
	}
	return msg
}
