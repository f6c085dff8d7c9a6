package usecases

import (
	"testing"
	"time"

	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
)

const (
	fixtureTicketID     = uint(1)
	fixtureCreatorID    = uint(10)
	fixtureAdminID      = uint(99)
	fixtureAttachmentID = uint(7)
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

func reconstructAttachment(t *testing.T) *ticket.Attachment {
	t.Helper()

	a, err := ticket.ReconstructAttachment(
		fixtureAttachmentID,
		fixtureTicketID,
		nil,
		"a1b2c3_screenshot.png",
		"screenshot.png",
		2048,
		"image/png",
		"tickets/1/a1b2c3_screenshot.png",
		fixtureCreatorID,
		time.Now().Add(-time.Hour),
	)
	if err != nil {
		t.Fatalf("reconstruct attachment: %v", err)
	}
	return a
}
