package usecases

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	apperrors "alumnet/internal/shared/errors"
)

func uploadCommand() UploadAttachmentCommand {
	return UploadAttachmentCommand{
		TicketID:     fixtureTicketID,
		UploaderID:   fixtureCreatorID,
		IsAdmin:      false,
		FileName:     "a1b2c3_screenshot.png",
		OriginalName: "screenshot.png",
		MimeType:     "image/png",
		StoragePath:  "tickets/1/a1b2c3_screenshot.png",
		Content:      []byte("fake png bytes"),
	}
}

func TestUploadAttachmentUseCase_Execute_Success(t *testing.T) {
	tk := reconstructTicket(t, vo.StatusOpen)

	var savedAttachment *ticket.Attachment
	var savedMetadata *ticket.FileMetadata
	attachmentRepo := &mockAttachmentRepository{
		SaveFunc: func(ctx context.Context, a *ticket.Attachment) error {
			savedAttachment = a
			return a.SetID(fixtureAttachmentID)
		},
		SaveMetadataFunc: func(ctx context.Context, meta *ticket.FileMetadata) error {
			savedMetadata = meta
			return nil
		},
	}
	probe := &mockProbe{
		ProbeFunc: func(content []byte) (string, bool, int, int) {
			return "abc123", true, 800, 600
		},
	}
	var published events.DomainEvent
	publisher := &mockEventPublisher{
		PublishFunc: func(event events.DomainEvent) error {
			published = event
			return nil
		},
	}

	uc := NewUploadAttachmentUseCase(
		&mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		},
		attachmentRepo,
		probe,
		&mockTransactor{},
		publisher,
		&mockLogger{},
	)

	result, err := uc.Execute(context.Background(), uploadCommand())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, fixtureAttachmentID, result.ID)
	assert.Equal(t, "screenshot.png", result.OriginalName)

	require.NotNil(t, savedAttachment)
	assert.Equal(t, int64(len("fake png bytes")), savedAttachment.FileSize())

	require.NotNil(t, savedMetadata)
	assert.Equal(t, fixtureAttachmentID, savedMetadata.AttachmentID())
	assert.Equal(t, "abc123", savedMetadata.Checksum())
	assert.True(t, savedMetadata.IsImage())
	assert.Equal(t, 800, savedMetadata.Width())
	assert.Equal(t, 600, savedMetadata.Height())

	require.NotNil(t, published)
	event, ok := published.(ticket.AttachmentAddedEvent)
	require.True(t, ok)
	assert.Equal(t, fixtureAttachmentID, event.AttachmentID)
	assert.Equal(t, "screenshot.png", event.FileName)
}

func TestUploadAttachmentUseCase_Execute_SizeLimits(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "empty content", content: nil},
		{name: "over the cap", content: bytes.Repeat([]byte("x"), maxAttachmentSize+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loaded := false
			uc := NewUploadAttachmentUseCase(
				&mockTicketRepository{
					GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
						loaded = true
						return reconstructTicket(t, vo.StatusOpen), nil
					},
				},
				&mockAttachmentRepository{},
				&mockProbe{},
				&mockTransactor{},
				&mockEventPublisher{},
				&mockLogger{},
			)

			cmd := uploadCommand()
			cmd.Content = tt.content
			result, err := uc.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Nil(t, result)
			assert.False(t, loaded, "ticket should not be loaded for invalid content")
		})
	}
}

func TestUploadAttachmentUseCase_Execute_ForeignTicketLooksAbsent(t *testing.T) {
	tk := reconstructTicket(t, vo.StatusOpen)

	saved := false
	uc := NewUploadAttachmentUseCase(
		&mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		},
		&mockAttachmentRepository{
			SaveFunc: func(ctx context.Context, a *ticket.Attachment) error {
				saved = true
				return nil
			},
		},
		&mockProbe{},
		&mockTransactor{},
		&mockEventPublisher{},
		&mockLogger{},
	)

	cmd := uploadCommand()
	cmd.UploaderID = 777
	result, err := uc.Execute(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Nil(t, result)
	assert.False(t, saved)
}

func TestUploadAttachmentUseCase_Execute_MetadataFailureRollsBack(t *testing.T) {
	tk := reconstructTicket(t, vo.StatusOpen)

	published := false
	uc := NewUploadAttachmentUseCase(
		&mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		},
		&mockAttachmentRepository{
			SaveFunc: func(ctx context.Context, a *ticket.Attachment) error {
				return a.SetID(fixtureAttachmentID)
			},
			SaveMetadataFunc: func(ctx context.Context, meta *ticket.FileMetadata) error {
				return assert.AnError
			},
		},
		&mockProbe{},
		&mockTransactor{},
		&mockEventPublisher{
			PublishFunc: func(event events.DomainEvent) error {
				published = true
				return nil
			},
		},
		&mockLogger{},
	)

	result, err := uc.Execute(context.Background(), uploadCommand())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, published, "no event on a failed transaction")
}
