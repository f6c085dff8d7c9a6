package usecases

import (
	"context"

	"alumnet/internal/application/attachment/dto"
)

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentDTO, error)
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, query ListAttachmentsQuery) ([]dto.AttachmentDTO, error)
}

type GetAttachmentExecutor interface {
	Execute(ctx context.Context, query GetAttachmentQuery) (*GetAttachmentResult, error)
}

// FileProbe derives stored metadata from uploaded file content: a
// checksum for integrity, and image dimensions when the content decodes
// as an image.
type FileProbe interface {
	Probe(content []byte) (checksum string, isImage bool, width, height int)
}
