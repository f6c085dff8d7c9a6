package usecases

import (
	"context"

	"alumnet/internal/application/message/dto"
	vo "alumnet/internal/domain/ticket/valueobjects"
)

type AddMessageExecutor interface {
	Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error)
}

type EditMessageExecutor interface {
	Execute(ctx context.Context, cmd EditMessageCommand) (*dto.MessageDTO, error)
}

type GetEditHistoryExecutor interface {
	Execute(ctx context.Context, query GetEditHistoryQuery) ([]dto.MessageEditDTO, error)
}

type ToggleReactionExecutor interface {
	Execute(ctx context.Context, cmd ToggleReactionCommand) (*ToggleReactionResult, error)
}

type ListReactionsExecutor interface {
	Execute(ctx context.Context, query ListReactionsQuery) ([]dto.ReactionGroupDTO, error)
}

type SaveDraftExecutor interface {
	Execute(ctx context.Context, cmd SaveDraftCommand) (*dto.DraftDTO, error)
}

type GetDraftExecutor interface {
	Execute(ctx context.Context, query GetDraftQuery) (*dto.DraftDTO, error)
}

type DeleteDraftExecutor interface {
	Execute(ctx context.Context, cmd DeleteDraftCommand) error
}

// ContentRenderer turns a raw message body into its stored formatted
// form: markdown is rendered to HTML and sanitized, raw HTML is
// sanitized, plain text passes through empty.
type ContentRenderer interface {
	Render(contentType vo.ContentType, body string) (string, error)
}
