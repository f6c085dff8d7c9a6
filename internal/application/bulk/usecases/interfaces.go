package usecases

import (
	"context"

	"alumnet/internal/application/bulk/dto"
)

type StartBulkOperationExecutor interface {
	Execute(ctx context.Context, cmd StartBulkOperationCommand) (*StartBulkOperationResult, error)
}

type GetBulkOperationExecutor interface {
	Execute(ctx context.Context, query GetBulkOperationQuery) (*dto.BulkOperationDTO, error)
}

type ListBulkOperationsExecutor interface {
	Execute(ctx context.Context, query ListBulkOperationsQuery) (*ListBulkOperationsResult, error)
}
