package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	"alumnet/internal/shared/constants"
	"alumnet/internal/shared/db"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/goroutine"
	"alumnet/internal/shared/logger"
)

// maxBulkTickets bounds one bulk request.
const maxBulkTickets = 100

// bulkTimeout bounds the detached worker's total runtime.
const bulkTimeout = 5 * time.Minute

type StartBulkOperationCommand struct {
	InitiatorID    uint
	OperationType  string
	TicketIDs      []uint
	AssigneeID     uint
	NewStatus      string
	NewPriority    string
	NewCategoryID  uint
	ResolutionNote string
}

type StartBulkOperationResult struct {
	OperationID uint
	Status      string
	TicketCount int
}

// StartBulkOperationUseCase validates and records a bulk operation, then
// applies it on a detached goroutine. The caller gets the operation ID
// back immediately and polls for the outcome. Each target ticket runs in
// its own transaction, so one failure never rolls back its neighbors.
type StartBulkOperationUseCase struct {
	ticketRepo ticket.TicketRepository
	bulkRepo   ticket.BulkOperationRepository
	admins     ticket.AdminDirectory
	categories ticket.CategoryDirectory
	txMgr      db.Transactor
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewStartBulkOperationUseCase(
	ticketRepo ticket.TicketRepository,
	bulkRepo ticket.BulkOperationRepository,
	admins ticket.AdminDirectory,
	categories ticket.CategoryDirectory,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *StartBulkOperationUseCase {
	return &StartBulkOperationUseCase{
		ticketRepo: ticketRepo,
		bulkRepo:   bulkRepo,
		admins:     admins,
		categories: categories,
		txMgr:      txMgr,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *StartBulkOperationUseCase) Execute(ctx context.Context, cmd StartBulkOperationCommand) (*StartBulkOperationResult, error) {
	opType, err := vo.NewBulkOperationType(cmd.OperationType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if len(cmd.TicketIDs) > maxBulkTickets {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("a bulk operation targets at most %d tickets", maxBulkTickets))
	}

	if err := uc.validateParams(ctx, opType, cmd); err != nil {
		return nil, err
	}

	op, err := ticket.NewBulkOperation(opType, cmd.InitiatorID, cmd.TicketIDs)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.bulkRepo.Save(ctx, op); err != nil {
		uc.logger.Errorw("failed to save bulk operation", "error", err)
		return nil, fmt.Errorf("failed to save bulk operation: %w", err)
	}

	goroutine.SafeGo(uc.logger, fmt.Sprintf("bulk-operation-%d", op.ID()), func() {
		uc.run(op, cmd)
	})

	uc.logger.Infow("bulk operation started",
		"operation_id", op.ID(), "type", opType.String(), "ticket_count", len(cmd.TicketIDs))

	return &StartBulkOperationResult{
		OperationID: op.ID(),
		Status:      op.Status().String(),
		TicketCount: len(cmd.TicketIDs),
	}, nil
}

func (uc *StartBulkOperationUseCase) validateParams(ctx context.Context, opType vo.BulkOperationType, cmd StartBulkOperationCommand) error {
	switch opType {
	case vo.BulkAssignToAdmin:
		if cmd.AssigneeID == 0 {
			return apperrors.NewValidationError("assignee_id is required for assignment")
		}
		isAdmin, err := uc.admins.IsActiveSuperAdmin(ctx, cmd.AssigneeID)
		if err != nil {
			return fmt.Errorf("failed to check assignee role: %w", err)
		}
		if !isAdmin {
			return apperrors.NewValidationError("assignee is not an active admin")
		}
	case vo.BulkChangeStatus:
		if _, err := vo.NewTicketStatus(cmd.NewStatus); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
	case vo.BulkChangePriority:
		if _, err := vo.NewPriority(cmd.NewPriority); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
	case vo.BulkCloseWithResolution:
		if len(strings.TrimSpace(cmd.ResolutionNote)) < constants.MinResolutionNoteLength {
			return apperrors.NewValidationError(
				fmt.Sprintf("resolution note must be at least %d characters", constants.MinResolutionNoteLength))
		}
	case vo.BulkChangeCategory:
		if cmd.NewCategoryID == 0 {
			return apperrors.NewValidationError("category_id is required")
		}
		category, err := uc.categories.GetByID(ctx, cmd.NewCategoryID)
		if err != nil {
			return fmt.Errorf("failed to load category: %w", err)
		}
		if category == nil || !category.IsActive {
			return apperrors.NewValidationError("category does not exist or is inactive")
		}
	}
	return nil
}

// run executes the operation outside the request. It owns its context and
// never returns an error; outcomes live on the operation record.
func (uc *StartBulkOperationUseCase) run(op *ticket.BulkOperation, cmd StartBulkOperationCommand) {
	ctx, cancel := context.WithTimeout(context.Background(), bulkTimeout)
	defer cancel()

	for _, ticketID := range op.TicketIDs() {
		if err := uc.applyToTicket(ctx, ticketID, op.OperationType(), cmd); err != nil {
			op.RecordResult(ticketID, false, err.Error())
		} else {
			op.RecordResult(ticketID, true, "")
		}
	}

	if err := op.Complete(); err != nil {
		uc.logger.Errorw("failed to complete bulk operation", "operation_id", op.ID(), "error", err)
	}
	if err := uc.bulkRepo.Update(ctx, op); err != nil {
		uc.logger.Errorw("failed to persist bulk operation outcome", "operation_id", op.ID(), "error", err)
		return
	}

	if pubErr := uc.publisher.Publish(ticket.NewBulkOperationCompletedEvent(op)); pubErr != nil {
		uc.logger.Warnw("failed to publish bulk operation completed event", "operation_id", op.ID(), "error", pubErr)
	}

	uc.logger.Infow("bulk operation completed",
		"operation_id", op.ID(), "succeeded", op.SucceededCount(), "failed", op.FailedCount())
}

func (uc *StartBulkOperationUseCase) applyToTicket(ctx context.Context, ticketID uint, opType vo.BulkOperationType, cmd StartBulkOperationCommand) error {
	return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, ticketID)
		if err != nil {
			return fmt.Errorf("failed to load ticket: %w", err)
		}
		if t == nil {
			return fmt.Errorf("ticket not found")
		}

		switch opType {
		case vo.BulkAssignToAdmin:
			if err := t.AssignTo(cmd.AssigneeID, cmd.InitiatorID); err != nil {
				return err
			}
		case vo.BulkChangeStatus:
			status, _ := vo.NewTicketStatus(cmd.NewStatus)
			if err := t.ChangeStatus(status, cmd.InitiatorID); err != nil {
				return err
			}
		case vo.BulkChangePriority:
			priority, _ := vo.NewPriority(cmd.NewPriority)
			if err := t.UpdateDetails(nil, nil, nil, &priority); err != nil {
				return err
			}
		case vo.BulkCloseWithResolution:
			if err := t.Close(cmd.ResolutionNote, cmd.InitiatorID); err != nil {
				return err
			}
		case vo.BulkChangeCategory:
			categoryID := cmd.NewCategoryID
			if err := t.UpdateDetails(nil, nil, &categoryID, nil); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported bulk operation type: %s", opType)
		}

		return uc.ticketRepo.Update(txCtx, t)
	})
}
