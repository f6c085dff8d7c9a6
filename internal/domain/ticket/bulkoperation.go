package ticket

import (
	"fmt"
	"time"

	vo "alumnet/internal/domain/ticket/valueobjects"
)

// BulkItemResult records one target ticket's outcome within a bulk
// operation. Failures are isolated per item; one bad ticket never aborts
// the rest of the batch.
type BulkItemResult struct {
	TicketID uint   `json:"ticket_id"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// BulkOperation is an admin-initiated mutation applied independently to
// many tickets, tracked with per-item outcomes and an aggregate status.
type BulkOperation struct {
	id            uint
	operationType vo.BulkOperationType
	initiatorID   uint
	ticketIDs     []uint
	results       []BulkItemResult
	status        vo.BulkOperationStatus
	createdAt     time.Time
	completedAt   *time.Time
}

func NewBulkOperation(
	operationType vo.BulkOperationType,
	initiatorID uint,
	ticketIDs []uint,
) (*BulkOperation, error) {
	if !operationType.IsValid() {
		return nil, fmt.Errorf("invalid bulk operation type")
	}
	if initiatorID == 0 {
		return nil, fmt.Errorf("initiator ID is required")
	}
	if len(ticketIDs) == 0 {
		return nil, fmt.Errorf("at least one ticket ID is required")
	}

	ids := make([]uint, len(ticketIDs))
	copy(ids, ticketIDs)

	return &BulkOperation{
		operationType: operationType,
		initiatorID:   initiatorID,
		ticketIDs:     ids,
		status:        vo.BulkStatusStarted,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructBulkOperation(
	id uint,
	operationType vo.BulkOperationType,
	initiatorID uint,
	ticketIDs []uint,
	results []BulkItemResult,
	status vo.BulkOperationStatus,
	createdAt time.Time,
	completedAt *time.Time,
) (*BulkOperation, error) {
	if id == 0 {
		return nil, fmt.Errorf("bulk operation ID cannot be zero")
	}
	if !operationType.IsValid() {
		return nil, fmt.Errorf("invalid bulk operation type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid bulk operation status")
	}

	return &BulkOperation{
		id:            id,
		operationType: operationType,
		initiatorID:   initiatorID,
		ticketIDs:     ticketIDs,
		results:       results,
		status:        status,
		createdAt:     createdAt,
		completedAt:   completedAt,
	}, nil
}

func (b *BulkOperation) ID() uint                          { return b.id }
func (b *BulkOperation) OperationType() vo.BulkOperationType { return b.operationType }
func (b *BulkOperation) InitiatorID() uint                 { return b.initiatorID }
func (b *BulkOperation) Status() vo.BulkOperationStatus    { return b.status }
func (b *BulkOperation) CreatedAt() time.Time              { return b.createdAt }
func (b *BulkOperation) CompletedAt() *time.Time           { return b.completedAt }

func (b *BulkOperation) TicketIDs() []uint {
	ids := make([]uint, len(b.ticketIDs))
	copy(ids, b.ticketIDs)
	return ids
}

func (b *BulkOperation) Results() []BulkItemResult {
	results := make([]BulkItemResult, len(b.results))
	copy(results, b.results)
	return results
}

// SucceededCount returns the number of per-item successes recorded so far.
func (b *BulkOperation) SucceededCount() int {
	n := 0
	for _, r := range b.results {
		if r.Success {
			n++
		}
	}
	return n
}

// FailedCount returns the number of per-item failures recorded so far.
func (b *BulkOperation) FailedCount() int {
	n := 0
	for _, r := range b.results {
		if !r.Success {
			n++
		}
	}
	return n
}

func (b *BulkOperation) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("bulk operation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("bulk operation ID cannot be zero")
	}
	b.id = id
	return nil
}

// RecordResult appends one ticket's outcome.
func (b *BulkOperation) RecordResult(ticketID uint, success bool, errMsg string) {
	b.results = append(b.results, BulkItemResult{
		TicketID: ticketID,
		Success:  success,
		Error:    errMsg,
	})
}

// Complete marks the operation finished. Per-item failures do not make the
// operation FAILED; only a failure to run at all does.
func (b *BulkOperation) Complete() error {
	if b.status.IsTerminal() {
		return fmt.Errorf("bulk operation is already %s", b.status)
	}
	now := time.Now()
	b.status = vo.BulkStatusCompleted
	b.completedAt = &now
	return nil
}

// Fail marks the whole operation as failed to run.
func (b *BulkOperation) Fail() error {
	if b.status.IsTerminal() {
		return fmt.Errorf("bulk operation is already %s", b.status)
	}
	now := time.Now()
	b.status = vo.BulkStatusFailed
	b.completedAt = &now
	return nil
}
