package valueobjects

import "fmt"

// BulkOperationType identifies which mutation a bulk operation applies to
// each target ticket.
type BulkOperationType string

const (
	BulkAssignToAdmin       BulkOperationType = "ASSIGN_TO_ADMIN"
	BulkChangeStatus        BulkOperationType = "CHANGE_STATUS"
	BulkChangePriority      BulkOperationType = "CHANGE_PRIORITY"
	BulkCloseWithResolution BulkOperationType = "CLOSE_WITH_RESOLUTION"
	BulkChangeCategory      BulkOperationType = "CHANGE_CATEGORY"
)

var validBulkOperationTypes = map[BulkOperationType]bool{
	BulkAssignToAdmin:       true,
	BulkChangeStatus:        true,
	BulkChangePriority:      true,
	BulkCloseWithResolution: true,
	BulkChangeCategory:      true,
}

func (t BulkOperationType) String() string {
	return string(t)
}

func (t BulkOperationType) IsValid() bool {
	return validBulkOperationTypes[t]
}

func NewBulkOperationType(s string) (BulkOperationType, error) {
	t := BulkOperationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid bulk operation type: %s", s)
	}
	return t, nil
}

// BulkOperationStatus tracks the aggregate state of a bulk operation.
// Per-item failures do not fail the operation; FAILED is reserved for the
// operation itself being unable to run.
type BulkOperationStatus string

const (
	BulkStatusStarted   BulkOperationStatus = "STARTED"
	BulkStatusCompleted BulkOperationStatus = "COMPLETED"
	BulkStatusFailed    BulkOperationStatus = "FAILED"
)

func (s BulkOperationStatus) String() string {
	return string(s)
}

func (s BulkOperationStatus) IsValid() bool {
	return s == BulkStatusStarted || s == BulkStatusCompleted || s == BulkStatusFailed
}

func (s BulkOperationStatus) IsTerminal() bool {
	return s == BulkStatusCompleted || s == BulkStatusFailed
}
