package dto

import (
	"time"

	"alumnet/internal/domain/ticket"
)

type BulkItemResultDTO struct {
	TicketID uint   `json:"ticket_id"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

type BulkOperationDTO struct {
	ID            uint                `json:"id"`
	OperationType string              `json:"operation_type"`
	InitiatorID   uint                `json:"initiator_id"`
	Status        string              `json:"status"`
	TicketCount   int                 `json:"ticket_count"`
	Succeeded     int                 `json:"succeeded"`
	Failed        int                 `json:"failed"`
	Results       []BulkItemResultDTO `json:"results,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	CompletedAt   *time.Time          `json:"completed_at"`
}

func ToBulkOperationDTO(op *ticket.BulkOperation, includeResults bool) *BulkOperationDTO {
	if op == nil {
		return nil
	}

	d := &BulkOperationDTO{
		ID:            op.ID(),
		OperationType: op.OperationType().String(),
		InitiatorID:   op.InitiatorID(),
		Status:        op.Status().String(),
		TicketCount:   len(op.TicketIDs()),
		Succeeded:     op.SucceededCount(),
		Failed:        op.FailedCount(),
		CreatedAt:     op.CreatedAt(),
		CompletedAt:   op.CompletedAt(),
	}

	if includeResults {
		results := op.Results()
		d.Results = make([]BulkItemResultDTO, 0, len(results))
		for _, r := range results {
			d.Results = append(d.Results, BulkItemResultDTO{
				TicketID: r.TicketID,
				Success:  r.Success,
				Error:    r.Error,
			})
		}
	}

	return d
}

func ToBulkOperationDTOs(ops []*ticket.BulkOperation) []BulkOperationDTO {
	items := make([]BulkOperationDTO, 0, len(ops))
	for _, op := range ops {
		items = append(items, *ToBulkOperationDTO(op, false))
	}
	return items
}
