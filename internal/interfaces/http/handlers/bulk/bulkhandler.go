package bulk

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumnet/internal/application/bulk/usecases"
	"alumnet/internal/shared/logger"
	"alumnet/internal/shared/utils"
)

type StartBulkOperationRequest struct {
	OperationType  string `json:"operation_type" binding:"required"`
	TicketIDs      []uint `json:"ticket_ids" binding:"required,min=1,max=100"`
	AssigneeID     uint   `json:"assignee_id,omitempty"`
	Status         string `json:"status,omitempty"`
	Priority       string `json:"priority,omitempty"`
	CategoryID     uint   `json:"category_id,omitempty"`
	ResolutionNote string `json:"resolution_note,omitempty" binding:"max=2000"`
}

func (r *StartBulkOperationRequest) ToCommand(initiatorID uint) usecases.StartBulkOperationCommand {
	return usecases.StartBulkOperationCommand{
		InitiatorID:    initiatorID,
		OperationType:  r.OperationType,
		TicketIDs:      r.TicketIDs,
		AssigneeID:     r.AssigneeID,
		NewStatus:      r.Status,
		NewPriority:    r.Priority,
		NewCategoryID:  r.CategoryID,
		ResolutionNote: r.ResolutionNote,
	}
}

type BulkHandler struct {
	start  usecases.StartBulkOperationExecutor
	get    usecases.GetBulkOperationExecutor
	list   usecases.ListBulkOperationsExecutor
	logger logger.Interface
}

func NewBulkHandler(
	start usecases.StartBulkOperationExecutor,
	get usecases.GetBulkOperationExecutor,
	list usecases.ListBulkOperationsExecutor,
) *BulkHandler {
	return &BulkHandler{
		start:  start,
		get:    get,
		list:   list,
		logger: logger.NewLogger(),
	}
}

// Start handles POST /admin/tickets/bulk. Returns 202; the operation
// finishes in the background and the caller polls by ID.
func (h *BulkHandler) Start(c *gin.Context) {
	var req StartBulkOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bulk operation", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.start.Execute(c.Request.Context(), req.ToCommand(utils.AuthUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.AcceptedResponse(c, result, "Bulk operation accepted")
}

// Get handles GET /admin/tickets/bulk/:id
func (h *BulkHandler) Get(c *gin.Context) {
	operationID, err := utils.ParseIDParam(c, "id", "bulk operation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.get.Execute(c.Request.Context(), usecases.GetBulkOperationQuery{OperationID: operationID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /admin/tickets/bulk
func (h *BulkHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	query := usecases.ListBulkOperationsQuery{
		InitiatorID: utils.AuthUserID(c),
		Page:        p.Page,
		PageSize:    p.PageSize,
	}

	result, err := h.list.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
