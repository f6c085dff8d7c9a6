package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumnet/internal/application/ticket/usecases"
	"alumnet/internal/shared/authorization"
	"alumnet/internal/shared/logger"
	"alumnet/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC     usecases.CreateTicketExecutor
	getTicketUC        usecases.GetTicketExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	listAdminTicketsUC usecases.ListAdminTicketsExecutor
	updateTicketUC     usecases.UpdateTicketExecutor
	updateStatusUC     usecases.UpdateStatusExecutor
	assignTicketUC     usecases.AssignTicketExecutor
	closeTicketUC      usecases.CloseTicketExecutor
	reopenTicketUC     usecases.ReopenTicketExecutor
	rateSatisfactionUC usecases.RateSatisfactionExecutor
	getStatsUC         usecases.GetTicketStatsExecutor
	listCategoriesUC   usecases.ListCategoriesExecutor
	listAdminsUC       usecases.ListAvailableAdminsExecutor
	emailCopyUC        usecases.EmailTicketCopyExecutor
	getAuditTrailUC    usecases.GetAuditTrailExecutor
	logger             logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	listAdminTicketsUC usecases.ListAdminTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	reopenTicketUC usecases.ReopenTicketExecutor,
	rateSatisfactionUC usecases.RateSatisfactionExecutor,
	getStatsUC usecases.GetTicketStatsExecutor,
	listCategoriesUC usecases.ListCategoriesExecutor,
	listAdminsUC usecases.ListAvailableAdminsExecutor,
	emailCopyUC usecases.EmailTicketCopyExecutor,
	getAuditTrailUC usecases.GetAuditTrailExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:     createTicketUC,
		getTicketUC:        getTicketUC,
		listTicketsUC:      listTicketsUC,
		listAdminTicketsUC: listAdminTicketsUC,
		updateTicketUC:     updateTicketUC,
		updateStatusUC:     updateStatusUC,
		assignTicketUC:     assignTicketUC,
		closeTicketUC:      closeTicketUC,
		reopenTicketUC:     reopenTicketUC,
		rateSatisfactionUC: rateSatisfactionUC,
		getStatsUC:         getStatsUC,
		listCategoriesUC:   listCategoriesUC,
		listAdminsUC:       listAdminsUC,
		emailCopyUC:        emailCopyUC,
		getAuditTrailUC:    getAuditTrailUC,
		logger:             logger.NewLogger(),
	}
}

func isAdminRequest(c *gin.Context) bool {
	return authorization.ParseUserRole(utils.AuthUserRole(c)).IsSuperAdmin()
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(utils.AuthUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID: ticketID,
		ViewerID: utils.AuthUserID(c),
		IsAdmin:  isAdminRequest(c),
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(utils.AuthUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListAdminTickets handles GET /admin/tickets
func (h *TicketHandler) ListAdminTickets(c *gin.Context) {
	req, err := parseListAdminTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listAdminTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, utils.AuthUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// UpdateStatus handles PATCH /admin/tickets/:id/status
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateStatusCommand{
		TicketID:  ticketID,
		AdminID:   utils.AuthUserID(c),
		NewStatus: req.Status,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// AssignTicket handles POST /admin/tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
		AssignedBy: utils.AuthUserID(c),
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned", result)
}

// CloseTicket handles POST /admin/tickets/:id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CloseTicketCommand{
		TicketID:       ticketID,
		ClosedBy:       utils.AuthUserID(c),
		ResolutionNote: req.ResolutionNote,
	}

	result, err := h.closeTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed", result)
}

// ReopenTicket handles POST /tickets/:id/reopen
func (h *TicketHandler) ReopenTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReopenTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ReopenTicketCommand{
		TicketID:   ticketID,
		ReopenedBy: utils.AuthUserID(c),
		IsAdmin:    isAdminRequest(c),
		Reason:     req.Reason,
	}

	result, err := h.reopenTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket reopened", result)
}

// RateSatisfaction handles POST /tickets/:id/rating
func (h *TicketHandler) RateSatisfaction(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RateSatisfactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RateSatisfactionCommand{
		TicketID: ticketID,
		OwnerID:  utils.AuthUserID(c),
		Rating:   req.Rating,
		Note:     req.Note,
	}

	result, err := h.rateSatisfactionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Satisfaction rating recorded", result)
}

// GetStats handles GET /tickets/stats and GET /admin/tickets/stats. The
// member route scopes counts to the caller; the admin route is platform
// wide plus the caller's own queue.
func (h *TicketHandler) GetStats(c *gin.Context) {
	query := usecases.GetTicketStatsQuery{}
	if isAdminRequest(c) {
		query.AssigneeID = utils.AuthUserID(c)
	} else {
		query.OwnerID = utils.AuthUserID(c)
	}

	result, err := h.getStatsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCategories handles GET /tickets/categories
func (h *TicketHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAvailableAdmins handles GET /admin/tickets/admins
func (h *TicketHandler) ListAvailableAdmins(c *gin.Context) {
	result, err := h.listAdminsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// EmailCopy handles POST /tickets/:id/email-copy
func (h *TicketHandler) EmailCopy(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EmailCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.EmailTicketCopyCommand{
		TicketID:       ticketID,
		RequesterID:    utils.AuthUserID(c),
		IsAdmin:        isAdminRequest(c),
		RecipientEmail: req.RecipientEmail,
	}

	if err := h.emailCopyUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket copy sent", nil)
}

// GetAuditTrail handles GET /admin/tickets/:id/audit
func (h *TicketHandler) GetAuditTrail(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	query := usecases.GetAuditTrailQuery{
		TicketID: ticketID,
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	result, err := h.getAuditTrailUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
