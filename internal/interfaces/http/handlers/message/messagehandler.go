package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumnet/internal/application/message/usecases"
	"alumnet/internal/shared/authorization"
	"alumnet/internal/shared/logger"
	"alumnet/internal/shared/utils"
)

type MessageHandler struct {
	addMessageUC     usecases.AddMessageExecutor
	editMessageUC    usecases.EditMessageExecutor
	getEditHistoryUC usecases.GetEditHistoryExecutor
	toggleReactionUC usecases.ToggleReactionExecutor
	listReactionsUC  usecases.ListReactionsExecutor
	saveDraftUC      usecases.SaveDraftExecutor
	getDraftUC       usecases.GetDraftExecutor
	deleteDraftUC    usecases.DeleteDraftExecutor
	logger           logger.Interface
}

func NewMessageHandler(
	addMessageUC usecases.AddMessageExecutor,
	editMessageUC usecases.EditMessageExecutor,
	getEditHistoryUC usecases.GetEditHistoryExecutor,
	toggleReactionUC usecases.ToggleReactionExecutor,
	listReactionsUC usecases.ListReactionsExecutor,
	saveDraftUC usecases.SaveDraftExecutor,
	getDraftUC usecases.GetDraftExecutor,
	deleteDraftUC usecases.DeleteDraftExecutor,
) *MessageHandler {
	return &MessageHandler{
		addMessageUC:     addMessageUC,
		editMessageUC:    editMessageUC,
		getEditHistoryUC: getEditHistoryUC,
		toggleReactionUC: toggleReactionUC,
		listReactionsUC:  listReactionsUC,
		saveDraftUC:      saveDraftUC,
		getDraftUC:       getDraftUC,
		deleteDraftUC:    deleteDraftUC,
		logger:           logger.NewLogger(),
	}
}

func isAdminRequest(c *gin.Context) bool {
	return authorization.ParseUserRole(utils.AuthUserRole(c)).IsSuperAdmin()
}

// AddMessage handles POST /tickets/:id/messages
func (h *MessageHandler) AddMessage(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add message", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addMessageUC.Execute(c.Request.Context(), req.ToCommand(ticketID, utils.AuthUserID(c), isAdminRequest(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message added successfully")
}

// EditMessage handles PATCH /messages/:id
func (h *MessageHandler) EditMessage(c *gin.Context) {
	messageID, err := utils.ParseIDParam(c, "id", "message")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.EditMessageCommand{
		MessageID: messageID,
		EditorID:  utils.AuthUserID(c),
		IsAdmin:   isAdminRequest(c),
		NewBody:   req.Body,
		Reason:    req.Reason,
	}

	result, err := h.editMessageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Message edited", result)
}

// GetEditHistory handles GET /messages/:id/history
func (h *MessageHandler) GetEditHistory(c *gin.Context) {
	messageID, err := utils.ParseIDParam(c, "id", "message")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetEditHistoryQuery{
		MessageID: messageID,
		ViewerID:  utils.AuthUserID(c),
		IsAdmin:   isAdminRequest(c),
	}

	result, err := h.getEditHistoryUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ToggleReaction handles POST /messages/:id/reactions
func (h *MessageHandler) ToggleReaction(c *gin.Context) {
	messageID, err := utils.ParseIDParam(c, "id", "message")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ToggleReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ToggleReactionCommand{
		MessageID:    messageID,
		UserID:       utils.AuthUserID(c),
		IsAdmin:      isAdminRequest(c),
		ReactionType: req.ReactionType,
	}

	result, err := h.toggleReactionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListReactions handles GET /messages/:id/reactions
func (h *MessageHandler) ListReactions(c *gin.Context) {
	messageID, err := utils.ParseIDParam(c, "id", "message")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListReactionsQuery{
		MessageID: messageID,
		ViewerID:  utils.AuthUserID(c),
		IsAdmin:   isAdminRequest(c),
	}

	result, err := h.listReactionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SaveDraft handles PUT /tickets/:id/draft
func (h *MessageHandler) SaveDraft(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SaveDraftCommand{
		TicketID:    ticketID,
		UserID:      utils.AuthUserID(c),
		IsAdmin:     isAdminRequest(c),
		Body:        req.Body,
		ContentType: req.ContentType,
	}

	result, err := h.saveDraftUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft saved", result)
}

// GetDraft handles GET /tickets/:id/draft
func (h *MessageHandler) GetDraft(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetDraftQuery{
		TicketID: ticketID,
		UserID:   utils.AuthUserID(c),
	}

	result, err := h.getDraftUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteDraft handles DELETE /tickets/:id/draft
func (h *MessageHandler) DeleteDraft(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteDraftCommand{
		TicketID: ticketID,
		UserID:   utils.AuthUserID(c),
	}

	if err := h.deleteDraftUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
