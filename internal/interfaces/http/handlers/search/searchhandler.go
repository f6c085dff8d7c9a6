package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumnet/internal/application/search/dto"
	"alumnet/internal/application/search/usecases"
	"alumnet/internal/shared/authorization"
	"alumnet/internal/shared/logger"
	"alumnet/internal/shared/utils"
)

type AdvancedSearchRequest struct {
	Status     string `json:"status,omitempty"`
	Priority   string `json:"priority,omitempty"`
	CategoryID uint   `json:"category_id,omitempty"`
	AssigneeID uint   `json:"assignee_id,omitempty"`
	Search     string `json:"search,omitempty" binding:"max=200"`
	DateFrom   string `json:"date_from,omitempty"`
	DateTo     string `json:"date_to,omitempty"`
}

func (r *AdvancedSearchRequest) ToConfig() dto.FilterConfigDTO {
	return dto.FilterConfigDTO{
		Status:     r.Status,
		Priority:   r.Priority,
		CategoryID: r.CategoryID,
		AssigneeID: r.AssigneeID,
		Search:     r.Search,
		DateFrom:   r.DateFrom,
		DateTo:     r.DateTo,
	}
}

type SavedFilterRequest struct {
	Name      string                `json:"name" binding:"required,max=100"`
	Config    AdvancedSearchRequest `json:"config" binding:"required"`
	IsDefault bool                  `json:"is_default"`
}

type SearchHandler struct {
	searchUC       usecases.AdvancedSearchExecutor
	createFilterUC usecases.CreateSavedFilterExecutor
	updateFilterUC usecases.UpdateSavedFilterExecutor
	deleteFilterUC usecases.DeleteSavedFilterExecutor
	listFiltersUC  usecases.ListSavedFiltersExecutor
	applyFilterUC  usecases.ApplySavedFilterExecutor
	logger         logger.Interface
}

func NewSearchHandler(
	searchUC usecases.AdvancedSearchExecutor,
	createFilterUC usecases.CreateSavedFilterExecutor,
	updateFilterUC usecases.UpdateSavedFilterExecutor,
	deleteFilterUC usecases.DeleteSavedFilterExecutor,
	listFiltersUC usecases.ListSavedFiltersExecutor,
	applyFilterUC usecases.ApplySavedFilterExecutor,
) *SearchHandler {
	return &SearchHandler{
		searchUC:       searchUC,
		createFilterUC: createFilterUC,
		updateFilterUC: updateFilterUC,
		deleteFilterUC: deleteFilterUC,
		listFiltersUC:  listFiltersUC,
		applyFilterUC:  applyFilterUC,
		logger:         logger.NewLogger(),
	}
}

func isAdminRequest(c *gin.Context) bool {
	return authorization.ParseUserRole(utils.AuthUserRole(c)).IsSuperAdmin()
}

// Search handles POST /tickets/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req AdvancedSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for ticket search", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	query := usecases.AdvancedSearchQuery{
		ViewerID: utils.AuthUserID(c),
		IsAdmin:  isAdminRequest(c),
		Config:   req.ToConfig(),
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	result, err := h.searchUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// CreateFilter handles POST /tickets/filters
func (h *SearchHandler) CreateFilter(c *gin.Context) {
	var req SavedFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateSavedFilterCommand{
		OwnerID:   utils.AuthUserID(c),
		Name:      req.Name,
		Config:    req.Config.ToConfig(),
		IsDefault: req.IsDefault,
	}

	result, err := h.createFilterUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Filter saved successfully")
}

// UpdateFilter handles PUT /tickets/filters/:id
func (h *SearchHandler) UpdateFilter(c *gin.Context) {
	filterID, err := utils.ParseIDParam(c, "id", "filter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SavedFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateSavedFilterCommand{
		FilterID:  filterID,
		OwnerID:   utils.AuthUserID(c),
		Name:      req.Name,
		Config:    req.Config.ToConfig(),
		IsDefault: req.IsDefault,
	}

	result, err := h.updateFilterUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Filter updated", result)
}

// DeleteFilter handles DELETE /tickets/filters/:id
func (h *SearchHandler) DeleteFilter(c *gin.Context) {
	filterID, err := utils.ParseIDParam(c, "id", "filter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteSavedFilterCommand{
		FilterID: filterID,
		OwnerID:  utils.AuthUserID(c),
	}

	if err := h.deleteFilterUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListFilters handles GET /tickets/filters
func (h *SearchHandler) ListFilters(c *gin.Context) {
	result, err := h.listFiltersUC.Execute(c.Request.Context(), usecases.ListSavedFiltersQuery{
		OwnerID: utils.AuthUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ApplyFilter handles GET /tickets/filters/:id/apply
func (h *SearchHandler) ApplyFilter(c *gin.Context) {
	filterID, err := utils.ParseIDParam(c, "id", "filter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	query := usecases.ApplySavedFilterQuery{
		FilterID: filterID,
		ViewerID: utils.AuthUserID(c),
		IsAdmin:  isAdminRequest(c),
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	result, err := h.applyFilterUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}
