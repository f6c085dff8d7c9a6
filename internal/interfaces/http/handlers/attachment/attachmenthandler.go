package attachment

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alumnet/internal/application/attachment/usecases"
	"alumnet/internal/shared/authorization"
	"alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
	"alumnet/internal/shared/utils"
)

// maxUploadBytes bounds how much of the request body the handler will
// read before handing off. The use case enforces the real size limit.
const maxUploadBytes = 11 << 20

type AttachmentHandler struct {
	uploadUC  usecases.UploadAttachmentExecutor
	listUC    usecases.ListAttachmentsExecutor
	getUC     usecases.GetAttachmentExecutor
	uploadDir string
	logger    logger.Interface
}

func NewAttachmentHandler(
	uploadUC usecases.UploadAttachmentExecutor,
	listUC usecases.ListAttachmentsExecutor,
	getUC usecases.GetAttachmentExecutor,
	uploadDir string,
) *AttachmentHandler {
	return &AttachmentHandler{
		uploadUC:  uploadUC,
		listUC:    listUC,
		getUC:     getUC,
		uploadDir: uploadDir,
		logger:    logger.NewLogger(),
	}
}

func isAdminRequest(c *gin.Context) bool {
	return authorization.ParseUserRole(utils.AuthUserRole(c)).IsSuperAdmin()
}

// Upload handles POST /tickets/:id/attachments. Multipart form with a
// "file" part and an optional "message_id" field.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required"))
		return
	}

	var messageID *uint
	if raw := c.PostForm("message_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid message_id"))
			return
		}
		mid := uint(id)
		messageID = &mid
	}

	file, err := header.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	originalName := filepath.Base(header.Filename)
	fileName := fmt.Sprintf("%s_%s", uuid.NewString()[:8], sanitizeFileName(originalName))
	storagePath := filepath.Join("tickets", strconv.FormatUint(uint64(ticketID), 10), fileName)

	if err := h.writeFile(storagePath, content); err != nil {
		h.logger.Errorw("failed to store uploaded file", "storage_path", storagePath, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UploadAttachmentCommand{
		TicketID:     ticketID,
		MessageID:    messageID,
		UploaderID:   utils.AuthUserID(c),
		IsAdmin:      isAdminRequest(c),
		FileName:     fileName,
		OriginalName: originalName,
		MimeType:     header.Header.Get("Content-Type"),
		StoragePath:  storagePath,
		Content:      content,
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		// The record did not commit, so drop the orphaned file.
		if rmErr := os.Remove(filepath.Join(h.uploadDir, storagePath)); rmErr != nil {
			h.logger.Warnw("failed to remove orphaned upload", "storage_path", storagePath, "error", rmErr)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment uploaded successfully")
}

// List handles GET /tickets/:id/attachments
func (h *AttachmentHandler) List(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListAttachmentsQuery{
		TicketID: ticketID,
		ViewerID: utils.AuthUserID(c),
		IsAdmin:  isAdminRequest(c),
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Download handles GET /tickets/:id/attachments/:attachmentID
func (h *AttachmentHandler) Download(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachmentID, err := utils.ParseIDParam(c, "attachmentID", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetAttachmentQuery{
		TicketID:     ticketID,
		AttachmentID: attachmentID,
		ViewerID:     utils.AuthUserID(c),
		IsAdmin:      isAdminRequest(c),
	}

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.FileAttachment(filepath.Join(h.uploadDir, result.StoragePath), result.Attachment.OriginalName)
}

func (h *AttachmentHandler) writeFile(storagePath string, content []byte) error {
	fullPath := filepath.Join(h.uploadDir, storagePath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write uploaded file: %w", err)
	}
	return nil
}

func sanitizeFileName(name string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_", " ", "_")
	return replacer.Replace(name)
}
