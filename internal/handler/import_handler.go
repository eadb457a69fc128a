package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boonewh/pathsix-crm/internal/domain"
	"github.com/boonewh/pathsix-crm/internal/logger"
	"github.com/boonewh/pathsix-crm/internal/middleware"
	"github.com/boonewh/pathsix-crm/internal/repository"
	"github.com/boonewh/pathsix-crm/internal/service"
	"github.com/boonewh/pathsix-crm/internal/tabular"
)

// ImportHandler handles tabular lead import HTTP requests.
type ImportHandler struct {
	importService service.ImportServiceInterface
	userRepo      repository.UserRepository
	historyLimit  int
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportServiceInterface, userRepo repository.UserRepository, historyLimit int) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		userRepo:      userRepo,
		historyLimit:  historyLimit,
	}
}

// readUpload pulls the uploaded file out of the multipart form.
func readUpload(c *gin.Context) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile(FileFormField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return nil, "", false
	}
	defer file.Close()

	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return nil, "", false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return nil, "", false
	}
	return data, header.Filename, true
}

// Preview handles POST /api/import/leads/preview
func (h *ImportHandler) Preview(c *gin.Context) {
	data, filename, ok := readUpload(c)
	if !ok {
		return
	}

	preview, err := h.importService.Preview(data, filename)
	if err != nil {
		var decodeErr *tabular.DecodeError
		if errors.As(err, &decodeErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": decodeErr.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error processing file: %v", err)})
		return
	}

	c.JSON(http.StatusOK, preview)
}

// Run handles POST /api/import/leads/generic
func (h *ImportHandler) Run(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	data, filename, ok := readUpload(c)
	if !ok {
		return
	}

	assignedUserEmail := c.PostForm(AssignedUserFormField)
	if assignedUserEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No assigned user specified"})
		return
	}

	mappingsStr := c.PostForm(MappingsFormField)
	if mappingsStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No column mappings provided"})
		return
	}

	var mappings []domain.ColumnMapping
	if err := json.Unmarshal([]byte(mappingsStr), &mappings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column mappings format"})
		return
	}

	assignee, err := h.userRepo.FindActiveByEmail(c.Request.Context(), identity.TenantID, assignedUserEmail)
	if err != nil {
		logger.Error("resolve import assignee",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		return
	}
	if assignee == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("User %s not found or inactive", assignedUserEmail)})
		return
	}

	target := service.ImportTarget{
		TenantID:   identity.TenantID,
		CreatedBy:  identity.UserID,
		AssignedTo: assignee.ID,
	}

	report, err := h.importService.Run(c.Request.Context(), data, filename, mappings, target)
	if err != nil {
		var decodeErr *tabular.DecodeError
		var precondErr *service.PreconditionError
		switch {
		case errors.As(err, &decodeErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": decodeErr.Error()})
		case errors.As(err, &precondErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": precondErr.Error()})
		default:
			logger.Error("import batch failed",
				slog.String("request_id", middleware.GetRequestID(c)),
				slog.String("tenant_id", identity.TenantID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Import failed: %v", err)})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// FieldDefinitions handles GET /api/import/leads/field-definitions
func (h *ImportHandler) FieldDefinitions(c *gin.Context) {
	c.JSON(http.StatusOK, h.importService.FieldDefinitions())
}

// Template handles GET /api/import/leads/generic-template
func (h *ImportHandler) Template(c *gin.Context) {
	content, filename := h.importService.Template()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", content)
}

// History handles GET /api/import/leads/history
func (h *ImportHandler) History(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	runs, err := h.importService.RecentRuns(c.Request.Context(), identity.TenantID, h.historyLimit)
	if err != nil {
		logger.Error("list import history",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("tenant_id", identity.TenantID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve import history"})
		return
	}

	c.JSON(http.StatusOK, runs)
}
