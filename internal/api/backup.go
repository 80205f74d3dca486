package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/McFlayr/meal-planner/internal/service"
)

// maxBackupSize bounds uploaded backup documents.
const maxBackupSize = 10 << 20

type BackupHandler struct {
	backup *service.BackupService
}

func NewBackupHandler(backup *service.BackupService) *BackupHandler {
	return &BackupHandler{backup: backup}
}

func (h *BackupHandler) RegisterRoutes(router *gin.RouterGroup) {
	backup := router.Group("/backup")
	{
		backup.GET("/export", h.Export)
		backup.POST("/import", h.Import)
	}
}

func (h *BackupHandler) Export(c *gin.Context) {
	data, filename, err := h.backup.Export(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}

// Import accepts the backup document as the request body; the merge mode
// comes from the "mode" query parameter.
func (h *BackupHandler) Import(c *gin.Context) {
	mode := service.MergeMode(c.DefaultQuery("mode", string(service.MergeReplace)))

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read backup body"})
		return
	}

	if err := h.backup.Import(raw, mode); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Backup imported successfully",
		"mode":    string(mode),
	})
}
