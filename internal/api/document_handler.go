package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joshghal/verdex-webapp-sub002/internal/extract"
	"github.com/joshghal/verdex-webapp-sub002/pkg/config"
)

// DocumentHandler handles document upload and text extraction
type DocumentHandler struct {
	cfg *config.Config
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(cfg *config.Config) *DocumentHandler {
	return &DocumentHandler{cfg: cfg}
}

// ExtractDocument accepts an uploaded transition plan document and returns
// the extracted text plus best-effort field guesses. The caller reviews the
// guesses before submitting them as part of an assessment; nothing here
// feeds the scorer directly.
func (h *DocumentHandler) ExtractDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document file is required"})
		return
	}

	if fileHeader.Size > h.cfg.MaxDocumentSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":          "Document exceeds maximum size",
			"max_size_bytes": h.cfg.MaxDocumentSize,
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := extract.FromUpload(fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to extract document text: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"extraction": result,
		"timestamp":  time.Now(),
	})
}
