package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joshghal/verdex-webapp-sub002/internal/assessment"
	"github.com/joshghal/verdex-webapp-sub002/internal/auth"
	apperrors "github.com/joshghal/verdex-webapp-sub002/internal/errors"
	"github.com/joshghal/verdex-webapp-sub002/internal/repository"
	"github.com/joshghal/verdex-webapp-sub002/internal/services"
)

// AssessmentHandler handles assessment operations
type AssessmentHandler struct {
	assessmentService services.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler with service injection
func NewAssessmentHandler(assessmentService services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// currentUserID extracts the authenticated user's id from the request context
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(auth.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}

	return userID, true
}

// respondError maps application errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// RunAssessment executes a full assessment for the submitted project
func (h *AssessmentHandler) RunAssessment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input assessment.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.assessmentService.Run(userID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"assessment": record,
		"timestamp":  time.Now(),
	})
}

// GetAssessment returns a single stored assessment
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assessment ID"})
		return
	}

	record, err := h.assessmentService.GetByID(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessment": record,
		"timestamp":  time.Now(),
	})
}

// ListAssessments returns summaries of the user's assessments
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filters := repository.AssessmentFilters{
		EligibilityStatus: c.Query("status"),
		Country:           c.Query("country"),
		Sector:            c.Query("sector"),
	}
	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			filters.Limit = n
		}
	}
	if offset := c.Query("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil && n > 0 {
			filters.Offset = n
		}
	}

	summaries, err := h.assessmentService.List(userID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessments": summaries,
		"count":       len(summaries),
		"timestamp":   time.Now(),
	})
}

// DeleteAssessment removes a stored assessment
func (h *AssessmentHandler) DeleteAssessment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assessment ID"})
		return
	}

	if err := h.assessmentService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assessment deleted successfully"})
}
