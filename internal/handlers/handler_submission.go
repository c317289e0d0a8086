package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipquest/clipquest_backend/internal/apperrors"
	portssvc "github.com/clipquest/clipquest_backend/internal/core/ports/services"
	"github.com/clipquest/clipquest_backend/internal/dto"
	"github.com/clipquest/clipquest_backend/internal/middleware"
)

// submissionHandler handles HTTP requests addressed to a single submission.
type submissionHandler struct {
	submissionService portssvc.SubmissionSvcFacade
}

// registerSubmissionRoutes registers routes related to submissions.
func registerSubmissionRoutes(rg *gin.RouterGroup, submissionService portssvc.SubmissionSvcFacade) {
	h := &submissionHandler{submissionService: submissionService}

	submissions := rg.Group("/submissions")
	{
		submissions.GET("/:submissionID", h.getSubmission)
		submissions.POST("/:submissionID/views", h.recordViews)
	}
}

// getSubmission godoc
// @Summary Get a submission
// @Description Returns a single submission with its tracked view count
// @Tags submissions
// @Produce  json
// @Param   submissionID path string true "Submission ID"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Submission not found"
// @Security BearerAuth
// @Router /submissions/{submissionID} [get]
func (h *submissionHandler) getSubmission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	submissionID := c.Param("submissionID")

	submission, err := h.submissionService.GetSubmissionByID(c.Request.Context(), submissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		} else {
			logger.Error("Failed to fetch submission", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submission"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(submission))
}

// recordViews godoc
// @Summary Record tracked views
// @Description Advances a submission's view counter and pays the earned reward from the challenge budget
// @Tags submissions
// @Accept  json
// @Produce  json
// @Param   submissionID path string true "Submission ID"
// @Param   views body dto.RecordViewsRequest true "View increment"
// @Success 200 {object} dto.RecordViewsResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Submission not found"
// @Security BearerAuth
// @Router /submissions/{submissionID}/views [post]
func (h *submissionHandler) recordViews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	submissionID := c.Param("submissionID")

	var req dto.RecordViewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordViews", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.submissionService.RecordViews(c.Request.Context(), submissionID, req.Views)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		} else {
			logger.Error("Failed to record views", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record views"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RecordViewsResponse{
		SubmissionID:  submissionID,
		AppliedAmount: result.AppliedAmount,
		BudgetUsed:    result.BudgetUsed,
		PayoutBalance: result.PayoutBalance,
	})
}
