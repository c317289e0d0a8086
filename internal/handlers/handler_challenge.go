package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clipquest/clipquest_backend/internal/apperrors"
	portssvc "github.com/clipquest/clipquest_backend/internal/core/ports/services"
	"github.com/clipquest/clipquest_backend/internal/dto"
	"github.com/clipquest/clipquest_backend/internal/middleware"
)

// challengeHandler handles HTTP requests related to challenges.
type challengeHandler struct {
	challengeService  portssvc.ChallengeSvcFacade
	submissionService portssvc.SubmissionSvcFacade
}

// registerChallengeRoutes registers routes related to challenges.
func registerChallengeRoutes(rg *gin.RouterGroup, challengeService portssvc.ChallengeSvcFacade, submissionService portssvc.SubmissionSvcFacade) {
	h := &challengeHandler{
		challengeService:  challengeService,
		submissionService: submissionService,
	}

	challenges := rg.Group("/challenges")
	{
		challenges.POST("", h.createChallenge)
		challenges.GET("", h.listChallenges)
		challenges.GET("/:challengeID", h.getChallenge)
		challenges.POST("/:challengeID/submissions", h.createSubmission)
		challenges.GET("/:challengeID/submissions", h.listSubmissions)
	}
}

// createChallenge godoc
// @Summary Create a challenge
// @Description Creates a challenge with a fixed budget; creator accounts only
// @Tags challenges
// @Accept  json
// @Produce  json
// @Param   challenge body dto.CreateChallengeRequest true "Challenge details"
// @Success 201 {object} dto.ChallengeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Only creators may create challenges"
// @Security BearerAuth
// @Router /challenges [post]
func (h *challengeHandler) createChallenge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateChallenge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	challenge, err := h.challengeService.CreateChallenge(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		} else {
			logger.Error("Failed to create challenge", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create challenge"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToChallengeResponse(challenge, time.Now()))
}

// listChallenges godoc
// @Summary List challenges
// @Description Returns challenges newest first
// @Tags challenges
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListChallengesResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /challenges [get]
func (h *challengeHandler) listChallenges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.Query("limit"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	challenges, newToken, err := h.challengeService.ListChallenges(c.Request.Context(), limit, nextToken)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == 400 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
		} else {
			logger.Error("Failed to list challenges", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list challenges"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListChallengesResponse{
		Challenges: dto.ToChallengeResponses(challenges, time.Now()),
		NextToken:  newToken,
	})
}

// getChallenge godoc
// @Summary Get a challenge
// @Description Returns a single challenge with its derived status
// @Tags challenges
// @Produce  json
// @Param   challengeID path string true "Challenge ID"
// @Success 200 {object} dto.ChallengeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Challenge not found"
// @Security BearerAuth
// @Router /challenges/{challengeID} [get]
func (h *challengeHandler) getChallenge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	challengeID := c.Param("challengeID")

	challenge, err := h.challengeService.GetChallengeByID(c.Request.Context(), challengeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		} else {
			logger.Error("Failed to fetch challenge", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenge"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChallengeResponse(challenge, time.Now()))
}

// createSubmission godoc
// @Summary Submit a clip to a challenge
// @Description Records a clip submission; clipper accounts only
// @Tags submissions
// @Accept  json
// @Produce  json
// @Param   challengeID path string true "Challenge ID"
// @Param   submission body dto.CreateSubmissionRequest true "Submission details"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unsupported platform"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Only clippers may submit"
// @Failure 404 {object} ErrorResponse "Challenge not found"
// @Failure 409 {object} ErrorResponse "Challenge is no longer active"
// @Security BearerAuth
// @Router /challenges/{challengeID}/submissions [post]
func (h *challengeHandler) createSubmission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	challengeID := c.Param("challengeID")

	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSubmission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	submission, err := h.submissionService.SubmitToChallenge(c.Request.Context(), userID, challengeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrBudgetExhausted) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		} else {
			logger.Error("Failed to create submission", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubmissionResponse(submission))
}

// listSubmissions godoc
// @Summary List a challenge's submissions
// @Description Returns submissions for a challenge, newest first
// @Tags submissions
// @Produce  json
// @Param   challengeID path string true "Challenge ID"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListSubmissionsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /challenges/{challengeID}/submissions [get]
func (h *challengeHandler) listSubmissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	challengeID := c.Param("challengeID")

	limit, _ := strconv.Atoi(c.Query("limit"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	submissions, newToken, err := h.submissionService.ListSubmissionsByChallenge(c.Request.Context(), challengeID, limit, nextToken)
	if err != nil {
		logger.Error("Failed to list submissions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list submissions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListSubmissionsResponse{
		Submissions: dto.ToSubmissionResponses(submissions),
		NextToken:   newToken,
	})
}
