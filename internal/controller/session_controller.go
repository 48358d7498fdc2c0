package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lequan2902/codeprep/internal/apperr"
	"github.com/lequan2902/codeprep/internal/dto"
	"github.com/lequan2902/codeprep/internal/service"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// respondError maps the service error taxonomy onto HTTP status codes.
func respondError(ctx *gin.Context, err error, message string) {
	switch {
	case apperr.IsValidation(err):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
	case apperr.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
	}
}

// CreateSession godoc
// @Summary Start a new practice or mock-interview session
// @Description Creates an active session for the given user, topic and difficulty. Session type defaults to "practice".
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body dto.CreateSessionRequest true "Session parameters"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateSession: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	session, err := c.sessionService.Create(req)
	if err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("CreateSession: service error")
		respondError(ctx, err, "Failed to create session")
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

// UpdateSession godoc
// @Summary Merge fields into an existing session
// @Description Partially updates a session's mutable fields (status, end time, results, total time, score, accuracy).
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param update body dto.UpdateSessionRequest true "Fields to merge"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{session_id} [patch]
func (c *SessionController) UpdateSession(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	var req dto.UpdateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("UpdateSession: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	session, err := c.sessionService.Update(sessionID, req)
	if err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("UpdateSession: service error")
		respondError(ctx, err, "Failed to update session")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// EndSession godoc
// @Summary Finalize a session with its graded results
// @Description Marks the session completed, computes score and accuracy from the results, and updates the user's topic progress.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param results body dto.EndSessionRequest true "Graded attempt results"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or session already finalized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{session_id}/end [post]
func (c *SessionController) EndSession(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	var req dto.EndSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("EndSession: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	session, err := c.sessionService.End(sessionID, req)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("EndSession: service error")
		respondError(ctx, err, "Failed to end session")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// GetSession godoc
// @Summary Get a session with its results
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	session, err := c.sessionService.Get(sessionID)
	if err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("GetSession: service error")
		respondError(ctx, err, "Failed to fetch session")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// ListUserSessions godoc
// @Summary List a user's sessions
// @Description Returns session summaries for the user, most recent first. User identity comes from the auth layer upstream.
// @Tags Sessions
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.SessionSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/sessions [get]
func (c *SessionController) ListUserSessions(ctx *gin.Context) {
	userID := ctx.Param("user_id")

	sessions, err := c.sessionService.ListByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListUserSessions: service error")
		respondError(ctx, err, "Failed to list sessions")
		return
	}
	ctx.JSON(http.StatusOK, sessions)
}
