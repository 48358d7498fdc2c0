package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lequan2902/codeprep/internal/service"
	"github.com/rs/zerolog/log"
)

type StatsController struct {
	statsService    service.StatsService
	progressService service.ProgressService
}

func NewStatsController(statsService service.StatsService, progressService service.ProgressService) *StatsController {
	return &StatsController{
		statsService:    statsService,
		progressService: progressService,
	}
}

// GetUserStats godoc
// @Summary Dashboard summary for a user
// @Description Solved count, total practice time, mean session accuracy, current streak and all progress records. Recomputed on every call.
// @Tags Stats
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/stats [get]
func (c *StatsController) GetUserStats(ctx *gin.Context) {
	userID := ctx.Param("user_id")

	stats, err := c.statsService.Compute(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetUserStats: service error")
		respondError(ctx, err, "Failed to compute stats")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetUserProgress godoc
// @Summary List a user's per-topic progress records
// @Tags Stats
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.ProgressResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/progress [get]
func (c *StatsController) GetUserProgress(ctx *gin.Context) {
	userID := ctx.Param("user_id")

	progress, err := c.progressService.ListByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetUserProgress: service error")
		respondError(ctx, err, "Failed to list progress")
		return
	}
	ctx.JSON(http.StatusOK, progress)
}
