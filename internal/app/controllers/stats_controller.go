package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/services"
	"github.com/Aman-Kr09/OrganicClasses/internal/middleware"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
)

// StatsController serves the admin dashboard figures
type StatsController struct {
	statsService services.StatsService
	logger       zerolog.Logger
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService, logger zerolog.Logger) *StatsController {
	return &StatsController{
		statsService: statsService,
		logger:       logger,
	}
}

// GetDashboard returns the dashboard statistics
// @Summary Dashboard statistics
// @Description Overview counters, inquiry breakdowns and trends, course capacity and derived ratios
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats [get]
func (c *StatsController) GetDashboard(ctx *gin.Context) {
	stats, err := c.statsService.GetDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}

// GetInquiryTrend returns daily inquiry counts
// @Summary Inquiry trend
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param period query int false "Number of days, 1 to 365" default(30)
// @Success 200 {object} dto.APIResponse{data=dto.InquiryTrend}
// @Failure 400 {object} dto.ErrorResponse "Invalid period"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /stats/inquiries [get]
func (c *StatsController) GetInquiryTrend(ctx *gin.Context) {
	days := 0
	if period := ctx.Query("period"); period != "" {
		parsed, err := strconv.Atoi(period)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("period must be a whole number of days"))
			return
		}
		days = parsed
	}

	trend, err := c.statsService.GetInquiryTrend(ctx.Request.Context(), days)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(trend, ""))
}

// GetCourseInsights returns course utilisation and popularity
// @Summary Course statistics
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CourseInsights}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /stats/courses [get]
func (c *StatsController) GetCourseInsights(ctx *gin.Context) {
	insights, err := c.statsService.GetCourseInsights(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build course statistics")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(insights, ""))
}
