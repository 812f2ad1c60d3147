// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/application/usecase/analytics"
	domainerror "github.com/fishmate/backend/internal/domain/error"
	"github.com/fishmate/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles catch analytics endpoints.
type AnalyticsController struct {
	getSummaryUseCase             *analytics.GetSummaryUseCase
	getWeeklyHistogramUseCase     *analytics.GetWeeklyHistogramUseCase
	getSpeciesDistributionUseCase *analytics.GetSpeciesDistributionUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	getSummaryUseCase *analytics.GetSummaryUseCase,
	getWeeklyHistogramUseCase *analytics.GetWeeklyHistogramUseCase,
	getSpeciesDistributionUseCase *analytics.GetSpeciesDistributionUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		getSummaryUseCase:             getSummaryUseCase,
		getWeeklyHistogramUseCase:     getWeeklyHistogramUseCase,
		getSpeciesDistributionUseCase: getSpeciesDistributionUseCase,
	}
}

// GetSummary handles GET /analytics/summary/:userId requests.
func (c *AnalyticsController) GetSummary(ctx *gin.Context) {
	userID, ok := c.parseUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), analytics.GetSummaryInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetWeeklyHistogram handles GET /analytics/weekly/:userId requests.
func (c *AnalyticsController) GetWeeklyHistogram(ctx *gin.Context) {
	userID, ok := c.parseUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getWeeklyHistogramUseCase.Execute(ctx.Request.Context(), analytics.GetWeeklyHistogramInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklyHistogramResponse(output))
}

// GetSpeciesDistribution handles GET /analytics/species/:userId requests.
func (c *AnalyticsController) GetSpeciesDistribution(ctx *gin.Context) {
	userID, ok := c.parseUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getSpeciesDistributionUseCase.Execute(ctx.Request.Context(), analytics.GetSpeciesDistributionInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpeciesDistributionResponse(output))
}

// parseUserID validates the :userId path parameter. A malformed id is a
// client error and never reaches the aggregation layer.
func (c *AnalyticsController) parseUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil || userID == uuid.Nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user id",
			Code:  string(domainerror.ErrCodeInvalidUserID),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// handleAnalyticsError handles analytics errors and returns appropriate HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var anlErr *domainerror.AnalyticsError
	if errors.As(err, &anlErr) {
		statusCode := c.getStatusCodeForAnalyticsError(anlErr.Code)
		if statusCode == http.StatusInternalServerError {
			slog.Error("Analytics aggregation failed", "code", anlErr.Code, "error", anlErr.Err)
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: anlErr.Message,
			Code:  string(anlErr.Code),
		})
		return
	}

	// Generic server error
	slog.Error("Unexpected analytics error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAnalyticsError maps analytics error codes to HTTP status codes.
func (c *AnalyticsController) getStatusCodeForAnalyticsError(code domainerror.AnalyticsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidUserID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
