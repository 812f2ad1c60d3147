// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fishmate/backend/internal/application/usecase/weather"
	domainerror "github.com/fishmate/backend/internal/domain/error"
	"github.com/fishmate/backend/internal/integration/entrypoint/dto"
)

// WeatherController handles weather and marine forecast endpoints.
type WeatherController struct {
	getForecastUseCase *weather.GetForecastUseCase
}

// NewWeatherController creates a new weather controller instance.
func NewWeatherController(getForecastUseCase *weather.GetForecastUseCase) *WeatherController {
	return &WeatherController{
		getForecastUseCase: getForecastUseCase,
	}
}

// GetForecast handles GET /weather/forecast requests.
func (c *WeatherController) GetForecast(ctx *gin.Context) {
	c.serve(ctx, weather.KindForecast)
}

// GetMarine handles GET /weather/marine requests.
func (c *WeatherController) GetMarine(ctx *gin.Context) {
	c.serve(ctx, weather.KindMarine)
}

func (c *WeatherController) serve(ctx *gin.Context, kind weather.ForecastKind) {
	latitude, err := strconv.ParseFloat(ctx.Query("latitude"), 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "latitude query parameter is required and must be a number",
			Code:  string(domainerror.ErrCodeInvalidCoordinatesQuery),
		})
		return
	}
	longitude, err := strconv.ParseFloat(ctx.Query("longitude"), 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "longitude query parameter is required and must be a number",
			Code:  string(domainerror.ErrCodeInvalidCoordinatesQuery),
		})
		return
	}

	output, err := c.getForecastUseCase.Execute(ctx.Request.Context(), weather.GetForecastInput{
		Kind:      kind,
		Latitude:  latitude,
		Longitude: longitude,
	})
	if err != nil {
		c.handleWeatherError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WeatherResponse{
		Source: output.Source,
		Data:   output.Payload,
	})
}

// handleWeatherError handles weather errors and returns appropriate HTTP responses.
func (c *WeatherController) handleWeatherError(ctx *gin.Context, err error) {
	var wthErr *domainerror.WeatherError
	if errors.As(err, &wthErr) {
		statusCode := c.getStatusCodeForWeatherError(wthErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: wthErr.Message,
			Code:  string(wthErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForWeatherError maps weather error codes to HTTP status codes.
func (c *WeatherController) getStatusCodeForWeatherError(code domainerror.WeatherErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCoordinatesQuery:
		return http.StatusBadRequest
	case domainerror.ErrCodeWeatherUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
