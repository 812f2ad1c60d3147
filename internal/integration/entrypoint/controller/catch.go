// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fishmate/backend/internal/application/usecase/catchlog"
	domainerror "github.com/fishmate/backend/internal/domain/error"
	"github.com/fishmate/backend/internal/integration/entrypoint/dto"
)

// CatchController handles catch logging endpoints.
type CatchController struct {
	createUseCase  *catchlog.CreateCatchUseCase
	listUseCase    *catchlog.ListCatchesUseCase
	getUseCase     *catchlog.GetCatchUseCase
	correctUseCase *catchlog.CorrectCatchUseCase
	deleteUseCase  *catchlog.DeleteCatchUseCase
}

// NewCatchController creates a new catch controller instance.
func NewCatchController(
	createUseCase *catchlog.CreateCatchUseCase,
	listUseCase *catchlog.ListCatchesUseCase,
	getUseCase *catchlog.GetCatchUseCase,
	correctUseCase *catchlog.CorrectCatchUseCase,
	deleteUseCase *catchlog.DeleteCatchUseCase,
) *CatchController {
	return &CatchController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		correctUseCase: correctUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// Create handles POST /catches requests.
func (c *CatchController) Create(ctx *gin.Context) {
	// Parse request body
	var req dto.CreateCatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeSpeciesRequired),
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user id",
		})
		return
	}

	// Build input
	input := catchlog.CreateCatchInput{
		UserID:     userID,
		Species:    req.Species,
		Quantity:   req.Quantity,
		WeightKg:   decimal.NewFromFloat(req.WeightKg),
		TotalPrice: decimal.NewFromFloat(req.TotalPrice),
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCatchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCatchResponse(output.Catch))
}

// List handles GET /catches requests.
func (c *CatchController) List(ctx *gin.Context) {
	input := catchlog.ListCatchesInput{
		Species: ctx.Query("species"),
	}

	// Optional user filter
	if userIDStr := ctx.Query("user_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid user_id filter",
			})
			return
		}
		input.UserID = &userID
	}

	// Optional date range
	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &startDate
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &endDate
	}

	input.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	input.Limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCatchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCatchListResponse(output))
}

// Get handles GET /catches/:id requests.
func (c *CatchController) Get(ctx *gin.Context) {
	id, ok := c.parseCatchID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), catchlog.GetCatchInput{ID: id})
	if err != nil {
		c.handleCatchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCatchResponse(output.Catch))
}

// Correct handles PATCH /catches/:id requests.
func (c *CatchController) Correct(ctx *gin.Context) {
	id, ok := c.parseCatchID(ctx)
	if !ok {
		return
	}

	var req dto.CorrectCatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := catchlog.CorrectCatchInput{
		ID:        id,
		Species:   req.Species,
		Quantity:  req.Quantity,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if req.WeightKg != nil {
		weight := decimal.NewFromFloat(*req.WeightKg)
		input.WeightKg = &weight
	}
	if req.TotalPrice != nil {
		price := decimal.NewFromFloat(*req.TotalPrice)
		input.TotalPrice = &price
	}

	output, err := c.correctUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCatchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCatchResponse(output.Catch))
}

// Delete handles DELETE /catches/:id requests.
func (c *CatchController) Delete(ctx *gin.Context) {
	id, ok := c.parseCatchID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), catchlog.DeleteCatchInput{ID: id}); err != nil {
		c.handleCatchError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseCatchID validates the :id path parameter.
func (c *CatchController) parseCatchID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid catch id",
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleCatchError handles catch errors and returns appropriate HTTP responses.
func (c *CatchController) handleCatchError(ctx *gin.Context, err error) {
	var catchErr *domainerror.CatchError
	if errors.As(err, &catchErr) {
		statusCode := c.getStatusCodeForCatchError(catchErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catchErr.Message,
			Code:  string(catchErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCatchError maps catch error codes to HTTP status codes.
func (c *CatchController) getStatusCodeForCatchError(code domainerror.CatchErrorCode) int {
	switch code {
	case domainerror.ErrCodeCatchNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSpeciesRequired,
		domainerror.ErrCodeSpeciesTooLong,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeNegativeWeight,
		domainerror.ErrCodeNegativePrice,
		domainerror.ErrCodeInvalidCoordinates:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
