// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fishmate/backend/internal/application/usecase/catchlog"
)

// CreateCatchRequest represents the request body for logging a catch.
type CreateCatchRequest struct {
	UserID     string   `json:"user_id" binding:"required,uuid"`
	Species    string   `json:"species" binding:"required,min=1,max=100"`
	Quantity   int      `json:"quantity" binding:"required"`
	WeightKg   float64  `json:"weight_kg"`
	TotalPrice float64  `json:"total_price"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// CorrectCatchRequest represents the request body for an administrative
// catch correction.
type CorrectCatchRequest struct {
	Species    *string  `json:"species,omitempty" binding:"omitempty,min=1,max=100"`
	Quantity   *int     `json:"quantity,omitempty"`
	WeightKg   *float64 `json:"weight_kg,omitempty"`
	TotalPrice *float64 `json:"total_price,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// CatchResponse represents a single catch in API responses.
type CatchResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Species    string    `json:"species"`
	Quantity   int       `json:"quantity"`
	WeightKg   string    `json:"weight_kg"`
	TotalPrice string    `json:"total_price"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CatchPaginationResponse represents pagination information in API responses.
type CatchPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// CatchListResponse represents the response for listing catches.
type CatchListResponse struct {
	Catches    []CatchResponse         `json:"catches"`
	Pagination CatchPaginationResponse `json:"pagination"`
}

// ToCatchResponse converts a CatchOutput to a CatchResponse DTO.
func ToCatchResponse(c *catchlog.CatchOutput) CatchResponse {
	return CatchResponse{
		ID:         c.ID.String(),
		UserID:     c.UserID.String(),
		Species:    c.Species,
		Quantity:   c.Quantity,
		WeightKg:   c.WeightKg.String(),
		TotalPrice: c.TotalPrice.String(),
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToCatchListResponse converts a ListCatchesOutput to a CatchListResponse DTO.
func ToCatchListResponse(output *catchlog.ListCatchesOutput) CatchListResponse {
	catches := make([]CatchResponse, len(output.Catches))
	for i, c := range output.Catches {
		catches[i] = ToCatchResponse(c)
	}

	return CatchListResponse{
		Catches: catches,
		Pagination: CatchPaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
	}
}
