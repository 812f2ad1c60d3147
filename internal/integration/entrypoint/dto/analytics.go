// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/fishmate/backend/internal/application/usecase/analytics"
)

// SummaryResponse represents the lifetime catch summary in API responses.
// Values are JSON numbers, with the average rounded to two decimal places.
type SummaryResponse struct {
	TotalWeight       float64 `json:"totalWeight"`
	TotalValue        float64 `json:"totalValue"`
	AveragePricePerKg float64 `json:"averagePricePerKg"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *analytics.GetSummaryOutput) SummaryResponse {
	totalWeight, _ := output.TotalWeight.Float64()
	totalValue, _ := output.TotalValue.Float64()
	average, _ := output.AveragePricePerKg.Round(2).Float64()

	return SummaryResponse{
		TotalWeight:       totalWeight,
		TotalValue:        totalValue,
		AveragePricePerKg: average,
	}
}

// WeeklyHistogramEntryResponse represents one day of the weekly histogram.
type WeeklyHistogramEntryResponse struct {
	Day      string `json:"day"`
	Quantity int    `json:"quantity"`
}

// ToWeeklyHistogramResponse converts a GetWeeklyHistogramOutput to its DTO:
// always seven entries, Monday first.
func ToWeeklyHistogramResponse(output *analytics.GetWeeklyHistogramOutput) []WeeklyHistogramEntryResponse {
	entries := make([]WeeklyHistogramEntryResponse, len(output.Days))
	for i, d := range output.Days {
		entries[i] = WeeklyHistogramEntryResponse{
			Day:      d.Day,
			Quantity: d.Quantity,
		}
	}
	return entries
}

// SpeciesEntryResponse represents one species in the distribution.
type SpeciesEntryResponse struct {
	Species  string `json:"species"`
	Quantity int    `json:"quantity"`
}

// ToSpeciesDistributionResponse converts a GetSpeciesDistributionOutput to
// its DTO. An empty distribution marshals as an empty array, not null.
func ToSpeciesDistributionResponse(output *analytics.GetSpeciesDistributionOutput) []SpeciesEntryResponse {
	entries := make([]SpeciesEntryResponse, 0, len(output.Species))
	for _, s := range output.Species {
		entries = append(entries, SpeciesEntryResponse{
			Species:  s.Species,
			Quantity: s.Quantity,
		})
	}
	return entries
}
