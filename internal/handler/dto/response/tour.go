package response

import (
	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PriceBracketResponse struct {
	MinSize             int   `json:"minSize"`
	MaxSize             int   `json:"maxSize"`
	PricePerPersonCents int64 `json:"pricePerPersonCents"`
}

type TourResponse struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	DurationDays int                    `json:"durationDays"`
	Prices       []PriceBracketResponse `json:"prices"`
}

func FromTourView(view *queries.TourView) *TourResponse {
	prices := make([]PriceBracketResponse, len(view.Prices))
	for i, p := range view.Prices {
		prices[i] = PriceBracketResponse{
			MinSize:             p.MinSize,
			MaxSize:             p.MaxSize,
			PricePerPersonCents: p.PricePerPersonCents,
		}
	}
	return &TourResponse{
		ID:           view.ID,
		Name:         view.Name,
		DurationDays: view.DurationDays,
		Prices:       prices,
	}
}
