package response

import (
	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailableDriverResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AvailabilityResponse struct {
	Date    string                     `json:"date"`
	Drivers []*AvailableDriverResponse `json:"drivers"`
}

func FromAvailableDrivers(date string, views []*queries.AvailableDriverView) AvailabilityResponse {
	drivers := make([]*AvailableDriverResponse, len(views))
	for i, view := range views {
		drivers[i] = &AvailableDriverResponse{ID: view.ID, Name: view.Name}
	}
	return AvailabilityResponse{Date: date, Drivers: drivers}
}
