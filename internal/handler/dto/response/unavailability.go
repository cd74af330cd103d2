package response

import (
	"time"

	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BlockResponse struct {
	ID        uuid.UUID `json:"id"`
	DriverID  uuid.UUID `json:"driverId"`
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBlockView(view *queries.BlockView) *BlockResponse {
	return &BlockResponse{
		ID:        view.ID,
		DriverID:  view.DriverID,
		Date:      view.Date,
		Reason:    view.Reason,
		CreatedAt: view.CreatedAt,
	}
}
