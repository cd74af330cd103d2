package unavailability

import (
	"strings"
	"time"

	"cape-tours-api/internal/domain/booking"

	"github.com/google/uuid"
)

// Block marks a (driver, date) pair the driver will not take bookings on.
// At most one block exists per pair; the ledger's unique constraint backs this.
type Block struct {
	id        uuid.UUID
	driverID  uuid.UUID
	date      booking.TourDate
	reason    *string
	createdAt time.Time
}

func NewBlock(driverID uuid.UUID, date booking.TourDate, reason *string) *Block {
	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if trimmed == "" {
			reason = nil
		} else {
			reason = &trimmed
		}
	}
	return &Block{
		id:       uuid.New(),
		driverID: driverID,
		date:     date,
		reason:   reason,
	}
}

func ReconstructBlock(id, driverID uuid.UUID, date booking.TourDate, reason *string, createdAt time.Time) *Block {
	return &Block{
		id:        id,
		driverID:  driverID,
		date:      date,
		reason:    reason,
		createdAt: createdAt,
	}
}

func (b *Block) ID() uuid.UUID          { return b.id }
func (b *Block) DriverID() uuid.UUID    { return b.driverID }
func (b *Block) Date() booking.TourDate { return b.date }
func (b *Block) Reason() *string        { return b.reason }
func (b *Block) CreatedAt() time.Time   { return b.createdAt }
