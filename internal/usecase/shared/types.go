package shared

import (
	"cape-tours-api/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller, resolved once by the auth middleware.
type Actor struct {
	UserID   uuid.UUID
	Role     user.Role
	DriverID *uuid.UUID // set when the account is linked to a driver
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

// OwnsDriver reports whether the actor is the given driver (admins pass).
func (a Actor) OwnsDriver(driverID uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	return a.DriverID != nil && *a.DriverID == driverID
}
