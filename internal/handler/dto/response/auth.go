package response

import (
	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type UserResponse struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	DriverID *uuid.UUID `json:"driverId,omitempty"`
	IsActive bool       `json:"isActive"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:       view.ID,
		Email:    view.Email,
		Role:     view.Role,
		DriverID: view.DriverID,
		IsActive: view.IsActive,
	}
}
