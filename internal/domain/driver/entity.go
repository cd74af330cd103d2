package driver

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("driver name cannot be empty")

// Driver is reference data owned by admin workflows. Deactivation hides a
// driver from availability without deleting booking history.
type Driver struct {
	id        uuid.UUID
	name      string
	userID    *uuid.UUID
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewDriver(name string, userID *uuid.UUID) (*Driver, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Driver{
		id:       uuid.New(),
		name:     name,
		userID:   userID,
		isActive: true,
	}, nil
}

func ReconstructDriver(
	id uuid.UUID,
	name string,
	userID *uuid.UUID,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Driver {
	return &Driver{
		id:        id,
		name:      name,
		userID:    userID,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (d *Driver) ID() uuid.UUID        { return d.id }
func (d *Driver) Name() string         { return d.name }
func (d *Driver) UserID() *uuid.UUID   { return d.userID }
func (d *Driver) IsActive() bool       { return d.isActive }
func (d *Driver) CreatedAt() time.Time { return d.createdAt }
func (d *Driver) UpdatedAt() time.Time { return d.updatedAt }
