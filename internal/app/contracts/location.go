package contracts

import (
	"context"

	"consultant-discovery/internal/app/models"
)

// DeviceLocator returns the device's current position. Failures are reported with
// exceptions.ErrLocationDenied, ErrLocationTimeout or ErrLocationUnsupported.
type DeviceLocator interface {
	RequestPosition(ctx context.Context) (models.Coordinate, error)
}

// Geocoder turns a free-text place name into zero or more candidate coordinates.
type Geocoder interface {
	Lookup(ctx context.Context, placeName string) ([]models.Coordinate, error)
}

// CoordinateStore persists the last known coordinate across sessions.
// Load returns ok=false when nothing has been saved yet.
type CoordinateStore interface {
	Load(ctx context.Context) (coordinate models.Coordinate, ok bool, err error)
	Save(ctx context.Context, coordinate models.Coordinate) error
}

type LocationResolver interface {
	Resolve(ctx context.Context) models.Coordinate
	SetManual(ctx context.Context, placeName string) (models.Coordinate, error)
	Locate(ctx context.Context) (models.Coordinate, error)
	Current() models.Coordinate
}
