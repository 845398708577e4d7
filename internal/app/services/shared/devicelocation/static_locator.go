package devicelocation

import (
	"context"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/exceptions"
)

type staticLocator struct {
	coordinate models.Coordinate
}

// NewStaticLocator always reports the configured coordinate. Useful for kiosks and tests.
func NewStaticLocator(coordinate models.Coordinate) contracts.DeviceLocator {
	return &staticLocator{coordinate: coordinate}
}

func (l *staticLocator) RequestPosition(ctx context.Context) (models.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinate{}, exceptions.ErrLocationUnavailable(err)
	}
	return l.coordinate, nil
}

type unsupportedLocator struct{}

// NewUnsupportedLocator models a device without any location capability.
func NewUnsupportedLocator() contracts.DeviceLocator {
	return unsupportedLocator{}
}

func (unsupportedLocator) RequestPosition(ctx context.Context) (models.Coordinate, error) {
	return models.Coordinate{}, exceptions.ErrLocationUnavailable(exceptions.ErrLocationUnsupported)
}
