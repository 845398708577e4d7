package models

import (
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultCoordinate is the city centroid used when no location can be resolved.
var DefaultCoordinate = Coordinate{
	Lat: constvars.DefaultLocationLatitude,
	Lng: constvars.DefaultLocationLongitude,
}

func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return exceptions.ErrInvalidCoordinate(c.Lat, c.Lng)
	}
	return nil
}
