package geocoder

import (
	"context"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

type googleGeocoder struct {
	Client *maps.Client
	Region string
	Log    *zap.Logger
}

func NewGoogleGeocoder(client *maps.Client, region string, logger *zap.Logger) contracts.Geocoder {
	return &googleGeocoder{
		Client: client,
		Region: region,
		Log:    logger,
	}
}

func (g *googleGeocoder) Lookup(ctx context.Context, placeName string) ([]models.Coordinate, error) {
	g.Log.Info("googleGeocoder.Lookup called",
		zap.String(constvars.LoggingPlaceNameKey, placeName),
	)

	results, err := g.Client.Geocode(ctx, &maps.GeocodingRequest{
		Address: placeName,
		Region:  g.Region,
	})
	if err != nil {
		g.Log.Error("googleGeocoder.Lookup error calling geocoding API",
			zap.String(constvars.LoggingPlaceNameKey, placeName),
			zap.Error(err),
		)
		return nil, exceptions.ErrGeocodeFailed(err, placeName)
	}

	coordinates := make([]models.Coordinate, 0, len(results))
	for _, result := range results {
		coordinates = append(coordinates, models.Coordinate{
			Lat: result.Geometry.Location.Lat,
			Lng: result.Geometry.Location.Lng,
		})
	}

	g.Log.Info("googleGeocoder.Lookup succeeded",
		zap.String(constvars.LoggingPlaceNameKey, placeName),
		zap.Int(constvars.LoggingResultCountKey, len(coordinates)),
	)
	return coordinates, nil
}
