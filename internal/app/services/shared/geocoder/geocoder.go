package geocoder

import (
	"consultant-discovery/internal/app/config"
	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"
	"consultant-discovery/internal/pkg/utils"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

func NewGeocoder(internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.Geocoder, error) {
	cfg := internalConfig.Geocoder
	timeout := utils.SecondsToDuration(internalConfig.Location.TimeoutInSeconds)

	switch cfg.Provider {
	case constvars.GeocoderProviderNominatim:
		return NewNominatimGeocoder(cfg.BaseUrl, cfg.UserAgent, cfg.RequestsPerSecond, timeout, logger), nil
	case constvars.GeocoderProviderGoogle:
		client, err := maps.NewClient(maps.WithAPIKey(cfg.GoogleAPIKey))
		if err != nil {
			return nil, err
		}
		return NewGoogleGeocoder(client, cfg.Region, logger), nil
	default:
		return nil, exceptions.ErrUnsupportedProvider(cfg.Provider)
	}
}
