package devicelocation

import (
	"consultant-discovery/internal/app/config"
	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"
	"consultant-discovery/internal/pkg/utils"

	"go.uber.org/zap"
)

func NewDeviceLocator(internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.DeviceLocator, error) {
	cfg := internalConfig.Location
	switch cfg.DeviceLocatorProvider {
	case constvars.DeviceLocatorProviderIPAPI:
		return NewIPGeolocationLocator(cfg.DeviceLocatorURL, utils.SecondsToDuration(cfg.TimeoutInSeconds), logger), nil
	case constvars.DeviceLocatorProviderStatic:
		coordinate := models.Coordinate{Lat: cfg.StaticLatitude, Lng: cfg.StaticLongitude}
		err := coordinate.Validate()
		if err != nil {
			return nil, err
		}
		return NewStaticLocator(coordinate), nil
	case constvars.DeviceLocatorProviderNone:
		return NewUnsupportedLocator(), nil
	default:
		return nil, exceptions.ErrUnsupportedProvider(cfg.DeviceLocatorProvider)
	}
}
