package config

import (
	"strings"

	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessLogFileName:   utils.GetEnvString("LOGGER_ACCESS_LOG_FILENAME", "access.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			ClientProfileID:            utils.GetEnvString("APP_CLIENT_PROFILE_ID", "default"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			AllowedOrigins:             splitCSV(utils.GetEnvString("APP_ALLOWED_ORIGINS", "*")),
		},
		Backend: Backend{
			BaseUrl:                 strings.TrimRight(utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8000"), "/"),
			SearchTimeoutInSeconds:  utils.GetEnvInt("SEARCH_TIMEOUT_IN_SECONDS", 10),
			BookingTimeoutInSeconds: utils.GetEnvInt("BOOKING_TIMEOUT_IN_SECONDS", 10),
		},
		Location: Location{
			TimeoutInSeconds:      utils.GetEnvInt("LOCATION_TIMEOUT_IN_SECONDS", 10),
			DeviceLocatorProvider: utils.GetEnvString("DEVICE_LOCATOR_PROVIDER", constvars.DeviceLocatorProviderIPAPI),
			DeviceLocatorURL:      utils.GetEnvString("DEVICE_LOCATOR_URL", "https://ipapi.co/json/"),
			StaticLatitude:        utils.GetEnvFloat("DEVICE_LOCATOR_STATIC_LATITUDE", constvars.DefaultLocationLatitude),
			StaticLongitude:       utils.GetEnvFloat("DEVICE_LOCATOR_STATIC_LONGITUDE", constvars.DefaultLocationLongitude),
			CoordinateStoreDriver: utils.GetEnvString("COORDINATE_STORE_DRIVER", constvars.CoordinateStoreDriverRedis),
		},
		Geocoder: Geocoder{
			Provider:          utils.GetEnvString("GEOCODER_PROVIDER", constvars.GeocoderProviderNominatim),
			BaseUrl:           strings.TrimRight(utils.GetEnvString("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"), "/"),
			UserAgent:         utils.GetEnvString("GEOCODER_USER_AGENT", "consultant-discovery/1.0"),
			RequestsPerSecond: utils.GetEnvFloat("GEOCODER_REQUESTS_PER_SECOND", 1),
			GoogleAPIKey:      utils.GetEnvString("GEOCODER_GOOGLE_API_KEY", ""),
			Region:            utils.GetEnvString("GEOCODER_REGION", "in"),
		},
		Discovery: Discovery{
			SearchDebounceInMilliseconds: utils.GetEnvInt("SEARCH_DEBOUNCE_IN_MILLISECONDS", 300),
			DegradedMaxAgeInMinutes:      utils.GetEnvInt("DEGRADED_MAX_AGE_IN_MINUTES", 0),
		},
		Notification: Notification{
			TTLInSeconds: utils.GetEnvInt("NOTIFICATION_TTL_IN_SECONDS", 5),
		},
	}
}

func splitCSV(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
