package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CNSLT_DSC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// Redis keys owned by the client. Only the last known coordinate is persisted.
const (
	RedisKeyUserLocationFormat = "consultant_discovery:%s:user_location"
)

const (
	GeocoderProviderNominatim = "nominatim"
	GeocoderProviderGoogle    = "google"
)

const (
	DeviceLocatorProviderIPAPI  = "ipapi"
	DeviceLocatorProviderStatic = "static"
	DeviceLocatorProviderNone   = "none"
)

const (
	CoordinateStoreDriverRedis  = "redis"
	CoordinateStoreDriverMemory = "memory"
)
