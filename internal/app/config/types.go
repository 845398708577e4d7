package config

type InternalConfig struct {
	App          App
	Backend      Backend
	Location     Location
	Geocoder     Geocoder
	Discovery    Discovery
	Notification Notification
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	ClientProfileID            string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	AllowedOrigins             []string
}

type Backend struct {
	BaseUrl                 string
	SearchTimeoutInSeconds  int
	BookingTimeoutInSeconds int
}

type Location struct {
	TimeoutInSeconds      int
	DeviceLocatorProvider string
	DeviceLocatorURL      string
	StaticLatitude        float64
	StaticLongitude       float64
	CoordinateStoreDriver string
}

type Geocoder struct {
	Provider          string
	BaseUrl           string
	UserAgent         string
	RequestsPerSecond float64
	GoogleAPIKey      string
	Region            string
}

type Discovery struct {
	SearchDebounceInMilliseconds int
	DegradedMaxAgeInMinutes      int
}

type Notification struct {
	TTLInSeconds int
}

type DriverConfig struct {
	Redis  Redis
	Logger Logger
}

type Redis struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
	AccessLogFileName   string
}
