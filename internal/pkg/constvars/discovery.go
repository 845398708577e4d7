package constvars

const FilterValueAll = "All"

const (
	SessionTypeVirtual  = "Virtual"
	SessionTypeInPerson = "In-Person"
	SessionTypeHybrid   = "Hybrid"
)

const (
	DefaultLocationLatitude  = 23.0225
	DefaultLocationLongitude = 72.5714
	DefaultLocationName      = "Ahmedabad"
)

const (
	MapInitialZoom    = 12
	MapLocatedZoom    = 13
	MapCloseUpZoom    = 15
	MarkerIconUser    = "user"
	MarkerIconOnline  = "consultant-online"
	MarkerIconOffline = "consultant-offline"
)

const (
	SearchBackendPath  = "/consultants/api/consultants/"
	BookingBackendPath = "/consultants/api/book/"
)

const (
	SearchQueryParamSearch       = "search"
	SearchQueryParamSpecialty    = "specialty"
	SearchQueryParamAvailability = "availability"
	SearchQueryParamRating       = "rating"
	SearchQueryParamLatitude     = "lat"
	SearchQueryParamLongitude    = "lng"
)
