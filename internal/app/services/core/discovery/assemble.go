package discovery

import (
	"time"

	"consultant-discovery/internal/app/config"
	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/services/core/booking"
	"consultant-discovery/internal/app/services/core/filters"
	"consultant-discovery/internal/app/services/core/listview"
	"consultant-discovery/internal/app/services/core/location"
	"consultant-discovery/internal/app/services/core/markers"
	"consultant-discovery/internal/app/services/core/notifications"
	"consultant-discovery/internal/app/services/core/resultset"
	"consultant-discovery/internal/pkg/utils"

	"go.uber.org/zap"
)

// Collaborators are the outside-world adapters the application is built on.
type Collaborators struct {
	DeviceLocator   contracts.DeviceLocator
	Geocoder        contracts.Geocoder
	CoordinateStore contracts.CoordinateStore
	SearchBackend   contracts.SearchBackend
	BookingBackend  contracts.BookingBackend
	MapSurface      contracts.MapSurface
	DialogSurface   contracts.DialogSurface
	AfterFunc       utils.AfterFunc
	Now             func() time.Time
}

// Assemble builds every component from configuration and wires them into one ConsultantApp.
func Assemble(internalConfig *config.InternalConfig, collaborators Collaborators, logger *zap.Logger) *ConsultantApp {
	if collaborators.Now == nil {
		collaborators.Now = time.Now
	}

	notificationQueue := notifications.NewNotificationQueue(
		utils.SecondsToDuration(internalConfig.Notification.TTLInSeconds),
		collaborators.AfterFunc,
		logger,
	)
	resultSet := resultset.NewConsultantResultSet(
		time.Duration(internalConfig.Discovery.DegradedMaxAgeInMinutes)*time.Minute,
		logger,
	)
	filterController := filters.NewFilterQueryController(
		collaborators.SearchBackend,
		resultSet,
		notificationQueue,
		filters.Options{
			SearchDebounce: utils.MillisecondsToDuration(internalConfig.Discovery.SearchDebounceInMilliseconds),
			SearchTimeout:  utils.SecondsToDuration(internalConfig.Backend.SearchTimeoutInSeconds),
			AfterFunc:      collaborators.AfterFunc,
			Now:            collaborators.Now,
		},
		logger,
	)
	markerSynchronizer := markers.NewMapMarkerSynchronizer(collaborators.MapSurface, logger)
	bookingController := booking.NewBookingDialogController(
		collaborators.DialogSurface,
		resultSet,
		collaborators.BookingBackend,
		notificationQueue,
		utils.SecondsToDuration(internalConfig.Backend.BookingTimeoutInSeconds),
		logger,
	)
	listRenderer := listview.NewListViewRenderer(markerSynchronizer, bookingController, logger)
	locationResolver := location.NewLocationResolver(
		collaborators.DeviceLocator,
		collaborators.Geocoder,
		collaborators.CoordinateStore,
		notificationQueue,
		utils.SecondsToDuration(internalConfig.Location.TimeoutInSeconds),
		logger,
	)

	return NewConsultantApp(Dependencies{
		Location:      locationResolver,
		Filters:       filterController,
		ResultSet:     resultSet,
		Map:           collaborators.MapSurface,
		Markers:       markerSynchronizer,
		List:          listRenderer,
		Booking:       bookingController,
		Notifications: notificationQueue,
	}, Options{Now: collaborators.Now}, logger)
}
