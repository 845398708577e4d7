package routers

import (
	"fmt"

	"consultant-discovery/internal/app/delivery/http/controllers"
	"consultant-discovery/internal/app/delivery/http/middlewares"
	"consultant-discovery/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDiscoveryRoutes(router chi.Router, middlewares *middlewares.Middlewares, discoveryController *controllers.DiscoveryController) {
	router.Get("/view", discoveryController.GetView)

	router.Route("/filters", func(r chi.Router) {
		r.Put("/search", discoveryController.UpdateSearchText)
		r.Put("/specialty", discoveryController.UpdateSpecialty)
		r.Put("/availability", discoveryController.UpdateAvailability)
		r.Put("/rating", discoveryController.UpdateRating)
		r.Post("/clear", discoveryController.ClearFilters)
	})

	router.Route("/location", func(r chi.Router) {
		r.Post("/manual", discoveryController.SetManualLocation)
		r.Post("/locate", discoveryController.Locate)
	})

	router.Post("/map/focus", discoveryController.FocusConsultant)

	router.Route("/booking", func(r chi.Router) {
		r.Post("/open", discoveryController.OpenBooking)
		r.Put("/draft", discoveryController.UpdateBookingDraft)
		r.Post("/submit", discoveryController.SubmitBooking)
		r.Post("/close", discoveryController.CloseBooking)
		r.Post("/outside-click", discoveryController.DialogOutsideClick)
	})

	router.Delete(fmt.Sprintf("/notifications/{%s}", constvars.URLParamNotificationID), discoveryController.DismissNotification)
}
