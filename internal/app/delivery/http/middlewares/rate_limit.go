package middlewares

import (
	"net/http"
	"time"

	"consultant-discovery/internal/pkg/exceptions"
	"consultant-discovery/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit allows APP_MAX_REQUEST requests per second per client IP.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests())
		}),
	)
}
