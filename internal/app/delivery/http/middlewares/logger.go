package middlewares

import (
	"net/http"
	"time"

	"consultant-discovery/internal/app/config"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access-log line per request in the configured timezone.
func (m *Middlewares) RequestLogger(appConfig config.App, log *logrus.Logger) func(next http.Handler) http.Handler {
	tz, err := time.LoadLocation(appConfig.Timezone)
	if err != nil {
		log.Printf("Invalid time zone: %v", err)
		tz = time.UTC
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				"time":        time.Now().In(tz).Format(time.RFC850),
				"remote_addr": r.RemoteAddr,
				"method":      r.Method,
				"uri":         r.RequestURI,
				"status":      rec.statusCode,
				"duration":    time.Since(start).String(),
			}).Info("access")
		})
	}
}
