package devicelocation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ipGeolocationResponse struct {
	IP        string   `json:"ip"`
	City      string   `json:"city"`
	Country   string   `json:"country_name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
}

type ipGeolocationLocator struct {
	URL        string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// NewIPGeolocationLocator asks an ipapi.co compatible service where the host is.
func NewIPGeolocationLocator(url string, timeout time.Duration, logger *zap.Logger) contracts.DeviceLocator {
	return &ipGeolocationLocator{
		URL:        url,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

func (l *ipGeolocationLocator) RequestPosition(ctx context.Context) (models.Coordinate, error) {
	l.Log.Debug("ipGeolocationLocator.RequestPosition called",
		zap.String(constvars.LoggingLocationSrcKey, constvars.DeviceLocatorProviderIPAPI),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, l.URL, nil)
	if err != nil {
		return models.Coordinate{}, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := l.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return models.Coordinate{}, exceptions.ErrLocationUnavailable(errors.Join(exceptions.ErrLocationTimeout, err))
		}
		return models.Coordinate{}, exceptions.ErrLocationUnavailable(errors.Join(exceptions.ErrLocationUnsupported, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusForbidden || resp.StatusCode == constvars.StatusTooManyRequests {
		return models.Coordinate{}, exceptions.ErrLocationUnavailable(fmt.Errorf("%w: status %d", exceptions.ErrLocationDenied, resp.StatusCode))
	}
	if resp.StatusCode != constvars.StatusOK {
		return models.Coordinate{}, exceptions.ErrLocationUnavailable(fmt.Errorf("%w: status %d", exceptions.ErrLocationUnsupported, resp.StatusCode))
	}

	var body ipGeolocationResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		l.Log.Error("ipGeolocationLocator.RequestPosition error decoding response",
			zap.Error(err),
		)
		return models.Coordinate{}, exceptions.ErrLocationUnavailable(errors.Join(exceptions.ErrLocationUnsupported, err))
	}

	if body.Error {
		return models.Coordinate{}, exceptions.ErrLocationUnavailable(fmt.Errorf("%w: %s", exceptions.ErrLocationDenied, body.Reason))
	}
	if body.Latitude == nil || body.Longitude == nil {
		return models.Coordinate{}, exceptions.ErrLocationUnavailable(fmt.Errorf("%w: response carries no position", exceptions.ErrLocationUnsupported))
	}

	coordinate := models.Coordinate{Lat: *body.Latitude, Lng: *body.Longitude}
	err = coordinate.Validate()
	if err != nil {
		return models.Coordinate{}, exceptions.ErrLocationUnavailable(errors.Join(exceptions.ErrLocationUnsupported, err))
	}

	l.Log.Info("ipGeolocationLocator.RequestPosition succeeded",
		zap.String("city", body.City),
		zap.Float64(constvars.LoggingLatitudeKey, coordinate.Lat),
		zap.Float64(constvars.LoggingLongitudeKey, coordinate.Lng),
	)
	return coordinate, nil
}

func isTimeout(err error) bool {
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}
