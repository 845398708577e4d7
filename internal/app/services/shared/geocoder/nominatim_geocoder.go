package geocoder

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const nominatimSearchPath = "/search"

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type nominatimGeocoder struct {
	BaseUrl    string
	UserAgent  string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewNominatimGeocoder queries an OpenStreetMap Nominatim instance. Requests are throttled
// to requestsPerSecond to respect the public instance usage policy.
func NewNominatimGeocoder(baseUrl, userAgent string, requestsPerSecond float64, timeout time.Duration, logger *zap.Logger) contracts.Geocoder {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &nominatimGeocoder{
		BaseUrl:    baseUrl,
		UserAgent:  userAgent,
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(limit, 1),
		Log:        logger,
	}
}

func (g *nominatimGeocoder) Lookup(ctx context.Context, placeName string) ([]models.Coordinate, error) {
	g.Log.Info("nominatimGeocoder.Lookup called",
		zap.String(constvars.LoggingPlaceNameKey, placeName),
	)

	err := g.Limiter.Wait(ctx)
	if err != nil {
		g.Log.Error("nominatimGeocoder.Lookup error waiting for rate limiter",
			zap.String(constvars.LoggingPlaceNameKey, placeName),
			zap.Error(err),
		)
		return nil, exceptions.ErrGeocodeFailed(err, placeName)
	}

	query := url.Values{}
	query.Set("q", placeName)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, g.BaseUrl+nominatimSearchPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, exceptions.ErrGeocodeFailed(exceptions.ErrCreateHTTPRequest(err), placeName)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderUserAgent, g.UserAgent)

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		g.Log.Error("nominatimGeocoder.Lookup error sending HTTP request",
			zap.String(constvars.LoggingPlaceNameKey, placeName),
			zap.Error(err),
		)
		return nil, exceptions.ErrGeocodeFailed(err, placeName)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrGeocodeFailed(exceptions.ErrUnexpectedStatus(resp.StatusCode, constvars.GeocoderProviderNominatim), placeName)
	}

	var places []nominatimPlace
	err = json.NewDecoder(resp.Body).Decode(&places)
	if err != nil {
		g.Log.Error("nominatimGeocoder.Lookup error decoding response",
			zap.String(constvars.LoggingPlaceNameKey, placeName),
			zap.Error(err),
		)
		return nil, exceptions.ErrGeocodeFailed(err, placeName)
	}

	coordinates := make([]models.Coordinate, 0, len(places))
	for _, place := range places {
		lat, latErr := strconv.ParseFloat(place.Lat, 64)
		lng, lngErr := strconv.ParseFloat(place.Lon, 64)
		if latErr != nil || lngErr != nil {
			g.Log.Warn("nominatimGeocoder.Lookup skipping place with unparsable position",
				zap.String("display_name", place.DisplayName),
			)
			continue
		}
		coordinates = append(coordinates, models.Coordinate{Lat: lat, Lng: lng})
	}

	g.Log.Info("nominatimGeocoder.Lookup succeeded",
		zap.String(constvars.LoggingPlaceNameKey, placeName),
		zap.Int(constvars.LoggingResultCountKey, len(coordinates)),
	)
	return coordinates, nil
}
