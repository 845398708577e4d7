package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"
	"consultant-discovery/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type searchResponse struct {
	Consultants *[]models.Consultant `json:"consultants"`
}

type searchClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

var (
	searchClientInstance contracts.SearchBackend
	onceSearchClient     sync.Once
)

func NewSearchClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.SearchBackend {
	onceSearchClient.Do(func() {
		searchClientInstance = newSearchClient(baseUrl, timeout, logger)
	})
	return searchClientInstance
}

func newSearchClient(baseUrl string, timeout time.Duration, logger *zap.Logger) *searchClient {
	return &searchClient{
		BaseUrl:    baseUrl + constvars.SearchBackendPath,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

func (c *searchClient) Search(ctx context.Context, request models.SearchRequest) ([]models.Consultant, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("searchClient.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingCriteriaKey, request.Criteria),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"?"+encodeSearchQuery(request), nil)
	if err != nil {
		c.Log.Error("searchClient.Search error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("searchClient.Search error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendURLKey, c.BaseUrl),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("searchClient.Search unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrUnexpectedStatus(resp.StatusCode, constvars.SearchBackendPath)
	}

	var body searchResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		c.Log.Error("searchClient.Search error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.SearchBackendPath)
	}
	if body.Consultants == nil {
		return nil, exceptions.ErrDecodeResponse(errMissingConsultants, constvars.SearchBackendPath)
	}

	c.Log.Info("searchClient.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(*body.Consultants)),
	)
	return *body.Consultants, nil
}

// encodeSearchQuery sends every criterion verbatim, "All" included; the backend owns their meaning.
func encodeSearchQuery(request models.SearchRequest) string {
	query := url.Values{}
	query.Set(constvars.SearchQueryParamSearch, request.Criteria.SearchText)
	query.Set(constvars.SearchQueryParamSpecialty, request.Criteria.Specialty)
	query.Set(constvars.SearchQueryParamAvailability, request.Criteria.Availability)
	query.Set(constvars.SearchQueryParamRating, request.Criteria.MinRating)
	query.Set(constvars.SearchQueryParamLatitude, strconv.FormatFloat(request.Coordinate.Lat, 'f', -1, 64))
	query.Set(constvars.SearchQueryParamLongitude, strconv.FormatFloat(request.Coordinate.Lng, 'f', -1, 64))
	return query.Encode()
}
