package backend

import (
	"bytes"
	"context"
	"net/http"
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

type bookingResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

type bookingClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

var (
	bookingClientInstance contracts.BookingBackend
	onceBookingClient     sync.Once
)

func NewBookingClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.BookingBackend {
	onceBookingClient.Do(func() {
		bookingClientInstance = newBookingClient(baseUrl, timeout, logger)
	})
	return bookingClientInstance
}

func newBookingClient(baseUrl string, timeout time.Duration, logger *zap.Logger) *bookingClient {
	return &bookingClient{
		BaseUrl:    baseUrl + constvars.BookingBackendPath,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

// Book honours any decodable {success, message} body whatever the HTTP status.
// Anything that cannot be read as such a body is a transport failure.
func (c *bookingClient) Book(ctx context.Context, draft models.BookingDraft) (models.BookingResult, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingClient.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultantIDKey, draft.ConsultantID.String()),
		zap.String(constvars.LoggingSessionTypeKey, draft.SessionType),
	)

	requestJSON, err := json.Marshal(draft)
	if err != nil {
		return models.BookingResult{}, exceptions.ErrBookingTransportFailed(exceptions.ErrCannotMarshalJSON(err))
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return models.BookingResult{}, exceptions.ErrBookingTransportFailed(exceptions.ErrCreateHTTPRequest(err))
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("bookingClient.Book error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.BookingResult{}, exceptions.ErrBookingTransportFailed(err)
	}
	defer resp.Body.Close()

	var body bookingResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil || body.Success == nil {
		if err == nil {
			err = exceptions.ErrUnexpectedStatus(resp.StatusCode, constvars.BookingBackendPath)
		}
		c.Log.Error("bookingClient.Book error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return models.BookingResult{}, exceptions.ErrBookingTransportFailed(err)
	}

	result := models.BookingResult{Success: *body.Success, Message: body.Message}
	if !result.Success {
		c.Log.Warn("bookingClient.Book rejected by backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultantIDKey, draft.ConsultantID.String()),
			zap.String(constvars.LoggingResponseKey, result.Message),
		)
		return result, exceptions.ErrBookingRejected(result.Message)
	}

	c.Log.Info("bookingClient.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultantIDKey, draft.ConsultantID.String()),
	)
	return result, nil
}
