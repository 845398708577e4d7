package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"consultant-discovery/internal/app/config"
	"consultant-discovery/internal/app/delivery/http/controllers"
	"consultant-discovery/internal/app/delivery/http/middlewares"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDiscoveryUsecase struct {
	mock.Mock
}

func (m *MockDiscoveryUsecase) View() models.AppView {
	args := m.Called()
	return args.Get(0).(models.AppView)
}

func (m *MockDiscoveryUsecase) SearchTextChanged(text string) {
	m.Called(text)
}

func (m *MockDiscoveryUsecase) SpecialtyChanged(value string) {
	m.Called(value)
}

func (m *MockDiscoveryUsecase) AvailabilityChanged(value string) {
	m.Called(value)
}

func (m *MockDiscoveryUsecase) RatingChanged(value string) {
	m.Called(value)
}

func (m *MockDiscoveryUsecase) ClearFilters() {
	m.Called()
}

func (m *MockDiscoveryUsecase) SetManualLocation(ctx context.Context, placeName string) (models.Coordinate, error) {
	args := m.Called(ctx, placeName)
	return args.Get(0).(models.Coordinate), args.Error(1)
}

func (m *MockDiscoveryUsecase) Locate(ctx context.Context) (models.Coordinate, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Coordinate), args.Error(1)
}

func (m *MockDiscoveryUsecase) FocusConsultant(consultantID models.ConsultantID) error {
	args := m.Called(consultantID)
	return args.Error(0)
}

func (m *MockDiscoveryUsecase) OpenBooking(consultantID models.ConsultantID) error {
	args := m.Called(consultantID)
	return args.Error(0)
}

func (m *MockDiscoveryUsecase) UpdateBookingDraft(patch models.BookingDraftPatch) error {
	args := m.Called(patch)
	return args.Error(0)
}

func (m *MockDiscoveryUsecase) SubmitBooking(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDiscoveryUsecase) CloseBooking() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockDiscoveryUsecase) DialogOutsideClick() {
	m.Called()
}

func (m *MockDiscoveryUsecase) DismissNotification(notificationID string) error {
	args := m.Called(notificationID)
	return args.Error(0)
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) (*chi.Mux, *MockDiscoveryUsecase) {
	t.Helper()
	logger := zap.NewNop()
	accessLogger := logrus.New()
	accessLogger.SetOutput(&bytes.Buffer{})

	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			MaxRequests:                100,
			RequestBodyLimitInMegabyte: 1,
			AllowedOrigins:             []string{"*"},
			Timezone:                   "UTC",
		},
	}

	usecase := new(MockDiscoveryUsecase)
	controller := &controllers.DiscoveryController{Log: logger, DiscoveryUsecase: usecase}
	middlewareInstance := &middlewares.Middlewares{Log: logger, InternalConfig: internalConfig}

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, accessLogger, middlewareInstance, controller)
	return router, usecase
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var response apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return rec, response
}

func sampleView() models.AppView {
	return models.AppView{
		Location: models.DefaultCoordinate,
		Criteria: models.DefaultFilterCriteria(),
		List: models.ListView{
			State: models.ListStateResults,
			Count: 1,
			Cards: []models.ListCard{{ConsultantID: "1", Name: "Dr. Mehta", Rating: "4.5"}},
		},
		Dialog: models.DialogView{State: models.DialogStateClosed},
	}
}

func TestGetView(t *testing.T) {
	router, usecase := setupRouter(t)
	usecase.On("View").Return(sampleView())

	rec, response := doRequest(t, router, http.MethodGet, "/api/v1/view", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))
	assert.True(t, response.Success)
	assert.Equal(t, constvars.GetViewSuccessMessage, response.Message)

	var view models.AppView
	require.NoError(t, json.Unmarshal(response.Data, &view))
	assert.Equal(t, 1, view.List.Count)
	assert.Equal(t, "Dr. Mehta", view.List.Cards[0].Name)
}

func TestFilterRoutes(t *testing.T) {
	router, usecase := setupRouter(t)
	usecase.On("View").Return(sampleView())
	usecase.On("SearchTextChanged", "anx").Return()
	usecase.On("SpecialtyChanged", "Anxiety").Return()
	usecase.On("AvailabilityChanged", "Today").Return()
	usecase.On("RatingChanged", "4").Return()
	usecase.On("ClearFilters").Return()

	rec, _ := doRequest(t, router, http.MethodPut, "/api/v1/filters/search", map[string]string{"text": "anx"})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doRequest(t, router, http.MethodPut, "/api/v1/filters/specialty", map[string]string{"value": "Anxiety"})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doRequest(t, router, http.MethodPut, "/api/v1/filters/availability", map[string]string{"value": "Today"})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doRequest(t, router, http.MethodPut, "/api/v1/filters/rating", map[string]string{"value": "4"})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doRequest(t, router, http.MethodPost, "/api/v1/filters/clear", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	usecase.AssertExpectations(t)
}

func TestFilterValueIsRequired(t *testing.T) {
	router, usecase := setupRouter(t)

	rec, response := doRequest(t, router, http.MethodPut, "/api/v1/filters/specialty", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, response.Success)
	assert.Equal(t, "value is required", response.Message)
	usecase.AssertNotCalled(t, "SpecialtyChanged", mock.Anything)
}

func TestManualLocationNotFound(t *testing.T) {
	router, usecase := setupRouter(t)
	usecase.On("SetManualLocation", mock.Anything, "Atlantis").
		Return(models.DefaultCoordinate, exceptions.ErrGeocodeNotFound("Atlantis"))

	rec, response := doRequest(t, router, http.MethodPost, "/api/v1/location/manual", map[string]string{"place": "Atlantis"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constvars.NotifyLocationNotFound, response.Message)
}

func TestBookingRoutes(t *testing.T) {
	router, usecase := setupRouter(t)
	usecase.On("View").Return(sampleView())
	usecase.On("OpenBooking", models.ConsultantID("1")).Return(nil)
	usecase.On("OpenBooking", models.ConsultantID("404")).Return(exceptions.ErrConsultantNotFound("404"))
	usecase.On("UpdateBookingDraft", mock.MatchedBy(func(patch models.BookingDraftPatch) bool {
		return patch.Email != nil && *patch.Email == "client@example.com" && patch.Phone == nil
	})).Return(nil)
	usecase.On("SubmitBooking", mock.Anything).Return(exceptions.ErrBookingRejected("Slot unavailable")).Once()
	usecase.On("CloseBooking").Return(nil)
	usecase.On("DialogOutsideClick").Return()

	rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/booking/open", map[string]string{"consultant_id": "1"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, response := doRequest(t, router, http.MethodPost, "/api/v1/booking/open", map[string]string{"consultant_id": "404"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constvars.ErrClientConsultantNotFound, response.Message)

	rec, _ = doRequest(t, router, http.MethodPut, "/api/v1/booking/draft", map[string]string{"email": "client@example.com"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, response = doRequest(t, router, http.MethodPost, "/api/v1/booking/submit", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Slot unavailable", response.Message)

	rec, _ = doRequest(t, router, http.MethodPost, "/api/v1/booking/close", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doRequest(t, router, http.MethodPost, "/api/v1/booking/outside-click", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	usecase.AssertExpectations(t)
}

func TestFocusRequiresConsultantID(t *testing.T) {
	router, usecase := setupRouter(t)

	rec, response := doRequest(t, router, http.MethodPost, "/api/v1/map/focus", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "consultant_id is required", response.Message)
	usecase.AssertNotCalled(t, "FocusConsultant", mock.Anything)
}

func TestDismissNotification(t *testing.T) {
	router, usecase := setupRouter(t)
	usecase.On("View").Return(sampleView())
	usecase.On("DismissNotification", "n-1").Return(nil)
	usecase.On("DismissNotification", "n-2").Return(exceptions.ErrNotificationNotFound("n-2"))

	rec, response := doRequest(t, router, http.MethodDelete, "/api/v1/notifications/n-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constvars.DismissNotificationMessage, response.Message)

	rec, _ = doRequest(t, router, http.MethodDelete, "/api/v1/notifications/n-2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMalformedBody(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/location/manual", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
