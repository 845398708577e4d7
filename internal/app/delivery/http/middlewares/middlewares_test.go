package middlewares

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"consultant-discovery/internal/app/config"
	"consultant-discovery/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMiddlewares() *Middlewares {
	return &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			App: config.App{
				MaxRequests:                2,
				RequestBodyLimitInMegabyte: 1,
				Timezone:                   "Asia/Kolkata",
			},
		},
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newMiddlewares()
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
	assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "client-id-1", seen)
	assert.Equal(t, "client-id-1", rec.Header().Get(constvars.HeaderXRequestID))
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	m := newMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
}

func TestBodyLimit(t *testing.T) {
	m := newMiddlewares()
	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(make([]byte, 512))))
	assert.NoError(t, readErr)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(make([]byte, 2<<20))))
	assert.Error(t, readErr)
}

func TestRateLimit(t *testing.T) {
	m := newMiddlewares()
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRequestLoggerWritesAccessLine(t *testing.T) {
	m := newMiddlewares()
	var out bytes.Buffer
	log := logrus.New()
	log.SetOutput(&out)
	log.SetFormatter(&logrus.JSONFormatter{})

	handler := m.RequestLogger(m.InternalConfig.App, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/v1/filters/search", nil))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "PUT", line["method"])
	assert.Equal(t, "/api/v1/filters/search", line["uri"])
	assert.EqualValues(t, http.StatusAccepted, line["status"])
}
