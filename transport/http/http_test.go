package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/config"
	jwtMocks "hotel/infras/jwt/mocks"
	otelMocks "hotel/infras/otel/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	transport "hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pinger struct {
	err error
}

func (p pinger) Ping(context.Context) error {
	return p.err
}

func newServer(t *testing.T, db transport.Pinger) *transport.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.App.Name = "hotel-backoffice"

	ot := otelMocks.NewOtel()
	r := router.New(
		router.DomainHandlers{},
		middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), nil, ot),
		middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl)),
		cfg,
	)

	return &transport.HTTP{Config: cfg, Router: r, DB: db}
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		server := newServer(t, pinger{})

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool              `json:"success"`
			Data    map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "healthy", body.Data["status"])
		assert.Equal(t, "hotel-backoffice", body.Data["service"])
		assert.Equal(t, transport.ServerStateReady, server.State())
	})

	t.Run("database down", func(t *testing.T) {
		server := newServer(t, pinger{err: errors.New("connection refused")})

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	server := newServer(t, pinger{})

	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hotel_http_requests_total{method="GET",route="/health",status="200"}`)
}

func TestUnknownRoute(t *testing.T) {
	server := newServer(t, pinger{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
