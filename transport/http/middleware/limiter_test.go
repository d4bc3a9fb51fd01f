package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func serveLimited(mw middleware.AppMiddleware) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 10.0.0.2")
	req.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

	rec := httptest.NewRecorder()
	mw.RateLimit()(next).ServeHTTP(rec, req)

	return rec
}

func storedCount(count int) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, value any) error {
		*value.(*int) = count

		return nil
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(false), cacheMocks.NewMockRedisCache(ctrl))

		assert.Equal(t, http.StatusOK, serveLimited(mw).Code)
	})

	t.Run("first request in window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := cacheMocks.NewMockRedisCache(ctrl)
		store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)

		rec := serveLimited(middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(true), store))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := cacheMocks.NewMockRedisCache(ctrl)
		store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(storedCount(2))

		rec := serveLimited(middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(true), store))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("redis unavailable admits request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := cacheMocks.NewMockRedisCache(ctrl)
		store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		rec := serveLimited(middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(true), store))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
