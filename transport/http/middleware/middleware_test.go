package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cowork/config"
	"cowork/infras/otel/mocks"
	"cowork/shared/cache"
	cacheMocks "cowork/shared/cache/mocks"
	"cowork/shared/constant"
	"cowork/transport/http/middleware"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newMiddleware(t *testing.T, enabled bool) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enabled
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache), mockCache
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		setupMock  func(c *cacheMocks.MockRedisCache)
		wantStatus int
		wantHeader string
	}{
		{
			name:       "disabled",
			setupMock:  func(*cacheMocks.MockRedisCache) {},
			wantStatus: http.StatusOK,
		},
		{
			name:    "first request",
			enabled: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "limiter:10.0.0.1:curl", gomock.Any()).Return(fmt.Errorf("miss: %w", cache.Nil))
				c.EXPECT().Save(gomock.Any(), "limiter:10.0.0.1:curl", 1, 60).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantHeader: "1",
		},
		{
			name:    "over the limit",
			enabled: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*int) = 2

						return nil
					})
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:    "cache outage fails open",
			enabled: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, c := newMiddleware(t, tt.enabled)
			tt.setupMock(c)

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			req.Header.Set(constant.RequestHeaderUserAgent, "curl")

			rec := httptest.NewRecorder()
			mw.RateLimit()(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRequestID(t *testing.T) {
	mw, _ := newMiddleware(t, false)

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "abc-123")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("assigns new id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestTracing(t *testing.T) {
	mw, _ := newMiddleware(t, false)

	rec := httptest.NewRecorder()
	mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/reservations", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}
