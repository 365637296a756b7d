package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"staybook/config"
	"staybook/infras/otel/mocks"
	cacheMocks "staybook/shared/cache/mocks"
	"staybook/transport/http/middleware"
	"testing"

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

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

func limitedRequest() *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/v1/hotels", nil)
	request.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	request.Header.Set("User-Agent", "curl")

	return request
}

func TestRateLimit(t *testing.T) {
	const key = "limiter:10.0.0.1:curl"

	tests := []struct {
		name           string
		enable         bool
		mock           func(c *cacheMocks.MockRedisCache)
		wantCode       int
		wantRemaining  string
		wantRetryAfter string
	}{
		{
			name:     "disabled",
			enable:   false,
			wantCode: http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:   "last allowed request",
			enable: true,
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(2), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name:   "limit exceeded",
			enable: true,
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(3), nil)
			},
			wantCode:       http.StatusTooManyRequests,
			wantRemaining:  "0",
			wantRetryAfter: "60",
		},
		{
			name:   "cache unavailable lets the request through",
			enable: true,
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(0), errors.New("redis down"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			if tt.mock != nil {
				tt.mock(redisCache)
			}

			app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(tt.enable), redisCache)

			recorder := httptest.NewRecorder()
			app.RateLimit()(okHandler()).ServeHTTP(recorder, limitedRequest())

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantRemaining, recorder.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tt.wantRetryAfter, recorder.Header().Get("Retry-After"))
		})
	}
}

func TestRateLimit_ClientKey(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(r *http.Request)
		wantKey string
	}{
		{
			name: "real ip header",
			prepare: func(r *http.Request) {
				r.Header.Set("X-Real-IP", " 172.16.0.4 ")
			},
			wantKey: "limiter:172.16.0.4:unknown",
		},
		{
			name: "peer address without port",
			prepare: func(r *http.Request) {
				r.RemoteAddr = "192.168.1.20:51234"
			},
			wantKey: "limiter:192.168.1.20:unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			redisCache.EXPECT().Increment(gomock.Any(), tt.wantKey, 60).Return(int64(1), nil)

			request := httptest.NewRequest(http.MethodGet, "/v1/hotels", nil)
			request.Header.Del("User-Agent")
			tt.prepare(request)

			app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), redisCache)
			app.RateLimit()(okHandler()).ServeHTTP(httptest.NewRecorder(), request)
		})
	}
}

func TestAccessLogAndTracing(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(false), nil)

	handler := app.Tracing(app.AccessLog(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusTeapot)
		_, _ = writer.Write([]byte("short and stout"))
	})))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Equal(t, "short and stout", recorder.Body.String())
}
