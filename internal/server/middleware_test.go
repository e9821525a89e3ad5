package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitdesk/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func okRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.GET("/test/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestMetricsMiddleware(t *testing.T) {
	router := okRouter(MetricsMiddleware())
	counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/test/:id", "200")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/7", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMetricsMiddleware_Unmatched(t *testing.T) {
	router := okRouter(MetricsMiddleware())
	counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRequestLoggingMiddleware(t *testing.T) {
	router := okRouter(RequestLoggingMiddleware())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/1?x=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	router := okRouter(RequestIDMiddleware())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/1", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/test/1", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestLoginLimiter_Middleware(t *testing.T) {
	limiter := NewLoginLimiter(0.01, 3, time.Minute)
	router := okRouter(limiter.Middleware())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many attempts, try again shortly"}`, w.Body.String())
}

func TestLoginLimiter_PerAddress(t *testing.T) {
	limiter := NewLoginLimiter(0.01, 1, time.Minute)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestLoginLimiter_SweepsIdleBuckets(t *testing.T) {
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	limiter := NewLoginLimiter(0.001, 1, 10*time.Minute)
	limiter.now = func() time.Time { return clock }

	assert.True(t, limiter.Allow("10.0.0.1"))
	clock = clock.Add(5 * time.Minute)
	assert.True(t, limiter.Allow("10.0.0.2"))

	clock = clock.Add(6 * time.Minute)
	assert.Equal(t, 1, limiter.sweep())

	// a swept address starts over with a full bucket
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.2"))
}

func TestLoginLimiter_StopEndsRun(t *testing.T) {
	limiter := NewLoginLimiter(1, 1, time.Minute)
	done := make(chan struct{})
	go func() {
		limiter.Run()
		close(done)
	}()

	limiter.Stop()
	limiter.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestCorsMiddleware(t *testing.T) {
	router := okRouter(corsMiddleware())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

func TestCorsMiddleware_OPTIONS(t *testing.T) {
	router := okRouter(corsMiddleware())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/test/1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
