package server

import (
	"context"
	"net/http"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthTimeout = 2 * time.Second

// Check is one dependency pinged by the health endpoint. A failing critical
// check makes the service unavailable; any other failure only degrades it.
type Check struct {
	Name     string
	Critical bool
	Ping     func(ctx context.Context) error
}

// @Summary      Health check
// @Description  Probes the database and the email queue.
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Failure      503 {object} api.HealthResponse
// @Router       /health [get]
func Health(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		resp := api.HealthResponse{Status: api.StatusOK, Checks: make(map[string]string, len(checks))}
		code := http.StatusOK

		for _, check := range checks {
			if err := check.Ping(ctx); err != nil {
				logger.Warn("health check failed", "check", check.Name, "error", err)
				resp.Checks[check.Name] = "down"
				if check.Critical {
					resp.Status = api.StatusUnavailable
					code = http.StatusServiceUnavailable
				} else if resp.Status == api.StatusOK {
					resp.Status = api.StatusDegraded
				}
				continue
			}
			resp.Checks[check.Name] = "ok"
		}

		c.JSON(code, resp)
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
