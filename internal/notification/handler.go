package notification

import (
	"encoding/json"
	"net/http"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/auth"
	"fitdesk/internal/logger"

	"github.com/gin-gonic/gin"
)

const keepaliveInterval = 30 * time.Second

type Handler struct {
	bus       *Bus
	keepalive time.Duration
}

func NewHandler(bus *Bus) *Handler {
	return &Handler{bus: bus, keepalive: keepaliveInterval}
}

// List godoc
// @Summary      Recent notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {array}   Event
// @Failure      403  {object}  api.ErrorResponse
// @Router       /dashboard/notifications [get]
func (h *Handler) List(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.bus.Recent(gymID))
}

// Stream godoc
// @Summary      Live notification stream
// @Tags         notifications
// @Produce      text/event-stream
// @Router       /dashboard/notifications/stream [get]
func (h *Handler) Stream(c *gin.Context) {
	gymID, err := auth.TenantID(c)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	sub := h.bus.Subscribe(gymID)
	defer h.bus.Unsubscribe(sub)

	if _, err := c.Writer.WriteString(": connected\n\n"); err != nil {
		return
	}
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, open := <-sub.C:
			if !open {
				logger.Debug("notification stream evicted", "gym_id", gymID, "subscription", sub.ID)
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				logger.Error("failed to encode notification", "error", err)
				continue
			}
			if _, err := c.Writer.WriteString("event: " + ev.Type + "\ndata: " + string(data) + "\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		case <-ticker.C:
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
