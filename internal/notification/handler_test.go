package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(h *Handler, gymID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if gymID > 0 {
			c.Set("gym_id", gymID)
		}
		c.Next()
	})
	router.GET("/notifications", h.List)
	router.GET("/notifications/stream", h.Stream)
	return router
}

func TestHandler_List(t *testing.T) {
	bus := NewBus()
	bus.Publish(4, TypeClientCreated, "New client Asha")
	bus.Publish(5, TypeClientCreated, "Other tenant")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	setupRouter(NewHandler(bus), 4).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var events []Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "New client Asha", events[0].Message)
}

func TestHandler_ListWithoutGym(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	setupRouter(NewHandler(NewBus()), 0).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_StreamWritesEvents(t *testing.T) {
	bus := NewBus()
	h := NewHandler(bus)
	router := setupRouter(h, 4)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/notifications/stream", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		router.ServeHTTP(w, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return bus.SubscriberCount() == 1 }, time.Second, 5*time.Millisecond)
	bus.Publish(4, TypePaymentCreated, "Payment received")
	// give the stream a moment to write before disconnecting
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	body := w.Body.String()
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, ": connected"))
	assert.Contains(t, body, "event: payment_created")
	assert.Contains(t, body, "Payment received")
	assert.Equal(t, 0, bus.SubscriberCount())
}
