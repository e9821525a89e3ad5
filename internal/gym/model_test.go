package gym

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewWindow(t *testing.T) {
	from := time.Date(2024, 1, 31, 22, 15, 0, 0, time.UTC)

	w := NewWindow(2, 30, from)

	assert.Equal(t, 2, w.PlanID)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), w.End)
}

func TestNewWindow_StartsOnUTCDay(t *testing.T) {
	from := time.Date(2024, 2, 1, 1, 0, 0, 0, time.FixedZone("IST", 5*60*60+30*60))

	w := NewWindow(2, 30, from)

	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), w.Start)
}

func TestUpdateGymRequest_Empty(t *testing.T) {
	assert.True(t, UpdateGymRequest{}.Empty())

	active := false
	assert.False(t, UpdateGymRequest{IsActive: &active}.Empty())
}

func TestUpdateSettingsRequest_Empty(t *testing.T) {
	assert.True(t, UpdateSettingsRequest{}.Empty())

	gst := "29ABCDE1234F1Z5"
	assert.False(t, UpdateSettingsRequest{GSTNumber: &gst}.Empty())
}
