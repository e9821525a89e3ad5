package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPeriod(t *testing.T) {
	p := NewPeriod(time.Date(2024, 5, 10, 18, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), p.Today)
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), p.ExpiringBy)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), p.MonthStart)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), p.LastMonthStart)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), p.SeriesStart)
}

func TestNewPeriod_January(t *testing.T) {
	p := NewPeriod(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), p.LastMonthStart)
	assert.Equal(t, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), p.SeriesStart)
	assert.Equal(t, time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC), p.ExpiringBy)
}

func TestNewPeriod_UsesUTCDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)

	p := NewPeriod(time.Date(2024, 6, 1, 2, 0, 0, 0, ist))

	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), p.Today)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), p.MonthStart)
}
