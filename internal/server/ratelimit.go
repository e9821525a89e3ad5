package server

import (
	"net/http"
	"sync"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const sweepInterval = time.Minute

// LoginLimiter hands out one token bucket per client address. Buckets idle
// for longer than ttl are swept.
type LoginLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	*rate.Limiter
	seen time.Time
}

func NewLoginLimiter(rps float64, burst int, ttl time.Duration) *LoginLimiter {
	return &LoginLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
}

// Run sweeps idle buckets until Stop is called.
func (l *LoginLimiter) Run() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *LoginLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *LoginLimiter) sweep() int {
	cutoff := l.now().Add(-l.ttl)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for addr, b := range l.buckets {
		if b.seen.Before(cutoff) {
			delete(l.buckets, addr)
			removed++
		}
	}
	return removed
}

func (l *LoginLimiter) Allow(addr string) bool {
	now := l.now()

	l.mu.Lock()
	b, ok := l.buckets[addr]
	if !ok {
		b = &bucket{Limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[addr] = b
	}
	b.seen = now
	l.mu.Unlock()

	return b.AllowN(now, 1)
}

// Middleware rejects a caller once its bucket is empty.
func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			metrics.RecordLogin("rate_limited")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "Too many attempts, try again shortly"})
			return
		}
		c.Next()
	}
}
