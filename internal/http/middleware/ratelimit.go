package middleware

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter throttles dashboard API clients per IP with a token bucket.
// Buckets refill continuously at rate tokens/sec up to burst.
type RateLimiter struct {
	mu    sync.Mutex
	byIP  map[string]*ipBucket
	rate  float64
	burst float64
}

type ipBucket struct {
	remaining float64
	seen      time.Time
}

// NewRateLimiter creates a rate limiter allowing rate requests/sec with the
// given burst size per IP. A burst below 1 is raised to 1 so a configured
// limiter never rejects everything.
func NewRateLimiter(rate float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		byIP:  make(map[string]*ipBucket),
		rate:  rate,
		burst: float64(burst),
	}
	go rl.evictIdle()
	return rl
}

// Allow reports whether a request from ip fits within the limit.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.byIP[ip]
	if !ok {
		rl.byIP[ip] = &ipBucket{remaining: rl.burst - 1, seen: now}
		return true
	}

	b.remaining += now.Sub(b.seen).Seconds() * rl.rate
	if b.remaining > rl.burst {
		b.remaining = rl.burst
	}
	b.seen = now

	if b.remaining < 1 {
		return false
	}
	b.remaining--
	return true
}

// evictIdle drops buckets not seen for a while so the map stays bounded when
// many addresses poll the dashboard.
func (rl *RateLimiter) evictIdle() {
	ticker := time.NewTicker(2 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-5 * time.Minute)
		for ip, b := range rl.byIP {
			if b.seen.Before(cutoff) {
				delete(rl.byIP, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit returns an HTTP middleware that rejects requests exceeding the
// configured rate with 429 Too Many Requests.
func RateLimit(rate float64, burst int) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(rate, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			// Prefer X-Real-Ip set by chi's RealIP middleware.
			if xri := r.Header.Get("X-Real-Ip"); xri != "" {
				ip = xri
			}
			if !limiter.Allow(ip) {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
