// Package middleware provides HTTP middleware for the Vastra storefront.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterEntry pairs a token-bucket limiter with its last-seen time so the
// eviction loop can drop idle IPs.
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	limitersMu sync.Mutex
	limiters   = map[string]*limiterEntry{}
)

func init() {
	// Background goroutine: evict limiters idle for over ten minutes.
	// Prevents unbounded memory growth on long-running servers.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-10 * time.Minute)
			limitersMu.Lock()
			for ip, e := range limiters {
				if e.lastSeen.Before(cutoff) {
					delete(limiters, ip)
				}
			}
			limitersMu.Unlock()
		}
	}()
}

func getLimiter(ip string, perMinute int) *rate.Limiter {
	limitersMu.Lock()
	defer limitersMu.Unlock()

	if e, ok := limiters[ip]; ok {
		e.lastSeen = time.Now()
		return e.limiter
	}

	// Refill spread across the minute, burst of one window.
	l := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
	limiters[ip] = &limiterEntry{limiter: l, lastSeen: time.Now()}
	return l
}

// RateLimit returns a middleware that limits each IP to perMinute requests,
// token-bucket style. Example: middleware.RateLimit(120)
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				ip = fwd
			}

			if !getLimiter(ip, perMinute).Allow() {
				http.Error(w, `{"status":429,"message":"Too Many Requests"}`, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
