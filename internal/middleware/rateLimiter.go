package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"lightlock/pkg/utils"
)

const (
	DefaultRequests = 20 // Steady state rate (token refilling speed)
	BurstSize       = 50 // Max burst capacity (bucket size) for traffic spikes

	VisitorTTL      = 5 * time.Minute // Time before an inactive IP is removed from memory
	CleanupInterval = 3 * time.Minute // Frequency of the cleanup routine
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int

	// Code and Message shape the 429 response.
	Code    string
	Message string

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows requests per window with the given burst. Zero
// values fall back to DefaultRequests per second and BurstSize.
func NewRateLimiter(requests int, window time.Duration, burst int) *RateLimiter {
	if window <= 0 {
		window = time.Second
	}
	if requests <= 0 {
		requests = DefaultRequests
	}
	if burst <= 0 {
		burst = BurstSize
	}

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(requests) / window.Seconds()),
		burst:    burst,
		Code:     utils.ErrRequestRateLimitExceeded,
		Message:  "Too many requests. Please wait a moment.",
		stop:     make(chan struct{}),
	}
	go rl.cleanupRoutine()
	return rl
}

// NewLoginLimiter is the strict limiter for credential checks: 1 request
// per second with a burst of 10.
func NewLoginLimiter() *RateLimiter {
	rl := NewRateLimiter(1, time.Second, 10)
	rl.Code = utils.ErrAuthRateLimitExceed
	rl.Message = "Too many login attempts. Please wait."
	return rl
}

// cleanupRoutine removes stale visitor entries until Close.
func (rl *RateLimiter) cleanupRoutine() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.forgetIdle(time.Now())
		}
	}
}

func (rl *RateLimiter) forgetIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > VisitorTTL {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// Allow consumes a token for the request's client.
func (rl *RateLimiter) Allow(r *http.Request) bool {
	return rl.getVisitor(utils.GetRealIP(r)).Allow()
}

// Middleware blocks excessive requests with a 429 JSON response.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(r) {
			utils.WriteError(w, http.StatusTooManyRequests, rl.Code, rl.Message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}
