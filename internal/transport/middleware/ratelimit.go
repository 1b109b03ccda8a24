package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// bucketIdleTTL is how long a client's bucket survives without requests.
const bucketIdleTTL = 10 * time.Minute

// RateLimiter is a per-client token bucket limiter keyed by the remote host.
type RateLimiter struct {
	buckets  sync.Map // map[string]*bucket
	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter starts a limiter with a background sweep of idle buckets.
// Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background sweep. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows maxPerMinute requests per client host
// and answers 429 with a Retry-After header once the bucket is empty.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	retryAfter := strconv.Itoa(int(60.0/float64(maxPerMinute)) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.getBucket(clientKey(r), maxPerMinute)
			if !b.allow(rl.now()) {
				w.Header().Set("Retry-After", retryAfter)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey drops the ephemeral port so every connection from one host shares a bucket.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) getBucket(key string, maxPerMinute int) *bucket {
	if v, ok := rl.buckets.Load(key); ok {
		return v.(*bucket)
	}

	maxTokens := float64(maxPerMinute)
	v, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: maxTokens / 60.0,
		lastRefill: rl.now(),
	})
	return v.(*bucket)
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastRefill)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.buckets.Range(func(key, value any) bool {
		if value.(*bucket).idleSince(now) > bucketIdleTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}
