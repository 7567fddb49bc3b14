package httpapi

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// KeyLimiter rate-limits per client address.
type KeyLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func NewKeyLimiter(reqPerSec float64, burst int) *KeyLimiter {
	return &KeyLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (kl *KeyLimiter) limiterFor(key string) *rate.Limiter {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	if lim, ok := kl.m[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(kl.r, kl.b)
	kl.m[key] = lim
	return lim
}

// Allow reports whether key may make a request now.
func (kl *KeyLimiter) Allow(key string) bool {
	return kl.limiterFor(key).Allow()
}

// Middleware answers 429 once a client exceeds its budget.
func (kl *KeyLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !kl.Allow(clientKey(r)) {
			w.Header().Set("Retry-After", "1")
			WriteError(w, r, http.StatusTooManyRequests, CodeRateLimited, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return "_"
	}
	return host
}
