package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"medibook/pkg/response"

	"golang.org/x/time/rate"
)

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimitMiddleware applies a per-IP token bucket, used on the
// credential endpoints to keep the bcrypt path from being hammered.
type RateLimitMiddleware struct {
	mu      sync.Mutex
	clients map[string]*client
	r       rate.Limit
	burst   int
}

func NewRateLimitMiddleware(rps float64, burst int) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		clients: make(map[string]*client),
		r:       rate.Limit(rps),
		burst:   burst,
	}
	// cleanup stale entries every minute
	go func() {
		for {
			time.Sleep(time.Minute)
			m.mu.Lock()
			for ip, c := range m.clients {
				if time.Since(c.seen) > 3*time.Minute {
					delete(m.clients, ip)
				}
			}
			m.mu.Unlock()
		}
	}()
	return m
}

func (m *RateLimitMiddleware) get(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.clients[ip]; ok {
		c.seen = time.Now()
		return c.lim
	}
	l := rate.NewLimiter(m.r, m.burst)
	m.clients[ip] = &client{lim: l, seen: time.Now()}
	return l
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !m.get(ip).Allow() {
			response.TooManyRequests(w, "Too many requests, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}
