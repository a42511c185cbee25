package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

var TimeNow = time.Now

// Only API routes count against the quota; static assets are unmetered.
const rateLimitedPrefix = "/api/"

// RateLimitMiddleware applies a fixed-window request quota per client
// address: at most limit requests per window, the counter resetting when the
// window expires. State is process-local.
type RateLimitMiddleware struct {
	store *windowStore
}

func NewRateLimitMiddleware(limit int, window time.Duration) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		store: newWindowStore(limit, window),
	}
}

func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, rateLimitedPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		if !m.store.allow(clientKey(r)) {
			reject(w, http.StatusTooManyRequests, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Stop shuts down the store's cleanup goroutine.
func (m *RateLimitMiddleware) Stop() {
	m.store.stop()
}

type windowStore struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	windows     map[string]*windowEntry
	stopCleanup chan struct{}
}

type windowEntry struct {
	start time.Time
	count int
}

func newWindowStore(limit int, window time.Duration) *windowStore {
	store := &windowStore{
		limit:       limit,
		window:      window,
		windows:     make(map[string]*windowEntry),
		stopCleanup: make(chan struct{}),
	}

	go store.cleanupLoop()

	return store
}

func (s *windowStore) allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := TimeNow()

	entry, ok := s.windows[key]
	if !ok || now.Sub(entry.start) >= s.window {
		s.windows[key] = &windowEntry{start: now, count: 1}
		return true
	}

	entry.count++
	return entry.count <= s.limit
}

// cleanupLoop periodically drops expired windows so the map cannot grow
// without bound across many distinct client addresses.
func (s *windowStore) cleanupLoop() {
	ticker := time.NewTicker(s.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *windowStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := TimeNow()
	for key, entry := range s.windows {
		if now.Sub(entry.start) >= s.window {
			delete(s.windows, key)
		}
	}
}

func (s *windowStore) stop() {
	close(s.stopCleanup)
}

func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
