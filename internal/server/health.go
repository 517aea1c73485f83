package server

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// limiters throttles requests per client IP.
type limiters struct {
	limit rate.Limit
	burst int

	mu sync.Mutex
	m  map[string]*rate.Limiter
}

func newLimiters(limit rate.Limit, burst int) *limiters {
	return &limiters{limit: limit, burst: burst, m: map[string]*rate.Limiter{}}
}

func (l *limiters) allow(r *http.Request) bool {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	l.mu.Lock()
	lim := l.m[ip]
	if lim == nil {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.m[ip] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

type healthResp struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.health.allow(r) {
		writeError(w, tooManyRequests())
		return
	}
	writeJSON(w, http.StatusOK, &healthResp{Status: "ok"})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.docJSON)
}
