// Package http exposes the ledger as a JSON API for the presentation
// layer: the four add/remove pairs, filtered listings, summaries and
// rendered charts.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"petledger/internal/config"
	"petledger/internal/ledger"
)

type Server struct {
	http.Server
	store        *ledger.Store
	yearFrom     int
	yearTo       int
	rateLimiter  *rateLimiter
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server around the given ledger store.
func NewServer(addr string, store *ledger.Store, cfg *config.Config) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:       store,
		yearFrom:    cfg.StatsYearFrom,
		yearTo:      cfg.StatsYearTo,
		rateLimiter: newRateLimiter(),
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("GET /api/living-expenses", s.withCommon(s.handleListLivingExpenses))
	mux.HandleFunc("POST /api/living-expenses", s.withCommon(s.handleCreateLivingExpense))
	mux.HandleFunc("DELETE /api/living-expenses/{id}", s.withCommon(s.removeHandler(ledger.KindLivingExpense)))

	mux.HandleFunc("GET /api/medical-expenses", s.withCommon(s.handleListMedicalExpenses))
	mux.HandleFunc("POST /api/medical-expenses", s.withCommon(s.handleCreateMedicalExpense))
	mux.HandleFunc("DELETE /api/medical-expenses/{id}", s.withCommon(s.removeHandler(ledger.KindMedicalExpense)))

	mux.HandleFunc("GET /api/initial-costs", s.withCommon(s.handleListInitialCosts))
	mux.HandleFunc("POST /api/initial-costs", s.withCommon(s.handleCreateInitialCost))
	mux.HandleFunc("DELETE /api/initial-costs/{id}", s.withCommon(s.removeHandler(ledger.KindInitialCost)))

	mux.HandleFunc("GET /api/incomes", s.withCommon(s.handleListIncomes))
	mux.HandleFunc("POST /api/incomes", s.withCommon(s.handleCreateIncome))
	mux.HandleFunc("DELETE /api/incomes/{id}", s.withCommon(s.removeHandler(ledger.KindIncome)))

	mux.HandleFunc("GET /api/summary", s.withCommon(s.handleSummary))
	mux.HandleFunc("GET /api/monthly", s.withCommon(s.handleMonthly))
	mux.HandleFunc("GET /api/years", s.withCommon(s.handleYears))
	mux.HandleFunc("GET /charts/monthly.png", s.withCommon(s.handleMonthlyChart))
	mux.HandleFunc("GET /charts/categories.png", s.withCommon(s.handleCategoryChart))

	return s
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// withCommon adds security headers, rate limiting and request logging.
func (s *Server) withCommon(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP)

		// Mutations are rate limited; reads are not.
		if (r.Method == http.MethodPost || r.Method == http.MethodDelete) && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"client_ip", clientIP)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// Simple in-memory rate limiter
type rateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientInfo
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type clientInfo struct {
	lastRequest time.Time
	requests    int
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{
		clients:     make(map[string]*clientInfo),
		stopCleanup: make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

func (rl *rateLimiter) startCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries removes client entries older than 10 minutes
func (rl *rateLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, client := range rl.clients {
		if client.lastRequest.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		if rl.stopCleanup != nil {
			close(rl.stopCleanup)
		}
	})
}

func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientIP]

	if !exists {
		rl.clients[clientIP] = &clientInfo{
			lastRequest: now,
			requests:    1,
		}
		return true
	}

	if now.Sub(client.lastRequest) > time.Minute {
		client.requests = 1
		client.lastRequest = now
		return true
	}

	// Allow up to 60 mutations per minute per client.
	client.requests++
	client.lastRequest = now

	return client.requests <= 60
}
