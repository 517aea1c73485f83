// Package server implements a reference server for the platform API.
// Connections and queues are stored in a bbolt database and run events in
// event files, both under a data directory.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/maruel/plx/internal/schema"
	"github.com/maruel/plx/models"
	bolt "go.etcd.io/bbolt"
	"golang.org/x/time/rate"
)

// Options configures a Server.
type Options struct {
	// Token, when set, is required on every API request as
	// "Authorization: <scheme> <token>".
	Token string
	// DataDir holds the database and the run event files.
	DataDir string
	// HealthRate and HealthBurst throttle /healthz per client IP. Zero
	// values default to 10 requests per second with a burst of 20.
	HealthRate  rate.Limit
	HealthBurst int
	// Now defaults to time.Now.
	Now func() time.Time
}

// Server is the reference API server.
type Server struct {
	doc     *openapi3.T
	docJSON []byte
	token   string
	dataDir string
	now     func() time.Time
	health  *limiters
	db      *bolt.DB

	connections *store[*models.ConnectionResponse]
	queues      *store[*models.Queue]
	eventsMu    sync.RWMutex
}

// New loads the API schema, opens the database and returns a server. Call
// Close to release the database.
func New(ctx context.Context, opts *Options) (*Server, error) {
	if opts.DataDir == "" {
		return nil, errors.New("DataDir is required")
	}
	doc, err := schema.Load(ctx)
	if err != nil {
		return nil, err
	}
	docJSON, err := schema.JSON(doc)
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(filepath.Join(opts.DataDir, "plxd.db"), 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Server{
		doc:     doc,
		docJSON: docJSON,
		token:   opts.Token,
		dataDir: opts.DataDir,
		now:     opts.Now,
		db:      db,
	}
	if s.connections, err = newStore(db, "connections", models.NewConnectionResponse); err != nil {
		_ = db.Close()
		return nil, err
	}
	if s.queues, err = newStore(db, "queues", models.NewQueue); err != nil {
		_ = db.Close()
		return nil, err
	}
	if s.now == nil {
		s.now = time.Now
	}
	limit, burst := opts.HealthRate, opts.HealthBurst
	if limit == 0 {
		limit = 10
	}
	if burst == 0 {
		burst = 20
	}
	s.health = newLimiters(limit, burst)
	return s, nil
}

// Close closes the database.
func (s *Server) Close() error {
	return s.db.Close()
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /openapi.json", s.handleOpenAPI)

	api := http.NewServeMux()
	api.HandleFunc("GET /api/v1/orgs/{owner}/connections", handle(s, s.listConnections))
	api.HandleFunc("POST /api/v1/orgs/{owner}/connections", handle(s, s.createConnection))
	api.HandleFunc("GET /api/v1/orgs/{owner}/connections/names", handle(s, s.listConnectionNames))
	api.HandleFunc("GET /api/v1/orgs/{owner}/connections/{uuid}", handle(s, s.getConnection))
	api.HandleFunc("PUT /api/v1/orgs/{owner}/connections/{uuid}", handle(s, s.updateConnection))
	api.HandleFunc("PATCH /api/v1/orgs/{owner}/connections/{uuid}", handle(s, s.patchConnection))
	api.HandleFunc("DELETE /api/v1/orgs/{owner}/connections/{uuid}", handle(s, s.deleteConnection))
	api.HandleFunc("GET /api/v1/orgs/{owner}/queues", handle(s, s.listQueues))
	api.HandleFunc("GET /api/v1/orgs/{owner}/agents/{agent}/queues", handle(s, s.listQueues))
	api.HandleFunc("POST /api/v1/orgs/{owner}/agents/{agent}/queues", handle(s, s.createQueue))
	api.HandleFunc("GET /api/v1/orgs/{owner}/agents/{agent}/queues/{uuid}", handle(s, s.getQueue))
	api.HandleFunc("DELETE /api/v1/orgs/{owner}/agents/{agent}/queues/{uuid}", handle(s, s.deleteQueue))
	api.HandleFunc("POST /streams/v1/{namespace}/_internal/{owner}/{project}/runs/{uuid}/{kind}/logs", handle(s, s.collectRunLogs))
	api.HandleFunc("GET /streams/v1/{namespace}/{owner}/{project}/runs/{uuid}/events/{kind}", handle(s, s.getRunEvents))
	api.HandleFunc("POST /streams/v1/{namespace}/{owner}/{project}/runs/{uuid}/events/{kind}", handle(s, s.logRunEvents))
	api.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, notFound("no such endpoint"))
	})
	mux.Handle("/", s.authMiddleware(api))

	// Middleware chain: logging → decompress → compress → mux.
	// Logging sees compressed bytes (accurate wire-size reporting).
	var inner http.Handler = mux
	inner = compressMiddleware(inner)
	inner = decompressMiddleware(inner)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		inner.ServeHTTP(rw, r)
		slog.InfoContext(r.Context(), "http",
			"m", r.Method,
			"p", r.URL.Path,
			"s", rw.status,
			"d", roundDuration(time.Since(start)),
			"b", rw.size,
		)
	})
}

// authMiddleware rejects requests without the configured token.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" {
			_, tok, _ := strings.Cut(r.Header.Get("Authorization"), " ")
			if tok != s.token {
				writeError(w, forbidden("you do not have permission to perform this action"))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe serves the API on addr until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		// Use Background because the parent ctx is already cancelled.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = srv.Shutdown(shutdownCtx) //nolint:contextcheck // parent ctx is already cancelled at shutdown time
		shutdownCancel()
	}()
	slog.Info("listening", "addr", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-shutdownDone
		return nil
	}
	return err
}

// responseWriter wraps http.ResponseWriter to capture status code and response size.
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// Unwrap returns the underlying ResponseWriter so http.NewResponseController
// can discover interfaces like http.Flusher.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// roundDuration rounds d to 3 significant digits with minimum 1us precision.
func roundDuration(d time.Duration) time.Duration {
	for t := 100 * time.Second; t >= 100*time.Microsecond; t /= 10 {
		if d >= t {
			return d.Round(t / 100)
		}
	}
	return d.Round(time.Microsecond)
}
