package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/headlines"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// Query limits for /api/headlines.
const (
	DefaultCount = 20
	MaxCount     = 50
)

// ShutdownTimeout bounds graceful shutdown after the serve context ends.
const ShutdownTimeout = 10 * time.Second

// Server exposes headlines as JSON over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router
	logger *slog.Logger

	// Addr is the bind address, e.g. ":8080". Set before Open.
	Addr string

	Scraper             headlines.Scraper
	TopHeadlinesService headlines.TopHeadlinesService
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerLogger sets the logger used for request failures and lifecycle
// events.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server with routes wired to the given services.
func NewServer(scraper headlines.Scraper, top headlines.TopHeadlinesService, opts ...ServerOption) *Server {
	s := &Server{
		router:              chi.NewRouter(),
		logger:              slog.New(slog.DiscardHandler),
		Scraper:             scraper,
		TopHeadlinesService: top,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.SetHeader("Access-Control-Allow-Origin", "*"))

	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/headlines", s.handleHeadlines)
		r.Get("/top-headlines", s.handleTopHeadlines)
	})

	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}
	return s
}

// ServeHTTP routes a single request. Useful for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open begins listening on Addr.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	return nil
}

// URL returns the base URL of the listening server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	addr := s.ln.Addr().(*net.TCPAddr)
	host := "localhost"
	if ip := addr.IP; ip != nil && !ip.IsUnspecified() {
		host = ip.String()
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(addr.Port))
}

// Serve handles requests on the opened listener until ctx is done, then
// shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return headlines.Errorf(headlines.EINVALID, "server is not open")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server listening", "url", s.URL())
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		s.logger.Info("server shutting down")
		return s.server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Close stops the server immediately.
func (s *Server) Close() error {
	return s.server.Close()
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHeadlines(w http.ResponseWriter, r *http.Request) {
	count, err := parseCount(r.URL.Query().Get("count"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(s.Scraper.Scrape(r.Context(), count)))
}

func (s *Server) handleTopHeadlines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(s.TopHeadlinesService.TopHeadlines(r.Context())))
}

// parseCount reads the count query parameter. Empty means DefaultCount;
// values above MaxCount are clamped.
func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultCount, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, headlines.Errorf(headlines.EINVALID, "count must be a positive integer, got %q", raw)
	}
	return min(n, MaxCount), nil
}

// writeError writes err as a JSON error body with a status derived from its
// application code.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := headlines.ErrorCode(err)
	if code == headlines.EINTERNAL {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, statusCodes[code], errorResponse{Error: headlines.ErrorMessage(err)})
}

var statusCodes = map[string]int{
	headlines.EINVALID:      http.StatusBadRequest,
	headlines.ENOTFOUND:     http.StatusNotFound,
	headlines.EUNAUTHORIZED: http.StatusUnauthorized,
	headlines.EUNAVAILABLE:  http.StatusServiceUnavailable,
	headlines.EINTERNAL:     http.StatusInternalServerError,
}

func nonNil(hs []*headlines.Headline) []*headlines.Headline {
	if hs == nil {
		return []*headlines.Headline{}
	}
	return hs
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
