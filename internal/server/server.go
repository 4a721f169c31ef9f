// Package server exposes colour conversion over HTTP: an HTML swatch page per
// notation, raw PNG swatches, favicons and a JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsvensson/swatch/internal/config"
	"github.com/jsvensson/swatch/internal/engine"
	"github.com/klauspost/compress/gzhttp"
	"github.com/tliron/commonlog"
)

// Server serves swatch pages and images.
type Server struct {
	cfg        *config.Config
	engine     *engine.Engine
	log        commonlog.Logger
	httpServer *http.Server
}

// New creates a Server for cfg. The page template is loaded eagerly so that a
// broken template directory fails at start-up rather than on first request.
func New(cfg *config.Config) (*Server, error) {
	e, err := engine.Load(cfg.Templates)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		engine: e,
		log:    commonlog.GetLogger("swatch.server"),
	}
	h, err := s.routes()
	if err != nil {
		return nil, err
	}
	s.httpServer = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}
	return s, nil
}

// gzipMinSize is the smallest response worth compressing.
const gzipMinSize = 256

// Handler returns the full middleware-wrapped router.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) routes() (http.Handler, error) {
	r := mux.NewRouter()
	r.StrictSlash(true)

	r.HandleFunc("/", s.handleRandomPage).Methods(http.MethodGet)
	r.HandleFunc("/random", s.handleRandomRedirect).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/favicon.ico", s.handleFavicon).Methods(http.MethodGet)
	r.HandleFunc("/favicon/{hex}", s.handleFaviconHex).Methods(http.MethodGet)
	r.HandleFunc("/api/{notation}/{code}", s.handleAPI).Methods(http.MethodGet)
	// The PNG route must precede the page route: {code} would otherwise
	// swallow the extension.
	r.HandleFunc(`/{notation}/{code:[^/]+}.png`, s.handleImage).Methods(http.MethodGet)
	r.HandleFunc("/{notation}/{code}", s.handlePage).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)

	var h http.Handler = r
	if s.cfg.Server.Gzip {
		wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(gzipMinSize))
		if err != nil {
			return nil, fmt.Errorf("configuring gzip: %w", err)
		}
		h = wrap(h)
	}
	h = s.accessLog(h)
	h = requestID(h)
	return h, nil
}

// Start listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully within the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Noticef("listening on %s", ln.Addr())
		errc <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving HTTP: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Infof("shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}
	return nil
}
