// Package httpapi exposes the hotline services over HTTP and serves the
// realtime websocket.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/hotline/internal/adapters/realtime"
	"github.com/renato0307/hotline/internal/domain"
	"github.com/renato0307/hotline/internal/logging"
	"github.com/renato0307/hotline/internal/services"
)

const (
	shutdownTimeout = 5 * time.Second
	maxJSONBody     = 1 << 20
	maxUploadFiles  = 10
)

// Deps are the services behind the API
type Deps struct {
	HookConfig *services.HookConfigService
	Hub        *realtime.Hub
	Ledger     *services.LedgerService
	Sounds     *services.SoundService
}

// Options tune the server
type Options struct {
	StaticDir string
	Version   string
}

// Server is the hotline HTTP server
type Server struct {
	deps Deps
	h    *http.Server
	opts Options
}

// NewServer wires every route onto a new server
func NewServer(deps Deps, opts Options) *Server {
	s := &Server{
		deps: deps,
		opts: opts,
	}

	c := &controller{Server: s}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", c.handleGetHealth)
	mux.HandleFunc("GET /api/hooks", c.handleGetHooks)
	mux.HandleFunc("POST /api/hooks", c.handlePostHooks)
	mux.HandleFunc("POST /api/hooks/apply", c.handlePostHooksApply)
	mux.HandleFunc("GET /api/hook-ui-config", c.handleGetHookUIConfig)
	mux.HandleFunc("POST /api/hook-ui-config", c.handlePostHookUIConfig)
	mux.HandleFunc("POST /api/hook-ui-config/{hookType}/entries", c.handlePostHookEntry)
	mux.HandleFunc("DELETE /api/hook-ui-config/{hookType}/entries/{index}", c.handleDeleteHookEntry)
	mux.HandleFunc("PATCH /api/hook-ui-config/{hookType}/entries/{index}", c.handlePatchHookEntry)
	mux.HandleFunc("GET /api/logs", c.handleGetLogs)
	mux.HandleFunc("GET /api/logs/export", c.handleGetLogsExport)
	mux.HandleFunc("GET /api/logs/{id}", c.handleGetLog)
	mux.HandleFunc("POST /api/logs", c.handlePostLog)
	mux.HandleFunc("DELETE /api/logs", c.handleDeleteLogs)
	mux.HandleFunc("POST /api/test-hook", c.handlePostTestHook)
	mux.HandleFunc("GET /api/sounds", c.handleGetSounds)
	mux.HandleFunc("POST /api/sounds", c.handlePostSounds)
	mux.HandleFunc("DELETE /api/sounds/{filename}", c.handleDeleteSound)
	mux.HandleFunc("GET /api/sounds/play/{filename}", c.handleGetSoundPlay)
	mux.HandleFunc("GET /api/", c.handleNotFound)
	mux.Handle("GET /ws", deps.Hub)
	mux.Handle("GET /", c.staticHandler())

	s.h = &http.Server{
		Handler:           recoverHandler(corsHandler(deps.Hub.OriginAllowed, loggingHandler(mux))),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.h.Handler
}

// Run serves on ln until ctx ends, then shuts down gracefully
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Logger.Info("HTTP server listening", "addr", ln.Addr().String())
		if err := s.h.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logging.Logger.Info("HTTP server shutting down")
		if err := s.h.Shutdown(shutdownCtx); err != nil {
			return s.h.Close()
		}
		return nil
	})

	return g.Wait()
}

type controller struct {
	*Server
}

func jsonEncode(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func jsonStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, status int, message string) {
	jsonStatus(w, status, Error{Error: message})
}

// errUnsupportedMediaType rejects bodies not declared as application/json
var errUnsupportedMediaType = errors.New("content type must be application/json")

func requireJSON(r *http.Request) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return errUnsupportedMediaType
	}
	return nil
}

// decodeJSON reads a bounded JSON body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := requireJSON(r); err != nil {
		return err
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidField, err)
	}
	return nil
}

// writeError maps domain errors onto status codes. Storage details stay in
// the server log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errUnsupportedMediaType):
		jsonError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		jsonError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnknownHookType):
		jsonError(w, http.StatusBadRequest, "unknown hook type")
	case errors.Is(err, domain.ErrInvalidField), errors.Is(err, domain.ErrInvalidUpload):
		jsonError(w, http.StatusBadRequest, err.Error())
	default:
		logError(r, "request failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (c *controller) handleNotFound(w http.ResponseWriter, r *http.Request) {
	jsonError(w, http.StatusNotFound, "not found")
}

func (c *controller) handleGetHealth(w http.ResponseWriter, r *http.Request) {
	jsonEncode(w, Health{
		Status:      "ok",
		Subscribers: c.deps.Hub.Count(),
		Time:        time.Now().UTC(),
		Version:     c.opts.Version,
	})
}
