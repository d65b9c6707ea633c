// Package debugserver exposes the viewer's current inputs and draw list
// over HTTP for headless inspection.
package debugserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"bobfviewer/pkg/engine/world"
	"bobfviewer/pkg/game/state"
	"bobfviewer/pkg/game/visual"
)

const shutdownTimeout = 5 * time.Second

// Handler serves the debug API
type Handler struct {
	store   *state.Store
	builder *visual.Builder
	log     logrus.FieldLogger
}

// NewHandler creates a handler reading from store
func NewHandler(store *state.Store, builder *visual.Builder, log logrus.FieldLogger) *Handler {
	return &Handler{store: store, builder: builder, log: log}
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/frame", h.GetFrame)
		r.Get("/map", h.GetMap)
		r.Get("/flags", h.GetFlags)
		r.Put("/flags", h.PutFlags)
	})

	return r
}

// Health handles GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"hasMap":   snap.Map != nil,
		"hasState": snap.State != nil,
		"version":  snap.Version,
	})
}

// GetFrame handles GET /api/frame. An optional width query parameter
// overrides the container width.
func (h *Handler) GetFrame(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	scene := visual.SceneFromSnapshot(snap)

	if raw := r.URL.Query().Get("width"); raw != "" {
		width, err := strconv.Atoi(raw)
		if err != nil || width < 0 {
			respondError(w, http.StatusBadRequest, "Invalid width")
			return
		}
		scene.ContainerWidth = &width
	}

	frame, ok := h.builder.Build(scene)
	if !ok {
		respondError(w, http.StatusServiceUnavailable, "Loading")
		return
	}
	respondJSON(w, http.StatusOK, frame)
}

type mapResponse struct {
	Map          *world.GameMap      `json:"map"`
	StaticTiles  int                 `json:"staticTiles"`
	Unknown      []world.UnknownTile `json:"unknown"`
	UnknownCodes []string            `json:"unknownCodes"`
}

// GetMap handles GET /api/map
func (h *Handler) GetMap(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	if snap.Map == nil {
		msg := "No game map"
		if snap.MapErr != nil {
			msg = snap.MapErr.Error()
		}
		respondError(w, http.StatusServiceUnavailable, msg)
		return
	}

	report := world.ClassifyMap(snap.Map)
	resp := mapResponse{
		Map:          snap.Map,
		StaticTiles:  len(report.Static),
		Unknown:      report.Unknown,
		UnknownCodes: []string{},
	}
	report.UnknownCodes.Each(func(code rune) {
		resp.UnknownCodes = append(resp.UnknownCodes, string(code))
	})
	respondJSON(w, http.StatusOK, resp)
}

// GetFlags handles GET /api/flags
func (h *Handler) GetFlags(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Snapshot().Flags)
}

// PutFlags handles PUT /api/flags
func (h *Handler) PutFlags(w http.ResponseWriter, r *http.Request) {
	var flags state.Flags
	if err := json.NewDecoder(r.Body).Decode(&flags); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.store.UpdateFlags(func(f *state.Flags) { *f = flags })
	respondJSON(w, http.StatusOK, flags)
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start),
		}).Debug("HTTP request")
	})
}

// ListenAndServe serves the debug API on addr until ctx is done
func ListenAndServe(ctx context.Context, addr string, h *Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           SetupRoutes(h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			h.log.WithError(err).Warn("Debug server shutdown failed")
		}
	}()

	h.log.WithField("addr", addr).Info("Debug server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Error("Error encoding JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
