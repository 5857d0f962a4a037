package menu

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/eventnav/pkg/identity"
	"github.com/mchmarny/eventnav/pkg/metric"
	"github.com/mchmarny/eventnav/pkg/nav"
	"github.com/mchmarny/eventnav/pkg/shell"
)

// Surfaces label metrics by the output the request asked for.
const (
	SurfaceJSON   = "json"
	SurfaceTitle  = "title"
	SurfaceTopBar = "topbar"
	SurfaceDrawer = "drawer"
)

// Menu serves the navigation of the platform.
type Menu struct {
	// Version of the navigation tree.
	Version string

	resolver *nav.Resolver
	requests metric.IncrementalCounter
	latency  metric.DurationObserver
}

// New returns a Menu resolving def, registering its metrics with reg.
func New(def *nav.Definition, reg prometheus.Registerer, opts ...nav.ResolverOption) *Menu {
	return &Menu{
		Version:  def.Version,
		resolver: nav.NewResolver(def.Items, opts...),
		requests: metric.NewCounterWithRegistry(reg, "navigation_requests_total",
			"Navigation resolutions by surface and outcome.", "surface", "outcome"),
		latency: metric.NewHistogramWithRegistry(reg, "navigation_resolve_seconds",
			"Time to resolve and render navigation.", "surface"),
	}
}

// Resolver returns the underlying resolver.
func (m *Menu) Resolver() *nav.Resolver {
	return m.resolver
}

// Routes mounts the navigation endpoints on r.
func (m *Menu) Routes(r chi.Router) {
	r.Get("/api/v1/navigation", m.Handler().ServeHTTP)
	r.Get("/api/v1/navigation/title", m.TitleHandler().ServeHTTP)
	r.Get("/nav/topbar", m.ShellHandler(SurfaceTopBar, shell.TopBar).ServeHTTP)
	r.Get("/nav/drawer", m.ShellHandler(SurfaceDrawer, shell.Drawer).ServeHTTP)
}

// view resolves the navigation for the caller of r.
func (m *Menu) view(r *http.Request) nav.View {
	u := identity.FromContext(r.Context())
	return m.resolver.Resolve(nav.NewRoleSet(u.RoleCodes()...), r.URL.Query().Get("path"))
}

// Handler returns an HTTP handler that responds with the resolved navigation as JSON.
func (m *Menu) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		v := m.view(r)

		slog.Debug("navigation resolved",
			"path", v.Path,
			"title", v.Title,
			"entries", len(v.Entries),
		)

		m.finish(SurfaceJSON, start, writeJSON(w, http.StatusOK, v))
	})
}

// TitleHandler returns an HTTP handler that responds with the page title.
func (m *Menu) TitleHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		u := identity.FromContext(r.Context())
		title := m.resolver.Title(nav.NewRoleSet(u.RoleCodes()...), r.URL.Query().Get("path"))

		m.finish(SurfaceTitle, start, writeJSON(w, http.StatusOK, map[string]string{"title": title}))
	})
}

// ShellHandler returns an HTTP handler rendering the navigation with render.
func (m *Menu) ShellHandler(surface string, render shell.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var buf bytes.Buffer
		if err := shell.Render(&buf, render, m.view(r)); err != nil {
			slog.Error("failed to render navigation", "surface", surface, "error", err)
			writeError(w, http.StatusInternalServerError, "error, see logs for details")
			m.finish(surface, start, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, err := buf.WriteTo(w)
		m.finish(surface, start, err)
	})
}

func (m *Menu) finish(surface string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.requests.Increment(surface, outcome)
	m.latency.Observe(time.Since(start), surface)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	b, _ := json.Marshal(map[string]string{"error": message})
	_, _ = w.Write(b)
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, "error, see logs for details")
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		slog.Error("failed to write JSON response", "error", err)
		return err
	}
	return nil
}
