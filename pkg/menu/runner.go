package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/eventnav/pkg/config"
	"github.com/mchmarny/eventnav/pkg/identity"
	"github.com/mchmarny/eventnav/pkg/logger"
	"github.com/mchmarny/eventnav/pkg/nav"
	"github.com/mchmarny/eventnav/pkg/server"
)

var (
	version = "dev"     // Set at build time via -ldflags "-X github.com/mchmarny/eventnav/pkg/menu.version=version"
	commit  = "none"    // Set at build time via -ldflags "-X github.com/mchmarny/eventnav/pkg/menu.commit=commit"
	date    = "unknown" // Set at build time via -ldflags "-X github.com/mchmarny/eventnav/pkg/menu.date=date"
)

// LoadDefinition returns the tree named by cfg, or the built-in one.
func LoadDefinition(cfg *config.Config) (*nav.Definition, error) {
	if cfg.NavFile == "" {
		return nav.DefaultDefinition(), nil
	}
	return nav.LoadDefinition(cfg.NavFile)
}

// Authenticator returns the identity source configured by cfg.
func Authenticator(cfg *config.Config) (identity.Authenticator, error) {
	if cfg.Anonymous() {
		slog.Warn("identity tokens disabled, every request is anonymous")
		return identity.Anonymous{}, nil
	}
	tokens, err := identity.NewTokens(identity.TokenConfig{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// Build wires the menu and the server for cfg without starting it.
func Build(cfg *config.Config) (server.Server, error) {
	def, err := LoadDefinition(cfg)
	if err != nil {
		return nil, fmt.Errorf("load navigation: %w", err)
	}

	auth, err := Authenticator(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure identity: %w", err)
	}

	reg := prometheus.NewRegistry()
	m := New(def, reg,
		nav.WithMatcher(nav.Matcher{
			DashboardPath: cfg.DashboardPath,
			DefaultTitle:  cfg.DefaultTitle,
		}),
		nav.WithCollapsedSections(cfg.CollapseSections),
	)

	slog.Info("navigation loaded",
		"file", cfg.NavFile,
		"version", m.Version,
		"items", m.Resolver().Len(),
		"collapse_sections", cfg.CollapseSections)

	opts := append(transportOptions(cfg),
		server.WithErrorLog(logger.NewLogLogger(slog.LevelError, false)),
		server.WithRegistry(reg),
		server.WithMetrics(),
		server.WithSimpleHealth(),
		server.WithReadiness(server.ReadinessFunc(func(context.Context) error {
			if m.Resolver().Len() == 0 {
				return errors.New("navigation tree is empty")
			}
			return nil
		})),
		server.WithRoutes(func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(identity.Middleware(auth))
				m.Routes(r)
			})
		}),
	)

	return server.New(opts...), nil
}

// transportOptions maps the listener settings of cfg to server options.
func transportOptions(cfg *config.Config) []server.Option {
	opts := []server.Option{
		server.WithPort(cfg.Port),
		server.WithReadTimeout(cfg.ReadTimeout),
		server.WithWriteTimeout(cfg.WriteTimeout),
		server.WithIdleTimeout(cfg.IdleTimeout),
		server.WithShutdownTimeout(cfg.ShutdownTimeout),
		server.WithMaxHeaderBytes(cfg.MaxHeaderBytes),
	}
	if cfg.TLS() {
		opts = append(opts, server.WithTLS(server.TLSConfig{
			CertFile: cfg.TLSCertFile,
			KeyFile:  cfg.TLSKeyFile,
		}))
	}
	return opts
}

// Run starts the navigation server and blocks until the context is canceled or an error occurs.
func Run(ctx context.Context, cfg *config.Config) error {
	logger.SetDefault(logger.Options{
		Module:  "eventnav",
		Version: version,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
	slog.Info("starting eventnav", "commit", commit, "date", date)

	srv, err := Build(cfg)
	if err != nil {
		return err
	}

	return srv.Serve(ctx)
}
