package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joeydtaylor/steeze-pizza/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-pizza/pkg/catalog"
	"github.com/joeydtaylor/steeze-pizza/pkg/core"
	"github.com/joeydtaylor/steeze-pizza/pkg/invoke"
	"github.com/joeydtaylor/steeze-pizza/pkg/invoke/httpinvoke"
	"github.com/joeydtaylor/steeze-pizza/pkg/manifest"
	"github.com/joeydtaylor/steeze-pizza/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-pizza/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-pizza/pkg/transport/httpx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ---------- Options ----------

type Config struct {
	Service         string // for logs only; manifest [server].service wins when set
	ManifestEnv     string // PIZZERIA_MANIFEST
	DefaultManifest string // e.g., "manifest.toml"
	ListenEnv       string // SERVER_LISTEN_ADDRESS
	DefaultListen   string // e.g., ":4000"
	TLSCertEnv      string // SSL_SERVER_CERTIFICATE
	TLSKeyEnv       string // SSL_SERVER_KEY
	LogDirEnv       string // PIZZERIA_LOG_DIR
}

type Option func(*Config)

func WithService(s string) Option            { return func(c *Config) { c.Service = s } }
func WithManifestEnv(k string) Option        { return func(c *Config) { c.ManifestEnv = k } }
func WithDefaultManifest(path string) Option { return func(c *Config) { c.DefaultManifest = path } }
func WithListenEnv(k string) Option          { return func(c *Config) { c.ListenEnv = k } }
func WithDefaultListen(addr string) Option   { return func(c *Config) { c.DefaultListen = addr } }
func WithLogDirEnv(k string) Option          { return func(c *Config) { c.LogDirEnv = k } }
func WithTLSCertKeyEnv(cert, key string) Option {
	return func(c *Config) { c.TLSCertEnv, c.TLSKeyEnv = cert, key }
}

func defaultConfig() Config {
	return Config{
		Service:         manifest.DefaultService,
		ManifestEnv:     "PIZZERIA_MANIFEST",
		DefaultManifest: "manifest.toml",
		ListenEnv:       "SERVER_LISTEN_ADDRESS",
		DefaultListen:   ":4000",
		TLSCertEnv:      "SSL_SERVER_CERTIFICATE",
		TLSKeyEnv:       "SSL_SERVER_KEY",
		LogDirEnv:       "PIZZERIA_LOG_DIR",
	}
}

// Module returns a complete Fx option set for the HTTP lookup server.
func Module(opts ...Option) fx.Option {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(provideManifest, provideLogDir),
		// Loggers, access log, metrics handler
		bundlefx.Module,
		// Router impl
		fx.Provide(httpx.NewChi),
		// Lookup core: one catalog per process
		fx.Provide(catalog.New, provideLookup),
		// Router
		fx.Provide(fx.Annotate(provideRouter, fx.ResultTags(`name:"app"`))),
		// Lifecycle
		fx.Invoke(registerHooks),
	)
}

// ---------- Config providers ----------

func provideManifest(cfg Config) (manifest.Config, error) {
	path := envOr(cfg.ManifestEnv, cfg.DefaultManifest)
	man, _, err := core.LoadConfigOrDefault(path)
	if err != nil {
		return manifest.Config{}, err
	}
	return man, nil
}

func provideLogDir(cfg Config, man manifest.Config) logger.Dir {
	return logger.Dir(envOr(cfg.LogDirEnv, man.Server.LogDir))
}

// ---------- Lookup ----------

func provideLookup(c *catalog.Catalog, zl *zap.Logger) *invoke.Handler {
	return invoke.NewHandler(c,
		invoke.WithLogger(zl),
		invoke.WithObserver(metrics.ObserveLookup),
	)
}

// ---------- Router ----------

type routerDeps struct {
	fx.In
	Manifest manifest.Config
	LogMW    *logger.Middleware
	Metrics  http.Handler `name:"metrics"`
	Router   httpx.Router
	Lookup   *invoke.Handler
}

func provideRouter(d routerDeps) http.Handler {
	metrics.SetPathNormalizer(routePattern)
	metrics.AddMetricsSkipPaths(core.HeartbeatPath)
	return core.BuildRouter(d.Manifest, core.BuildDeps{
		LogMW:   d.LogMW,
		Metrics: d.Metrics,
		Router:  d.Router,
		Handlers: core.Handlers{
			manifest.HandlerPizzaLookup: httpinvoke.New(d.Lookup),
		},
	})
}

// routePattern labels metrics by chi route pattern so each pizza name does
// not become its own series.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// ---------- Lifecycle (HTTP server) ----------

type serverDeps struct {
	fx.In
	Manifest manifest.Config
	Logger   *zap.Logger
	App      http.Handler `name:"app"`
}

func registerHooks(lc fx.Lifecycle, cfg Config, d serverDeps) {
	addr := envOr(cfg.ListenEnv, cfg.DefaultListen)
	cert := os.Getenv(cfg.TLSCertEnv)
	key := os.Getenv(cfg.TLSKeyEnv)
	service := d.Manifest.Server.Service
	if service == "" {
		service = cfg.Service
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      d.App,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13},
	}
	useTLS := fileExists(cert) && fileExists(key)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if useTLS {
				d.Logger.Info("server starting (TLS)",
					zap.String("service", service),
					zap.String("addr", addr),
					zap.String("cert", cert),
					zap.Int("routes", len(d.Manifest.Routes)),
				)
				go func() {
					if err := srv.ListenAndServeTLS(cert, key); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
			} else {
				d.Logger.Info("server starting (PLAINTEXT)",
					zap.String("service", service),
					zap.String("addr", addr),
					zap.Int("routes", len(d.Manifest.Routes)),
				)
				go func() {
					srv.TLSConfig = nil
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping", zap.String("service", service))
			_ = d.Logger.Sync()
			return srv.Shutdown(ctx)
		},
	})
}

// ---------- tiny helpers ----------

func envOr(k, def string) string {
	if k == "" {
		return def
	}
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
