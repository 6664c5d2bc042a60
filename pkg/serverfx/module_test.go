package serverfx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/joeydtaylor/steeze-pizza/pkg/catalog"
	"github.com/joeydtaylor/steeze-pizza/pkg/core"
	"github.com/joeydtaylor/steeze-pizza/pkg/invoke"
	"github.com/joeydtaylor/steeze-pizza/pkg/manifest"
	"github.com/joeydtaylor/steeze-pizza/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-pizza/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-pizza/pkg/transport/httpx"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func TestModuleGraph(t *testing.T) {
	if err := fx.ValidateApp(Module(WithService("pizzeria-test"))); err != nil {
		t.Fatalf("fx graph invalid: %v", err)
	}
}

func TestOptions(t *testing.T) {
	cfg := defaultConfig()
	for _, o := range []Option{
		WithService("svc"),
		WithManifestEnv("M"),
		WithDefaultManifest("m.toml"),
		WithListenEnv("L"),
		WithDefaultListen(":9999"),
		WithLogDirEnv("D"),
		WithTLSCertKeyEnv("C", "K"),
	} {
		o(&cfg)
	}
	want := Config{
		Service: "svc", ManifestEnv: "M", DefaultManifest: "m.toml", ListenEnv: "L",
		DefaultListen: ":9999", TLSCertEnv: "C", TLSKeyEnv: "K", LogDirEnv: "D",
	}
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("PIZZERIA_TEST_ADDR", ":5000")
	if got := envOr("PIZZERIA_TEST_ADDR", ":4000"); got != ":5000" {
		t.Errorf("envOr set = %q", got)
	}
	if got := envOr("PIZZERIA_TEST_UNSET", ":4000"); got != ":4000" {
		t.Errorf("envOr unset = %q", got)
	}
	if got := envOr("", ":4000"); got != ":4000" {
		t.Errorf("envOr empty key = %q", got)
	}
}

func TestRoutePattern(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Get("/pizza/{pizza_name}", func(w http.ResponseWriter, r *http.Request) {
		got = routePattern(r)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pizza/regina", nil))
	if got != "/pizza/{pizza_name}" {
		t.Errorf("routePattern = %q", got)
	}

	if p := routePattern(httptest.NewRequest(http.MethodGet, "/raw", nil)); p != "/raw" {
		t.Errorf("routePattern without chi = %q", p)
	}
}

func TestProvideManifestDefault(t *testing.T) {
	t.Setenv("PIZZERIA_TEST_MANIFEST", t.TempDir()+"/none.toml")
	cfg := defaultConfig()
	cfg.ManifestEnv = "PIZZERIA_TEST_MANIFEST"
	man, err := provideManifest(cfg)
	if err != nil {
		t.Fatalf("provideManifest: %v", err)
	}
	if len(man.Routes) == 0 {
		t.Error("default manifest has no routes")
	}
	t.Setenv("PIZZERIA_TEST_LOGDIR", "/tmp/pz")
	cfg.LogDirEnv = "PIZZERIA_TEST_LOGDIR"
	if d := provideLogDir(cfg, man); d != "/tmp/pz" {
		t.Errorf("log dir = %q", d)
	}
}

// uriSeries counts total_http_requests_to_uri series carrying uri.
func uriSeries(t *testing.T, uri string) int {
	t.Helper()
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, mf := range mfs {
		if mf.GetName() != "total_http_requests_to_uri" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "uri" && lp.GetValue() == uri {
					n++
				}
			}
		}
	}
	return n
}

func TestProvideRouterSkipsHeartbeatMetrics(t *testing.T) {
	man := manifest.Default()
	if err := man.Validate(); err != nil {
		t.Fatal(err)
	}
	h := provideRouter(routerDeps{
		Manifest: man,
		LogMW:    logger.NewMiddleware(nil),
		Metrics:  metrics.NewPromHttpHandler(zap.NewNop()),
		Router:   httpx.NewChi(),
		Lookup:   invoke.NewHandler(catalog.New()),
	})

	for _, p := range []string{core.HeartbeatPath, "/pizza/regina"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", p, rec.Code)
		}
	}

	if n := uriSeries(t, core.HeartbeatPath); n != 0 {
		t.Errorf("heartbeat recorded in %d series", n)
	}
	if n := uriSeries(t, "/pizza/{pizza_name}"); n == 0 {
		t.Error("lookup route not recorded under its pattern")
	}
}
