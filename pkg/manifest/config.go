package manifest

import "github.com/go-faster/errors"

// ErrNoRoutes is returned when a manifest declares no lookup route.
var ErrNoRoutes = errors.New("manifest: at least one [[route]] is required")

// Config is the top-level manifest.
type Config struct {
	Server Server  `toml:"server"`
	Routes []Route `toml:"route"`
}

// Server holds process-level settings; empty fields fall back to defaults.
type Server struct {
	Service string `toml:"service"`
	LogDir  string `toml:"log_dir"`
}

// Default is the manifest used when no file is present: the lookup served
// by path parameter and by query string.
func Default() Config {
	return Config{
		Server: Server{Service: DefaultService, LogDir: DefaultLogDir},
		Routes: []Route{
			{Path: "/pizza/{pizza_name}", Method: "GET", Handler: HSpec{Type: HandlerPizzaLookup}},
			{Path: "/pizza", Method: "GET", Handler: HSpec{Type: HandlerPizzaLookup}},
		},
	}
}

// Validate normalizes routes in place and checks them.
func (c *Config) Validate() error {
	if c.Server.Service == "" {
		c.Server.Service = DefaultService
	}
	if c.Server.LogDir == "" {
		c.Server.LogDir = DefaultLogDir
	}
	if len(c.Routes) == 0 {
		return ErrNoRoutes
	}
	return c.validateRoutes()
}
