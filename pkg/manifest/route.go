package manifest

import (
	"path"
	"strings"

	"github.com/go-faster/errors"
)

// Route describes a single HTTP route.
type Route struct {
	Path    string `toml:"path"`
	Method  string `toml:"method"`
	Policy  Policy `toml:"policy"`
	Handler HSpec  `toml:"handler"`
}

type Policy struct {
	TimeoutMS int `toml:"timeout_ms"`
}

type HSpec struct {
	Type HandlerType `toml:"type"`
}

// normalize path/method
func (r *Route) normalize() error {
	if r.Path == "" {
		return errors.New("path is required")
	}
	if !strings.HasPrefix(r.Path, "/") {
		r.Path = "/" + r.Path
	}
	if r.Path != "/" {
		r.Path = path.Clean(r.Path)
	}
	r.Method = strings.ToUpper(strings.TrimSpace(r.Method))
	if r.Method == "" {
		r.Method = "GET"
	}
	return nil
}

// validate fields that are independent of other routes.
func (r *Route) validate() error {
	switch r.Handler.Type {
	case HandlerPizzaLookup:
	case "":
		return errors.New("handler.type is required")
	default:
		return errors.Errorf("unknown handler type %q", r.Handler.Type)
	}
	if r.Policy.TimeoutMS < 0 {
		return errors.New("policy.timeout_ms must be >= 0")
	}
	return nil
}
