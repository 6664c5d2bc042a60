package manifest

import "github.com/go-faster/errors"

// validateRoutes runs per-route checks and rejects duplicate method+path pairs.
func (c *Config) validateRoutes() error {
	seen := make(map[string]int, len(c.Routes))
	for i := range c.Routes {
		if err := c.Routes[i].normalize(); err != nil {
			return errors.Wrapf(err, "route %d", i)
		}
		if err := c.Routes[i].validate(); err != nil {
			return errors.Wrapf(err, "route %d (%s %s)", i, c.Routes[i].Method, c.Routes[i].Path)
		}
		key := c.Routes[i].Method + " " + c.Routes[i].Path
		if j, dup := seen[key]; dup {
			return errors.Errorf("route %d: %s duplicates route %d", i, key, j)
		}
		seen[key] = i
	}
	return nil
}
