package metrics

import (
	"net/http"
	"strings"
	"sync"
)

// labelling holds the process-wide rules Collect applies before recording.
type labelling struct {
	mu        sync.RWMutex
	skip      map[string]struct{}
	normalize func(*http.Request) string
}

var rules = &labelling{
	skip:      map[string]struct{}{"/metrics": {}},
	normalize: func(r *http.Request) string { return r.URL.Path },
}

// AddMetricsSkipPaths excludes exact request paths from the HTTP collectors.
// "/metrics" is always skipped.
func AddMetricsSkipPaths(paths ...string) {
	rules.mu.Lock()
	defer rules.mu.Unlock()
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			rules.skip[p] = struct{}{}
		}
	}
}

// SetPathNormalizer replaces the function producing the uri label.
// A nil fn is ignored.
func SetPathNormalizer(fn func(*http.Request) string) {
	if fn == nil {
		return
	}
	rules.mu.Lock()
	rules.normalize = fn
	rules.mu.Unlock()
}

// label reports the uri label for r, and false when r must not be recorded.
func (l *labelling) label(r *http.Request) (string, bool) {
	l.mu.RLock()
	_, skipped := l.skip[r.URL.Path]
	fn := l.normalize
	l.mu.RUnlock()
	if skipped {
		return "", false
	}
	return fn(r), true
}
