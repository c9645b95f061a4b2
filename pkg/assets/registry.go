package assets

import (
	"strings"
	"sync"
)

// Registrar records the assets a page must load. Table renderers call it from
// Init.
type Registrar interface {
	AddStylesheet(path string)
}

// Registry is an ordered, de-duplicated Registrar that also tracks scripts.
// It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	stylesheets []string
	scripts     []string
	seen        map[string]struct{}
}

var _ Registrar = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// AddStylesheet records path once; blank paths are ignored.
func (r *Registry) AddStylesheet(path string) {
	r.add(&r.stylesheets, "css:", path)
}

// AddScript records a script URL once; blank paths are ignored.
func (r *Registry) AddScript(path string) {
	r.add(&r.scripts, "js:", path)
}

// Stylesheets returns the registered stylesheets in registration order.
func (r *Registry) Stylesheets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.stylesheets...)
}

// Scripts returns the registered scripts in registration order.
func (r *Registry) Scripts() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.scripts...)
}

// Reset forgets every registered asset.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stylesheets = nil
	r.scripts = nil
	r.seen = make(map[string]struct{})
}

func (r *Registry) add(list *[]string, kind, path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	key := kind + path
	if _, exists := r.seen[key]; exists {
		return
	}
	r.seen[key] = struct{}{}
	*list = append(*list, path)
}

// Tee returns a Registrar that forwards every call to each non-nil target.
func Tee(targets ...Registrar) Registrar {
	keep := make([]Registrar, 0, len(targets))
	for _, target := range targets {
		if target != nil {
			keep = append(keep, target)
		}
	}
	return teeRegistrar(keep)
}

type teeRegistrar []Registrar

func (t teeRegistrar) AddStylesheet(path string) {
	for _, target := range t {
		target.AddStylesheet(path)
	}
}
