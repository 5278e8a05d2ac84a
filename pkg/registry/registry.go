// Package registry holds the immutable template catalogue the engine
// serves from. Construction validates the whole set up front; lookups
// afterwards cannot fail for structural reasons.
package registry

import (
	"github.com/quillon/quillon/internal/validator"
	"github.com/quillon/quillon/pkg/domain"
)

// Registry is a validated, read-only template catalogue.
// It is safe for concurrent use.
type Registry struct {
	templates []domain.Template
	index     map[string]int
}

// New builds a registry from the given templates, preserving their order.
// Every template is validated; any problem aborts construction.
func New(templates ...domain.Template) (*Registry, error) {
	if err := validator.CheckSet(templates); err != nil {
		return nil, err
	}

	r := &Registry{
		templates: make([]domain.Template, len(templates)),
		index:     make(map[string]int, len(templates)),
	}
	copy(r.templates, templates)
	for i := range r.templates {
		r.index[r.templates[i].ID] = i
	}
	return r, nil
}

// List returns the catalogue summaries in registration order.
func (r *Registry) List() []domain.Summary {
	out := make([]domain.Summary, len(r.templates))
	for i := range r.templates {
		out[i] = r.templates[i].Summary()
	}
	return out
}

// Get looks up a template by ID.
func (r *Registry) Get(id string) (*domain.Template, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return &r.templates[i], true
}

// Len reports the number of registered templates.
func (r *Registry) Len() int {
	return len(r.templates)
}
