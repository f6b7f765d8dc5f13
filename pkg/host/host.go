// Package host runs introspection plugins against a shared results container.
//
// A Plugin receives the container and appends what it produces. The Host runs
// registered plugins in registration order and stops at the first failure.
package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/leapstack-labs/leapgql/pkg/core"
)

// Plugin produces models into results.
type Plugin func(ctx context.Context, results *Results) error

// Results is the shared, mutable container plugins write into.
// It is safe for concurrent use.
type Results struct {
	mu     sync.Mutex
	models []core.Model
}

// NewResults creates an empty container.
func NewResults() *Results {
	return &Results{models: []core.Model{}}
}

// Append adds models to the container in order.
func (r *Results) Append(models ...core.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models = append(r.models, models...)
}

// Models returns a copy of the collected models.
func (r *Results) Models() []core.Model {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Model, len(r.models))
	copy(out, r.models)
	return out
}

// Len returns the number of collected models.
func (r *Results) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.models)
}

type registration struct {
	name   string
	plugin Plugin
}

// Host orchestrates plugins.
type Host struct {
	plugins []registration
}

// New creates a Host with no plugins.
func New() *Host {
	return &Host{}
}

// Register adds a named plugin. Names must be unique and non-empty.
func (h *Host) Register(name string, plugin Plugin) error {
	if name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if plugin == nil {
		return fmt.Errorf("plugin %s is nil", name)
	}
	for _, r := range h.plugins {
		if r.name == name {
			return fmt.Errorf("plugin %s already registered", name)
		}
	}
	h.plugins = append(h.plugins, registration{name: name, plugin: plugin})
	return nil
}

// Plugins returns the registered plugin names in order.
func (h *Host) Plugins() []string {
	names := make([]string, len(h.plugins))
	for i, r := range h.plugins {
		names[i] = r.name
	}
	return names
}

// Run executes every plugin against a fresh container. On failure the
// partially filled container is discarded.
func (h *Host) Run(ctx context.Context) (*Results, error) {
	results := NewResults()
	for _, r := range h.plugins {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.plugin(ctx, results); err != nil {
			return nil, fmt.Errorf("plugin %s: %w", r.name, err)
		}
	}
	return results, nil
}
