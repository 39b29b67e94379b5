package reports

import (
	"fmt"
)

// Registry is the startup-time provider composition: an explicit registration
// list plus the set of names enabled by configuration. Registered providers
// missing from the enabled set stay queryable but are skipped at generation
// time with outcome NotRun.
type Registry struct {
	providers []Provider
	byName    map[string]Provider
	enabled   map[string]struct{}
}

// NewRegistry registers the given providers. A duplicate provider name or an
// enabled name with no matching provider is a configuration error and fails
// construction; nothing is validated lazily at generation time.
func NewRegistry(providers []Provider, enabledNames []string) (*Registry, error) {
	byName := make(map[string]Provider, len(providers))
	for _, provider := range providers {
		name := provider.Name()
		if name == "" {
			return nil, fmt.Errorf("provider with empty name")
		}
		if _, exists := byName[name]; exists {
			return nil, fmt.Errorf("duplicate provider name %q", name)
		}
		byName[name] = provider
	}

	enabled := make(map[string]struct{}, len(enabledNames))
	for _, name := range enabledNames {
		if _, exists := byName[name]; !exists {
			return nil, fmt.Errorf("enabled provider %q is not registered", name)
		}
		enabled[name] = struct{}{}
	}

	return &Registry{providers: providers, byName: byName, enabled: enabled}, nil
}

// Providers returns every registered provider in registration order.
func (r *Registry) Providers() []Provider {
	return r.providers
}

// Lookup returns the provider registered under name.
func (r *Registry) Lookup(name string) (Provider, bool) {
	provider, ok := r.byName[name]
	return provider, ok
}

// Enabled reports whether the named provider participates in generation runs.
func (r *Registry) Enabled(name string) bool {
	_, ok := r.enabled[name]
	return ok
}
