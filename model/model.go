package model

import (
	"context"
	"fmt"
	"sort"

	"github.com/sokinpui/hackathon.go/internal/logging"
	"github.com/sokinpui/hackathon.go/internal/models"
)

// Generator produces the payload for one generation type.
type Generator interface {
	Generate(ctx context.Context, task *models.GenerationTask) (string, error)
	// ResponseKey is the JSON key the payload is returned under.
	ResponseKey() string
}

type GeneratorProvider func() (map[models.GenerationType]Generator, error)

var providers []GeneratorProvider

func RegisterProvider(provider GeneratorProvider) {
	providers = append(providers, provider)
}

type Registry struct {
	generators map[models.GenerationType]Generator
}

// New builds a registry from every registered provider.
func New() (*Registry, error) {
	all := make(map[models.GenerationType]Generator)
	for _, provider := range providers {
		gens, err := provider()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize a generator provider: %w", err)
		}
		for t, g := range gens {
			if _, exists := all[t]; exists {
				logging.GetLogger().Warnf("Generator for type '%s' is being overwritten by a new provider.", t)
			}
			all[t] = g
		}
	}
	return &Registry{generators: all}, nil
}

// NewRegistry wraps an explicit set of generators, bypassing the registered
// providers. Tests use it to inject failing generators.
func NewRegistry(generators map[models.GenerationType]Generator) *Registry {
	return &Registry{generators: generators}
}

func (r *Registry) GetGenerator(t models.GenerationType) (Generator, error) {
	g, ok := r.generators[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGeneratorNotFound, t)
	}
	return g, nil
}

func (r *Registry) ListTypes() []string {
	keys := make([]string, 0, len(r.generators))
	for k := range r.generators {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}
