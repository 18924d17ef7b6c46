package chain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/core"
)

// Stage transforms one buffer into a new one.
type Stage interface {
	Apply(src *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error)
}

// StageFunc adapts a function to Stage.
type StageFunc func(src *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error)

// Apply calls f.
func (f StageFunc) Apply(src *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error) {
	return f(src, opts...)
}

// Factory builds one Stage for a node.
type Factory func(p Params) (Stage, error)

// Registry maps stage type names to their factories.
type Registry struct {
	factories map[string]Factory
}

var errDuplicateStage = errors.New("chain: duplicate stage type")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given stage type.
func (r *Registry) Register(stageType string, factory Factory) error {
	if stageType == "" {
		return errors.New("chain: empty stage type")
	}

	if factory == nil {
		return errors.New("chain: nil factory")
	}

	if _, exists := r.factories[stageType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateStage, stageType)
	}

	r.factories[stageType] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(stageType string, factory Factory) {
	if err := r.Register(stageType, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the factory for the given stage type, or nil.
func (r *Registry) Lookup(stageType string) Factory {
	return r.factories[stageType]
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
