package profile

import (
	"sort"
	"strings"
	"sync"

	"github.com/thoreinstein/sysdoc/internal/doctor"
	"github.com/thoreinstein/sysdoc/internal/errors"
)

// Sentinel errors for registry operations.
var (
	// ErrProfileAlreadyRegistered is returned when attempting to register
	// a profile with a name that is already in use.
	ErrProfileAlreadyRegistered = errors.New("profile already registered")

	// ErrInvalidProfileName is returned when attempting to register
	// a profile without a name.
	ErrInvalidProfileName = errors.New("invalid profile name")
)

// Builder constructs the check pairs of one host profile.
//
// Build validates the profile's prerequisites, creates each data source once
// and shares it between the pairs that consume it, keeps only the pairs in
// the selected categories, and returns them in a fixed order.
type Builder interface {
	Name() string
	Build(opts Options) ([]*doctor.Pair, error)
}

// Registry maps profile identifiers to builders.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry creates a new empty profile registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]Builder),
	}
}

// Register adds a builder under its name.
// Returns an error if:
//   - The builder is nil or its name is empty
//   - A builder with the same name is already registered
func (r *Registry) Register(b Builder) error {
	if b == nil || strings.TrimSpace(b.Name()) == "" {
		return ErrInvalidProfileName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := b.Name()
	if _, exists := r.builders[name]; exists {
		return errors.Wrapf(ErrProfileAlreadyRegistered, "%q", name)
	}

	r.builders[name] = b
	return nil
}

// Get returns the builder for id. An exact match wins over a case
// insensitive one.
func (r *Registry) Get(id string) (Builder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if b, ok := r.builders[id]; ok {
		return b, true
	}
	for name, b := range r.builders {
		if strings.EqualFold(name, id) {
			return b, true
		}
	}
	return nil, false
}

// Names returns all registered profile identifiers in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns the check pairs of the profile named by opts.System.
// An unknown profile is a configuration error and no pair is built.
func (r *Registry) Build(opts Options) ([]*doctor.Pair, error) {
	b, ok := r.Get(opts.System)
	if !ok {
		return nil, errors.NewConfigError(errors.Wrapf(errors.ErrUnknownProfile,
			"%q (available: %s)", opts.System, strings.Join(r.Names(), ", ")))
	}
	return b.Build(opts)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry populated by the built-in
// profiles.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds b to the default registry. It panics on a duplicate or
// unnamed builder, which can only happen at program start up.
func Register(b Builder) {
	if err := Default().Register(b); err != nil {
		panic(err)
	}
}

// Build builds pairs from the default registry.
func Build(opts Options) ([]*doctor.Pair, error) {
	return Default().Build(opts)
}

// Names lists the profiles of the default registry.
func Names() []string {
	return Default().Names()
}
