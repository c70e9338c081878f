// Package factory provides the name-based object registry heron uses to
// instantiate algorithm classes. A class is registered once under its name
// and primitive-type tag together with a zero-argument constructor; callers
// create fresh instances by name and narrow them to the capability they
// need.
//
// Example usage:
//
//	reg := factory.NewRegistry()
//	factory.MustRegister(reg, "GaussianKernel", object.PTFloat64, func() object.Object {
//	    return kernel.NewGaussianKernel(1.0)
//	})
//	k, err := factory.CreateObject[kernel.Kernel](reg, "GaussianKernel", object.PTFloat64)
package factory

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/heron-ml/heron/core/logger"
	"github.com/heron-ml/heron/core/metrics"
	"github.com/heron-ml/heron/core/object"
	"github.com/heron-ml/heron/internal/strdist"
)

var (
	// ErrDuplicate indicates a second registration for the same name and tag.
	ErrDuplicate = errors.New("factory: duplicate registration")
	// ErrClassNotFound indicates that no class is registered under the
	// requested name and tag.
	ErrClassNotFound = errors.New("factory: class not found")
	// ErrTypeMismatch indicates that the class exists but does not satisfy
	// the requested capability.
	ErrTypeMismatch = errors.New("factory: type mismatch")
)

// Constructor allocates a fresh instance of a registered class. Each call
// must return an independent object.
type Constructor func() object.Object

// Key identifies a registered class: the class name plus the primitive-type
// variant requested.
type Key struct {
	Name string
	Type object.PrimitiveType
}

func (k Key) String() string { return k.Name + "[" + k.Type.String() + "]" }

// Registry maps (name, primitive type) to constructors. It follows a
// populate-then-freeze lifecycle: registrations happen during startup,
// lookups may then run concurrently from any goroutine.
type Registry struct {
	mu           sync.RWMutex
	constructors map[Key]Constructor
	log          logger.Logger
	rec          metrics.Recorder
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l logger.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRecorder attaches a metrics recorder for create attempts.
func WithRecorder(rec metrics.Recorder) Option {
	return func(r *Registry) {
		if rec != nil {
			r.rec = rec
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		constructors: make(map[Key]Constructor),
		log:          nopLogger{},
		rec:          metrics.NopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a constructor for the given class name and tag. Registering
// the same key twice is a programming error and returns ErrDuplicate.
func (r *Registry) Register(name string, pt object.PrimitiveType, c Constructor) error {
	if name == "" {
		return fmt.Errorf("factory: empty class name")
	}
	if c == nil {
		return fmt.Errorf("factory: nil constructor for %s", name)
	}
	k := Key{Name: name, Type: pt}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.constructors[k]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, k)
	}
	r.constructors[k] = c
	r.log.Debugf("registered %s", k)
	return nil
}

// MustRegister panics on registration error. Used by the builtin bootstrap,
// where a duplicate means a broken catalog.
func MustRegister(r *Registry, name string, pt object.PrimitiveType, c Constructor) {
	if err := r.Register(name, pt, c); err != nil {
		panic(err)
	}
}

// Lookup returns the constructor bound to the key, if any. It never
// allocates an instance.
func (r *Registry) Lookup(name string, pt object.PrimitiveType) (Constructor, bool) {
	r.mu.RLock()
	c, ok := r.constructors[Key{Name: name, Type: pt}]
	r.mu.RUnlock()
	return c, ok
}

// Create allocates a fresh instance of the class registered under name and
// pt, or returns nil when the key is unknown. It never fails: callers that
// need a loud error use CreateObject.
func (r *Registry) Create(name string, pt object.PrimitiveType) object.Object {
	c, ok := r.Lookup(name, pt)
	if !ok {
		r.rec.RecordCreate(name, pt, metrics.OutcomeMiss)
		r.log.Debugw("create miss", map[string]any{"class": name, "type": pt.String()})
		return nil
	}
	obj := c()
	r.rec.RecordCreate(name, pt, metrics.OutcomeHit)
	return obj
}

// AvailableObjects returns the distinct registered class names in
// lexicographic order. Primitive-type variants of a class collapse to one
// name.
func (r *Registry) AvailableObjects() []string {
	r.mu.RLock()
	seen := make(map[string]struct{}, len(r.constructors))
	for k := range r.constructors {
		seen[k.Name] = struct{}{}
	}
	r.mu.RUnlock()

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FindCorrectName returns the registered class name closest to name by edit
// distance, for use in "did you mean" diagnostics. Ties resolve to the
// lexicographically first candidate; an empty registry yields "".
func (r *Registry) FindCorrectName(name string) string {
	best := ""
	bestDist := -1
	for _, candidate := range r.AvailableObjects() {
		d := strdist.Levenshtein(name, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

func (r *Registry) observeMismatch(name string, pt object.PrimitiveType) {
	r.rec.RecordCreate(name, pt, metrics.OutcomeMismatch)
}

// nopLogger avoids a core->infra import for the default logger.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
