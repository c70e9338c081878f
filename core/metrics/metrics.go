// Package metrics defines the observability hooks of the factory registry.
// Implementations live in infra/metrics.
package metrics

import "github.com/heron-ml/heron/core/object"

// Outcome classifies a single create attempt.
type Outcome string

const (
	// OutcomeHit means the lookup found a constructor and a fresh instance
	// was allocated.
	OutcomeHit Outcome = "hit"
	// OutcomeMiss means no constructor is registered for the key.
	OutcomeMiss Outcome = "miss"
	// OutcomeMismatch means the class exists but could not be narrowed to
	// the requested capability.
	OutcomeMismatch Outcome = "mismatch"
)

// Recorder records create attempts for observability purposes.
type Recorder interface {
	RecordCreate(class string, pt object.PrimitiveType, outcome Outcome)
}

// Config holds metrics settings.
type Config struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Namespace == "" {
		c.Namespace = "heron"
	}
}

// NopRecorder discards all events.
type NopRecorder struct{}

func (NopRecorder) RecordCreate(string, object.PrimitiveType, Outcome) {}
