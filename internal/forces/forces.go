// Package forces implements the per-tick force bindings the scene runs:
// two-body gravity, springs, drag, and collision watching with impulse-based
// or destructive resolution.
package forces

import "physics-engine/internal/body"

// Generator is one registered force binding. The scene calls Apply once per
// simulation tick, in registration order; each call reads current body state
// and accumulates forces or impulses onto its bodies. Generators hold only
// back-references to bodies — the scene owns body lifetime.
type Generator interface {
	Apply()
	// Bodies returns the bodies the generator depends on. The scene uses this
	// to drop bindings whose bodies have been removed.
	Bodies() []*body.Body
}
