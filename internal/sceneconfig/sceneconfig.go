// Package sceneconfig loads declarative scene files: bodies and the force
// bindings between them, in YAML.
package sceneconfig

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"physics-engine/internal/body"
	"physics-engine/internal/geometry"
	"physics-engine/internal/scene"
)

// Config is a scene description. Bodies are declared by name and referenced by
// name from force bindings.
type Config struct {
	Name   string        `yaml:"name"`
	Bodies []BodyConfig  `yaml:"bodies"`
	Forces []ForceConfig `yaml:"forces"`
}

// BodyConfig describes one body. The shape is either a regular polygon
// (sides + radius), a rectangle (width + height), or explicit counterclockwise
// vertices. Use `.inf` for the mass of an immovable body.
type BodyConfig struct {
	Name     string       `yaml:"name"`
	Mass     float64      `yaml:"mass"`
	Sides    int          `yaml:"sides,omitempty"`
	Radius   float64      `yaml:"radius,omitempty"`
	Width    float64      `yaml:"width,omitempty"`
	Height   float64      `yaml:"height,omitempty"`
	Vertices [][2]float64 `yaml:"vertices,omitempty"`
	Position [2]float64   `yaml:"position"`
	Velocity [2]float64   `yaml:"velocity"`
}

// ForceConfig describes one force binding. Kind is one of gravity, spring,
// drag, physics, destructive. Constant carries G for gravity, k for spring,
// and gamma for drag; Elasticity applies only to physics bindings. Gravity
// bindings may not reference immovable bodies.
type ForceConfig struct {
	Kind       string   `yaml:"kind"`
	Constant   float64  `yaml:"constant,omitempty"`
	Elasticity float64  `yaml:"elasticity,omitempty"`
	Bodies     []string `yaml:"bodies"`
}

// Load reads and parses a scene file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse scene config %s: %w", path, err)
	}
	return &c, nil
}

// Build validates the config and assembles a scene from it.
func (c *Config) Build() (*scene.Scene, error) {
	s := scene.New()
	byName := make(map[string]*body.Body, len(c.Bodies))
	for i, bc := range c.Bodies {
		if bc.Name == "" {
			return nil, fmt.Errorf("body %d: missing name", i)
		}
		if _, dup := byName[bc.Name]; dup {
			return nil, fmt.Errorf("body %q: duplicate name", bc.Name)
		}
		if bc.Mass <= 0 && !math.IsInf(bc.Mass, 1) {
			return nil, fmt.Errorf("body %q: mass must be positive or .inf", bc.Name)
		}
		shape, err := bc.shape()
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", bc.Name, err)
		}
		b := body.New(shape, bc.Mass)
		b.SetVelocity(geometry.Vec2{X: bc.Velocity[0], Y: bc.Velocity[1]})
		byName[bc.Name] = b
		s.Add(b)
	}

	for i, fc := range c.Forces {
		bound := make([]*body.Body, len(fc.Bodies))
		for j, name := range fc.Bodies {
			b, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("force %d: unknown body %q", i, name)
			}
			bound[j] = b
		}
		if err := register(s, fc, bound); err != nil {
			return nil, fmt.Errorf("force %d: %w", i, err)
		}
	}
	return s, nil
}

// shape builds the polygon at the configured position.
func (bc BodyConfig) shape() (geometry.Polygon, error) {
	center := geometry.Vec2{X: bc.Position[0], Y: bc.Position[1]}
	switch {
	case len(bc.Vertices) > 0:
		if len(bc.Vertices) < 3 {
			return nil, fmt.Errorf("polygon needs at least 3 vertices, got %d", len(bc.Vertices))
		}
		p := make(geometry.Polygon, len(bc.Vertices))
		for i, v := range bc.Vertices {
			p[i] = geometry.Vec2{X: v[0], Y: v[1]}.Add(center)
		}
		return p, nil
	case bc.Sides != 0:
		if bc.Sides < 3 {
			return nil, fmt.Errorf("regular polygon needs at least 3 sides, got %d", bc.Sides)
		}
		if bc.Radius <= 0 {
			return nil, fmt.Errorf("regular polygon needs a positive radius")
		}
		return geometry.Regular(bc.Sides, bc.Radius, center), nil
	case bc.Width > 0 && bc.Height > 0:
		return geometry.Rect(bc.Width, bc.Height, center), nil
	default:
		return nil, fmt.Errorf("shape requires vertices, sides+radius, or width+height")
	}
}

func register(s *scene.Scene, fc ForceConfig, bound []*body.Body) error {
	want := 2
	if fc.Kind == "drag" {
		want = 1
	}
	if len(bound) != want {
		return fmt.Errorf("%s binding needs %d bodies, got %d", fc.Kind, want, len(bound))
	}
	switch fc.Kind {
	case "gravity":
		for i, b := range bound {
			if math.IsInf(b.Mass(), 1) {
				return fmt.Errorf("gravity binding on immovable body %q", fc.Bodies[i])
			}
		}
		s.CreateGravity(fc.Constant, bound[0], bound[1])
	case "spring":
		s.CreateSpring(fc.Constant, bound[0], bound[1])
	case "drag":
		s.CreateDrag(fc.Constant, bound[0])
	case "physics":
		if fc.Elasticity < 0 || fc.Elasticity > 1 {
			return fmt.Errorf("elasticity must be in [0, 1], got %g", fc.Elasticity)
		}
		s.CreatePhysicsCollision(bound[0], bound[1], fc.Elasticity)
	case "destructive":
		s.CreateDestructiveCollision(bound[0], bound[1])
	default:
		return fmt.Errorf("unknown force kind %q", fc.Kind)
	}
	return nil
}
