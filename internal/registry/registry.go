// Package registry provides a global registry for scene shape kinds.
// Shape kinds register themselves in init() functions, allowing the scene
// renderer and the CLI to discover them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/svgkit/internal/config"
	"github.com/vovakirdan/svgkit/svg"
)

// ErrUnknownKind is returned by Create for a kind nobody registered.
var ErrUnknownKind = errors.New("registry: unknown shape kind")

// Shape is one element of a scene file.
type Shape interface {
	// Kind returns the identifier used in scene files (e.g., "rect").
	Kind() string

	// Title returns a human-readable name for display (e.g., "Rectangle").
	Title() string

	// Decode reads the shape's fields from its YAML mapping.
	Decode(node *yaml.Node) error

	// Draw emits the shape onto the canvas.
	Draw(c *Canvas) error
}

// Canvas is the drawing target handed to shapes.
type Canvas struct {
	Writer *svg.Writer

	// Style supplies strokes and fills a shape leaves out.
	Style config.DrawingConfig

	// Children draws nested shape nodes, for container kinds.
	Children func(nodes []yaml.Node) error
}

// ShapeInfo contains metadata about a registered shape kind.
type ShapeInfo struct {
	Kind  string
	Title string
}

// Factory is a function that creates a new, empty shape.
type Factory func() Shape

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a shape factory to the registry.
// Panics if the kind is already registered.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("registry: shape kind %q already registered", kind))
	}

	factories[kind] = f
	titles[kind] = f().Title()
}

// List returns information about all registered shape kinds, sorted by kind.
func List() []ShapeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ShapeInfo, 0, len(factories))
	for kind := range factories {
		result = append(result, ShapeInfo{
			Kind:  kind,
			Title: titles[kind],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Create instantiates an empty shape of the given kind.
func Create(kind string) (Shape, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}

	return f(), nil
}

// Exists checks if a shape kind is registered.
func Exists(kind string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[kind]
	return ok
}
