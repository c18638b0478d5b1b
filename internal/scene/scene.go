// Package scene reads YAML scene files and renders them to SVG.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/svgkit/geom"
)

// ErrInvalidScene is returned for scene files that parse as YAML but do
// not describe a drawable scene.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Scene represents the YAML structure of a scene file.
type Scene struct {
	Name    string      `yaml:"name"`
	Width   string      `yaml:"width,omitempty"`
	Height  string      `yaml:"height,omitempty"`
	ViewBox []any       `yaml:"view_box,omitempty"`
	Unit    *string     `yaml:"unit,omitempty"` // nil keeps the configured unit
	CSS     string      `yaml:"css,omitempty"`
	Shapes  []yaml.Node `yaml:"shapes"`
}

// Parse parses a YAML scene file.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(s.ViewBox) != 0 && len(s.ViewBox) != 4 {
		return nil, fmt.Errorf("%w: view_box needs 4 numbers, got %d", ErrInvalidScene, len(s.ViewBox))
	}
	return &s, nil
}

// LoadFile reads and parses the scene at path. A scene without a name is
// named after its file.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = baseName(path)
	}
	return s, nil
}

// Bounds returns the scene's viewBox, or nil if it has none.
func (s *Scene) Bounds() (*geom.Rectangle, error) {
	if len(s.ViewBox) == 0 {
		return nil, nil
	}
	origin, err := geom.VectorFrom(s.ViewBox[0], s.ViewBox[1])
	if err != nil {
		return nil, fmt.Errorf("view_box: %w", err)
	}
	size, err := geom.VectorFrom(s.ViewBox[2], s.ViewBox[3])
	if err != nil {
		return nil, fmt.Errorf("view_box: %w", err)
	}
	r := geom.NewRectangle(origin.X, origin.Y, size.X, size.Y)
	return &r, nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
