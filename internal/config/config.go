// Package config provides YAML-based configuration for svgkit: document
// defaults, drawing styles and where rendered documents are stored.
package config

import "github.com/vovakirdan/svgkit/svg"

// Config contains all svgkit configuration.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Drawing  DrawingConfig  `yaml:"drawing"`
	Storage  StorageConfig  `yaml:"storage"`
}

// DocumentConfig defines the root element of rendered documents.
type DocumentConfig struct {
	Width     string `yaml:"width"`
	Height    string `yaml:"height"`
	Unit      string `yaml:"unit"`
	Pretty    bool   `yaml:"pretty"`
	Generator string `yaml:"generator"`
}

// DrawingConfig defines the styles used when a scene shape leaves them out.
type DrawingConfig struct {
	LineStroke   string  `yaml:"line_stroke"`
	RectStroke   string  `yaml:"rect_stroke"`
	RectFill     string  `yaml:"rect_fill"`
	CircleFill   string  `yaml:"circle_fill"`
	PolygonFill  string  `yaml:"polygon_fill"`
	TriangleFill string  `yaml:"triangle_fill"`
	StrokeWidth  float64 `yaml:"stroke_width"`
}

// StorageConfig defines the document gallery database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// WriterConfig returns the svg.Config for a document with no scene-specific
// overrides.
func (c Config) WriterConfig() svg.Config {
	return svg.Config{
		Width:       c.Document.Width,
		Height:      c.Document.Height,
		PrettyPrint: c.Document.Pretty,
		UnitSuffix:  c.Document.Unit,
		Generator:   c.Document.Generator,
	}
}
