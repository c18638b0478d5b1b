package config

import (
	_ "embed"

	"github.com/vovakirdan/svgkit/svg"
)

//go:embed defaults/svgkit.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Document: DocumentConfig{
			Width:     "100%",
			Height:    "100%",
			Generator: svg.DefaultComment,
		},
		Drawing: DrawingConfig{
			LineStroke:   svg.DefaultLineStroke,
			RectStroke:   svg.DefaultRectStroke,
			RectFill:     svg.DefaultRectFill,
			CircleFill:   svg.DefaultCircleFill,
			PolygonFill:  "black",
			TriangleFill: "black",
			StrokeWidth:  svg.DefaultStrokeWidth,
		},
		Storage: StorageConfig{
			Path: "~/.svgkit/gallery.db",
		},
	}
}
