package scene

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/svgkit/internal/config"
	"github.com/vovakirdan/svgkit/internal/registry"
	"github.com/vovakirdan/svgkit/svg"
)

// Options override configuration for a single render. Nil fields keep the
// scene's or the configured value.
type Options struct {
	Unit   *string
	Pretty *bool
}

// Document is a rendered scene.
type Document struct {
	Name   string
	Width  string
	Height string
	SVG    []byte
}

// Renderer draws scenes with configured defaults.
type Renderer struct {
	cfg    config.Config
	logger *log.Logger
}

// NewRenderer creates a renderer. A nil logger discards log output.
func NewRenderer(cfg config.Config, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renderer{cfg: cfg, logger: logger}
}

// Render draws s into a complete SVG document. Precedence for document
// settings is opts, then the scene, then the configuration.
func (r *Renderer) Render(s *Scene, opts Options) (Document, error) {
	wc := r.cfg.WriterConfig()
	if s.Width != "" {
		wc.Width = s.Width
	}
	if s.Height != "" {
		wc.Height = s.Height
	}
	if s.Unit != nil {
		wc.UnitSuffix = *s.Unit
	}
	if opts.Unit != nil {
		wc.UnitSuffix = *opts.Unit
	}
	if opts.Pretty != nil {
		wc.PrettyPrint = *opts.Pretty
	}
	viewBox, err := s.Bounds()
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	wc.ViewBox = viewBox

	if len(s.Shapes) == 0 {
		r.logger.Warn("scene has no shapes", "scene", s.Name)
	}

	w := svg.New(wc)
	if s.CSS != "" {
		w.WriteCSS(s.CSS)
	}

	if err := r.drawAll(w, "shapes", s.Shapes); err != nil {
		return Document{}, err
	}

	if err := w.Complete().Err(); err != nil {
		return Document{}, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	r.logger.Debug("rendered scene", "scene", s.Name, "bytes", len(w.Bytes()))

	return Document{
		Name:   s.Name,
		Width:  wc.Width,
		Height: wc.Height,
		SVG:    w.Bytes(),
	}, nil
}

// drawAll draws nodes in order. prefix locates them in error messages.
func (r *Renderer) drawAll(w *svg.Writer, prefix string, nodes []yaml.Node) error {
	for i := range nodes {
		path := fmt.Sprintf("%s[%d]", prefix, i)
		c := &registry.Canvas{
			Writer: w,
			Style:  r.cfg.Drawing,
			Children: func(children []yaml.Node) error {
				return r.drawAll(w, path+".shapes", children)
			},
		}
		if err := r.draw(c, path, &nodes[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) draw(c *registry.Canvas, path string, node *yaml.Node) error {
	var head struct {
		Kind string `yaml:"kind"`
	}
	if err := node.Decode(&head); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	shape, err := registry.Create(head.Kind)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := shape.Decode(node); err != nil {
		return fmt.Errorf("%s (%s): %w", path, head.Kind, err)
	}
	r.logger.Debug("drawing shape", "path", path, "kind", head.Kind)
	if err := shape.Draw(c); err != nil {
		return fmt.Errorf("%s (%s): %w", path, head.Kind, err)
	}
	return nil
}
