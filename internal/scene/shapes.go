package scene

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/svgkit/geom"
	"github.com/vovakirdan/svgkit/internal/registry"
)

func init() {
	registry.Register("rect", func() registry.Shape { return &rectShape{} })
	registry.Register("circle", func() registry.Shape { return &circleShape{} })
	registry.Register("line", func() registry.Shape { return &lineShape{} })
	registry.Register("polygon", func() registry.Shape { return &polygonShape{} })
	registry.Register("triangle", func() registry.Shape { return &triangleShape{} })
	registry.Register("text", func() registry.Shape { return &textShape{} })
	registry.Register("group", func() registry.Shape { return &groupShape{} })
	registry.Register("scale", func() registry.Shape { return &scaleShape{} })
}

// style holds the optional paint fields shared by several kinds.
type style struct {
	Stroke      string   `yaml:"stroke"`
	StrokeWidth *float64 `yaml:"stroke_width"`
	Fill        string   `yaml:"fill"`
}

func (s style) validate() error {
	if s.StrokeWidth == nil {
		return nil
	}
	if *s.StrokeWidth < 0 {
		return fmt.Errorf("stroke_width: %w: %v", geom.ErrInvalidArgument, *s.StrokeWidth)
	}
	return finite("stroke_width", *s.StrokeWidth)
}

func (s style) stroke(fallback string) string {
	return orDefault(s.Stroke, fallback)
}

func (s style) fill(fallback string) string {
	return orDefault(s.Fill, fallback)
}

func (s style) width(fallback float64) float64 {
	if s.StrokeWidth == nil {
		return fallback
	}
	return *s.StrokeWidth
}

type rectShape struct {
	bounds geom.Rectangle
	style  style
}

func (*rectShape) Kind() string  { return "rect" }
func (*rectShape) Title() string { return "Rectangle" }

func (r *rectShape) Decode(node *yaml.Node) error {
	var raw struct {
		At    []any `yaml:"at"`
		Size  []any `yaml:"size"`
		style `yaml:",inline"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	at, err := vector("at", raw.At)
	if err != nil {
		return err
	}
	size, err := vector("size", raw.Size)
	if err != nil {
		return err
	}
	if err := raw.style.validate(); err != nil {
		return err
	}
	r.bounds = geom.NewRectangle(at.X, at.Y, size.X, size.Y)
	r.style = raw.style
	return nil
}

func (r *rectShape) Draw(c *registry.Canvas) error {
	c.Writer.WriteRect(r.bounds,
		r.style.stroke(c.Style.RectStroke),
		r.style.width(c.Style.StrokeWidth),
		r.style.fill(c.Style.RectFill))
	return c.Writer.Err()
}

type circleShape struct {
	centre geom.Vector2
	radius float64
	fill   string
}

func (*circleShape) Kind() string  { return "circle" }
func (*circleShape) Title() string { return "Circle" }

func (s *circleShape) Decode(node *yaml.Node) error {
	var raw struct {
		At     []any   `yaml:"at"`
		Radius float64 `yaml:"radius"`
		Fill   string  `yaml:"fill"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	centre, err := vector("at", raw.At)
	if err != nil {
		return err
	}
	if raw.Radius < 0 {
		return fmt.Errorf("radius: %w: %v", geom.ErrInvalidArgument, raw.Radius)
	}
	if err := finite("radius", raw.Radius); err != nil {
		return err
	}
	s.centre, s.radius, s.fill = centre, raw.Radius, raw.Fill
	return nil
}

func (s *circleShape) Draw(c *registry.Canvas) error {
	c.Writer.WriteCircle(s.centre, s.radius, orDefault(s.fill, c.Style.CircleFill))
	return c.Writer.Err()
}

type lineShape struct {
	from, to geom.Vector2
	style    style
}

func (*lineShape) Kind() string  { return "line" }
func (*lineShape) Title() string { return "Line" }

func (l *lineShape) Decode(node *yaml.Node) error {
	var raw struct {
		From  []any `yaml:"from"`
		To    []any `yaml:"to"`
		style `yaml:",inline"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	from, err := vector("from", raw.From)
	if err != nil {
		return err
	}
	to, err := vector("to", raw.To)
	if err != nil {
		return err
	}
	if err := raw.style.validate(); err != nil {
		return err
	}
	l.from, l.to, l.style = from, to, raw.style
	return nil
}

func (l *lineShape) Draw(c *registry.Canvas) error {
	c.Writer.WriteLine(l.from, l.to,
		l.style.stroke(c.Style.LineStroke),
		l.style.width(c.Style.StrokeWidth))
	return c.Writer.Err()
}

type polygonShape struct {
	points []geom.Vector2
	fill   string
}

func (*polygonShape) Kind() string  { return "polygon" }
func (*polygonShape) Title() string { return "Polygon" }

func (p *polygonShape) Decode(node *yaml.Node) error {
	var raw struct {
		Points [][]any `yaml:"points"`
		Fill   string  `yaml:"fill"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if len(raw.Points) == 0 {
		return fmt.Errorf("points: %w: polygon has no points", geom.ErrInvalidArgument)
	}
	p.points = make([]geom.Vector2, len(raw.Points))
	for i, values := range raw.Points {
		v, err := vector(fmt.Sprintf("points[%d]", i), values)
		if err != nil {
			return err
		}
		p.points[i] = v
	}
	p.fill = raw.Fill
	return nil
}

func (p *polygonShape) Draw(c *registry.Canvas) error {
	c.Writer.WritePolygon(orDefault(p.fill, c.Style.PolygonFill), p.points...)
	return c.Writer.Err()
}

type triangleShape struct {
	triangle geom.Triangle
	fill     string
}

func (*triangleShape) Kind() string  { return "triangle" }
func (*triangleShape) Title() string { return "Triangle" }

func (t *triangleShape) Decode(node *yaml.Node) error {
	var raw struct {
		At         []any   `yaml:"at"`
		Base       float64 `yaml:"base"`
		Height     float64 `yaml:"height"`
		UpsideDown bool    `yaml:"upside_down"`
		Fill       string  `yaml:"fill"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	at, err := vector("at", raw.At)
	if err != nil {
		return err
	}
	if err := finite("base", raw.Base); err != nil {
		return err
	}
	if err := finite("height", raw.Height); err != nil {
		return err
	}
	t.triangle = geom.NewTriangle(at, raw.Base, raw.Height, raw.UpsideDown)
	t.fill = raw.Fill
	return nil
}

func (t *triangleShape) Draw(c *registry.Canvas) error {
	c.Writer.WriteTriangle(t.triangle, orDefault(t.fill, c.Style.TriangleFill))
	return c.Writer.Err()
}

type textShape struct {
	at      geom.Vector2
	text    string
	classes []string
}

func (*textShape) Kind() string  { return "text" }
func (*textShape) Title() string { return "Text" }

func (t *textShape) Decode(node *yaml.Node) error {
	var raw struct {
		At    []any    `yaml:"at"`
		Text  string   `yaml:"text"`
		Class classList `yaml:"class"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	at, err := vector("at", raw.At)
	if err != nil {
		return err
	}
	t.at, t.text, t.classes = at, raw.Text, raw.Class
	return nil
}

func (t *textShape) Draw(c *registry.Canvas) error {
	c.Writer.AddText(t.at, t.text, t.classes...)
	return c.Writer.Err()
}

type groupShape struct {
	classes   classList
	transform string
	shapes    []yaml.Node
}

func (*groupShape) Kind() string  { return "group" }
func (*groupShape) Title() string { return "Group" }

func (g *groupShape) Decode(node *yaml.Node) error {
	var raw struct {
		Class     classList   `yaml:"class"`
		Transform string      `yaml:"transform"`
		Shapes    []yaml.Node `yaml:"shapes"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	g.classes, g.transform, g.shapes = raw.Class, strings.TrimSpace(raw.Transform), raw.Shapes
	return nil
}

func (g *groupShape) Draw(c *registry.Canvas) error {
	c.Writer.StartGroup(strings.Join(g.classes, " "), g.transform)
	if err := c.Children(g.shapes); err != nil {
		return err
	}
	c.Writer.EndGroup()
	return c.Writer.Err()
}

type scaleShape struct {
	factor float64
	shapes []yaml.Node
}

func (*scaleShape) Kind() string  { return "scale" }
func (*scaleShape) Title() string { return "Scale transform" }

func (s *scaleShape) Decode(node *yaml.Node) error {
	var raw struct {
		Factor *float64    `yaml:"factor"`
		Shapes []yaml.Node `yaml:"shapes"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Factor == nil {
		return fmt.Errorf("factor: %w: missing", geom.ErrInvalidArgument)
	}
	if err := finite("factor", *raw.Factor); err != nil {
		return err
	}
	s.factor, s.shapes = *raw.Factor, raw.Shapes
	return nil
}

func (s *scaleShape) Draw(c *registry.Canvas) error {
	c.Writer.StartScaleTransform(s.factor)
	if err := c.Children(s.shapes); err != nil {
		return err
	}
	c.Writer.EndTransform()
	return c.Writer.Err()
}

// classList is a class attribute written either as one string
// ("label big") or as a list ([label, big]).
type classList []string

func (c *classList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*c = strings.Fields(s)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*c = list
		return nil
	default:
		return fmt.Errorf("class: line %d: expected a string or a list of strings", node.Line)
	}
}

// vector converts a decoded YAML sequence into a Vector2.
func vector(field string, values []any) (geom.Vector2, error) {
	v, err := geom.VectorFrom(values...)
	if err != nil {
		return geom.Vector2{}, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

// finite rejects NaN and infinities, which have no SVG spelling.
func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %w: %v", field, geom.ErrInvalidArgument, v)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
