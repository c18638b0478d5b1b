package scene

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/svgkit/geom"
	"github.com/vovakirdan/svgkit/internal/config"
	"github.com/vovakirdan/svgkit/internal/registry"
)

const demoScene = `
name: demo
width: 200px
height: 100px
view_box: [0, 0, 200, 100.5]
css: |
  .label { font: 10px sans-serif; }
shapes:
  - kind: rect
    at: [10, 10]
    size: [50, 20]
    stroke: red
    stroke_width: 2
    fill: none
  - kind: circle
    at: [100, 50]
    radius: 10
  - kind: line
    from: [0, 0]
    to: [200, 100]
  - kind: polygon
    points: [[0, 0], [10, 0], [5, 8]]
    fill: green
  - kind: triangle
    at: [150, 80]
    base: 20
    height: 15
    fill: orange
  - kind: text
    at: [10, 90]
    text: "a < b"
    class: [label, big]
  - kind: group
    class: layer
    transform: "translate(5 5)"
    shapes:
      - kind: scale
        factor: 2
        shapes:
          - kind: circle
            at: [1, 1]
            radius: 0.5
            fill: red
`

func render(t *testing.T, cfg config.Config, src string, opts Options) string {
	t.Helper()
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	doc, err := NewRenderer(cfg, nil).Render(s, opts)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	return string(doc.SVG)
}

func TestRenderScene(t *testing.T) {
	got := render(t, config.Default(), demoScene, Options{})

	expected := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="200px" height="100px" viewBox="0 0 200 100.5">`,
		`<style>.label { font: 10px sans-serif; }`,
		`<rect x="10" y="10" width="50" height="20" fill="none" stroke="red" stroke-width="2"></rect>`,
		`<circle cx="100" cy="50" r="10" fill="blue"></circle>`,
		`<line x1="0" y1="0" x2="200" y2="100" stroke="darkgreen" stroke-width="3"></line>`,
		`<polygon fill="green" points="0,0 10,0 5,8"></polygon>`,
		`<polygon fill="orange" points="140,80 160,80 150,65"></polygon>`,
		`<text x="10" y="90" class="label big">a &lt; b</text>`,
		`<g class="layer" transform="translate(5 5)"><g transform="scale(2)"><circle cx="1" cy="1" r="0.5" fill="red"></circle></g></g>`,
	}
	for _, want := range expected {
		if !strings.Contains(got, want) {
			t.Errorf("rendered scene missing %s\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "</svg>") {
		t.Errorf("rendered scene does not end with </svg>: %s", got)
	}
	assertWellFormed(t, got)
}

func TestRenderUsesConfiguredStyle(t *testing.T) {
	cfg := config.Default()
	cfg.Drawing.RectStroke = "purple"
	cfg.Drawing.RectFill = "yellow"
	cfg.Drawing.StrokeWidth = 0.5
	cfg.Drawing.TriangleFill = "teal"

	got := render(t, cfg, `
shapes:
  - kind: rect
    at: [0, 0]
    size: [1, 1]
  - kind: triangle
    at: [0, 0]
    base: 2
    height: 1
    upside_down: true
`, Options{})

	if !strings.Contains(got, `fill="yellow" stroke="purple" stroke-width="0.5"`) {
		t.Errorf("rect does not use configured style: %s", got)
	}
	if !strings.Contains(got, `<polygon fill="teal" points="-1,0 1,0 0,1"></polygon>`) {
		t.Errorf("triangle does not use configured fill: %s", got)
	}
}

func TestRenderUnitPrecedence(t *testing.T) {
	cfg := config.Default()
	cfg.Document.Unit = "px"
	const circle = "  - kind: circle\n    at: [1, 2]\n    radius: 3\n"
	mm, empty := "mm", ""

	tests := []struct {
		name     string
		scene    string
		opts     Options
		expected string
	}{
		{"config", "shapes:\n" + circle, Options{}, `cx="1px" cy="2px" r="3px"`},
		{"scene", "unit: mm\nshapes:\n" + circle, Options{}, `cx="1mm" cy="2mm" r="3mm"`},
		{"scene clears", "unit: \"\"\nshapes:\n" + circle, Options{}, `cx="1" cy="2" r="3"`},
		{"option", "unit: cm\nshapes:\n" + circle, Options{Unit: &mm}, `cx="1mm" cy="2mm" r="3mm"`},
		{"option clears", "shapes:\n" + circle, Options{Unit: &empty}, `cx="1" cy="2" r="3"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := render(t, cfg, tc.scene, tc.opts)
			if !strings.Contains(got, tc.expected) {
				t.Errorf("expected %s in\n%s", tc.expected, got)
			}
		})
	}
}

func TestRenderPretty(t *testing.T) {
	pretty := true
	got := render(t, config.Default(), demoScene, Options{Pretty: &pretty})

	if !strings.Contains(got, "\n\t<rect") {
		t.Errorf("pretty output is not indented:\n%s", got)
	}
	assertWellFormed(t, got)
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name     string
		scene    string
		expected error
		location string
	}{
		{
			name:     "unknown kind",
			scene:    "shapes:\n  - kind: hexagon\n",
			expected: registry.ErrUnknownKind,
			location: "shapes[0]",
		},
		{
			name:     "string coordinate",
			scene:    "shapes:\n  - kind: line\n    from: [0, \"1\"]\n    to: [2, 3]\n",
			expected: geom.ErrInvalidArgument,
			location: "from",
		},
		{
			name:     "missing position",
			scene:    "shapes:\n  - kind: circle\n    radius: 1\n",
			expected: geom.ErrInvalidArgument,
			location: "at",
		},
		{
			name:     "three components",
			scene:    "shapes:\n  - kind: text\n    at: [1, 2, 3]\n    text: x\n",
			expected: geom.ErrInvalidArgument,
			location: "at",
		},
		{
			name:     "negative radius",
			scene:    "shapes:\n  - kind: circle\n    at: [0, 0]\n    radius: -1\n",
			expected: geom.ErrInvalidArgument,
			location: "radius",
		},
		{
			name:     "infinite triangle base",
			scene:    "shapes:\n  - kind: triangle\n    at: [0, 0]\n    base: .inf\n    height: 1\n",
			expected: geom.ErrInvalidArgument,
			location: "base",
		},
		{
			name:     "NaN triangle height",
			scene:    "shapes:\n  - kind: triangle\n    at: [0, 0]\n    base: 1\n    height: .nan\n",
			expected: geom.ErrInvalidArgument,
			location: "height",
		},
		{
			name:     "NaN stroke width",
			scene:    "shapes:\n  - kind: line\n    from: [0, 0]\n    to: [1, 1]\n    stroke_width: .nan\n",
			expected: geom.ErrInvalidArgument,
			location: "stroke_width",
		},
		{
			name:     "infinite rect stroke width",
			scene:    "shapes:\n  - kind: rect\n    at: [0, 0]\n    size: [1, 1]\n    stroke_width: .inf\n",
			expected: geom.ErrInvalidArgument,
			location: "stroke_width",
		},
		{
			name:     "negative stroke width",
			scene:    "shapes:\n  - kind: rect\n    at: [0, 0]\n    size: [1, 1]\n    stroke_width: -2\n",
			expected: geom.ErrInvalidArgument,
			location: "stroke_width",
		},
		{
			name:     "infinite radius",
			scene:    "shapes:\n  - kind: circle\n    at: [0, 0]\n    radius: .inf\n",
			expected: geom.ErrInvalidArgument,
			location: "radius",
		},
		{
			name:     "empty polygon",
			scene:    "shapes:\n  - kind: polygon\n",
			expected: geom.ErrInvalidArgument,
			location: "points",
		},
		{
			name:     "missing factor",
			scene:    "shapes:\n  - kind: scale\n    shapes: []\n",
			expected: geom.ErrInvalidArgument,
			location: "factor",
		},
		{
			name:     "nested unknown kind",
			scene:    "shapes:\n  - kind: group\n    shapes:\n      - kind: circle\n        at: [0, 0]\n        radius: 1\n      - kind: blob\n",
			expected: registry.ErrUnknownKind,
			location: "shapes[0].shapes[1]",
		},
		{
			name:     "non-numeric view box",
			scene:    "view_box: [0, 0, wide, 10]\nshapes: []\n",
			expected: ErrInvalidScene,
			location: "view_box",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Parse([]byte(tc.scene))
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			_, err = NewRenderer(config.Default(), nil).Render(s, Options{})
			if !errors.Is(err, tc.expected) {
				t.Fatalf("Render() error = %v, expected %v", err, tc.expected)
			}
			if !strings.Contains(err.Error(), tc.location) {
				t.Errorf("Render() error = %v, expected it to mention %s", err, tc.location)
			}
		})
	}
}

func TestRenderClassForms(t *testing.T) {
	got := render(t, config.Default(), `
shapes:
  - kind: text
    at: [0, 0]
    text: one
    class: label
  - kind: text
    at: [0, 0]
    text: two
    class: [label, big]
  - kind: group
    class: "layer top"
    shapes: []
  - kind: group
    class: [layer, bottom]
    shapes: []
`, Options{})

	for _, want := range []string{
		`class="label">one</text>`,
		`class="label big">two</text>`,
		`<g class="layer top"></g>`,
		`<g class="layer bottom"></g>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered scene missing %s\n%s", want, got)
		}
	}

	s, err := Parse([]byte("shapes:\n  - kind: text\n    at: [0, 0]\n    class: {a: b}\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if _, err := NewRenderer(config.Default(), nil).Render(s, Options{}); err == nil || !strings.Contains(err.Error(), "class") {
		t.Errorf("Render() error = %v, expected a class error", err)
	}
}

func TestParseViewBoxLength(t *testing.T) {
	if _, err := Parse([]byte("view_box: [0, 0, 10]\n")); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Parse() error = %v, expected ErrInvalidScene", err)
	}
	if _, err := Parse([]byte("shapes: {")); err == nil {
		t.Error("Parse() with invalid YAML should fail")
	}
}

func TestLoadFileNamesScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "floor-plan.yaml")
	if err := os.WriteFile(path, []byte("shapes: []\n"), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if s.Name != "floor-plan" {
		t.Errorf("Name = %q, expected floor-plan", s.Name)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile() with missing file should fail")
	}
}

func TestRenderWarnsOnEmptyScene(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	s, err := Parse([]byte("name: blank\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	doc, err := NewRenderer(config.Default(), logger).Render(s, Options{})
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "scene has no shapes") {
		t.Errorf("log output = %q, expected an empty scene warning", buf.String())
	}
	if doc.Name != "blank" || doc.Width != "100%" || doc.Height != "100%" {
		t.Errorf("Document = %+v", doc)
	}
	assertWellFormed(t, string(doc.SVG))
}

func TestShapeKindsRegistered(t *testing.T) {
	for _, kind := range []string{"rect", "circle", "line", "polygon", "triangle", "text", "group", "scale"} {
		if !registry.Exists(kind) {
			t.Errorf("shape kind %q is not registered", kind)
		}
	}
}

func assertWellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	dec.Strict = true
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("document is not well-formed: %v\n%s", err, doc)
		}
	}
}
