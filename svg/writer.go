// Package svg builds SVG 1.1 documents from geom primitives.
//
// A Writer owns one document. Drawing methods return the writer so calls
// chain; the first failure is kept and reported by Err, and the writer
// stops emitting after it, much like bufio.Writer.
//
// A Writer is not safe for concurrent use: one writer, one producer,
// sequential calls only.
package svg

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/svgkit/geom"
	"github.com/vovakirdan/svgkit/xmlwriter"
)

const (
	Namespace      = "http://www.w3.org/2000/svg"
	DocTypePublic  = "-//W3C//DTD SVG 1.1//EN"
	DocTypeSystem  = "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd"
	Version        = "1.1"
	DefaultComment = "Generated by svgkit"
)

// Drawing defaults for callers that have no preference.
const (
	DefaultLineStroke  = "darkgreen"
	DefaultRectStroke  = "red"
	DefaultRectFill    = "none"
	DefaultCircleFill  = "blue"
	DefaultStrokeWidth = 3.0
)

// ErrInvalidState is returned when the writer is used out of order:
// drawing after Complete, completing twice, or closing a group that was
// never opened.
var ErrInvalidState = errors.New("svg: invalid writer state")

// Config describes the root element of a new document.
type Config struct {
	// Width and Height are written verbatim, e.g. "100%" or "210mm".
	Width  string
	Height string

	// ViewBox, when set, is written as "x y width height" without units.
	ViewBox *geom.Rectangle

	PrettyPrint bool

	// UnitSuffix is appended to every shape coordinate and size, e.g. "px".
	UnitSuffix string

	// Generator is the text of the comment placed before the root element.
	Generator string
}

// DefaultConfig returns a full-size document with no units and compact output.
func DefaultConfig() Config {
	return Config{
		Width:     "100%",
		Height:    "100%",
		Generator: DefaultComment,
	}
}

// Writer is a stateful SVG document builder.
type Writer struct {
	xml       Emitter
	unit      string
	err       error
	completed bool
}

// New starts a document using the default xmlwriter emitter.
func New(cfg Config) *Writer {
	return NewWithEmitter(cfg, xmlwriter.New(cfg.PrettyPrint))
}

// NewWithEmitter starts a document on the given emitter, writing the XML
// declaration, the SVG 1.1 doctype, the generator comment and the opening
// <svg> element. cfg.PrettyPrint is the emitter's concern here.
func NewWithEmitter(cfg Config, e Emitter) *Writer {
	w := &Writer{xml: e, unit: cfg.UnitSuffix}

	width, height := cfg.Width, cfg.Height
	if width == "" {
		width = "100%"
	}
	if height == "" {
		height = "100%"
	}
	generator := cfg.Generator
	if generator == "" {
		generator = DefaultComment
	}

	w.do(e.StartDocument)
	w.do(func() error { return e.WriteDocType("svg", DocTypePublic, DocTypeSystem) })
	w.do(func() error { return e.WriteComment(generator) })
	w.do(func() error { return e.StartElementNS("svg", Namespace) })
	w.attr("version", Version)
	w.attr("width", width)
	w.attr("height", height)
	if cfg.ViewBox != nil {
		vb := cfg.ViewBox
		w.attr("viewBox", strings.Join([]string{
			geom.FormatFloat(vb.X), geom.FormatFloat(vb.Y),
			geom.FormatFloat(vb.Width), geom.FormatFloat(vb.Height),
		}, " "))
	}
	return w
}

// Complete closes every element still open, including the root, and ends
// the document. It must be called exactly once; drawing afterwards fails
// with ErrInvalidState. Complete finalises the document even when an
// earlier call failed, so the output stays well-formed.
func (w *Writer) Complete() *Writer {
	if w.completed {
		w.fail(fmt.Errorf("%w: Complete called twice", ErrInvalidState))
		return w
	}
	w.completed = true
	if err := w.xml.EndDocument(); err != nil && w.err == nil {
		w.err = fmt.Errorf("svg: complete: %w", err)
	}
	return w
}

// Completed reports whether Complete has been called.
func (w *Writer) Completed() bool {
	return w.completed
}

// Err returns the first error the writer ran into, if any.
func (w *Writer) Err() error {
	return w.err
}

// Depth returns the number of groups and transforms currently open.
func (w *Writer) Depth() int {
	if w.completed {
		return 0
	}
	return max(w.xml.Depth()-1, 0)
}

// String returns the document written so far. Before Complete, the start
// tag of the element opened last (for example a group just started) is not
// included yet, since it may still receive attributes; it appears with the
// next drawing call. After Complete the document is whole.
func (w *Writer) String() string {
	return w.xml.String()
}

// Bytes returns the buffered document, with the same caveat as String.
func (w *Writer) Bytes() []byte {
	return w.xml.Bytes()
}

// WriteTo copies the buffered document to dst. It fails without writing
// if the writer recorded an error.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := dst.Write(w.xml.Bytes())
	return int64(n), err
}

// AddText places text at position. Text coordinates are written as plain
// numbers, without the unit suffix.
func (w *Writer) AddText(position geom.Vector2, text string, classes ...string) *Writer {
	if !w.ready("AddText") {
		return w
	}
	w.start("text")
	w.attr("x", geom.FormatFloat(position.X))
	w.attr("y", geom.FormatFloat(position.Y))
	if class := strings.Join(classes, " "); class != "" {
		w.attr("class", class)
	}
	w.text(text)
	w.end()
	return w
}

// WriteCSS embeds a <style> element. The CSS is escaped, not wrapped in CDATA.
func (w *Writer) WriteCSS(css string) *Writer {
	if !w.ready("WriteCSS") {
		return w
	}
	w.start("style")
	w.text(css)
	w.end()
	return w
}

// WriteLine draws a line from start to end.
func (w *Writer) WriteLine(start, end geom.Vector2, strokeStyle string, strokeWidth float64) *Writer {
	if !w.ready("WriteLine") {
		return w
	}
	w.start("line")
	w.attr("x1", w.length(start.X))
	w.attr("y1", w.length(start.Y))
	w.attr("x2", w.length(end.X))
	w.attr("y2", w.length(end.Y))
	w.attr("stroke", strokeStyle)
	w.attr("stroke-width", geom.FormatFloat(strokeWidth))
	w.end()
	return w
}

// WriteRectangle draws a rectangle with its top-left corner at position.
func (w *Writer) WriteRectangle(position, size geom.Vector2, strokeStyle string, strokeWidth float64, fill string) *Writer {
	if !w.ready("WriteRectangle") {
		return w
	}
	w.start("rect")
	w.attr("x", w.length(position.X))
	w.attr("y", w.length(position.Y))
	w.attr("width", w.length(size.X))
	w.attr("height", w.length(size.Y))
	w.attr("fill", fill)
	w.attr("stroke", strokeStyle)
	w.attr("stroke-width", geom.FormatFloat(strokeWidth))
	w.end()
	return w
}

// WriteRect draws r. See WriteRectangle.
func (w *Writer) WriteRect(r geom.Rectangle, strokeStyle string, strokeWidth float64, fill string) *Writer {
	return w.WriteRectangle(r.TopLeft(), r.Size(), strokeStyle, strokeWidth, fill)
}

// WriteCircle draws a filled circle.
func (w *Writer) WriteCircle(centre geom.Vector2, radius float64, fillStyle string) *Writer {
	if !w.ready("WriteCircle") {
		return w
	}
	w.start("circle")
	w.attr("cx", w.length(centre.X))
	w.attr("cy", w.length(centre.Y))
	w.attr("r", w.length(radius))
	w.attr("fill", fillStyle)
	w.end()
	return w
}

// WritePolygon draws a filled polygon through points. The points attribute
// has no unit syntax in SVG, so the suffix is not applied to it.
func (w *Writer) WritePolygon(fillStyle string, points ...geom.Vector2) *Writer {
	if !w.ready("WritePolygon") {
		return w
	}
	pairs := make([]string, len(points))
	for i, p := range points {
		pairs[i] = geom.FormatFloat(p.X) + "," + geom.FormatFloat(p.Y)
	}
	w.start("polygon")
	w.attr("fill", fillStyle)
	w.attr("points", strings.Join(pairs, " "))
	w.end()
	return w
}

// WriteTriangleRegular draws an isosceles triangle whose base is centred on
// position. The peak points up unless upsideDown is set.
func (w *Writer) WriteTriangleRegular(position geom.Vector2, baseWidth, height float64, upsideDown bool, fillStyle string) *Writer {
	return w.WriteTriangle(geom.NewTriangle(position, baseWidth, height, upsideDown), fillStyle)
}

// WriteTriangle draws t as a polygon.
func (w *Writer) WriteTriangle(t geom.Triangle, fillStyle string) *Writer {
	return w.WritePolygon(fillStyle, t.Points()...)
}

// StartGroup opens a <g> element. Empty classes or transform are omitted.
func (w *Writer) StartGroup(classes, transform string) *Writer {
	if !w.ready("StartGroup") {
		return w
	}
	w.start("g")
	if classes != "" {
		w.attr("class", classes)
	}
	if transform != "" {
		w.attr("transform", transform)
	}
	return w
}

// EndGroup closes the most recently opened group or transform.
func (w *Writer) EndGroup() *Writer {
	return w.closeGroup("EndGroup")
}

// StartScaleTransform opens a group that scales its content by scale.
func (w *Writer) StartScaleTransform(scale float64) *Writer {
	if !w.ready("StartScaleTransform") {
		return w
	}
	w.start("g")
	w.attr("transform", "scale("+geom.FormatFloat(scale)+")")
	return w
}

// EndTransform closes the most recently opened transform or group.
func (w *Writer) EndTransform() *Writer {
	return w.closeGroup("EndTransform")
}

func (w *Writer) closeGroup(op string) *Writer {
	if !w.ready(op) {
		return w
	}
	if w.Depth() == 0 {
		w.fail(fmt.Errorf("%w: %s with no open group", ErrInvalidState, op))
		return w
	}
	w.end()
	return w
}

// ready reports whether a drawing call may proceed, recording
// ErrInvalidState if the document is already complete.
func (w *Writer) ready(op string) bool {
	if w.err != nil {
		return false
	}
	if w.completed {
		w.fail(fmt.Errorf("%w: %s after Complete", ErrInvalidState, op))
		return false
	}
	return true
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) check(err error) {
	if err != nil {
		w.fail(fmt.Errorf("svg: %w", err))
	}
}

// do runs one emitter call unless an earlier one failed.
func (w *Writer) do(call func() error) {
	if w.err == nil {
		w.check(call())
	}
}

func (w *Writer) start(name string) {
	w.do(func() error { return w.xml.StartElement(name) })
}

func (w *Writer) attr(name, value string) {
	w.do(func() error { return w.xml.WriteAttribute(name, value) })
}

func (w *Writer) text(s string) {
	w.do(func() error { return w.xml.Text(s) })
}

func (w *Writer) end() {
	w.do(w.xml.EndElement)
}

func (w *Writer) length(v float64) string {
	return geom.FormatFloat(v) + w.unit
}
