// Package xmlwriter is a small streaming XML emitter. Elements are opened
// by name, attributes are attached to the most recently opened element
// until content is written into it, and every attribute value and text
// node is escaped. Nesting in the output always matches the sequence of
// StartElement/EndElement calls.
//
// Encoding is delegated to encoding/xml; this package adds the
// open-then-attribute calling style, a document prologue and an explicit
// element stack.
package xmlwriter

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoOpenElement is returned when closing or attributing an element
	// that does not exist.
	ErrNoOpenElement = errors.New("xmlwriter: no open element")

	// ErrAttributeOutOfPlace is returned when an attribute is written after
	// the current element already received content.
	ErrAttributeOutOfPlace = errors.New("xmlwriter: attribute written after element content")

	// ErrDocumentStarted is returned when the XML declaration is requested
	// after output has been produced.
	ErrDocumentStarted = errors.New("xmlwriter: document already started")

	// ErrDocumentEnded is returned for any write after EndDocument.
	ErrDocumentEnded = errors.New("xmlwriter: document already ended")

	// ErrInvalidComment is returned for comment text XML cannot carry.
	ErrInvalidComment = errors.New("xmlwriter: invalid comment text")
)

// Writer accumulates an XML document in memory.
// It is not safe for concurrent use.
type Writer struct {
	buf     bytes.Buffer
	enc     *xml.Encoder
	stack   []xml.Name
	pending *xml.StartElement // opened element whose start tag is not yet written
	ended   bool
}

// New creates an empty writer. When indent is true the output is
// pretty-printed with one tab per nesting level.
func New(indent bool) *Writer {
	w := &Writer{}
	w.enc = xml.NewEncoder(&w.buf)
	if indent {
		w.enc.Indent("", "\t")
	}
	return w
}

// StartDocument writes the XML declaration. It must be the first call.
func (w *Writer) StartDocument() error {
	if err := w.writable(); err != nil {
		return err
	}
	if w.buf.Len() > 0 || w.pending != nil || len(w.stack) > 0 {
		return ErrDocumentStarted
	}
	return w.encode(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)})
}

// WriteDocType writes a <!DOCTYPE> declaration. Empty identifiers are left out.
func (w *Writer) WriteDocType(name, publicID, systemID string) error {
	if err := w.writable(); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString("DOCTYPE ")
	b.WriteString(name)
	switch {
	case publicID != "":
		fmt.Fprintf(&b, " PUBLIC %q", publicID)
		if systemID != "" {
			fmt.Fprintf(&b, " %q", systemID)
		}
	case systemID != "":
		fmt.Fprintf(&b, " SYSTEM %q", systemID)
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	return w.encode(xml.Directive(b.String()))
}

// WriteComment writes <!-- text -->. Text containing "--" or ending in
// "-" is rejected with ErrInvalidComment.
func (w *Writer) WriteComment(text string) error {
	if err := w.writable(); err != nil {
		return err
	}
	if strings.Contains(text, "--") || strings.HasSuffix(text, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidComment, text)
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	return w.encode(xml.Comment(" " + text + " "))
}

// StartElement opens a child of the current element.
func (w *Writer) StartElement(name string) error {
	return w.StartElementNS(name, "")
}

// StartElementNS opens an element and declares namespace as its default
// namespace. An empty namespace declares nothing.
func (w *Writer) StartElementNS(name, namespace string) error {
	if err := w.writable(); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("xmlwriter: empty element name")
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if namespace != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: namespace})
	}
	w.pending = &start
	w.stack = append(w.stack, start.Name)
	return nil
}

// WriteAttribute sets an attribute on the element opened last. Writing the
// same name twice keeps the latest value.
func (w *Writer) WriteAttribute(name, value string) error {
	if err := w.writable(); err != nil {
		return err
	}
	if w.pending == nil {
		if len(w.stack) == 0 {
			return ErrNoOpenElement
		}
		return fmt.Errorf("%w: %s", ErrAttributeOutOfPlace, name)
	}
	for i := range w.pending.Attr {
		if w.pending.Attr[i].Name.Local == name {
			w.pending.Attr[i].Value = value
			return nil
		}
	}
	w.pending.Attr = append(w.pending.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	return nil
}

// Text writes escaped character data into the current element.
func (w *Writer) Text(text string) error {
	if err := w.writable(); err != nil {
		return err
	}
	if len(w.stack) == 0 {
		return ErrNoOpenElement
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	return w.encode(xml.CharData(text))
}

// EndElement closes the element opened last.
func (w *Writer) EndElement() error {
	if err := w.writable(); err != nil {
		return err
	}
	if len(w.stack) == 0 {
		return ErrNoOpenElement
	}
	if err := w.flushPending(); err != nil {
		return err
	}
	name := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	return w.encode(xml.EndElement{Name: name})
}

// EndDocument closes every open element and seals the writer.
func (w *Writer) EndDocument() error {
	if err := w.writable(); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		if err := w.EndElement(); err != nil {
			return err
		}
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("xmlwriter: %w", err)
	}
	w.ended = true
	return nil
}

// Depth returns the number of currently open elements.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// Bytes returns the output written so far. The start tag of the element
// opened last is held back until its attributes are complete, that is until
// the next call that writes content, opens or closes an element.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *Writer) String() string {
	return w.buf.String()
}

func (w *Writer) writable() error {
	if w.ended {
		return ErrDocumentEnded
	}
	return nil
}

func (w *Writer) flushPending() error {
	if w.pending == nil {
		return nil
	}
	start := *w.pending
	w.pending = nil
	return w.encode(start)
}

func (w *Writer) encode(tok xml.Token) error {
	if err := w.enc.EncodeToken(tok); err != nil {
		return fmt.Errorf("xmlwriter: %w", err)
	}
	if err := w.enc.Flush(); err != nil {
		return fmt.Errorf("xmlwriter: %w", err)
	}
	return nil
}
