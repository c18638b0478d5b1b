package svg

import "github.com/vovakirdan/svgkit/xmlwriter"

// Emitter is the XML engine a Writer drives. Implementations must escape
// attribute values and text, and keep the element nesting in their output
// consistent with the StartElement/EndElement call sequence.
// *xmlwriter.Writer is the default implementation.
type Emitter interface {
	StartDocument() error
	WriteDocType(name, publicID, systemID string) error
	WriteComment(text string) error
	StartElementNS(name, namespace string) error
	StartElement(name string) error
	WriteAttribute(name, value string) error
	Text(text string) error
	EndElement() error
	EndDocument() error

	// Depth reports how many elements are currently open.
	Depth() int
	Bytes() []byte
	String() string
}

var _ Emitter = (*xmlwriter.Writer)(nil)
