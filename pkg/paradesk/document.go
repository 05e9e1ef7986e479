package paradesk

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

// Element is one node of a parsed XML document.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Element  `xml:",any"`
	Text     string     `xml:",chardata"`
}

// Attr returns the value of the named attribute, or "" when absent.
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return true
		}
	}

	return false
}

// IntAttr returns the named attribute parsed as an integer, or 0 when the
// attribute is absent or not numeric.
func (e *Element) IntAttr(name string) int64 {
	v, err := strconv.ParseInt(e.Attr(name), 10, 64)
	if err != nil {
		return 0
	}

	return v
}

// Document is a parsed XML document plus its serialized form. The API
// speaks XML on both directions of every call; Document is the common
// currency between the transport layer and the typed entity parsers.
type Document struct {
	root *Element
	raw  []byte
}

// ParseDocument parses raw bytes into a Document. A nil Document and an
// error are returned when the bytes are not well-formed XML.
func ParseDocument(data []byte) (*Document, error) {
	var root Element

	err := xml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return &Document{root: &root, raw: append([]byte(nil), data...)}, nil
}

// NewDocument serializes v with encoding/xml and wraps the result. It is
// the outbound counterpart of ParseDocument, used to turn entity objects
// into postable documents.
func NewDocument(v interface{}) (*Document, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("building document: %w", err)
	}

	return ParseDocument(data)
}

// Root returns the document's root element, or nil for a nil document.
func (d *Document) Root() *Element {
	if d == nil {
		return nil
	}

	return d.root
}

// RootName returns the local name of the root element.
func (d *Document) RootName() string {
	if d == nil || d.root == nil {
		return ""
	}

	return d.root.XMLName.Local
}

// RootAttr returns the value of an attribute on the root element.
func (d *Document) RootAttr(name string) string {
	if d == nil || d.root == nil {
		return ""
	}

	return d.root.Attr(name)
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	if d == nil {
		return nil
	}

	return d.raw
}

// String returns the serialized document as text.
func (d *Document) String() string {
	return string(d.Bytes())
}

// IsEmpty reports whether the serialized form carries no content. Empty
// documents are normalized away by the transport layer: a zero-content
// success is "no document", never an empty one.
func (d *Document) IsEmpty() bool {
	return d == nil || len(bytes.TrimSpace(d.raw)) == 0
}

// Decode unmarshals the document into v. It is how the typed entity
// parsers read a response body without re-serializing it.
func (d *Document) Decode(v interface{}) error {
	if d == nil {
		return ErrNoDocument
	}

	err := xml.Unmarshal(d.raw, v)
	if err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	return nil
}
