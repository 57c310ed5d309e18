// Package escher implements the byte-level codec for properties attached to
// legacy binary drawing records (the pre-XML drawing-layer format).
//
// A drawing record carries an ordered set of typed properties. Fixed-width
// properties are a 16-bit identifier plus a 32-bit scalar; complex properties
// add a variable-length payload written in a second trailing pass; array
// properties give that payload a counted, fixed-element-size structure with
// several historical encoding irregularities that this module reproduces
// byte-for-byte in both directions.
//
// # Basic Usage
//
// Decoding the property block of a record:
//
//	import "github.com/shapekit/escher"
//
//	container, consumed, err := escher.DecodeContainer(recordData, 0, propertyCount)
//	if err != nil {
//	    return err
//	}
//	if p, ok := container.Lookup(property.PropGeometryVertices); ok {
//	    arr := p.(*property.ArrayProperty)
//	    for vertex := range arr.All() {
//	        // each vertex is one fixed-size element
//	    }
//	}
//
// Building and serializing a property block:
//
//	c := escher.NewContainer()
//	c.Add(property.NewSimpleProperty(property.NewPropertyID(127, false, false), 0x00100010))
//	c.Add(property.NewComplexProperty(property.NewPropertyID(261, true, true), pictureRef))
//	wire := c.Bytes()
//
// # Package Structure
//
// This package provides thin wrappers over the property package, which holds
// the codec itself. The dump package renders containers for diagnostics, and
// the compress package carries the zlib codec used by metafile-style picture
// payloads.
package escher

import (
	"github.com/shapekit/escher/compress"
	"github.com/shapekit/escher/property"
)

// Container is the ordered property sequence of a record.
type Container = property.Container

// NewContainer creates a container holding the given properties in order.
func NewContainer(props ...property.Property) *Container {
	return property.NewContainer(props...)
}

// DecodeProperties parses count properties from data at offset.
// See property.DecodeProperties.
func DecodeProperties(data []byte, offset, count int, opts ...property.DecodeOption) ([]property.Property, int, error) {
	return property.DecodeProperties(data, offset, count, opts...)
}

// DecodeContainer parses count properties from data at offset into a
// Container. See property.DecodeContainer.
func DecodeContainer(data []byte, offset, count int, opts ...property.DecodeOption) (*Container, int, error) {
	return property.DecodeContainer(data, offset, count, opts...)
}

// DeflatePayload compresses a complex property's payload in place with the
// given compressor, typically compress.NewZlibCodec() for metafile-style
// picture data.
func DeflatePayload(c compress.Compressor, p *property.ComplexProperty) error {
	out, err := c.Compress(p.Data())
	if err != nil {
		return err
	}
	p.SetData(out)

	return nil
}

// InflatePayload decompresses a complex property's payload in place with the
// given decompressor.
func InflatePayload(d compress.Decompressor, p *property.ComplexProperty) error {
	out, err := d.Decompress(p.Data())
	if err != nil {
		return err
	}
	p.SetData(out)

	return nil
}
