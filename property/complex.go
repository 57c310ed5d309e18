package property

import "github.com/cespare/xxhash/v2"

// ComplexProperty is a property whose value is a variable-length payload. The
// fixed part stores the declared payload length; the payload bytes themselves
// are written in the trailing pass across the whole record.
//
// The payload is exclusively owned by the property and is never nil: an
// absent on-disk payload is represented as a present, zero-length slice.
type ComplexProperty struct {
	id   PropertyID
	data []byte
}

var _ ComplexPart = (*ComplexProperty)(nil)

// NewComplexProperty creates a complex property owning the given payload.
// A nil payload is normalized to an empty one.
func NewComplexProperty(id PropertyID, data []byte) *ComplexProperty {
	if data == nil {
		data = []byte{}
	}

	return &ComplexProperty{id: id, data: data}
}

// ID returns the property identifier.
func (p *ComplexProperty) ID() PropertyID {
	return p.id
}

// Data returns the owned payload. The slice is a mutable borrow: the caller
// may read or write it in place but must not retain it across operations
// that resize the payload, and must not share it between properties.
func (p *ComplexProperty) Data() []byte {
	return p.data
}

// SetData replaces the owned payload. A nil slice is normalized to an empty
// one; ownership of b transfers to the property.
func (p *ComplexProperty) SetData(b []byte) {
	if b == nil {
		b = []byte{}
	}
	p.data = b
}

// Fingerprint returns the 64-bit content hash of the payload, used to spot
// identical blobs (typically repeated picture references) across a record.
func (p *ComplexProperty) Fingerprint() uint64 {
	return xxhash.Sum64(p.data)
}

// SerializeHeader writes the identifier and the declared payload length at
// pos and returns HeaderSize.
func (p *ComplexProperty) SerializeHeader(data []byte, pos int) int {
	leEngine.PutUint16(data[pos:], uint16(p.id))
	leEngine.PutUint32(data[pos+2:], uint32(len(p.data))) //nolint: gosec

	return HeaderSize
}

// SerializeData writes the payload at pos in the trailing pass and returns
// the number of bytes written.
func (p *ComplexProperty) SerializeData(data []byte, pos int) int {
	return copy(data[pos:], p.data)
}

// SerializedSize returns the fixed part plus the owned payload length.
func (p *ComplexProperty) SerializedSize() int {
	return HeaderSize + len(p.data)
}

// resize reallocates the payload to expected bytes, preserving at most keep
// leading bytes of the current payload. Bytes past the preserved prefix are
// zeroed; producers must not rely on the zero fill, only on the prefix.
func (p *ComplexProperty) resize(expected, keep int) {
	if expected == len(p.data) {
		return
	}

	grown := make([]byte, expected)
	copy(grown, p.data[:min(keep, expected, len(p.data))])
	p.data = grown
}
