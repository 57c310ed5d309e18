package property

import "github.com/shapekit/escher/endian"

const (
	// HeaderSize is the fixed on-disk size of every property entry: a 16-bit
	// identifier followed by a 32-bit value or declared payload length.
	HeaderSize = 6

	// ArrayHeaderSize is the size of the header at the start of an array
	// payload, before the element data.
	ArrayHeaderSize = 6
)

// leEngine is the byte order of every structure in the property wire format.
var leEngine = endian.GetLittleEndianEngine()

// Property is a single typed entry of a drawing record.
type Property interface {
	// ID returns the property identifier, flag bits included.
	ID() PropertyID

	// SerializeHeader writes the 6-byte fixed part at pos into data and
	// returns HeaderSize. The caller provides a buffer large enough for the
	// write; Container.SerializedSize gives the exact total.
	SerializeHeader(data []byte, pos int) int

	// SerializedSize returns the total number of bytes the property
	// contributes to the record: HeaderSize plus, for complex properties,
	// the owned payload length.
	SerializedSize() int
}

// ComplexPart is implemented by properties that own a trailing payload
// written in the second serialization pass.
type ComplexPart interface {
	Property

	// Data returns the owned payload.
	Data() []byte

	// SerializeData writes the payload at pos into data and returns the
	// number of bytes written.
	SerializeData(data []byte, pos int) int
}
