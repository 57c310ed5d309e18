package property

// SimpleProperty is a fixed-width property: the 32-bit word of the fixed part
// is the value itself. Pure value semantics, no owned buffers.
type SimpleProperty struct {
	id    PropertyID
	value int32
}

var _ Property = (*SimpleProperty)(nil)

// NewSimpleProperty creates a simple property with the given identifier and
// inline value.
func NewSimpleProperty(id PropertyID, value int32) *SimpleProperty {
	return &SimpleProperty{id: id, value: value}
}

// ID returns the property identifier.
func (p *SimpleProperty) ID() PropertyID {
	return p.id
}

// Value returns the inline 32-bit value.
func (p *SimpleProperty) Value() int32 {
	return p.value
}

// SetValue replaces the inline value.
func (p *SimpleProperty) SetValue(value int32) {
	p.value = value
}

// SerializeHeader writes the identifier and value at pos and returns
// HeaderSize. Simple properties have no trailing part.
func (p *SimpleProperty) SerializeHeader(data []byte, pos int) int {
	leEngine.PutUint16(data[pos:], uint16(p.id))
	leEngine.PutUint32(data[pos+2:], uint32(p.value)) //nolint: gosec

	return HeaderSize
}

// SerializedSize returns HeaderSize: the whole property is its fixed part.
func (p *SimpleProperty) SerializedSize() int {
	return HeaderSize
}
