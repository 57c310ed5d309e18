package property

import (
	"iter"

	"github.com/shapekit/escher/internal/pool"
)

// Container owns an ordered sequence of properties. Insertion order is the
// wire order: entries are never merged, deduplicated or reordered, because
// the enclosing record format is sensitive to both.
type Container struct {
	props []Property
}

// NewContainer creates a container holding the given properties in order.
func NewContainer(props ...Property) *Container {
	return &Container{props: props}
}

// Add appends a property to the sequence.
func (c *Container) Add(p Property) {
	c.props = append(c.props, p)
}

// Len returns the number of properties.
func (c *Container) Len() int {
	return len(c.props)
}

// At returns the property at index i. The index must be in range, as for a
// slice.
func (c *Container) At(i int) Property {
	return c.props[i]
}

// All returns a lazy sequence over the properties in wire order.
func (c *Container) All() iter.Seq[Property] {
	return func(yield func(Property) bool) {
		for _, p := range c.props {
			if !yield(p) {
				return
			}
		}
	}
}

// Lookup returns the first property with the given property number.
func (c *Container) Lookup(number uint16) (Property, bool) {
	for _, p := range c.props {
		if p.ID().Number() == number {
			return p, true
		}
	}

	return nil, false
}

// SerializedSize returns the exact number of bytes Serialize writes: a 6-byte
// fixed part per property plus every complex payload in full. The
// header-size exclusion only changes a declared length field, never the
// bytes laid down, so it does not affect this total.
func (c *Container) SerializedSize() int {
	size := 0
	for _, p := range c.props {
		size += p.SerializedSize()
	}

	return size
}

// Serialize lays the sequence out at pos into data in two passes: first every
// property's 6-byte fixed part in order, then every complex payload in the
// same order. It returns the number of bytes written; data must hold at
// least SerializedSize bytes from pos.
func (c *Container) Serialize(data []byte, pos int) int {
	start := pos
	for _, p := range c.props {
		pos += p.SerializeHeader(data, pos)
	}
	for _, p := range c.props {
		if cp, ok := p.(ComplexPart); ok {
			pos += cp.SerializeData(data, pos)
		}
	}

	return pos - start
}

// Bytes serializes the sequence into a freshly allocated slice, using a
// pooled scratch buffer for the layout.
func (c *Container) Bytes() []byte {
	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	bb.SetLength(c.SerializedSize())
	n := c.Serialize(bb.Bytes(), 0)

	out := make([]byte, n)
	copy(out, bb.Bytes()[:n])

	return out
}

// DuplicateBlobs groups complex properties whose payloads hash identically,
// keyed by payload fingerprint. Only groups with at least two members are
// returned; the typical hit is the same picture reference attached to
// several fill properties.
func (c *Container) DuplicateBlobs() map[uint64][]PropertyID {
	counts := make(map[uint64][]PropertyID)
	for _, p := range c.props {
		cp, ok := p.(interface{ Fingerprint() uint64 })
		if !ok {
			continue
		}
		fp := cp.Fingerprint()
		counts[fp] = append(counts[fp], p.ID())
	}

	for fp, ids := range counts {
		if len(ids) < 2 {
			delete(counts, fp)
		}
	}

	return counts
}
