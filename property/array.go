package property

import (
	"iter"
	"math"

	"github.com/shapekit/escher/errs"
)

// ArrayProperty is a complex property whose payload is a counted array:
// a 6-byte header {countOnDisk:u16, countInMemory:u16, elementSize:i16}
// followed by a flat run of fixed-size elements.
//
// Array payloads are the most irregular construction in the format. The
// element-size field may be shift-encoded (negative raw value), the declared
// length in the fixed part sometimes excludes the 6-byte array header, and a
// payload read from disk may be present but empty. The flags below track the
// two encoding states so a round trip reproduces the source bytes exactly.
type ArrayProperty struct {
	ComplexProperty

	// sizeIncludesHeaderSize records whether the declared length in the fixed
	// part counts the 6-byte array header. Most producers include it; the
	// exception is detected heuristically in LoadFromBuffer.
	sizeIncludesHeaderSize bool

	// emptyComplexPart records that the on-disk payload was absent. In this
	// state the header bytes are zero-filled and unreliable, and every
	// structured accessor reports zero without parsing them.
	emptyComplexPart bool
}

var _ ComplexPart = (*ArrayProperty)(nil)

// NewArrayProperty creates an array property owning the given payload. A nil
// or zero-length payload is replaced by a zero-filled minimum header and the
// property is flagged as having an empty complex part.
func NewArrayProperty(id PropertyID, payload []byte) *ArrayProperty {
	empty := len(payload) == 0
	if empty {
		payload = make([]byte, ArrayHeaderSize)
	}

	return &ArrayProperty{
		ComplexProperty:        ComplexProperty{id: id, data: payload},
		sizeIncludesHeaderSize: true,
		emptyComplexPart:       empty,
	}
}

// actualSizeOfElements decodes the raw element-size field. A negative value
// is shift-encoded: negate and shift right by two to recover the per-element
// byte width. A non-negative value is reinterpreted as unsigned 16-bit.
func actualSizeOfElements(raw int16) int {
	if raw < 0 {
		return int(uint16(-raw)) >> 2 //nolint: gosec
	}

	return int(uint16(raw))
}

// arraySizeInBytes returns the payload size needed for count elements of the
// given raw element size, array header included.
func arraySizeInBytes(count int, raw int16) int {
	return count*actualSizeOfElements(raw) + ArrayHeaderSize
}

// ElementCountOnDisk returns the element count recorded in the payload
// header, or 0 for an empty complex part.
func (p *ArrayProperty) ElementCountOnDisk() int {
	if p.emptyComplexPart {
		return 0
	}

	return int(leEngine.Uint16(p.data[0:2]))
}

// ElementCountInMemory returns the in-memory element count recorded in the
// payload header, or 0 for an empty complex part. Historical writers did not
// keep it in sync with the on-disk count; the codec stores it verbatim.
func (p *ArrayProperty) ElementCountInMemory() int {
	if p.emptyComplexPart {
		return 0
	}

	return int(leEngine.Uint16(p.data[2:4]))
}

// RawElementSize returns the element-size field exactly as stored, shift
// encoding included, or 0 for an empty complex part.
func (p *ArrayProperty) RawElementSize() int16 {
	if p.emptyComplexPart {
		return 0
	}

	return int16(leEngine.Uint16(p.data[4:6])) //nolint: gosec
}

// ActualElementSize returns the decoded per-element byte width.
func (p *ArrayProperty) ActualElementSize() int {
	return actualSizeOfElements(p.RawElementSize())
}

// SizeIncludesHeader reports whether the declared length in the fixed part
// counts the array header. It is true unless LoadFromBuffer detected the
// historical exclusion.
func (p *ArrayProperty) SizeIncludesHeader() bool {
	return p.sizeIncludesHeaderSize
}

// HasEmptyComplexPart reports whether the property was built from an absent
// on-disk payload.
func (p *ArrayProperty) HasEmptyComplexPart() bool {
	return p.emptyComplexPart
}

// ensureHeader grows the payload back to the minimum header size. The only
// way the payload shrinks below it is an empty-part LoadFromBuffer; mutating
// such a property afterwards must not write past the slice.
func (p *ArrayProperty) ensureHeader() {
	if len(p.data) < ArrayHeaderSize {
		p.resize(ArrayHeaderSize, len(p.data))
	}
}

// SetElementCountOnDisk writes the on-disk element count, growing the payload
// to fit that many elements of the current size first. This path never
// shrinks: existing payload bytes are preserved, and bytes exposed by growth
// are zeroed but not guaranteed to stay so by the format.
func (p *ArrayProperty) SetElementCountOnDisk(n uint16) {
	p.ensureHeader()
	expected := arraySizeInBytes(int(n), p.RawElementSize())
	if len(p.data) < expected {
		p.resize(expected, len(p.data))
	}
	leEngine.PutUint16(p.data[0:2], n)
}

// SetElementCountInMemory writes the in-memory element count and resizes the
// payload to exactly fit that many elements of the current size, growing or
// shrinking as needed. This is the authoritative resize driver.
func (p *ArrayProperty) SetElementCountInMemory(n uint16) {
	p.ensureHeader()
	expected := arraySizeInBytes(int(n), p.RawElementSize())
	p.resize(expected, expected)
	leEngine.PutUint16(p.data[2:4], n)
}

// SetElementSize writes the raw element-size field and resizes the payload
// for the current on-disk count at the new width, keeping only the 6 header
// bytes. Changing the element width invalidates previously stored elements,
// so they are deliberately discarded.
func (p *ArrayProperty) SetElementSize(raw int16) {
	p.ensureHeader()
	leEngine.PutUint16(p.data[4:6], uint16(raw)) //nolint: gosec

	expected := arraySizeInBytes(p.ElementCountOnDisk(), raw)
	p.resize(expected, ArrayHeaderSize)
}

// Element returns a copy of the element at index. It fails with
// errs.ErrElementOutOfRange when the index is negative, at or beyond
// ElementCountOnDisk, or when the element bytes would run past the payload.
func (p *ArrayProperty) Element(index int) ([]byte, error) {
	start, actual, err := p.elementSpan(index)
	if err != nil {
		return nil, err
	}

	out := make([]byte, actual)
	copy(out, p.data[start:start+actual])

	return out, nil
}

// SetElement overwrites the element at index. The payload must be exactly
// ActualElementSize bytes long; bounds are checked as in Element.
func (p *ArrayProperty) SetElement(index int, element []byte) error {
	start, actual, err := p.elementSpan(index)
	if err != nil {
		return err
	}
	if len(element) != actual {
		return errs.ErrElementSizeMismatch
	}

	copy(p.data[start:start+actual], element)

	return nil
}

// elementSpan validates index and returns the element's payload offset and
// byte width.
func (p *ArrayProperty) elementSpan(index int) (start, actual int, err error) {
	if p.emptyComplexPart || index < 0 || index >= p.ElementCountOnDisk() {
		return 0, 0, errs.ErrElementOutOfRange
	}

	actual = p.ActualElementSize()
	start = ArrayHeaderSize + index*actual
	if actual <= 0 || start+actual > len(p.data) {
		return 0, 0, errs.ErrElementOutOfRange
	}

	return start, actual, nil
}

// LoadFromBuffer reads the array payload from source at offset and returns
// the number of bytes consumed.
//
// For an empty complex part the payload is dropped to zero length and 0 is
// returned without touching the source. Otherwise the element count and size
// are read from the source header (the reserved word at offset+2 is part of
// the copied header but not interpreted) and the full array size is computed
// from them.
//
// If that computed size minus the array header equals the current payload
// length, the producer declared the length without the header: the property
// records sizeIncludesHeaderSize=false and SerializeHeader replays the same
// exclusion. The format has no explicit flag for this; the prior payload
// length, seeded from the declared length by the decode pass, is the only
// evidence.
//
// A source shorter than the computed size is tolerated: the copy is clamped
// to the available bytes and the caller detects truncation by comparing the
// returned count against the header-derived size.
func (p *ArrayProperty) LoadFromBuffer(source []byte, offset int) (int, error) {
	if p.emptyComplexPart {
		p.resize(0, 0)
		return 0, nil
	}

	if offset < 0 || len(source)-offset < ArrayHeaderSize {
		return 0, errs.ErrTruncatedSource
	}

	count := int(leEngine.Uint16(source[offset : offset+2]))
	raw := int16(leEngine.Uint16(source[offset+4 : offset+6])) //nolint: gosec

	if actualSizeOfElements(raw) == 0 {
		return 0, errs.ErrInvalidElementSize
	}

	size := arraySizeInBytes(count, raw)
	if size > math.MaxInt32 {
		return 0, errs.ErrArraySizeOverflow
	}

	if size-ArrayHeaderSize == len(p.data) {
		// The declared length in the fixed part excluded the header bytes.
		p.sizeIncludesHeaderSize = false
	}

	n := min(size, len(source)-offset)
	p.resize(n, 0)
	copy(p.data, source[offset:offset+n])

	return n, nil
}

// SerializeHeader writes the identifier and declared payload length at pos
// and returns HeaderSize. When the header-size exclusion was detected on
// load, the declared length omits the 6 array header bytes, matching the
// producer the payload came from; the trailing pass still writes the payload
// in full.
func (p *ArrayProperty) SerializeHeader(data []byte, pos int) int {
	leEngine.PutUint16(data[pos:], uint16(p.id))

	recordSize := len(p.data)
	if !p.sizeIncludesHeaderSize {
		recordSize -= ArrayHeaderSize
	}
	leEngine.PutUint32(data[pos+2:], uint32(recordSize)) //nolint: gosec

	return HeaderSize
}

// All returns a lazy sequence over copies of the stored elements, in index
// order, ElementCountOnDisk items long. Each call produces a fresh sequence.
// Iteration stops early if the payload is too short for the declared count.
// Mutating the property during iteration is caller misuse, as everywhere
// else in this package.
func (p *ArrayProperty) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for i := 0; i < p.ElementCountOnDisk(); i++ {
			element, err := p.Element(i)
			if err != nil {
				return
			}
			if !yield(element) {
				return
			}
		}
	}
}
