package property

import (
	"math"

	"github.com/shapekit/escher/errs"
	"github.com/shapekit/escher/internal/options"
)

// decodeConfig holds the tunable parts of the decode pass.
type decodeConfig struct {
	isArray func(number uint16) bool
}

// DecodeOption configures DecodeProperties and DecodeContainer.
type DecodeOption = options.Option[*decodeConfig]

// WithArrayDetector overrides the predicate that decides which complex
// property numbers carry array payloads. The wire format has no per-property
// type tag, so this knowledge has to come from the caller when a record uses
// array-typed numbers beyond the well-known set (see IsArrayNumber).
func WithArrayDetector(fn func(number uint16) bool) DecodeOption {
	return options.NoError(func(cfg *decodeConfig) {
		cfg.isArray = fn
	})
}

// DecodeProperties parses count properties from data at offset and returns
// them with the total number of bytes consumed.
//
// The read mirrors the two-pass wire layout. Pass 1 walks the fixed parts:
// each non-complex entry becomes a SimpleProperty; each complex entry becomes
// a ComplexProperty, or an ArrayProperty when the detector recognizes its
// number, seeded with a payload of the declared length. Pass 2 walks the
// trailing payloads in the same order: plain complex payloads are copied
// (clamped to the available bytes, so a truncated record yields short
// payloads instead of an error), array payloads go through
// ArrayProperty.LoadFromBuffer, which is where the declared-length seeding
// feeds the header-size-exclusion heuristic.
func DecodeProperties(data []byte, offset, count int, opts ...DecodeOption) ([]Property, int, error) {
	if count < 0 {
		return nil, 0, errs.ErrTooManyProperties
	}

	cfg := &decodeConfig{isArray: IsArrayNumber}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, 0, err
	}

	props := make([]Property, 0, count)
	pos := offset

	for i := 0; i < count; i++ {
		if pos < 0 || pos+HeaderSize > len(data) {
			return nil, 0, errs.ErrTruncatedSource
		}

		id := PropertyID(leEngine.Uint16(data[pos : pos+2]))
		word := leEngine.Uint32(data[pos+2 : pos+6])
		pos += HeaderSize

		if !id.IsComplex() {
			props = append(props, NewSimpleProperty(id, int32(word))) //nolint: gosec
			continue
		}

		if word > math.MaxInt32 {
			return nil, 0, errs.ErrArraySizeOverflow
		}
		declared := int(word)

		if cfg.isArray(id.Number()) {
			// Seeding the payload at the declared length is what lets
			// LoadFromBuffer spot a declared length that excluded the array
			// header.
			props = append(props, NewArrayProperty(id, make([]byte, declared)))
		} else {
			props = append(props, NewComplexProperty(id, make([]byte, declared)))
		}
	}

	for _, p := range props {
		switch tp := p.(type) {
		case *ArrayProperty:
			n, err := tp.LoadFromBuffer(data, pos)
			if err != nil {
				return nil, 0, err
			}
			pos += n
		case *ComplexProperty:
			blob := tp.Data()
			n := len(blob)
			if avail := len(data) - pos; n > avail {
				n = avail
			}
			copy(blob, data[pos:pos+n])
			pos += n
		}
	}

	return props, pos - offset, nil
}

// DecodeContainer parses count properties from data at offset into a
// Container, returning it with the total number of bytes consumed.
func DecodeContainer(data []byte, offset, count int, opts ...DecodeOption) (*Container, int, error) {
	props, n, err := DecodeProperties(data, offset, count, opts...)
	if err != nil {
		return nil, 0, err
	}

	return NewContainer(props...), n, nil
}
