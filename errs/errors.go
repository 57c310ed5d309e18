// Package errs defines the sentinel errors shared by the property codec
// packages.
//
// Decode-time irregularities of the legacy format (header-size exclusion,
// empty complex parts) are never errors; they are resolved locally and
// recorded as state flags on the affected property. The errors below cover
// genuinely malformed input and caller programming errors, and are meant to
// be matched with errors.Is.
package errs

import "errors"

// Decode errors.
var (
	// ErrTruncatedSource indicates the source buffer is too short to hold even
	// the fixed part of the structure being decoded. Payload truncation past
	// the fixed part is tolerated instead: the decoder clamps the copy and the
	// caller detects it from the returned byte count.
	ErrTruncatedSource = errors.New("source buffer truncated")

	// ErrInvalidElementSize indicates the array element-size field decodes to
	// zero bytes per element, which cannot describe any stored element run.
	ErrInvalidElementSize = errors.New("invalid array element size")

	// ErrArraySizeOverflow indicates the computed array byte size exceeds the
	// range of the on-disk 32-bit length field.
	ErrArraySizeOverflow = errors.New("array size overflows length field")

	// ErrTooManyProperties indicates a property count that cannot describe a
	// valid record.
	ErrTooManyProperties = errors.New("invalid property count")
)

// Access errors.
var (
	// ErrElementOutOfRange indicates an element index at or beyond the number
	// of elements stored on disk, or an element slice that would run past the
	// end of the owned payload.
	ErrElementOutOfRange = errors.New("array element index out of range")

	// ErrElementSizeMismatch indicates a SetElement payload whose length does
	// not equal the array's actual element size.
	ErrElementSizeMismatch = errors.New("element payload size mismatch")
)
