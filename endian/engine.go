// Package endian provides the byte-order abstraction used by the property codec.
//
// The legacy drawing-layer format is strictly little-endian, so almost every
// caller wants GetLittleEndianEngine(). The engine interface combines
// binary.ByteOrder and binary.AppendByteOrder so codec code can both write
// into pre-sized slices at explicit offsets and append to scratch buffers
// without converting between APIs.
//
// The big-endian engine exists to keep the interface honest and testable; no
// on-disk structure in this module uses it.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so an engine value
// is immutable, stateless and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order of
// every structure in the property wire format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
