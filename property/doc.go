// Package property implements the byte-level codec for typed properties
// attached to legacy binary drawing records.
//
// A shape record carries an ordered set of properties. Every property starts
// with the same 6-byte fixed part: a 16-bit identifier (property number plus
// complex and blip-id flag bits) followed by a 32-bit word. For a
// SimpleProperty the word is the value itself; for a ComplexProperty it is
// the declared length of a variable-size payload written later, after all
// fixed parts, in a second trailing pass over the record. An ArrayProperty is
// a complex property whose payload carries its own 6-byte header
// {countOnDisk:u16, countInMemory:u16, elementSize:i16} followed by a flat
// run of fixed-size elements.
//
// The format has several historical irregularities which this package
// reproduces bit-exactly:
//
//   - A negative element-size field is shift-encoded: the true per-element
//     width is (-elementSize) >> 2.
//   - Some producers declared the payload length without the 6-byte array
//     header. This is detected heuristically on load and replayed on
//     serialization (see ArrayProperty.LoadFromBuffer).
//   - A payload can be present but empty. That state is flagged, the header
//     bytes are unreliable and never parsed, and all structured accessors
//     report zero.
//
// Layout and total-size accounting across a whole ordered property sequence
// is handled by Container; DecodeProperties is the matching read path.
//
// All integers are little-endian. The codec is pure computation over
// in-memory buffers: nothing blocks, nothing is retried, and a payload is
// exclusively owned by its property.
package property
