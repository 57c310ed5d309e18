package property

import (
	"testing"

	"github.com/shapekit/escher/errs"
	"github.com/stretchr/testify/require"
)

func TestDecodeProperties_Mixed(t *testing.T) {
	original := buildMixedContainer()
	wire := original.Bytes()

	props, n, err := DecodeProperties(wire, 0, original.Len())

	require.NoError(t, err)
	require.Equal(t, len(wire), n)
	require.Len(t, props, 3)

	simple, ok := props[0].(*SimpleProperty)
	require.True(t, ok)
	require.Equal(t, int32(0x00100010), simple.Value())

	complexProp, ok := props[1].(*ComplexProperty)
	require.True(t, ok)
	require.Equal(t, []byte{0xA1, 0xA2, 0xA3}, complexProp.Data())
	require.True(t, complexProp.ID().IsBlipID())

	arr, ok := props[2].(*ArrayProperty)
	require.True(t, ok)
	require.Equal(t, 2, arr.ElementCountOnDisk())
	require.Equal(t, 4, arr.ActualElementSize())
	el, err := arr.Element(1)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 2, 2, 2}, el)
}

func TestDecodeProperties_ByteExactRoundTrip(t *testing.T) {
	original := buildMixedContainer()
	wire := original.Bytes()

	decoded, n, err := DecodeContainer(wire, 0, original.Len())
	require.NoError(t, err)
	require.Equal(t, len(wire), n)

	require.Equal(t, wire, decoded.Bytes())
}

func TestDecodeProperties_HeaderSizeExclusion(t *testing.T) {
	// A historical producer declared the array payload length without the
	// 6-byte array header: fixed part says 8, payload is 14 bytes.
	payload := makeArrayPayload(2, 2, 4, []byte{1, 1, 1, 1}, []byte{2, 2, 2, 2})
	wire := make([]byte, HeaderSize, HeaderSize+len(payload))
	leEngine.PutUint16(wire[0:2], 0x8145)
	leEngine.PutUint32(wire[2:6], uint32(len(payload)-ArrayHeaderSize))
	wire = append(wire, payload...)

	decoded, n, err := DecodeContainer(wire, 0, 1)
	require.NoError(t, err)
	require.Equal(t, len(wire), n)

	arr := decoded.At(0).(*ArrayProperty)
	require.False(t, arr.SizeIncludesHeader())
	require.Equal(t, 2, arr.ElementCountOnDisk())

	// Re-serializing replays the same declared-length irregularity.
	require.Equal(t, wire, decoded.Bytes())
}

func TestDecodeProperties_EmptyComplexPart(t *testing.T) {
	wire := make([]byte, HeaderSize)
	leEngine.PutUint16(wire[0:2], 0x8145)
	leEngine.PutUint32(wire[2:6], 0)

	props, n, err := DecodeProperties(wire, 0, 1)

	require.NoError(t, err)
	require.Equal(t, HeaderSize, n)

	arr := props[0].(*ArrayProperty)
	require.True(t, arr.HasEmptyComplexPart())
	require.Equal(t, 0, arr.ElementCountOnDisk())
	require.Empty(t, arr.Data())
}

func TestDecodeProperties_CustomArrayDetector(t *testing.T) {
	payload := makeArrayPayload(1, 1, 2, []byte{7, 7})
	wire := make([]byte, HeaderSize, HeaderSize+len(payload))
	leEngine.PutUint16(wire[0:2], uint16(NewPropertyID(999, true, false)))
	leEngine.PutUint32(wire[2:6], uint32(len(payload)))
	wire = append(wire, payload...)

	t.Run("Default detector sees a plain complex property", func(t *testing.T) {
		props, _, err := DecodeProperties(wire, 0, 1)
		require.NoError(t, err)
		require.IsType(t, (*ComplexProperty)(nil), props[0])
	})

	t.Run("Custom detector promotes it to an array", func(t *testing.T) {
		props, _, err := DecodeProperties(wire, 0, 1,
			WithArrayDetector(func(number uint16) bool { return number == 999 }))
		require.NoError(t, err)

		arr, ok := props[0].(*ArrayProperty)
		require.True(t, ok)
		require.Equal(t, 1, arr.ElementCountOnDisk())
	})
}

func TestDecodeProperties_TruncatedComplexPayload(t *testing.T) {
	complexProp := NewComplexProperty(NewPropertyID(0x0105, true, false), []byte{1, 2, 3, 4, 5, 6})
	wire := NewContainer(complexProp).Bytes()

	// Chop two payload bytes off the end.
	props, n, err := DecodeProperties(wire[:len(wire)-2], 0, 1)

	require.NoError(t, err)
	require.Equal(t, len(wire)-2, n)

	got := props[0].(*ComplexProperty)
	// The declared length still sizes the payload; the missing tail is zero.
	require.Equal(t, []byte{1, 2, 3, 4, 0, 0}, got.Data())
}

func TestDecodeProperties_Errors(t *testing.T) {
	t.Run("Negative count", func(t *testing.T) {
		_, _, err := DecodeProperties([]byte{}, 0, -1)
		require.ErrorIs(t, err, errs.ErrTooManyProperties)
	})

	t.Run("Truncated fixed part", func(t *testing.T) {
		_, _, err := DecodeProperties([]byte{1, 2, 3}, 0, 1)
		require.ErrorIs(t, err, errs.ErrTruncatedSource)
	})

	t.Run("Count beyond available headers", func(t *testing.T) {
		wire := NewContainer(NewSimpleProperty(NewPropertyID(1, false, false), 0)).Bytes()

		_, _, err := DecodeProperties(wire, 0, 2)
		require.ErrorIs(t, err, errs.ErrTruncatedSource)
	})

	t.Run("Zero element size in array payload", func(t *testing.T) {
		payload := makeArrayPayload(2, 2, 0)
		wire := make([]byte, HeaderSize, HeaderSize+len(payload))
		leEngine.PutUint16(wire[0:2], 0x8145)
		leEngine.PutUint32(wire[2:6], uint32(len(payload)))
		wire = append(wire, payload...)

		_, _, err := DecodeProperties(wire, 0, 1)
		require.ErrorIs(t, err, errs.ErrInvalidElementSize)
	})
}

func TestDecodeProperties_AtOffset(t *testing.T) {
	original := NewContainer(NewSimpleProperty(NewPropertyID(1, false, false), 9))
	wire := append([]byte{0xFF, 0xFF}, original.Bytes()...)

	props, n, err := DecodeProperties(wire, 2, 1)

	require.NoError(t, err)
	require.Equal(t, HeaderSize, n)
	require.Equal(t, int32(9), props[0].(*SimpleProperty).Value())
}
