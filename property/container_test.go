package property

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildMixedContainer() *Container {
	simple := NewSimpleProperty(NewPropertyID(127, false, false), 0x00100010)
	complexProp := NewComplexProperty(NewPropertyID(0x0105, true, true), []byte{0xA1, 0xA2, 0xA3})
	arr := NewArrayProperty(NewPropertyID(PropGeometryVertices, true, false),
		makeArrayPayload(2, 2, 4, []byte{1, 1, 1, 1}, []byte{2, 2, 2, 2}))

	return NewContainer(simple, complexProp, arr)
}

func TestContainer_Accessors(t *testing.T) {
	c := buildMixedContainer()

	require.Equal(t, 3, c.Len())
	require.Equal(t, uint16(127), c.At(0).ID().Number())

	p, ok := c.Lookup(PropGeometryVertices)
	require.True(t, ok)
	require.IsType(t, (*ArrayProperty)(nil), p)

	_, ok = c.Lookup(9999)
	require.False(t, ok)

	var order []uint16
	for p := range c.All() {
		order = append(order, p.ID().Number())
	}
	require.Equal(t, []uint16{127, 0x0105, PropGeometryVertices}, order)
}

func TestContainer_SerializedSize(t *testing.T) {
	c := buildMixedContainer()

	// 3 fixed parts + 3-byte complex payload + 14-byte array payload.
	require.Equal(t, 3*HeaderSize+3+14, c.SerializedSize())
}

func TestContainer_Serialize_TwoPassLayout(t *testing.T) {
	c := buildMixedContainer()

	data := make([]byte, c.SerializedSize())
	n := c.Serialize(data, 0)
	require.Equal(t, c.SerializedSize(), n)

	// Pass 1: three fixed parts back to back.
	require.Equal(t, uint16(0x007F), leEngine.Uint16(data[0:2]))
	require.Equal(t, uint32(0x00100010), leEngine.Uint32(data[2:6]))

	require.Equal(t, uint16(0xC105), leEngine.Uint16(data[6:8]))
	require.Equal(t, uint32(3), leEngine.Uint32(data[8:12]))

	require.Equal(t, uint16(0x8145), leEngine.Uint16(data[12:14]))
	require.Equal(t, uint32(14), leEngine.Uint32(data[14:18]))

	// Pass 2: complex payloads in the same order, after all fixed parts.
	require.Equal(t, []byte{0xA1, 0xA2, 0xA3}, data[18:21])
	require.Equal(t, uint16(2), leEngine.Uint16(data[21:23]))
}

func TestContainer_Bytes(t *testing.T) {
	c := buildMixedContainer()

	data := make([]byte, c.SerializedSize())
	c.Serialize(data, 0)

	require.Equal(t, data, c.Bytes())
}

func TestContainer_SerializeAtOffset(t *testing.T) {
	c := NewContainer(NewSimpleProperty(NewPropertyID(1, false, false), 42))

	data := make([]byte, HeaderSize+4)
	n := c.Serialize(data, 4)

	require.Equal(t, HeaderSize, n)
	require.Equal(t, uint16(1), leEngine.Uint16(data[4:6]))
	require.Equal(t, uint32(42), leEngine.Uint32(data[6:10]))
}

func TestContainer_DuplicateBlobs(t *testing.T) {
	shared := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	a := NewComplexProperty(NewPropertyID(1, true, true), append([]byte(nil), shared...))
	b := NewComplexProperty(NewPropertyID(2, true, true), append([]byte(nil), shared...))
	unique := NewComplexProperty(NewPropertyID(3, true, false), []byte{1})
	simple := NewSimpleProperty(NewPropertyID(4, false, false), 0)

	c := NewContainer(a, b, unique, simple)
	groups := c.DuplicateBlobs()

	require.Len(t, groups, 1)
	ids, ok := groups[a.Fingerprint()]
	require.True(t, ok)
	require.Equal(t, []PropertyID{a.ID(), b.ID()}, ids)
}
