package dump

import (
	"bytes"
	"testing"

	"github.com/shapekit/escher/property"
	"github.com/stretchr/testify/require"
)

func buildContainer() *property.Container {
	simple := property.NewSimpleProperty(property.NewPropertyID(127, false, false), 0x0010)
	complexProp := property.NewComplexProperty(property.NewPropertyID(0x0105, true, true), []byte{0xAB, 0xCD})

	payload := []byte{
		0x02, 0x00, // countOnDisk
		0x02, 0x00, // countInMemory
		0x02, 0x00, // elementSize
		0x01, 0x02,
		0x03, 0x04,
	}
	arr := property.NewArrayProperty(property.NewPropertyID(property.PropGeometryVertices, true, false), payload)

	return property.NewContainer(simple, complexProp, arr)
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	err := Text(&buf, buildContainer())
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "propNum: 127, complex: false, blipId: false")
	require.Contains(t, out, "value: 0x00000010")
	require.Contains(t, out, "data: ABCD")
	require.Contains(t, out, "Num Elements: 2")
	require.Contains(t, out, "Num Elements In Memory: 2")
	require.Contains(t, out, "Size of elements: 2")
	require.Contains(t, out, "Element 0: 0102")
	require.Contains(t, out, "Element 1: 0304")
}

func TestXML(t *testing.T) {
	var buf bytes.Buffer
	err := XML(&buf, buildContainer(), "  ")
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `  <SimpleProperty id="0x007F" blipId="false" value="16"/>`)
	require.Contains(t, out, `  <ComplexProperty id="0xC105" blipId="true">ABCD</ComplexProperty>`)
	require.Contains(t, out, `  <ArrayProperty id="0x8145" blipId="false">`)
	require.Contains(t, out, "<Element>0102</Element>")
	require.Contains(t, out, "  </ArrayProperty>")
}

func TestText_EmptyContainer(t *testing.T) {
	var buf bytes.Buffer
	err := Text(&buf, property.NewContainer())
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
