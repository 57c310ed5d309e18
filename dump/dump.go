// Package dump renders property containers as human-readable text or as a
// simple XML fragment for diagnostics.
//
// It is a thin formatter over the public accessors of the property package
// and carries no codec logic of its own. Property numbers are printed
// verbatim; interpreting what a number means to a renderer is out of scope
// for the codec.
package dump

import (
	"fmt"
	"io"

	"github.com/shapekit/escher/internal/pool"
	"github.com/shapekit/escher/property"
)

// Text writes a human-readable dump of the container to w, one property per
// stanza in wire order.
func Text(w io.Writer, c *property.Container) error {
	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	for p := range c.All() {
		id := p.ID()
		fmt.Fprintf(bb, "propNum: %d, complex: %t, blipId: %t\n", id.Number(), id.IsComplex(), id.IsBlipID())

		switch tp := p.(type) {
		case *property.SimpleProperty:
			fmt.Fprintf(bb, "    value: 0x%08X\n", uint32(tp.Value())) //nolint: gosec
		case *property.ArrayProperty:
			fmt.Fprintf(bb, "    {ArrayProperty:\n")
			fmt.Fprintf(bb, "     Num Elements: %d\n", tp.ElementCountOnDisk())
			fmt.Fprintf(bb, "     Num Elements In Memory: %d\n", tp.ElementCountInMemory())
			fmt.Fprintf(bb, "     Size of elements: %d\n", tp.RawElementSize())
			i := 0
			for element := range tp.All() {
				fmt.Fprintf(bb, "     Element %d: %X\n", i, element)
				i++
			}
			fmt.Fprintf(bb, "    }\n")
		case *property.ComplexProperty:
			fmt.Fprintf(bb, "    data: %X\n", tp.Data())
		}
	}

	_, err := w.Write(bb.Bytes())

	return err
}

// XML writes the container as a flat XML fragment to w, each property as one
// element, array elements nested. indent is prepended to every line.
func XML(w io.Writer, c *property.Container, indent string) error {
	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	for p := range c.All() {
		id := p.ID()

		switch tp := p.(type) {
		case *property.SimpleProperty:
			fmt.Fprintf(bb, "%s<SimpleProperty id=\"0x%04X\" blipId=\"%t\" value=\"%d\"/>\n",
				indent, uint16(id), id.IsBlipID(), tp.Value())
		case *property.ArrayProperty:
			fmt.Fprintf(bb, "%s<ArrayProperty id=\"0x%04X\" blipId=\"%t\">\n", indent, uint16(id), id.IsBlipID())
			for element := range tp.All() {
				fmt.Fprintf(bb, "%s\t<Element>%X</Element>\n", indent, element)
			}
			fmt.Fprintf(bb, "%s</ArrayProperty>\n", indent)
		case *property.ComplexProperty:
			fmt.Fprintf(bb, "%s<ComplexProperty id=\"0x%04X\" blipId=\"%t\">%X</ComplexProperty>\n",
				indent, uint16(id), id.IsBlipID(), tp.Data())
		}
	}

	_, err := w.Write(bb.Bytes())

	return err
}
