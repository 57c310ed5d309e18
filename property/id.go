package property

// PropertyID is the 16-bit property identifier. The low 14 bits carry the
// property number; the top two bits are flags. It is immutable once a
// property is constructed and is never renumbered.
type PropertyID uint16

const (
	// ComplexFlag marks a property that carries a trailing variable-length
	// payload.
	ComplexFlag = 0x8000
	// BlipIDFlag marks a property whose value is a picture (blip) reference.
	BlipIDFlag = 0x4000
	// numberMask selects the property number bits.
	numberMask = 0x3FFF
)

// NewPropertyID builds an identifier from a property number and its flag bits.
// Number bits outside the 14-bit range are discarded.
func NewPropertyID(number uint16, isComplex, blipID bool) PropertyID {
	id := PropertyID(number & numberMask)
	if isComplex {
		id |= ComplexFlag
	}
	if blipID {
		id |= BlipIDFlag
	}

	return id
}

// Number returns the 14-bit property number.
func (id PropertyID) Number() uint16 {
	return uint16(id) & numberMask
}

// IsComplex reports whether the property carries a trailing payload.
func (id PropertyID) IsComplex() bool {
	return id&ComplexFlag != 0
}

// IsBlipID reports whether the property value references a picture.
func (id PropertyID) IsBlipID() bool {
	return id&BlipIDFlag != 0
}

// Well-known array-typed property numbers. The wire format carries no
// per-property type tag, so the decoder has to know which numbers store their
// payload as a counted element array.
const (
	PropGeometryVertices           = 0x0145
	PropGeometrySegmentInfo        = 0x0146
	PropGeometryConnectionSites    = 0x0151
	PropGeometryConnectionSitesDir = 0x0152
	PropGeometryAdjustHandles      = 0x0155
	PropGeometryGuides             = 0x0156
	PropGeometryInscribe           = 0x0157
	PropFillShadeColors            = 0x0197
	PropWrapPolygonVertices        = 0x0383
)

// IsArrayNumber is the default array detector used by DecodeProperties. It
// recognizes the well-known array-typed property numbers above.
func IsArrayNumber(number uint16) bool {
	switch number {
	case PropGeometryVertices,
		PropGeometrySegmentInfo,
		PropGeometryConnectionSites,
		PropGeometryConnectionSitesDir,
		PropGeometryAdjustHandles,
		PropGeometryGuides,
		PropGeometryInscribe,
		PropFillShadeColors,
		PropWrapPolygonVertices:
		return true
	default:
		return false
	}
}
