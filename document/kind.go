package document

// Kind is the layer class discriminator stored in the "_class" property
type Kind string

const (
	// Containers
	KindPage         Kind = "page"
	KindArtboard     Kind = "artboard"
	KindGroup        Kind = "group"
	KindSymbolMaster Kind = "symbolMaster"
	KindShapeGroup   Kind = "shapeGroup"

	KindSymbolInstance Kind = "symbolInstance"
	KindText           Kind = "text"

	// Shapes
	KindOval      Kind = "oval"
	KindRectangle Kind = "rectangle"
	KindPolygon   Kind = "polygon"
	KindStar      Kind = "star"
	KindTriangle  Kind = "triangle"
	KindShapePath Kind = "shapePath"

	KindSlice   Kind = "slice"
	KindHotspot Kind = "MSImmutableHotspotLayer"
	KindBitmap  Kind = "bitmap"
)

// IsContainer returns true for kinds owning an ordered list of child layers
func (k Kind) IsContainer() bool {
	switch k {
	case KindPage, KindArtboard, KindGroup, KindSymbolMaster, KindShapeGroup:
		return true
	}
	return false
}

// HasBackground returns true for kinds that may carry a background color.
// Symbol masters are artboards in the file format.
func (k Kind) HasBackground() bool {
	switch k {
	case KindArtboard, KindSlice, KindSymbolMaster:
		return true
	}
	return false
}
