package document

import (
	"encoding/json"
)

// Layer is a node of the visual tree, discriminated by Class.
// Fields not relevant to a kind stay empty and are omitted on encode.
type Layer struct {
	Class            Kind              `json:"_class"`
	ObjectID         string            `json:"do_objectID"`
	Name             string            `json:"name"`
	Frame            *Rect             `json:"frame"`
	Style            *Style            `json:"style"`
	SharedStyleID    string            `json:"sharedStyleID,omitempty"`
	SymbolID         string            `json:"symbolID,omitempty"`
	OverrideValues   []*OverrideValue  `json:"overrideValues"`
	AttributedString *AttributedString `json:"attributedString"`
	BackgroundColor  *Color            `json:"backgroundColor"`
	Layers           []*Layer          `json:"layers"`
	rest             Properties
}

type layerAlias Layer

func (l *Layer) UnmarshalJSON(data []byte) error {
	var err error
	l.rest, err = decode(data, (*layerAlias)(l))
	return err
}

func (l *Layer) MarshalJSON() ([]byte, error) {
	if l.Class.IsContainer() && l.Layers == nil {
		clone := *l
		clone.Layers = []*Layer{}
		return encode((*layerAlias)(&clone), l.rest)
	}
	return encode((*layerAlias)(l), l.rest)
}

// Property returns a property the model does not interpret
func (l *Layer) Property(name string) (json.RawMessage, bool) {
	value, ok := l.rest[name]
	return value, ok
}

// SetProperty sets a property the model does not interpret
func (l *Layer) SetProperty(name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if l.rest == nil {
		l.rest = Properties{}
	}
	l.rest[name] = data
	return nil
}

// Sublayers returns every layer below l in pre-order, excluding l
func (l *Layer) Sublayers() []*Layer {
	var result []*Layer
	Walk(l.Layers, func(layer *Layer) bool {
		result = append(result, layer)
		return true
	})
	return result
}

// FindByID returns the layer with the supplied id within l's subtree, l included
func (l *Layer) FindByID(id string) *Layer {
	if l.ObjectID == id {
		return l
	}
	var found *Layer
	Walk(l.Layers, func(layer *Layer) bool {
		if found != nil {
			return false
		}
		if layer.ObjectID == id {
			found = layer
			return false
		}
		return true
	})
	return found
}

// Clone creates a deep copy of the layer and its subtree
func (l *Layer) Clone() *Layer {
	if l == nil {
		return nil
	}
	clone := &Layer{
		Class:            l.Class,
		ObjectID:         l.ObjectID,
		Name:             l.Name,
		Frame:            l.Frame.Clone(),
		Style:            l.Style.Clone(),
		SharedStyleID:    l.SharedStyleID,
		SymbolID:         l.SymbolID,
		AttributedString: l.AttributedString.Clone(),
		BackgroundColor:  l.BackgroundColor.Clone(),
		rest:             l.rest.Clone(),
	}
	if l.OverrideValues != nil {
		clone.OverrideValues = make([]*OverrideValue, len(l.OverrideValues))
		for i, value := range l.OverrideValues {
			clone.OverrideValues[i] = value.Clone()
		}
	}
	if l.Layers != nil {
		clone.Layers = make([]*Layer, len(l.Layers))
		for i, child := range l.Layers {
			clone.Layers[i] = child.Clone()
		}
	}
	return clone
}

// Rect is a layer frame
type Rect struct {
	Class                string  `json:"_class"`
	ConstrainProportions bool    `json:"constrainProportions"`
	Height               float64 `json:"height"`
	Width                float64 `json:"width"`
	X                    float64 `json:"x"`
	Y                    float64 `json:"y"`
}

// Clone creates a copy of the frame
func (r *Rect) Clone() *Rect {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

var pageDefaults = Properties{
	"booleanOperation":      json.RawMessage(`-1`),
	"isFixedToViewport":     json.RawMessage(`false`),
	"isFlippedHorizontal":   json.RawMessage(`false`),
	"isFlippedVertical":     json.RawMessage(`false`),
	"isLocked":              json.RawMessage(`false`),
	"isVisible":             json.RawMessage(`true`),
	"layerListExpandedType": json.RawMessage(`0`),
	"nameIsFixed":           json.RawMessage(`false`),
	"resizingConstraint":    json.RawMessage(`63`),
	"resizingType":          json.RawMessage(`0`),
	"rotation":              json.RawMessage(`0`),
	"shouldBreakMaskChain":  json.RawMessage(`false`),
	"exportOptions":         json.RawMessage(`{"_class":"exportOptions","includedLayerIds":[],"layerOptions":0,"shouldTrim":false,"exportFormats":[]}`),
	"clippingMaskMode":      json.RawMessage(`0`),
	"hasClippingMask":       json.RawMessage(`false`),
	"hasClickThrough":       json.RawMessage(`true`),
	"groupLayout":           json.RawMessage(`{"_class":"MSImmutableFreeformGroupLayout"}`),
	"horizontalRulerData":   json.RawMessage(`{"_class":"rulerData","base":0,"guides":[]}`),
	"verticalRulerData":     json.RawMessage(`{"_class":"rulerData","base":0,"guides":[]}`),
}

// NewPage creates an empty page carrying the properties the host application expects
func NewPage(id, name string) *Layer {
	return &Layer{
		Class:    KindPage,
		ObjectID: id,
		Name:     name,
		Frame:    &Rect{Class: "rect", ConstrainProportions: true},
		Layers:   []*Layer{},
		rest:     pageDefaults.Clone(),
	}
}
