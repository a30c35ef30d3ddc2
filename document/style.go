package document

// Style is the style snapshot embedded in a layer, or the value of a shared style
type Style struct {
	Class        string     `json:"_class"`
	ObjectID     string     `json:"do_objectID,omitempty"`
	Fills        []*Paint   `json:"fills"`
	Borders      []*Paint   `json:"borders"`
	Shadows      []*Paint   `json:"shadows"`
	InnerShadows []*Paint   `json:"innerShadows"`
	TextStyle    *TextStyle `json:"textStyle"`
	rest         Properties
}

type styleAlias Style

func (s *Style) UnmarshalJSON(data []byte) error {
	var err error
	s.rest, err = decode(data, (*styleAlias)(s))
	return err
}

func (s *Style) MarshalJSON() ([]byte, error) {
	return encode((*styleAlias)(s), s.rest)
}

// Colors returns every color embedded in the style, in fill, border, shadow,
// inner shadow, text order
func (s *Style) Colors() []*Color {
	if s == nil {
		return nil
	}
	var colors []*Color
	for _, group := range [][]*Paint{s.Fills, s.Borders, s.Shadows, s.InnerShadows} {
		for _, paint := range group {
			if paint != nil && paint.Color != nil {
				colors = append(colors, paint.Color)
			}
		}
	}
	if s.TextStyle != nil && s.TextStyle.EncodedAttributes != nil && s.TextStyle.EncodedAttributes.Color != nil {
		colors = append(colors, s.TextStyle.EncodedAttributes.Color)
	}
	return colors
}

// Assign replaces every property of s with a copy of value's, then sets the snapshot identifier to id
func (s *Style) Assign(value *Style, id string) {
	*s = *value.Clone()
	s.ObjectID = id
}

// Clone creates a deep copy of the style
func (s *Style) Clone() *Style {
	if s == nil {
		return nil
	}
	return &Style{
		Class:        s.Class,
		ObjectID:     s.ObjectID,
		Fills:        clonePaints(s.Fills),
		Borders:      clonePaints(s.Borders),
		Shadows:      clonePaints(s.Shadows),
		InnerShadows: clonePaints(s.InnerShadows),
		TextStyle:    s.TextStyle.Clone(),
		rest:         s.rest.Clone(),
	}
}

// Paint is a fill, border, shadow or inner shadow entry
type Paint struct {
	Class    string `json:"_class"`
	Color    *Color `json:"color"`
	FillType *int   `json:"fillType"`
	rest     Properties
}

type paintAlias Paint

func (p *Paint) UnmarshalJSON(data []byte) error {
	var err error
	p.rest, err = decode(data, (*paintAlias)(p))
	return err
}

func (p *Paint) MarshalJSON() ([]byte, error) {
	return encode((*paintAlias)(p), p.rest)
}

// Clone creates a deep copy of the paint
func (p *Paint) Clone() *Paint {
	if p == nil {
		return nil
	}
	clone := &Paint{Class: p.Class, Color: p.Color.Clone(), rest: p.rest.Clone()}
	if p.FillType != nil {
		fillType := *p.FillType
		clone.FillType = &fillType
	}
	return clone
}

func clonePaints(paints []*Paint) []*Paint {
	if paints == nil {
		return nil
	}
	result := make([]*Paint, len(paints))
	for i, paint := range paints {
		result[i] = paint.Clone()
	}
	return result
}

// TextStyle holds the encoded text attributes of a style
type TextStyle struct {
	Class             string          `json:"_class"`
	EncodedAttributes *TextAttributes `json:"encodedAttributes"`
	rest              Properties
}

type textStyleAlias TextStyle

func (t *TextStyle) UnmarshalJSON(data []byte) error {
	var err error
	t.rest, err = decode(data, (*textStyleAlias)(t))
	return err
}

func (t *TextStyle) MarshalJSON() ([]byte, error) {
	return encode((*textStyleAlias)(t), t.rest)
}

// Clone creates a deep copy of the text style
func (t *TextStyle) Clone() *TextStyle {
	if t == nil {
		return nil
	}
	return &TextStyle{Class: t.Class, EncodedAttributes: t.EncodedAttributes.Clone(), rest: t.rest.Clone()}
}

// TextAttributes holds font, paragraph and color attributes of a text run or text style
type TextAttributes struct {
	Color *Color `json:"MSAttributedStringColorAttribute"`
	rest  Properties
}

type textAttributesAlias TextAttributes

func (a *TextAttributes) UnmarshalJSON(data []byte) error {
	var err error
	a.rest, err = decode(data, (*textAttributesAlias)(a))
	return err
}

func (a *TextAttributes) MarshalJSON() ([]byte, error) {
	return encode((*textAttributesAlias)(a), a.rest)
}

// Clone creates a deep copy of the attributes
func (a *TextAttributes) Clone() *TextAttributes {
	if a == nil {
		return nil
	}
	return &TextAttributes{Color: a.Color.Clone(), rest: a.rest.Clone()}
}
