package document

import "unicode/utf16"

// AttributedString is the content of a text layer split into styled runs
type AttributedString struct {
	Class      string             `json:"_class"`
	String     string             `json:"string"`
	Attributes []*StringAttribute `json:"attributes"`
	rest       Properties
}

type attributedStringAlias AttributedString

func (a *AttributedString) UnmarshalJSON(data []byte) error {
	var err error
	a.rest, err = decode(data, (*attributedStringAlias)(a))
	return err
}

func (a *AttributedString) MarshalJSON() ([]byte, error) {
	return encode((*attributedStringAlias)(a), a.rest)
}

// Clone creates a deep copy of the attributed string
func (a *AttributedString) Clone() *AttributedString {
	if a == nil {
		return nil
	}
	clone := &AttributedString{Class: a.Class, String: a.String, rest: a.rest.Clone()}
	if a.Attributes != nil {
		clone.Attributes = make([]*StringAttribute, len(a.Attributes))
		for i, attribute := range a.Attributes {
			clone.Attributes[i] = attribute.Clone()
		}
	}
	return clone
}

// StringAttribute styles Length characters starting at Location.
// Offsets count UTF-16 code units.
type StringAttribute struct {
	Class      string          `json:"_class"`
	Location   int             `json:"location"`
	Length     int             `json:"length"`
	Attributes *TextAttributes `json:"attributes"`
	rest       Properties
}

type stringAttributeAlias StringAttribute

func (s *StringAttribute) UnmarshalJSON(data []byte) error {
	var err error
	s.rest, err = decode(data, (*stringAttributeAlias)(s))
	return err
}

func (s *StringAttribute) MarshalJSON() ([]byte, error) {
	return encode((*stringAttributeAlias)(s), s.rest)
}

// Clone creates a deep copy of the attribute run
func (s *StringAttribute) Clone() *StringAttribute {
	if s == nil {
		return nil
	}
	return &StringAttribute{
		Class:      s.Class,
		Location:   s.Location,
		Length:     s.Length,
		Attributes: s.Attributes.Clone(),
		rest:       s.rest.Clone(),
	}
}

// TextLength returns the length of text in UTF-16 code units
func TextLength(text string) int {
	return len(utf16.Encode([]rune(text)))
}
