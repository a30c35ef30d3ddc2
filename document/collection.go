package document

// Swatch is a named canonical color
type Swatch struct {
	Class    string `json:"_class"`
	ObjectID string `json:"do_objectID"`
	Name     string `json:"name"`
	Value    *Color `json:"value"`
	rest     Properties
}

type swatchAlias Swatch

func (s *Swatch) UnmarshalJSON(data []byte) error {
	var err error
	s.rest, err = decode(data, (*swatchAlias)(s))
	return err
}

func (s *Swatch) MarshalJSON() ([]byte, error) {
	return encode((*swatchAlias)(s), s.rest)
}

func (s *Swatch) GetID() string { return s.ObjectID }

func (s *Swatch) SetID(id string) { s.ObjectID = id }

func (s *Swatch) GetName() string { return s.Name }

// Clone creates a deep copy of the swatch
func (s *Swatch) Clone() *Swatch {
	if s == nil {
		return nil
	}
	return &Swatch{Class: s.Class, ObjectID: s.ObjectID, Name: s.Name, Value: s.Value.Clone(), rest: s.rest.Clone()}
}

// SwatchContainer holds the document swatch collection
type SwatchContainer struct {
	Class   string    `json:"_class"`
	Objects []*Swatch `json:"objects"`
	rest    Properties
}

type swatchContainerAlias SwatchContainer

func (c *SwatchContainer) UnmarshalJSON(data []byte) error {
	var err error
	c.rest, err = decode(data, (*swatchContainerAlias)(c))
	return err
}

func (c *SwatchContainer) MarshalJSON() ([]byte, error) {
	clone := *c
	if clone.Objects == nil {
		clone.Objects = []*Swatch{}
	}
	return encode((*swatchContainerAlias)(&clone), c.rest)
}

// ByID returns the swatch with the supplied id
func (c *SwatchContainer) ByID(id string) *Swatch {
	if c == nil {
		return nil
	}
	for _, swatch := range c.Objects {
		if swatch.ObjectID == id {
			return swatch
		}
	}
	return nil
}

// Clone creates a deep copy of the container
func (c *SwatchContainer) Clone() *SwatchContainer {
	if c == nil {
		return nil
	}
	clone := &SwatchContainer{Class: c.Class, rest: c.rest.Clone()}
	if c.Objects != nil {
		clone.Objects = make([]*Swatch, len(c.Objects))
		for i, swatch := range c.Objects {
			clone.Objects[i] = swatch.Clone()
		}
	}
	return clone
}

// SharedStyle is a named canonical style; layer styles and text styles share the shape
type SharedStyle struct {
	Class    string `json:"_class"`
	ObjectID string `json:"do_objectID"`
	Name     string `json:"name"`
	Value    *Style `json:"value"`
	rest     Properties
}

type sharedStyleAlias SharedStyle

func (s *SharedStyle) UnmarshalJSON(data []byte) error {
	var err error
	s.rest, err = decode(data, (*sharedStyleAlias)(s))
	return err
}

func (s *SharedStyle) MarshalJSON() ([]byte, error) {
	return encode((*sharedStyleAlias)(s), s.rest)
}

func (s *SharedStyle) GetID() string { return s.ObjectID }

func (s *SharedStyle) SetID(id string) { s.ObjectID = id }

func (s *SharedStyle) GetName() string { return s.Name }

// ValueID returns the identifier a layer snapshot takes when reasserted from s
func (s *SharedStyle) ValueID() string {
	if s.Value != nil && s.Value.ObjectID != "" {
		return s.Value.ObjectID
	}
	return s.ObjectID
}

func (s *SharedStyle) Clone() *SharedStyle {
	if s == nil {
		return nil
	}
	return &SharedStyle{Class: s.Class, ObjectID: s.ObjectID, Name: s.Name, Value: s.Value.Clone(), rest: s.rest.Clone()}
}

// SharedStyleContainer holds a shared layer style or shared text style collection
type SharedStyleContainer struct {
	Class   string         `json:"_class"`
	Objects []*SharedStyle `json:"objects"`
	rest    Properties
}

type sharedStyleContainerAlias SharedStyleContainer

func (c *SharedStyleContainer) UnmarshalJSON(data []byte) error {
	var err error
	c.rest, err = decode(data, (*sharedStyleContainerAlias)(c))
	return err
}

func (c *SharedStyleContainer) MarshalJSON() ([]byte, error) {
	clone := *c
	if clone.Objects == nil {
		clone.Objects = []*SharedStyle{}
	}
	return encode((*sharedStyleContainerAlias)(&clone), c.rest)
}

// ByID returns the shared style with the supplied id
func (c *SharedStyleContainer) ByID(id string) *SharedStyle {
	if c == nil {
		return nil
	}
	for _, style := range c.Objects {
		if style.ObjectID == id {
			return style
		}
	}
	return nil
}

// Clone creates a deep copy of the container
func (c *SharedStyleContainer) Clone() *SharedStyleContainer {
	if c == nil {
		return nil
	}
	clone := &SharedStyleContainer{Class: c.Class, rest: c.rest.Clone()}
	if c.Objects != nil {
		clone.Objects = make([]*SharedStyle, len(c.Objects))
		for i, style := range c.Objects {
			clone.Objects[i] = style.Clone()
		}
	}
	return clone
}
