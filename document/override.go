package document

import (
	"encoding/json"
	"strings"
)

const (
	// PathSeparator joins layer identifiers of an override path
	PathSeparator = "/"
	// KindSeparator separates the override path from its kind tag
	KindSeparator = "_"
)

// Override kinds the merge engine interprets
const (
	OverrideSymbolID    = "symbolID"
	OverrideLayerStyle  = "layerStyle"
	OverrideTextStyle   = "textStyle"
	OverrideStringValue = "stringValue"
)

// OverrideValue is an instance customization addressed by an override name
type OverrideValue struct {
	Class        string          `json:"_class"`
	OverrideName string          `json:"overrideName"`
	Value        json.RawMessage `json:"value"`
	rest         Properties
}

type overrideValueAlias OverrideValue

func (o *OverrideValue) UnmarshalJSON(data []byte) error {
	var err error
	o.rest, err = decode(data, (*overrideValueAlias)(o))
	return err
}

func (o *OverrideValue) MarshalJSON() ([]byte, error) {
	return encode((*overrideValueAlias)(o), o.rest)
}

// Path parses the override name
func (o *OverrideValue) Path() OverridePath {
	return ParseOverrideName(o.OverrideName)
}

// StringValue returns the value when it is a JSON string
func (o *OverrideValue) StringValue() (string, bool) {
	if len(o.Value) == 0 || o.Value[0] != '"' {
		return "", false
	}
	var value string
	if err := json.Unmarshal(o.Value, &value); err != nil {
		return "", false
	}
	return value, true
}

// SetStringValue replaces the value with a JSON string
func (o *OverrideValue) SetStringValue(value string) {
	o.Value, _ = json.Marshal(value)
}

// Clone creates a deep copy of the override value
func (o *OverrideValue) Clone() *OverrideValue {
	if o == nil {
		return nil
	}
	return &OverrideValue{
		Class:        o.Class,
		OverrideName: o.OverrideName,
		Value:        append(json.RawMessage(nil), o.Value...),
		rest:         o.rest.Clone(),
	}
}

// OverridePath is a parsed override name: layer identifiers through nested masters and a kind tag
type OverridePath struct {
	IDs  []string
	Kind string
}

// ParseOverrideName splits "id1/id2_kind" into its identifiers and kind
func ParseOverrideName(name string) OverridePath {
	ids, kind, _ := strings.Cut(name, KindSeparator)
	return OverridePath{IDs: strings.Split(ids, PathSeparator), Kind: kind}
}

// String formats the path back into an override name
func (p OverridePath) String() string {
	name := strings.Join(p.IDs, PathSeparator)
	if p.Kind == "" {
		return name
	}
	return name + KindSeparator + p.Kind
}
