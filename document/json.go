package document

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Properties holds JSON properties the model does not interpret.
// They are written back unchanged so a document survives a load/save cycle.
type Properties map[string]json.RawMessage

// Clone returns a copy of the properties
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	result := make(Properties, len(p))
	for k, v := range p {
		result[k] = append(json.RawMessage(nil), v...)
	}
	return result
}

var declaredKeys sync.Map // reflect.Type -> map[string]bool

func fieldKeys(t reflect.Type) map[string]bool {
	if cached, ok := declaredKeys.Load(t); ok {
		return cached.(map[string]bool)
	}
	keys := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			if tag == "-" {
				continue
			}
			if tagName, _, _ := strings.Cut(tag, ","); tagName != "" {
				name = tagName
			}
		}
		keys[name] = true
	}
	declaredKeys.Store(t, keys)
	return keys
}

// decode unmarshals data into target, a pointer to a method-less alias struct,
// and returns the properties target does not declare.
func decode(data []byte, target interface{}) (Properties, error) {
	if err := json.Unmarshal(data, target); err != nil {
		return nil, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	keys := fieldKeys(reflect.TypeOf(target).Elem())
	var rest Properties
	for k, v := range all {
		if keys[k] {
			continue
		}
		if rest == nil {
			rest = Properties{}
		}
		rest[k] = v
	}
	return rest, nil
}

// encode marshals source and merges back the preserved properties.
// Declared properties holding null (nil pointers and slices) are omitted.
func encode(source interface{}, rest Properties) ([]byte, error) {
	data, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k, v := range all {
		if string(v) == "null" {
			delete(all, k)
		}
	}
	for k, v := range rest {
		if _, ok := all[k]; !ok {
			all[k] = v
		}
	}
	return json.Marshal(all)
}
