package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind tags which variant a Value holds
type Kind int

const (
	KindAbsent Kind = iota
	KindText
	KindList
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	}
	return "absent"
}

// Value is one field of a meeting record. The model decides the shape per
// record, so a field can be text in one response and a list in the next.
type Value struct {
	Kind   Kind
	Text   string
	List   []Value
	Object map[string]Value
}

// Text builds a text value
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// List builds a list value
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindList, List: items}
}

// Object builds an object value
func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{Kind: KindObject, Object: fields}
}

// FromJSON converts a value produced by encoding/json into a Value.
// Numbers and booleans become text so that consumers only ever see the
// four variants.
func FromJSON(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Value{}
	case string:
		return Text(v)
	case json.Number:
		return Text(v.String())
	case float64:
		return Text(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		return Text(strconv.FormatBool(v))
	case []interface{}:
		items := make([]Value, 0, len(v))
		for _, item := range v {
			items = append(items, FromJSON(item))
		}
		return List(items...)
	case map[string]interface{}:
		fields := make(map[string]Value, len(v))
		for key, item := range v {
			fields[key] = FromJSON(item)
		}
		return Object(fields)
	}
	return Value{}
}

// IsPresent reports whether the value carries something to render.
// Blank text counts as absent; an empty list or object does not.
func (v Value) IsPresent() bool {
	switch v.Kind {
	case KindText:
		return strings.TrimSpace(v.Text) != ""
	case KindList, KindObject:
		return true
	}
	return false
}

// Get returns the first present field among keys of an object value
func (v Value) Get(keys ...string) Value {
	if v.Kind != KindObject {
		return Value{}
	}
	for _, key := range keys {
		if field, ok := v.Object[key]; ok && field.IsPresent() {
			return field
		}
	}
	return Value{}
}

// String flattens the value to a single line. Lists are joined with ", ".
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return strings.TrimSpace(v.Text)
	case KindList:
		parts := make([]string, 0, len(v.List))
		for _, item := range v.List {
			if s := item.String(); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case KindObject:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
	return ""
}

// StringOr is String with a fallback for values that are not present
func (v Value) StringOr(fallback string) string {
	if !v.IsPresent() {
		return fallback
	}
	if s := v.String(); s != "" {
		return s
	}
	return fallback
}

// Interface converts the value back to plain Go types for encoders
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindList:
		out := make([]interface{}, 0, len(v.List))
		for _, item := range v.List {
			out = append(out, item.Interface())
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.Object))
		for key, item := range v.Object {
			out[key] = item.Interface()
		}
		return out
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML implements yaml.Marshaler
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}
