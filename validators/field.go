// Package validators turns untrusted request bodies into typed inputs.
//
// Bodies are decoded once into per-endpoint structs of Field values. A Field
// remembers whether its key was sent at all, so handlers can tell an omitted
// field apart from one sent as null.
package validators

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Field is a lazily typed JSON value.
type Field struct {
	Present bool
	Raw     json.RawMessage
}

// UnmarshalJSON is called for every key present in the body, including null.
func (f *Field) UnmarshalJSON(b []byte) error {
	f.Present = true
	f.Raw = append(f.Raw[:0], b...)
	return nil
}

func (f Field) IsNull() bool {
	return f.Present && bytes.Equal(bytes.TrimSpace(f.Raw), []byte("null"))
}

// AsString returns the value only when it is a JSON string. No trimming.
func (f Field) AsString() (string, bool) {
	if !f.Present {
		return "", false
	}
	var s string
	if err := json.Unmarshal(f.Raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// AsText accepts strings and numbers and returns them trimmed.
func (f Field) AsText() (string, bool) {
	if s, ok := f.AsString(); ok {
		return strings.TrimSpace(s), true
	}
	if n, ok := f.number(); ok {
		return n.String(), true
	}
	return "", false
}

// AsNumber accepts JSON numbers and numeric strings. The result is always
// finite.
func (f Field) AsNumber() (float64, bool) {
	var raw string
	if n, ok := f.number(); ok {
		raw = n.String()
	} else if s, ok := f.AsString(); ok {
		raw = strings.TrimSpace(s)
	} else {
		return 0, false
	}
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// AsBool is strict: only true and false are booleans.
func (f Field) AsBool() (bool, bool) {
	if !f.Present {
		return false, false
	}
	switch string(bytes.TrimSpace(f.Raw)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func (f Field) AsObject() (map[string]any, bool) {
	if !f.Present || f.IsNull() {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(f.Raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

func (f Field) number() (json.Number, bool) {
	if !f.Present {
		return "", false
	}
	dec := json.NewDecoder(bytes.NewReader(f.Raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	n, ok := v.(json.Number)
	return n, ok
}

// ParseID parses a path identifier as a base-10 integer.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
