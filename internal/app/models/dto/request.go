package dto

import (
	"bytes"
	"encoding/json"
)

// OptionalString distinguishes an absent JSON key from an explicit null or
// value. An explicit null reads as a set, empty string, so a PATCH with
// {"description": null} wipes the stored text instead of leaving it alone.
type OptionalString struct {
	Set   bool
	Value string
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = ""
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON implements json.Marshaler
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
