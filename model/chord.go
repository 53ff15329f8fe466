package model

import (
	"encoding/json"
	"fmt"
)

// ChordDefinition is one entry of a chord data file. On the wire the value is
// a 1 or 2 element array keyed by the name:
//
//	"maj7": ["1P 3M 5P 7M", ["Maj7", "M7"]]
type ChordDefinition struct {
	Name      string
	Intervals string
	Aliases   []string
}

// DecodeValue fills d from the array form, decode reads element i into dst.
// Shared by the JSON and YAML loaders.
func (d *ChordDefinition) DecodeValue(n int, decode func(i int, dst any) error) error {
	if n < 1 || n > 2 {
		return fmt.Errorf("chord %q: definition needs 1 or 2 elements, got %d", d.Name, n)
	}
	if err := decode(0, &d.Intervals); err != nil {
		return fmt.Errorf("chord %q: %w", d.Name, err)
	}
	if n == 2 {
		if err := decode(1, &d.Aliases); err != nil {
			return fmt.Errorf("chord %q: %w", d.Name, err)
		}
	}
	return nil
}

// UnmarshalJSON reads the value only, Name comes from the enclosing key.
func (d *ChordDefinition) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("chord %q: %w", d.Name, err)
	}
	return d.DecodeValue(len(raw), func(i int, dst any) error {
		return json.Unmarshal(raw[i], dst)
	})
}

func (d ChordDefinition) MarshalJSON() ([]byte, error) {
	if len(d.Aliases) == 0 {
		return json.Marshal([]any{d.Intervals})
	}
	return json.Marshal([]any{d.Intervals, d.Aliases})
}
