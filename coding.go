// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendardate

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON implements json.Marshaler. A date is encoded as a single
// JSON string in YYYY-MM-DD format.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, len(text)+2)
	buf = append(buf, '"')
	buf = append(buf, text...)
	return append(buf, '"'), nil
}

// UnmarshalJSON implements json.Unmarshaler. Only JSON strings are
// accepted, a JSON null leaves d unchanged. d is not modified on error.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &InvalidDateError{Text: string(data), Reason: "not a JSON string"}
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (d CalendarDate) MarshalYAML() (any, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a scalar
// in YYYY-MM-DD format, errors include the node's line number.
func (d *CalendarDate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", node.Line, &InvalidDateError{Text: node.Value, Reason: "not a scalar"})
	}
	if err := d.UnmarshalText([]byte(node.Value)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}
