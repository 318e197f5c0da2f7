// Package jsonutil provides shared utilities for decoding loosely typed JSON
// documents: error wrapping, string extraction, and identifier normalization.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// ToString converts an interface{} value to a string representation.
// Handles string, float64 (formatted as integer), bool, and other types.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// DocumentID returns the first non-empty identifier found under keys.
// Identifiers may be strings, numbers, or extended-JSON object ids
// ({"$oid": "..."}); anything else is ignored.
func DocumentID(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		var id string
		switch val := m[key].(type) {
		case string:
			id = val
		case float64, json.Number:
			id = ToString(val)
		case map[string]interface{}:
			id = GetString(val, "$oid")
		}
		if id != "" {
			return id
		}
	}
	return ""
}
