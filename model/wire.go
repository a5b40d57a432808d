package model

import (
	"fmt"
	"strings"
	"time"
)

// Vendor timestamps carry microsecond precision and a trailing zone marker,
// e.g. "2020-01-02T03:04:05.678000Z". The marker is dropped before parsing.
const wireTimeLayout = "2006-01-02T15:04:05.999999"

// wireString reads an optional string field. Empty strings and JSON nulls
// both normalize to unset.
func wireString(payload map[string]any, key string) *string {
	value, ok := payload[key].(string)
	if !ok || value == "" {
		return nil
	}
	return &value
}

func wireBool(payload map[string]any, key string) *bool {
	value, ok := payload[key].(bool)
	if !ok {
		return nil
	}
	return &value
}

// wireInt reads a numeric field. JSON numbers decode as float64.
func wireInt(payload map[string]any, key string) *int {
	switch value := payload[key].(type) {
	case float64:
		out := int(value)
		return &out
	case int:
		out := value
		return &out
	default:
		return nil
	}
}

func wireTime(payload map[string]any, key string) (*time.Time, error) {
	raw, ok := payload[key].(string)
	if !ok || raw == "" {
		return nil, nil
	}
	if len(raw) > 0 {
		raw = raw[:len(raw)-1]
	}
	parsed, err := time.Parse(wireTimeLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("model: parse %s timestamp %q: %w", key, raw, err)
	}
	parsed = parsed.UTC()
	return &parsed, nil
}

func setWireString(payload map[string]any, key string, value *string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return
	}
	payload[key] = *value
}

func setWireInt(payload map[string]any, key string, value *int) {
	if value == nil {
		return
	}
	payload[key] = *value
}

func setWireBool(payload map[string]any, key string, value *bool) {
	if value == nil {
		return
	}
	payload[key] = *value
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
