// Package jsonutil wraps the standard JSON codec with the error reporting
// style used across this module.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// Stringify serializes v to compact JSON text.
func Stringify(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to serialize to json: %w", err)
	}
	return string(data), nil
}

// Parse deserializes JSON text into a fresh value of type T.
func Parse[T any](text string) (*T, error) {
	v := new(T)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return nil, fmt.Errorf("unable to parse json: %w", err)
	}
	return v, nil
}
