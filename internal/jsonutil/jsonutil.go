// Package jsonutil provides shared helpers for decoding JSON payloads with
// contextual errors. Decoding goes through json-iterator configured to be
// compatible with encoding/json.
package jsonutil

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// API is the json-iterator configuration used throughout the module.
var API = jsoniter.ConfigCompatibleWithStandardLibrary

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := API.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalArrayAllowEmpty unmarshals a JSON array into a slice.
// A JSON null or an empty array yields an empty, non-nil slice. Any other
// top-level value (object, string, number) is an error.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	if t := API.Get(data).ValueType(); t != jsoniter.ArrayValue && t != jsoniter.NilValue {
		return nil, fmt.Errorf("%s: expected JSON array", context)
	}
	var entries []T
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// MarshalIndent encodes v as indented JSON.
func MarshalIndent(v interface{}) ([]byte, error) {
	return API.MarshalIndent(v, "", "  ")
}
