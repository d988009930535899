// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"reflect"
	"strings"
)

// FlexBool is a boolean that also accepts 1/0 and their string forms on input,
// which is how form-style clients send flags such as is_public.
type FlexBool bool

// Bool returns the plain boolean value.
func (b FlexBool) Bool() bool {
	return bool(b)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.ToLower(string(data)), `"`)

	switch raw {
	case "true", "1":
		*b = true
	case "false", "0":
		*b = false
	default:
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(FlexBool(false))}
	}

	return nil
}

// MarshalJSON implements [json.Marshaler].
func (b FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}
