// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("the given data was invalid")
)
