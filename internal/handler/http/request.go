// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-travel-api/internal/validators"
)

// maxBodySize caps request bodies.
const maxBodySize = 1 << 20

// decodeJSON reads the request body into dst.
//
// An empty body leaves dst untouched so that the validator reports the
// missing fields. Syntax errors wrap [ErrMalformedJSON]; a value of the wrong
// type is reported as a [*validators.ValidationError] on its field.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))

	err := decoder.Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validators.NewTypeError(typeErr.Field)
	}

	return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
}
