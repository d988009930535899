// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as a JSON body with the given status code and
// returns the number of body bytes written.
//
// HTML characters are not escaped: bodies are consumed as JSON, so "&" in a
// pagination link or a description stays "&" rather than "\u0026". The
// trailing newline of the encoder is dropped.
//
// If data cannot be encoded the response is a plain 500 and the error is
// returned.
//
//	WriteJSON(w, models.DataResponse[models.TravelResource]{Data: travel}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
