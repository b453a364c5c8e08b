// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/portobello/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// Values implementing json.Marshaler (the configuration sets do) are
// encoded through their own MarshalJSON. If marshaling fails the response
// is a 500 with an ErrorWithMessage body and the error is returned.
//
//	WriteJSON(w, entries, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "error writing data to JSON")
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an ErrorWithMessage body with the given status.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	body, _ := json.Marshal(models.ErrorWithMessage{Message: message})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
