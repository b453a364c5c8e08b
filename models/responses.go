// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorWithMessage is the body of every non-2xx response
// (ErrorWithMessageResponse). The failure class is carried by the
// HTTP status code; Message is human-readable only.
type ErrorWithMessage struct {
	Message string `json:"message"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
