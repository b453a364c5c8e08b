// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/portobello/internal/logger"
	"github.com/MKhiriev/portobello/internal/utils"
)

// getConfiguration returns every entry with its global values. Authenticated
// callers also receive their own overrides for keys that allow them.
func (h *Handler) getConfiguration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utils.GetUserIDFromContext(ctx)
	entries, err := h.services.ConfigurationService.ListEntries(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, entries)
}

func (h *Handler) getConfigurationKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.services.ConfigurationService.ListKeys(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, keys)
}

func (h *Handler) getConfigurationTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.services.ConfigurationService.ListTypes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, types)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
