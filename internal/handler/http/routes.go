// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	configurationPath      = "/configuration"
	configurationKeysPath  = "/configuration/keys"
	configurationTypesPath = "/configuration/types"
	versionPath            = "/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get(versionPath, h.getVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withIdentity)

		r.Get(configurationPath, h.getConfiguration)
		r.Get(configurationKeysPath, h.getConfigurationKeys)
		r.Get(configurationTypesPath, h.getConfigurationTypes)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
