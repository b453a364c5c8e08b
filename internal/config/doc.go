// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the server, the seeding tool and the client.
//
// Configuration is assembled from multiple sources; when a field is set by
// more than one, the earlier source wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Remaining zero fields receive defaults. The entry points are
// [GetStructuredConfig] for the server, [GetStorageConfig] for the seeding
// tool and [GetClientConfig] for the client.
package config
