// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// The snapshot table holds at most one row (id = 1).
const (
	saveSnapshot = `
		INSERT INTO configuration_snapshot (id, payload, fetched_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			payload    = excluded.payload,
			fetched_at = excluded.fetched_at;`

	loadSnapshot = `
		SELECT payload, fetched_at
		FROM configuration_snapshot
		WHERE id = 1;`
)
