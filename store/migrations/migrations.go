// SPDX-License-Identifier: MIT

// Package migrations embeds the SQL schema of the run store.
package migrations

import "embed"

// FS holds the migration files, applied in lexical order.
//
//go:embed *.sql
var FS embed.FS
