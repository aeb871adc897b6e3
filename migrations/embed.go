// Package migrations holds the per-service schema files, embedded so that
// service binaries and repository tests apply the same DDL.
package migrations

import "embed"

//go:embed catalog user order
var FS embed.FS
