// Package migrations embeds the catalog schema and its static fixtures.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
