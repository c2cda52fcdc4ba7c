// Package migrations embeds the goose SQL migrations so that the migrate
// tool and integration tests apply the same files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
