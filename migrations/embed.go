// Package migrations holds the goose SQL migrations applied at service start.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
