// Package migrations embeds the PostgreSQL schema migrations for the record
// service. They are applied with goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
