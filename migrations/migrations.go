// Package migrations embeds the SQL schema so every binary carries its own migrations.
package migrations

import "embed"

// Postgres holds the golang-migrate files under postgres/.
//
//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"
