// Package db carries the SQL migration files so they can be applied from
// the binary itself, without the source tree present.
package db

import "embed"

//go:embed migrations/*.sql
var MigrationsFS embed.FS
