// Package sql embeds the database schema.
package sql

//go:generate sqlc generate -f ../../sqlc.yaml

import _ "embed"

//go:embed schema.sql
var schema string

// Schema returns the DDL applied to an empty database.
func Schema() string {
	return schema
}
