package database

import _ "embed"

// Schema is the full DDL produced by the migrations, for tests that need a
// database without running golang-migrate.
//
//go:embed sqlc/schema.sql
var Schema string
