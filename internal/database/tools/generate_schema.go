package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"

	"dareme/internal/database"
	"dareme/internal/database/migrations"
)

func main() {
	out := flag.String("out", "internal/database/sqlc/schema.sql", "schema file to write")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintf(os.Stderr, "generate_schema: %v\n", err)
		os.Exit(1)
	}
}

// run migrates a scratch in-memory database to the latest version and dumps
// its DDL to outPath for sqlc.
func run(outPath string) error {
	db, err := database.OpenConnection(":memory:")
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.MigrateUp(db); err != nil {
		return err
	}

	status, err := migrations.GetStatus(db)
	if err != nil {
		return err
	}

	ddl, err := dumpDDL(db)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("-- This file is auto-generated from migration files.\n")
	b.WriteString("-- DO NOT EDIT MANUALLY. Run 'go generate ./internal/database' to regenerate.\n")
	b.WriteString("-- Source: internal/database/migrations/files/*.sql\n")
	fmt.Fprintf(&b, "-- Schema version: %d\n\n", status.Current)
	for _, stmt := range ddl {
		b.WriteString(stmt)
		b.WriteString(";\n\n")
	}

	if err := os.WriteFile(outPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("generated %s at schema version %d\n", outPath, status.Current)
	return nil
}

// dumpDDL returns the CREATE statements for every table, then every index,
// skipping SQLite internals and the migrate bookkeeping table.
func dumpDDL(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`
		SELECT sql FROM sqlite_master
		WHERE sql IS NOT NULL
		  AND name NOT LIKE 'sqlite_%'
		  AND tbl_name != 'schema_migrations'
		ORDER BY type = 'index', name`)
	if err != nil {
		return nil, fmt.Errorf("reading sqlite_master: %w", err)
	}
	defer rows.Close()

	var stmts []string
	for rows.Next() {
		var stmt string
		if err := rows.Scan(&stmt); err != nil {
			return nil, fmt.Errorf("scanning ddl: %w", err)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, rows.Err()
}
