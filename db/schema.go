// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open connects using the driver for the given database type.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypePostgres:
		return sql.Open("postgres", url)
	case TypeSQLite:
		return sql.Open("sqlite", url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS export_run (
	id TEXT PRIMARY KEY,
	survey_id TEXT NOT NULL,
	started_at TIMESTAMP NOT NULL DEFAULT NOW(),
	columns JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS response_record (
	run_id TEXT NOT NULL REFERENCES export_run(id) ON DELETE CASCADE,
	response_id TEXT NOT NULL,
	record JSONB NOT NULL,
	PRIMARY KEY (run_id, response_id)
);

CREATE INDEX IF NOT EXISTS idx_response_record_run ON response_record(run_id);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS export_run (
	id TEXT PRIMARY KEY,
	survey_id TEXT NOT NULL,
	started_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	columns TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS response_record (
	run_id TEXT NOT NULL REFERENCES export_run(id) ON DELETE CASCADE,
	response_id TEXT NOT NULL,
	record TEXT NOT NULL,
	PRIMARY KEY (run_id, response_id)
);

CREATE INDEX IF NOT EXISTS idx_response_record_run ON response_record(run_id);
`

// CreateSchema creates the export tables if they do not exist.
func CreateSchema(conn *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case TypePostgres:
		schema = schemaPostgres
	case TypeSQLite:
		schema = schemaSQLite
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}
	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
