// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores export runs and flattened records in a relational database.

The store is an optional sink alongside the CSV and JSONL writers. Records
keep their full column → value shape by being stored as one JSON document per
response, so the store needs no per-survey schema migrations.

# Tables

  - export_run: one row per export invocation (run id, survey id, the
    column index as JSON)
  - response_record: one row per flattened response, keyed by run + response

# Drivers

Two drivers are supported, selected by database type:

  - postgres: github.com/lib/pq, placeholders $1..$n, JSONB payloads
  - sqlite: modernc.org/sqlite (cgo-free), placeholders ?, TEXT payloads

Usage:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	err = db.CreateSchema(conn, cfg.DatabaseType)
	store := db.NewStore(conn, cfg.DatabaseType)
*/
package db
