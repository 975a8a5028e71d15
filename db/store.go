// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/surveyflat/flatten"
)

// Store writes export runs and flattened records.
type Store struct {
	conn   *sql.DB
	dbType string
}

func NewStore(conn *sql.DB, dbType string) *Store {
	return &Store{conn: conn, dbType: dbType}
}

// placeholders renders the dialect's parameter markers for n values.
func (s *Store) placeholders(n int) []interface{} {
	out := make([]interface{}, n)
	for i := 0; i < n; i++ {
		if s.dbType == TypePostgres {
			out[i] = fmt.Sprintf("$%d", i+1)
		} else {
			out[i] = "?"
		}
	}
	return out
}

// InsertRun records one export invocation with its column index.
func (s *Store) InsertRun(runID, surveyID string, columns []string) error {
	cols, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("failed to encode column index: %w", err)
	}

	ph := s.placeholders(3)
	query := fmt.Sprintf(
		"INSERT INTO export_run (id, survey_id, columns) VALUES (%s, %s, %s)",
		ph...,
	)
	if _, err := s.conn.Exec(query, runID, surveyID, string(cols)); err != nil {
		return fmt.Errorf("failed to insert export run: %w", err)
	}
	return nil
}

// InsertRecord stores one flattened response as a JSON document.
func (s *Store) InsertRecord(runID string, rec *flatten.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	responseID, _ := rec.Get("response_id")

	ph := s.placeholders(3)
	query := fmt.Sprintf(
		"INSERT INTO response_record (run_id, response_id, record) VALUES (%s, %s, %s)",
		ph...,
	)
	if _, err := s.conn.Exec(query, runID, responseID, string(payload)); err != nil {
		return fmt.Errorf("failed to insert record for response %s: %w", responseID, err)
	}
	return nil
}
