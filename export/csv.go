// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/danielhkuo/surveyflat/flatten"
)

// WriteCSV writes the header (the column index) and one row per record.
// Columns a record lacks are written empty; columns outside the index are a
// contract violation and abort the write.
func WriteCSV(w io.Writer, columns []string, records []*flatten.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	idx := make(map[string]int, len(columns))
	for i, name := range columns {
		idx[name] = i
	}

	row := make([]string, len(columns))
	for _, rec := range records {
		for i := range row {
			row[i] = ""
		}
		for _, name := range rec.Columns() {
			i, ok := idx[name]
			if !ok {
				id, _ := rec.Get("response_id")
				return fmt.Errorf("response %s uses column %q outside the column index", id, name)
			}
			row[i], _ = rec.Get(name)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
