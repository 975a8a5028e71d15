// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/danielhkuo/surveyflat/flatten"
)

// WriteJSONL writes one JSON object per record per line.
func WriteJSONL(w io.Writer, records []*flatten.Record) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			id, _ := rec.Get("response_id")
			return fmt.Errorf("failed to encode response %s: %w", id, err)
		}
	}
	return nil
}
