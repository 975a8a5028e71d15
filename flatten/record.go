// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flatten

import (
	"bytes"
	"encoding/json"
)

// Cell is one column name / value pair produced by a family transformer.
type Cell struct {
	Name  string
	Value string
}

// Record is one flat export row: an insertion-ordered column → value mapping.
// Records are assembled once and never mutated afterwards.
type Record struct {
	cols   []string
	values map[string]string
}

func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set writes a value, appending the column on first use and overwriting in
// place on reuse.
func (r *Record) Set(name, value string) {
	if _, ok := r.values[name]; !ok {
		r.cols = append(r.cols, name)
	}
	r.values[name] = value
}

// Get returns the value for a column and whether the column is present.
func (r *Record) Get(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Columns returns the column names in insertion order.
func (r *Record) Columns() []string {
	return r.cols
}

func (r *Record) Len() int {
	return len(r.cols)
}

// MarshalJSON preserves insertion order, one object per record.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
