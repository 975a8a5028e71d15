// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flatten

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/surveyflat/catalog"
	"github.com/danielhkuo/surveyflat/models"
)

// CollisionPolicy resolves two questions writing the same column name within
// one record.
type CollisionPolicy string

const (
	// PolicySquish keeps the first non-empty value; later writers to an
	// occupied column are discarded, later writers to an empty one win.
	PolicySquish CollisionPolicy = "squish"
	// PolicyEnumerate gives every later writer a fresh suffixed column
	// (col_2, col_3, ...) so no value is ever discarded.
	PolicyEnumerate CollisionPolicy = "enumerate"
)

// Assembler flattens responses against one immutable catalog. It carries no
// state across responses, so separate Assemblers (or separate Run calls on
// copies) can process different surveys concurrently.
type Assembler struct {
	cat    *catalog.Catalog
	policy CollisionPolicy
}

func NewAssembler(cat *catalog.Catalog, policy CollisionPolicy) *Assembler {
	if policy == "" {
		policy = PolicySquish
	}
	return &Assembler{cat: cat, policy: policy}
}

// Flatten produces one record from one response. The record is seeded with
// the metadata prefix even when no question is answered. Any transformer
// error rejects the whole record; no partial row is returned.
func (a *Assembler) Flatten(resp *models.Response) (*Record, error) {
	rec := NewRecord()
	rec.Set("response_id", resp.ID)
	rec.Set("date_created", resp.DateCreated)
	rec.Set("date_modified", resp.DateModified)
	rec.Set("response_status", resp.ResponseStatus)

	for _, page := range resp.Pages {
		for i := range page.Questions {
			q := &page.Questions[i]
			family, ok := a.cat.Families[q.ID]
			if !ok {
				return nil, &UnknownReferenceError{QuestionID: q.ID, RefID: q.ID}
			}
			fn, ok := transformers[family]
			if !ok {
				continue
			}
			cells, err := fn(a.cat, q)
			if err != nil {
				return nil, err
			}
			a.merge(rec, cells)
		}
	}
	return rec, nil
}

// merge folds a transformer's partial record into the row under the active
// collision policy.
func (a *Assembler) merge(rec *Record, cells []Cell) {
	for _, c := range cells {
		switch a.policy {
		case PolicyEnumerate:
			name := c.Name
			if _, taken := rec.Get(name); taken {
				n := 2
				for {
					name = fmt.Sprintf("%s_%d", c.Name, n)
					if _, taken := rec.Get(name); !taken {
						break
					}
					n++
				}
			}
			rec.Set(name, c.Value)
		default: // squish
			if cur, ok := rec.Get(c.Name); ok && cur != "" {
				continue
			}
			rec.Set(c.Name, c.Value)
		}
	}
}

// Rejection records one response that failed flattening, with enough context
// to diagnose without re-fetching.
type Rejection struct {
	ResponseID string
	QuestionID string
	Err        error
}

// Result is the outcome of one assembly run.
type Result struct {
	Records  []*Record
	Rejected []Rejection
}

// PageSource yields response pages in stable order, one at a time.
// smclient.ResponseIterator satisfies it.
type PageSource interface {
	Next() bool
	Page() *models.ResponsePage
	Err() error
}

// Run consumes every page from src, flattening each response. One bad
// response never halts the batch: its rejection is collected and siblings
// still succeed. Transport errors from the source abort the run.
func (a *Assembler) Run(src PageSource) (Result, error) {
	var res Result
	for src.Next() {
		page := src.Page()
		for i := range page.Data {
			resp := &page.Data[i]
			rec, err := a.Flatten(resp)
			if err != nil {
				res.Rejected = append(res.Rejected, Rejection{
					ResponseID: resp.ID,
					QuestionID: failingQuestion(err),
					Err:        err,
				})
				continue
			}
			res.Records = append(res.Records, rec)
		}
	}
	return res, src.Err()
}

func failingQuestion(err error) string {
	var unknownRef *UnknownReferenceError
	if errors.As(err, &unknownRef) {
		return unknownRef.QuestionID
	}
	var badShape *UnsupportedAnswerShapeError
	if errors.As(err, &badShape) {
		return badShape.QuestionID
	}
	return ""
}
