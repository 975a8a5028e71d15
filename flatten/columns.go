// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flatten

import (
	"sort"
	"strings"

	"github.com/danielhkuo/surveyflat/catalog"
	"github.com/danielhkuo/surveyflat/models"
)

// MetadataColumns is the fixed prefix present in every record, written
// verbatim from the response document.
var MetadataColumns = []string{
	"response_id",
	"date_created",
	"date_modified",
	"response_status",
}

// BuildColumnIndex enumerates every column name the survey could produce,
// from the detail document alone — no responses needed. It is the fixed
// write-time schema: records only ever use columns present here (except
// enumerate-policy overflow columns, which only the JSONL and database sinks
// accept).
//
// Ordering is a stability contract for diffing exported files: names without
// spaces sort first lexicographically, then everything else lexicographically.
func BuildColumnIndex(detail *models.SurveyDetail, cat *catalog.Catalog) []string {
	set := make(map[string]struct{})
	for _, name := range MetadataColumns {
		set[name] = struct{}{}
	}

	for _, page := range detail.Pages {
		for _, q := range page.Questions {
			label := cat.Questions[q.ID]
			switch q.Family {
			case models.FamilySingleChoice:
				// Selections land under the bare label; the other
				// slot gets its own column for the typed text.
				set[label] = struct{}{}
				if q.Answers != nil && q.Answers.Other != nil {
					set[label+" - "+cat.Answers[q.Answers.Other.ID]] = struct{}{}
				}
			case models.FamilyMultipleChoice:
				if q.Answers == nil {
					continue
				}
				for _, choice := range q.Answers.Choices {
					set[label+" - "+cat.Answers[choice.ID]] = struct{}{}
				}
				if q.Answers.Other != nil {
					set[label+" - "+cat.Answers[q.Answers.Other.ID]] = struct{}{}
				}
			case models.FamilyMatrix, models.FamilyDatetime:
				if q.Answers == nil {
					continue
				}
				for _, row := range q.Answers.Rows {
					set[label+" - "+cat.Answers[row.ID]] = struct{}{}
				}
			case models.FamilyOpenEnded:
				set[label] = struct{}{}
			default:
				// No registered transformer, so no column can ever
				// be populated for this question.
			}
		}
	}

	var plain, spaced []string
	for name := range set {
		if strings.Contains(name, " ") {
			spaced = append(spaced, name)
		} else {
			plain = append(plain, name)
		}
	}
	sort.Strings(plain)
	sort.Strings(spaced)
	return append(plain, spaced...)
}
