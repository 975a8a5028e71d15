// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/surveyflat/models"
	"github.com/danielhkuo/surveyflat/textnorm"
)

// ErrMalformedCatalog marks a survey detail document that cannot produce a
// usable catalog (a question with no heading or no family tag).
var ErrMalformedCatalog = errors.New("malformed survey catalog")

// Catalog holds the id lookup tables for one survey. Build once, then treat
// as read-only; flattening never mutates it.
type Catalog struct {
	Families  map[string]string // question id -> family tag
	Questions map[string]string // question id -> normalized label
	Answers   map[string]string // row/choice/other id -> normalized label
}

// Build walks the survey detail document and registers every question and
// answer option. Questions without an answers block still get family and
// label entries.
func Build(detail *models.SurveyDetail) (*Catalog, error) {
	cat := &Catalog{
		Families:  make(map[string]string),
		Questions: make(map[string]string),
		Answers:   make(map[string]string),
	}
	owner := make(map[string]string) // option id -> registering question id

	for _, page := range detail.Pages {
		for _, q := range page.Questions {
			if len(q.Headings) == 0 || strings.TrimSpace(q.Headings[0].Heading) == "" {
				return nil, fmt.Errorf("%w: question %s has no heading", ErrMalformedCatalog, q.ID)
			}
			if q.Family == "" {
				return nil, fmt.Errorf("%w: question %s has no family", ErrMalformedCatalog, q.ID)
			}

			cat.Families[q.ID] = q.Family
			cat.Questions[q.ID] = textnorm.Normalize(q.Headings[0].Heading)

			if q.Answers == nil {
				continue
			}
			for _, row := range q.Answers.Rows {
				cat.register(owner, q.ID, row.ID, row.Text)
			}
			for _, choice := range q.Answers.Choices {
				cat.register(owner, q.ID, choice.ID, choice.Text)
			}
			if other := q.Answers.Other; other != nil {
				cat.register(owner, q.ID, other.ID, other.Text)
			}
		}
	}

	return cat, nil
}

func (c *Catalog) register(owner map[string]string, questionID, optionID, text string) {
	if prev, ok := owner[optionID]; ok && prev != questionID {
		slog.Warn("answer id registered by multiple questions",
			"answer_id", optionID,
			"first_question", prev,
			"question", questionID,
		)
	}
	owner[optionID] = questionID
	c.Answers[optionID] = textnorm.Normalize(strings.TrimSpace(text))
}
