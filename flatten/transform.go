// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flatten

import (
	"fmt"

	"github.com/danielhkuo/surveyflat/catalog"
	"github.com/danielhkuo/surveyflat/models"
)

// idDigits is the digit count of upstream row/choice/other ids. A
// single_choice answer value of exactly this many digits is resolved through
// the catalog; anything else is kept as a literal. A literal answer that
// happens to be nine digits is misread as a reference — known ambiguity in
// the upstream format, kept for compatibility.
const idDigits = 9

type transformFunc func(cat *catalog.Catalog, q *models.AnsweredQuestion) ([]Cell, error)

// transformers dispatches by family tag. Families absent from this table are
// skipped during assembly.
var transformers = map[string]transformFunc{
	models.FamilyMatrix:         flattenMatrix,
	models.FamilyMultipleChoice: flattenMultipleChoice,
	models.FamilySingleChoice:   flattenSingleChoice,
	models.FamilyOpenEnded:      flattenOpenEnded,
	models.FamilyDatetime:       flattenDatetime,
}

func isIDToken(s string) bool {
	if len(s) != idDigits {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// flattenMatrix emits "question - row" → choice label per answered row.
func flattenMatrix(cat *catalog.Catalog, q *models.AnsweredQuestion) ([]Cell, error) {
	label := cat.Questions[q.ID]
	cells := make([]Cell, 0, len(q.Answers))
	for _, a := range q.Answers {
		rowLabel, ok := cat.Answers[a.RowID]
		if !ok {
			return nil, &UnknownReferenceError{QuestionID: q.ID, RefID: a.RowID}
		}
		choiceLabel, ok := cat.Answers[a.ChoiceID]
		if !ok {
			return nil, &UnknownReferenceError{QuestionID: q.ID, RefID: a.ChoiceID}
		}
		cells = append(cells, Cell{Name: label + " - " + rowLabel, Value: choiceLabel})
	}
	return cells, nil
}

// flattenMultipleChoice emits one column per selected option. The free-text
// "other" slot carries the typed text; regular choices use the choice label
// as their own selection marker.
func flattenMultipleChoice(cat *catalog.Catalog, q *models.AnsweredQuestion) ([]Cell, error) {
	label := cat.Questions[q.ID]
	cells := make([]Cell, 0, len(q.Answers))
	for _, a := range q.Answers {
		if a.OtherID != "" {
			otherLabel, ok := cat.Answers[a.OtherID]
			if !ok {
				return nil, &UnknownReferenceError{QuestionID: q.ID, RefID: a.OtherID}
			}
			cells = append(cells, Cell{Name: label + " - " + otherLabel, Value: a.Text})
			continue
		}
		choiceLabel, ok := cat.Answers[a.ChoiceID]
		if !ok {
			return nil, &UnknownReferenceError{QuestionID: q.ID, RefID: a.ChoiceID}
		}
		cells = append(cells, Cell{Name: label + " - " + choiceLabel, Value: choiceLabel})
	}
	return cells, nil
}

// flattenSingleChoice emits the bare question label. The answer value is an
// id reference only when it has the canonical id shape; the upstream format
// sometimes inlines literal text in the same slot.
func flattenSingleChoice(cat *catalog.Catalog, q *models.AnsweredQuestion) ([]Cell, error) {
	label := cat.Questions[q.ID]
	cells := make([]Cell, 0, len(q.Answers))
	for _, a := range q.Answers {
		if a.OtherID != "" {
			otherLabel, ok := cat.Answers[a.OtherID]
			if !ok {
				return nil, &UnknownReferenceError{QuestionID: q.ID, RefID: a.OtherID}
			}
			cells = append(cells, Cell{Name: label + " - " + otherLabel, Value: a.Text})
			continue
		}

		value, err := singleValue(q, a)
		if err != nil {
			return nil, err
		}
		if isIDToken(value) {
			choiceLabel, ok := cat.Answers[value]
			if !ok {
				return nil, &UnknownReferenceError{QuestionID: q.ID, RefID: value}
			}
			cells = append(cells, Cell{Name: label, Value: choiceLabel})
			continue
		}
		cells = append(cells, Cell{Name: label, Value: value})
	}
	return cells, nil
}

// singleValue extracts the one populated field of a single-answer entry.
// More than one simultaneous value in a single-answer slot is an upstream
// contract violation.
func singleValue(q *models.AnsweredQuestion, a models.AnswerEntry) (string, error) {
	var vals []string
	for _, v := range []string{a.ChoiceID, a.RowID, a.Text} {
		if v != "" {
			vals = append(vals, v)
		}
	}
	switch len(vals) {
	case 1:
		return vals[0], nil
	case 0:
		return "", &UnsupportedAnswerShapeError{QuestionID: q.ID, Reason: "empty answer entry"}
	default:
		return "", &UnsupportedAnswerShapeError{
			QuestionID: q.ID,
			Reason:     fmt.Sprintf("%d simultaneous values in a single-answer slot", len(vals)),
		}
	}
}

// flattenOpenEnded emits the bare question label → literal text.
func flattenOpenEnded(cat *catalog.Catalog, q *models.AnsweredQuestion) ([]Cell, error) {
	if len(q.Answers) != 1 {
		return nil, &UnsupportedAnswerShapeError{
			QuestionID: q.ID,
			Reason:     fmt.Sprintf("open_ended expects exactly one entry, got %d", len(q.Answers)),
		}
	}
	return []Cell{{Name: cat.Questions[q.ID], Value: q.Answers[0].Text}}, nil
}

// flattenDatetime emits "question - row" → literal text.
func flattenDatetime(cat *catalog.Catalog, q *models.AnsweredQuestion) ([]Cell, error) {
	if len(q.Answers) != 1 {
		return nil, &UnsupportedAnswerShapeError{
			QuestionID: q.ID,
			Reason:     fmt.Sprintf("datetime expects exactly one entry, got %d", len(q.Answers)),
		}
	}
	a := q.Answers[0]
	rowLabel, ok := cat.Answers[a.RowID]
	if !ok {
		return nil, &UnknownReferenceError{QuestionID: q.ID, RefID: a.RowID}
	}
	return []Cell{{Name: cat.Questions[q.ID] + " - " + rowLabel, Value: a.Text}}, nil
}
