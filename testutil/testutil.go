// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared survey document fixtures for tests.
package testutil

import (
	"github.com/danielhkuo/surveyflat/models"
)

// Question and option ids used by the canonical fixture. Option ids are nine
// digits, matching the upstream id shape.
const (
	QColor    = "101000001" // single_choice
	QToppings = "101000002" // multiple_choice
	QRatings  = "101000003" // matrix
	QComments = "101000004" // open_ended
	QOnset    = "101000005" // datetime
	QIntro    = "101000006" // presentation (no registered transformer)

	ChoiceRed    = "200000001"
	ChoiceBlue   = "200000002"
	OtherColor   = "200000009"
	ChoiceCheese = "200000011"
	ChoiceMushr  = "200000012"
	OtherTopping = "200000019"
	RowSatisfact = "200000021"
	RowValue     = "200000022"
	ChoiceHigh   = "200000031"
	ChoiceLow    = "200000032"
	RowOnsetDate = "200000041"
)

// SurveyDetail returns the canonical fixture survey: one question per family
// plus a presentation question with no registered transformer.
func SurveyDetail() *models.SurveyDetail {
	return &models.SurveyDetail{
		ID:    "900000001",
		Title: "Fixture Survey",
		Pages: []models.DetailPage{
			{
				ID: "1",
				Questions: []models.DetailQuestion{
					{
						ID:       QColor,
						Family:   models.FamilySingleChoice,
						Headings: []models.Heading{{Heading: "<b>Favorite color</b>"}},
						Answers: &models.AnswerSpec{
							Choices: []models.Option{
								{ID: ChoiceRed, Text: "Red"},
								{ID: ChoiceBlue, Text: "Blue"},
							},
							Other: &models.Option{ID: OtherColor, Text: "Other (please specify)"},
						},
					},
					{
						ID:       QToppings,
						Family:   models.FamilyMultipleChoice,
						Headings: []models.Heading{{Heading: "Toppings"}},
						Answers: &models.AnswerSpec{
							Choices: []models.Option{
								{ID: ChoiceCheese, Text: "Cheese"},
								{ID: ChoiceMushr, Text: "Mushroom"},
							},
							Other: &models.Option{ID: OtherTopping, Text: "Other topping"},
						},
					},
				},
			},
			{
				ID: "2",
				Questions: []models.DetailQuestion{
					{
						ID:       QRatings,
						Family:   models.FamilyMatrix,
						Headings: []models.Heading{{Heading: "Rate the following"}},
						Answers: &models.AnswerSpec{
							Rows: []models.Option{
								{ID: RowSatisfact, Text: "Satisfaction"},
								{ID: RowValue, Text: "Value"},
							},
							Choices: []models.Option{
								{ID: ChoiceHigh, Text: "High"},
								{ID: ChoiceLow, Text: "Low"},
							},
						},
					},
					{
						ID:       QComments,
						Family:   models.FamilyOpenEnded,
						Headings: []models.Heading{{Heading: "<b>Comments</b>"}},
					},
					{
						ID:       QOnset,
						Family:   models.FamilyDatetime,
						Headings: []models.Heading{{Heading: "Symptom onset"}},
						Answers: &models.AnswerSpec{
							Rows: []models.Option{
								{ID: RowOnsetDate, Text: "Date"},
							},
						},
					},
					{
						ID:       QIntro,
						Family:   "presentation",
						Headings: []models.Heading{{Heading: "Welcome!"}},
					},
				},
			},
		},
	}
}

// Response builds a response document answering the given questions on a
// single page, with fixed timestamps and completed status.
func Response(id string, questions ...models.AnsweredQuestion) models.Response {
	return models.Response{
		ID:             id,
		DateCreated:    "2025-03-01T10:00:00+00:00",
		DateModified:   "2025-03-01T10:05:00+00:00",
		ResponseStatus: "completed",
		Pages: []models.ResponsePageBlock{
			{ID: "1", Questions: questions},
		},
	}
}

// Answered builds one answered question.
func Answered(questionID string, entries ...models.AnswerEntry) models.AnsweredQuestion {
	return models.AnsweredQuestion{ID: questionID, Answers: entries}
}
