// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"testing"

	"github.com/danielhkuo/surveyflat/models"
	"github.com/danielhkuo/surveyflat/testutil"
)

func TestBuild(t *testing.T) {
	cat, err := Build(testutil.SurveyDetail())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Families registered for every question, including presentation
	if got := cat.Families[testutil.QRatings]; got != models.FamilyMatrix {
		t.Errorf("family for ratings question = %q, want %q", got, models.FamilyMatrix)
	}
	if got := cat.Families[testutil.QIntro]; got != "presentation" {
		t.Errorf("family for intro question = %q, want %q", got, "presentation")
	}

	// Question labels are normalized
	if got := cat.Questions[testutil.QComments]; got != "Comments" {
		t.Errorf("comments label = %q, want %q (HTML stripped)", got, "Comments")
	}
	if got := cat.Questions[testutil.QColor]; got != "Favorite color" {
		t.Errorf("color label = %q, want %q", got, "Favorite color")
	}

	// Rows, choices, and other slots all land in Answers
	for id, want := range map[string]string{
		testutil.ChoiceRed:    "Red",
		testutil.RowSatisfact: "Satisfaction",
		testutil.ChoiceHigh:   "High",
		testutil.OtherColor:   "Other (please specify)",
		testutil.RowOnsetDate: "Date",
	} {
		if got := cat.Answers[id]; got != want {
			t.Errorf("answer label for %s = %q, want %q", id, got, want)
		}
	}

	// Questions without an answers block register no answer entries but
	// still occupy Families and Questions
	if _, ok := cat.Questions[testutil.QComments]; !ok {
		t.Error("open_ended question missing from Questions")
	}
}

func TestBuildMissingHeading(t *testing.T) {
	detail := &models.SurveyDetail{
		Pages: []models.DetailPage{{
			Questions: []models.DetailQuestion{
				{ID: "101000009", Family: models.FamilyOpenEnded},
			},
		}},
	}

	_, err := Build(detail)
	if !errors.Is(err, ErrMalformedCatalog) {
		t.Fatalf("expected ErrMalformedCatalog, got %v", err)
	}
}

func TestBuildMissingFamily(t *testing.T) {
	detail := &models.SurveyDetail{
		Pages: []models.DetailPage{{
			Questions: []models.DetailQuestion{
				{ID: "101000009", Headings: []models.Heading{{Heading: "Orphan"}}},
			},
		}},
	}

	_, err := Build(detail)
	if !errors.Is(err, ErrMalformedCatalog) {
		t.Fatalf("expected ErrMalformedCatalog, got %v", err)
	}
}

func TestBuildDuplicateAnswerID(t *testing.T) {
	detail := &models.SurveyDetail{
		Pages: []models.DetailPage{{
			Questions: []models.DetailQuestion{
				{
					ID:       "101000001",
					Family:   models.FamilySingleChoice,
					Headings: []models.Heading{{Heading: "First"}},
					Answers: &models.AnswerSpec{
						Choices: []models.Option{{ID: "200000099", Text: "From first"}},
					},
				},
				{
					ID:       "101000002",
					Family:   models.FamilySingleChoice,
					Headings: []models.Heading{{Heading: "Second"}},
					Answers: &models.AnswerSpec{
						Choices: []models.Option{{ID: "200000099", Text: "From second"}},
					},
				},
			},
		}},
	}

	cat, err := Build(detail)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Last registration wins
	if got := cat.Answers["200000099"]; got != "From second" {
		t.Errorf("duplicate id label = %q, want %q", got, "From second")
	}
}

func TestBuildLabelTrimming(t *testing.T) {
	detail := &models.SurveyDetail{
		Pages: []models.DetailPage{{
			Questions: []models.DetailQuestion{
				{
					ID:       "101000001",
					Family:   models.FamilyMatrix,
					Headings: []models.Heading{{Heading: "  <i>Spaced</i>  heading "}},
					Answers: &models.AnswerSpec{
						Rows: []models.Option{{ID: "200000001", Text: "  row label\n"}},
					},
				},
			},
		}},
	}

	cat, err := Build(detail)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := cat.Questions["101000001"]; got != "Spaced heading" {
		t.Errorf("question label = %q, want %q", got, "Spaced heading")
	}
	if got := cat.Answers["200000001"]; got != "row label" {
		t.Errorf("row label = %q, want %q", got, "row label")
	}
}
