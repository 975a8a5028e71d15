// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flatten

import (
	"reflect"
	"strings"
	"testing"

	"github.com/danielhkuo/surveyflat/testutil"
)

func TestBuildColumnIndex(t *testing.T) {
	detail := testutil.SurveyDetail()
	cat := buildCatalog(t)

	got := BuildColumnIndex(detail, cat)

	// Spaceless names first (lexicographic), then spaced names
	// (lexicographic). The presentation question contributes nothing.
	want := []string{
		"Comments",
		"date_created",
		"date_modified",
		"response_id",
		"response_status",
		"Favorite color",
		"Favorite color - Other (please specify)",
		"Rate the following - Satisfaction",
		"Rate the following - Value",
		"Symptom onset - Date",
		"Toppings - Cheese",
		"Toppings - Mushroom",
		"Toppings - Other topping",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("column index mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestBuildColumnIndexDeterministic(t *testing.T) {
	detail := testutil.SurveyDetail()
	cat := buildCatalog(t)

	first := BuildColumnIndex(detail, cat)
	second := BuildColumnIndex(detail, cat)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two builds differ:\nfirst  %v\nsecond %v", first, second)
	}
}

func TestBuildColumnIndexDeduplicated(t *testing.T) {
	detail := testutil.SurveyDetail()
	cat := buildCatalog(t)

	got := BuildColumnIndex(detail, cat)
	seen := make(map[string]bool, len(got))
	for _, name := range got {
		if seen[name] {
			t.Errorf("column %q appears twice", name)
		}
		seen[name] = true
	}
}

func TestBuildColumnIndexTwoTierOrder(t *testing.T) {
	detail := testutil.SurveyDetail()
	cat := buildCatalog(t)

	got := BuildColumnIndex(detail, cat)

	// Once a spaced name appears, no spaceless name may follow.
	sawSpaced := false
	for _, name := range got {
		if strings.Contains(name, " ") {
			sawSpaced = true
		} else if sawSpaced {
			t.Fatalf("spaceless column %q after a spaced column", name)
		}
	}
}
