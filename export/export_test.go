// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/danielhkuo/surveyflat/catalog"
	"github.com/danielhkuo/surveyflat/flatten"
	"github.com/danielhkuo/surveyflat/models"
	"github.com/danielhkuo/surveyflat/testutil"
)

// End-to-end: one open_ended question, one response, HTML-stripped column.
func TestCSVEndToEndOpenEnded(t *testing.T) {
	detail := &models.SurveyDetail{
		Pages: []models.DetailPage{{
			Questions: []models.DetailQuestion{{
				ID:       "101000001",
				Family:   models.FamilyOpenEnded,
				Headings: []models.Heading{{Heading: "<b>Comments</b>"}},
			}},
		}},
	}
	cat, err := catalog.Build(detail)
	if err != nil {
		t.Fatalf("catalog build failed: %v", err)
	}
	columns := flatten.BuildColumnIndex(detail, cat)

	asm := flatten.NewAssembler(cat, flatten.PolicySquish)
	resp := testutil.Response("301000001",
		testutil.Answered("101000001", models.AnswerEntry{Text: "Great!"}),
	)
	rec, err := asm.Flatten(&resp)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, columns, []*flatten.Record{rec}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}

	header, row := rows[0], rows[1]
	if len(header) != 5 {
		t.Fatalf("expected 4 metadata columns + Comments, got header %v", header)
	}
	byName := make(map[string]string, len(header))
	for i, name := range header {
		byName[name] = row[i]
	}
	if byName["Comments"] != "Great!" {
		t.Errorf("Comments = %q, want %q", byName["Comments"], "Great!")
	}
	if byName["response_id"] != "301000001" {
		t.Errorf("response_id = %q, want %q", byName["response_id"], "301000001")
	}
}

// End-to-end: matrix question yields "question - row" → choice label.
func TestCSVEndToEndMatrix(t *testing.T) {
	detail := testutil.SurveyDetail()
	cat, err := catalog.Build(detail)
	if err != nil {
		t.Fatalf("catalog build failed: %v", err)
	}
	columns := flatten.BuildColumnIndex(detail, cat)

	asm := flatten.NewAssembler(cat, flatten.PolicySquish)
	resp := testutil.Response("301000001",
		testutil.Answered(testutil.QRatings,
			models.AnswerEntry{RowID: testutil.RowSatisfact, ChoiceID: testutil.ChoiceHigh},
		),
	)
	rec, err := asm.Flatten(&resp)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, columns, []*flatten.Record{rec}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	header, row := rows[0], rows[1]
	byName := make(map[string]string, len(header))
	for i, name := range header {
		byName[name] = row[i]
	}

	if byName["Rate the following - Satisfaction"] != "High" {
		t.Errorf("satisfaction column = %q, want %q", byName["Rate the following - Satisfaction"], "High")
	}
	// Unanswered columns are written empty
	if byName["Rate the following - Value"] != "" {
		t.Errorf("value column = %q, want empty", byName["Rate the following - Value"])
	}
	if byName["Toppings - Cheese"] != "" {
		t.Errorf("cheese column = %q, want empty", byName["Toppings - Cheese"])
	}
}

func TestCSVRejectsColumnOutsideIndex(t *testing.T) {
	rec := flatten.NewRecord()
	rec.Set("response_id", "301000001")
	rec.Set("stowaway", "value")

	var buf strings.Builder
	err := WriteCSV(&buf, []string{"response_id"}, []*flatten.Record{rec})
	if err == nil {
		t.Fatal("expected error for column outside the index")
	}
	if !strings.Contains(err.Error(), "stowaway") {
		t.Errorf("error %q should name the offending column", err)
	}
}

func TestWriteJSONL(t *testing.T) {
	first := flatten.NewRecord()
	first.Set("response_id", "301000001")
	first.Set("Comments", "Great!")

	second := flatten.NewRecord()
	second.Set("response_id", "301000002")
	second.Set("Comments_2", "overflow columns are fine here")

	var buf strings.Builder
	if err := WriteJSONL(&buf, []*flatten.Record{first, second}); err != nil {
		t.Fatalf("WriteJSONL failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("line 1 is not valid JSON: %v", err)
	}
	if decoded["Comments"] != "Great!" {
		t.Errorf("Comments = %q, want %q", decoded["Comments"], "Great!")
	}

	// Insertion order is preserved on the wire
	if !strings.HasPrefix(lines[0], `{"response_id"`) {
		t.Errorf("line 1 should start with response_id, got %s", lines[0])
	}
}
