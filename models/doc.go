// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire types for survey documents.

# Survey Detail

Types for the survey detail document (the survey's structure, fetched once
per export):

  - SurveyDetail: survey id, title, and pages
  - DetailPage: one page of questions
  - DetailQuestion: id, family, headings, optional answers specification
  - AnswerSpec: rows, choices, and an optional "other" free-text slot
  - Option: an id + label pair for a row, choice, or other slot

# Responses

Types for the paginated bulk-response documents:

  - ResponsePage: one page of responses plus pagination links
  - Response: id, timestamps, status, and answered pages
  - ResponsePageBlock: answered questions on one page of one response
  - AnsweredQuestion: question id plus its answer entries
  - AnswerEntry: choice_id / row_id / other_id / text, fields empty when unused

# Survey Listing

  - SurveyList, SurveySummary: the /surveys listing document

# Constants

Question families with registered flattening rules:

	FamilyMatrix         = "matrix"
	FamilyMultipleChoice = "multiple_choice"
	FamilySingleChoice   = "single_choice"
	FamilyOpenEnded      = "open_ended"
	FamilyDatetime       = "datetime"

Any other family tag is valid in a catalog but is skipped during flattening.

All identifiers (survey, question, row, choice, other) are opaque strings.
Most are numeric on the wire, but they must never be parsed as integers:
leading zeros and digit counts are significant (see the single_choice
id-reference heuristic in package flatten).
*/
package models
