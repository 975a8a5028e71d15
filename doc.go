// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the surveyflat exporter.

surveyflat fetches a survey's structure and its responses from a
SurveyMonkey-compatible API and flattens each response into one tabular
record, written as CSV, JSONL, or rows in a relational store.

# Running

The access token comes from the environment (a .env file is honored):

	SM_ACCESS_TOKEN=... surveyflat -s 123456789 -f csv -o out.csv

List the surveys visible to the token:

	surveyflat -l

# Configuration

Required settings:

  - SM_ACCESS_TOKEN (-token): API bearer token
  - SM_SURVEY_ID (-s): survey to export (not needed with -l)

Optional settings:

  - SM_BASE_URL (-u): API base URL
  - EXPORT_FORMAT (-f): csv, jsonl, or db (default: csv)
  - EXPORT_OUTPUT (-o): output path (default: <survey_id>.<format>)
  - EXPORT_STATUS (-status): response status filter (default: completed)
  - EXPORT_COLLISIONS (-collisions): squish or enumerate (default: squish)
  - DATABASE_URL (-d), DATABASE_TYPE (-t): db-format sink

# Architecture

The exporter is a one-pass pipeline over lazily fetched response pages:

  - smclient: API client with pagination and rate-limit backoff
  - catalog: per-survey id → family/label lookup tables
  - flatten: family transformers, column index, record assembly
  - textnorm: label canonicalization (HTML strip, NFKC, whitespace)
  - export: CSV and JSONL sinks
  - db: relational record store sink
  - cliparse: configuration parsing
  - models: wire types

See package documentation for each component.
*/
package main
