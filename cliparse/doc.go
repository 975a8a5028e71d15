// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses command-line flags and environment variables into the
export configuration.

CLI flags take precedence; environment variables fill anything left unset:

  - SM_ACCESS_TOKEN (-token): API bearer token, required
  - SM_BASE_URL (-u): API base URL (default SurveyMonkey v3)
  - SM_SURVEY_ID (-s): survey to export, required unless listing
  - EXPORT_FORMAT (-f): csv, jsonl, or db (default csv)
  - EXPORT_OUTPUT (-o): output file path (default <survey_id>.<format>)
  - EXPORT_STATUS (-status): response status filter (default completed)
  - EXPORT_COLLISIONS (-collisions): squish or enumerate (default squish)
  - DATABASE_URL (-d): connection string, required for the db format
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)

The -l flag lists the token's surveys and exits.
*/
package cliparse
