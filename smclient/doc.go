// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package smclient is the HTTP client for the SurveyMonkey v3 API.

A Client wraps a resty client with bearer-token auth and exponential-backoff
retry. Rate-limit (429) and server (5xx) responses are retried, honoring the
Retry-After header when present; other error statuses fail immediately.

	client := smclient.New(smclient.DefaultBaseURL, token)
	detail, err := client.SurveyDetail(ctx, surveyID)

Responses are paginated; ResponseIterator follows the links.next cursor one
page at a time so memory scales with a single page:

	it := client.Responses(ctx, surveyID, "completed")
	for it.Next() {
		page := it.Page()
		// ...
	}
	if err := it.Err(); err != nil {
		// ...
	}
*/
package smclient
