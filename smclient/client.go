// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package smclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/danielhkuo/surveyflat/models"
)

const DefaultBaseURL = "https://api.surveymonkey.com/v3"

const (
	responsesPerPage = 100
	maxRetryElapsed  = 2 * time.Minute
	maxRetryAfter    = time.Minute
)

type Client struct {
	http *resty.Client
}

func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Accept", "application/json")
	return &Client{http: rc}
}

// get performs one API call with retry. 429 and 5xx responses are retried
// under exponential backoff; other error statuses are permanent.
func (c *Client) get(ctx context.Context, path string, params map[string]string, out interface{}) error {
	op := func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetResult(out).
			Get(path)
		if err != nil {
			return err // transport error, retryable
		}
		code := resp.StatusCode()
		switch {
		case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
			wait := retryAfter(resp)
			slog.Warn("retrying request", "path", path, "status", code, "retry_after", wait)
			if wait > 0 {
				// Retry-After takes precedence over the backoff schedule.
				select {
				case <-time.After(wait):
				case <-ctx.Done():
					return backoff.Permanent(ctx.Err())
				}
			}
			return fmt.Errorf("GET %s: %s", path, resp.Status())
		case resp.IsError():
			return backoff.Permanent(fmt.Errorf("GET %s: %s", path, resp.Status()))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxRetryElapsed
	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}

func retryAfter(resp *resty.Response) time.Duration {
	secs, err := strconv.Atoi(resp.Header().Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	wait := time.Duration(secs) * time.Second
	if wait > maxRetryAfter {
		wait = maxRetryAfter
	}
	return wait
}

// Surveys lists the surveys visible to the token.
func (c *Client) Surveys(ctx context.Context) (*models.SurveyList, error) {
	var out models.SurveyList
	if err := c.get(ctx, "/surveys", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SurveyDetail fetches the detail document for one survey.
func (c *Client) SurveyDetail(ctx context.Context, surveyID string) (*models.SurveyDetail, error) {
	var out models.SurveyDetail
	if err := c.get(ctx, fmt.Sprintf("/surveys/%s/details", surveyID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Responses returns an iterator over the survey's bulk response pages,
// optionally filtered by response status ("completed" is the usual filter;
// empty means no filter).
func (c *Client) Responses(ctx context.Context, surveyID, status string) *ResponseIterator {
	return &ResponseIterator{
		client:   c,
		ctx:      ctx,
		surveyID: surveyID,
		status:   status,
	}
}

// ResponseIterator walks the paginated bulk-response endpoint lazily, one
// page per Next call, following the links.next cursor.
type ResponseIterator struct {
	client   *Client
	ctx      context.Context
	surveyID string
	status   string
	page     int
	current  *models.ResponsePage
	done     bool
	err      error
}

// Next fetches the next page. It returns false when the previous page had no
// next link or a fetch failed; check Err afterwards.
func (it *ResponseIterator) Next() bool {
	if it.done || it.err != nil {
		return false
	}

	it.page++
	params := map[string]string{
		"page":     strconv.Itoa(it.page),
		"per_page": strconv.Itoa(responsesPerPage),
	}
	if it.status != "" {
		params["status"] = it.status
	}

	var out models.ResponsePage
	path := fmt.Sprintf("/surveys/%s/responses/bulk", it.surveyID)
	if err := it.client.get(it.ctx, path, params, &out); err != nil {
		it.err = err
		return false
	}

	it.current = &out
	if out.Links.Next == "" {
		it.done = true
	}
	return true
}

// Page returns the page fetched by the last successful Next call.
func (it *ResponseIterator) Page() *models.ResponsePage { return it.current }

// Err returns the first fetch error, if any.
func (it *ResponseIterator) Err() error { return it.err }
