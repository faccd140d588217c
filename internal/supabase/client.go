// Package supabase reads job rows from a Supabase project's REST
// (PostgREST) endpoint.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/justsurfingit/longevity-jobs/internal/models"
)

const (
	jobsTable      = "jobs"
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 2048
)

type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func NewClient(baseURL, anonKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type tokenKey struct{}

// WithAccessToken attaches a user access token to ctx. Requests made with
// that context authenticate as the user instead of the anon role.
func WithAccessToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// AccessToken returns the token attached by WithAccessToken, or "".
func AccessToken(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// ActiveJobs returns every job with active = true, newest created first.
func (c *Client) ActiveJobs(ctx context.Context) ([]models.Job, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("active", "eq.true")
	q.Set("order", "created_at.desc")

	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, jobsTable, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building jobs request")
	}

	bearer := c.anonKey
	if tok := AccessToken(ctx); tok != "" {
		bearer = tok
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "requesting jobs")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var rows []jobRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, errors.Wrap(err, "decoding jobs")
	}

	jobs := make([]models.Job, 0, len(rows))
	for i, row := range rows {
		j, err := row.toJob()
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// PostgREST reports failures as {"code","message","details","hint"}.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return errors.Newf("supabase: %s (status %d, code %s)", e.Message, resp.StatusCode, e.Code)
	}
	return errors.Newf("supabase: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
