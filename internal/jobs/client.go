package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/careercompass/backend/internal/httpx"
)

const defaultLocation = "India"

// ErrNotConfigured is returned when no RapidAPI key is set.
var ErrNotConfigured = errors.New("job search is not configured")

// Client proxies the JSearch listing API.
type Client struct {
	http    *resty.Client
	host    string
	apiKey  string
	timeout time.Duration
}

func NewClient(baseURL, host, apiKey string, timeout time.Duration) *Client {
	return &Client{
		http:    resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")),
		host:    host,
		apiKey:  apiKey,
		timeout: timeout,
	}
}

type searchResponse struct {
	Data []json.RawMessage `json:"data"`
}

// Search returns the upstream listings for jobTitle near location, each item
// passed through untouched. An empty title is a 400; anything that goes wrong
// upstream is returned as a plain error.
func (c *Client) Search(ctx context.Context, jobTitle, location string) ([]json.RawMessage, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return nil, httpx.Validationf("Job title is required")
	}
	location = strings.TrimSpace(location)
	if location == "" {
		location = defaultLocation
	}

	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-rapidapi-host", c.host).
		SetHeader("x-rapidapi-key", c.apiKey).
		SetQueryParams(map[string]string{
			"query":       fmt.Sprintf("%s jobs in %s", jobTitle, location),
			"page":        "1",
			"num_pages":   "1",
			"country":     "in",
			"date_posted": "all",
		}).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("job search request: %w", err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("job search returned %s", res.Status())
	}

	var out searchResponse
	if err := json.Unmarshal(res.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode job search response: %w", err)
	}
	if out.Data == nil {
		out.Data = []json.RawMessage{}
	}
	return out.Data, nil
}
