package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client calls the Gemini generateContent REST endpoint. Each Generate is a
// single attempt; the client never retries.
type Client struct {
	http    *resty.Client
	apiKey  string
	model   string
	timeout time.Duration
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		http:    resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")),
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

// generateResponse accepts both the plain {"text": ...} shape and the
// candidates/content/parts shape.
type generateResponse struct {
	Text       string `json:"text"`
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r *generateResponse) text() string {
	if t := strings.TrimSpace(r.Text); t != "" {
		return t
	}
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}

// Generate sends prompt and returns the trimmed response text. Any error is
// a *Failure.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", &Failure{Kind: MissingKey}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body := generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", &Failure{Kind: Unavailable, Err: err}
	}
	if !res.IsSuccess() {
		return "", &Failure{
			Kind:   BadStatus,
			Status: res.StatusCode(),
			Err:    fmt.Errorf("status %d: %s", res.StatusCode(), truncate(res.String(), 512)),
		}
	}

	var out generateResponse
	if err := json.Unmarshal(res.Body(), &out); err != nil {
		return "", &Failure{Kind: Malformed, Err: fmt.Errorf("decode: %w", err)}
	}

	text := out.text()
	if text == "" {
		return "", &Failure{Kind: Empty}
	}
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
