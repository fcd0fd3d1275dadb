package models

import "encoding/json"

// JobSearchRequest is the JSON body for POST /api/jobs/search.
type JobSearchRequest struct {
	JobTitle string `json:"job_title"`
	Location string `json:"location"`
}

// JobSearchResponse wraps the upstream listings, which are passed through untouched.
type JobSearchResponse struct {
	Status string            `json:"status"`
	Count  int               `json:"count"`
	Data   []json.RawMessage `json:"data"`
}

// UpstreamErrorResponse is the body of a failed job search.
type UpstreamErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
